package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/market-holidays/internal/database"
	"github.com/zapponejosh/market-holidays/internal/output"
)

func newStoredCmd(a *app) *cobra.Command {
	var from, to, year, del int

	c := &cobra.Command{
		Use:   "stored",
		Short: "Inspect holidays saved by generate --db",
		Long: "Without flags, stored lists the years saved for the catalog. With\n" +
			"--year it prints the saved holidays of one year, failing if that year\n" +
			"was never saved. --from and --to print whatever is saved in a range;\n" +
			"--delete removes one year.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx := cmd.Context()
			catalog := a.gen.Catalog().Name()
			out := cmd.OutOrStdout()

			switch {
			case cmd.Flags().Changed("delete"):
				n, err := db.DeleteYear(ctx, catalog, del)
				if database.IsNotFound(err) {
					return fmt.Errorf("no %s holidays stored for %d", catalog, del)
				}
				if err != nil {
					return err
				}
				a.log.Info("year deleted", slog.Int("year", del), slog.Int64("rows", n))
				return nil

			case cmd.Flags().Changed("year"):
				rows, err := db.GetHolidaysByYear(ctx, catalog, year)
				if database.IsNotFound(err) {
					return fmt.Errorf("no %s holidays stored for %d", catalog, year)
				}
				if err != nil {
					return err
				}
				w := output.NewWriter(out)
				if err := w.WriteSets(database.GroupByYear(rows)); err != nil {
					return err
				}
				return w.Flush()

			case cmd.Flags().Changed("from") || cmd.Flags().Changed("to"):
				if !cmd.Flags().Changed("to") {
					to = from
				}
				if !cmd.Flags().Changed("from") {
					from = to
				}
				rows, err := db.GetHolidaysByRange(ctx, catalog, from, to)
				if err != nil {
					return err
				}
				w := output.NewWriter(out)
				if err := w.WriteSets(database.GroupByYear(rows)); err != nil {
					return err
				}
				return w.Flush()

			default:
				years, err := db.ListYears(ctx, catalog)
				if err != nil {
					return err
				}
				for _, year := range years {
					fmt.Fprintln(out, year)
				}
				return nil
			}
		},
	}

	c.Flags().StringVar(&a.dbPath, "db", "", "SQLite database (default: DATABASE_PATH)")
	c.Flags().IntVar(&from, "from", 0, "first year to print")
	c.Flags().IntVar(&to, "to", 0, "last year to print")
	c.Flags().IntVar(&year, "year", 0, "print the saved holidays of this year")
	c.Flags().IntVar(&del, "delete", 0, "delete the saved holidays of this year")
	c.MarkFlagsMutuallyExclusive("delete", "year", "from")
	c.MarkFlagsMutuallyExclusive("delete", "year", "to")

	return c
}
