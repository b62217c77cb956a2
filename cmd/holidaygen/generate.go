package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/market-holidays/internal/output"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		start, end int
		outPath    string
	)

	c := &cobra.Command{
		Use:   "generate",
		Short: "Append the holidays of a range of years to a file",
		Long: "generate writes one \"<name>\\t<YYYY-MM-DD>\" line per holiday for every\n" +
			"year from --start to --end, appending to --output (\"-\" for stdout).\n" +
			"With --db the same years are also saved to a SQLite database.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if start > end {
				return fmt.Errorf("--start %d is after --end %d", start, end)
			}

			// Every year is computed before anything is written.
			sets, err := a.gen.GenerateRange(start, end)
			if err != nil {
				return err
			}
			a.log.Info("holidays generated",
				slog.Int("start", start),
				slog.Int("end", end),
				slog.String("catalog", a.gen.Catalog().Name()),
			)

			lines, err := output.AppendFile(outPath, cmd.OutOrStdout(), sets)
			if err != nil {
				return err
			}
			a.log.Info("output written",
				slog.String("path", outPath),
				slog.Int("lines", lines),
			)

			if !a.cfg.HasDatabase() {
				return nil
			}

			db, err := a.openDB(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			catalog := a.gen.Catalog().Name()
			for _, set := range sets {
				if err := db.SaveYearSet(cmd.Context(), catalog, set); err != nil {
					return err
				}
			}
			a.log.Info("database updated",
				slog.String("path", a.cfg.DatabasePath),
				slog.Int("years", len(sets)),
			)
			return nil
		},
	}

	c.Flags().IntVar(&start, "start", 0, "first year to generate (required)")
	c.Flags().IntVar(&end, "end", 0, "last year to generate (required)")
	c.Flags().StringVarP(&outPath, "output", "o", output.Stdout, "file to append to, or - for stdout")
	c.Flags().StringVar(&a.dbPath, "db", "", "also save to this SQLite database (default: DATABASE_PATH)")
	c.MarkFlagRequired("start")
	c.MarkFlagRequired("end")

	return c
}
