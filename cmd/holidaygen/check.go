package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/market-holidays/internal/calendar"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <YYYY-MM-DD>",
		Short: "Report whether the market is closed on a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := calendar.ParseDate(args[0])
			if err != nil {
				return err
			}

			holiday, ok, err := a.gen.IsHoliday(date)
			if err != nil {
				return err
			}

			status := "trading day"
			switch {
			case ok:
				status = holiday.Name
			case date.IsWeekend():
				status = "weekend"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", date, status)
			return nil
		},
	}
}
