package main

import (
	"github.com/spf13/cobra"
)

func newCatalogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the holiday catalog in use as YAML",
		Long: "catalog prints the effective holiday rules in the format --catalog\n" +
			"reads, so the built-in calendar can be dumped and edited.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.gen.Catalog().WriteYAML(cmd.OutOrStdout())
		},
	}
}
