package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yanqian/filmcast/internal/ui"
)

func newFilmsCmd(svc func() *services) *cobra.Command {
	return &cobra.Command{
		Use:     "films",
		Aliases: []string{"ls"},
		Short:   "List the film catalog",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, s := range svc().forecast.Catalog() {
				fmt.Fprintln(out, ui.FormatStock(s))
			}
			return nil
		},
	}
}
