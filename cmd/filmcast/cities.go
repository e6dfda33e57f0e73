package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yanqian/filmcast/internal/ui"
)

func newCitiesCmd(svc func() *services) *cobra.Command {
	return &cobra.Command{
		Use:   "cities <query>",
		Short: "Suggest cities matching a partial name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cities, err := svc().locations.Suggest(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(cities) == 0 {
				fmt.Fprintln(out, color.YellowString("No matching cities."))
				return nil
			}
			for _, c := range cities {
				fmt.Fprintln(out, ui.FormatCity(c))
			}
			return nil
		},
	}
}
