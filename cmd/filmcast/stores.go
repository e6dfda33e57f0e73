package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yanqian/filmcast/internal/domain/stores"
	"github.com/yanqian/filmcast/internal/ui"
)

func newStoresCmd(svc func() *services) *cobra.Command {
	var (
		lat, lng  float64
		radius    int
		minRating float64
		anyHours  bool
	)
	cmd := &cobra.Command{
		Use:   "stores --lat <latitude> --lng <longitude>",
		Short: "Find film shops near a coordinate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := svc().stores
			q := s.DefaultQuery(lat, lng)
			if cmd.Flags().Changed("radius") {
				q.Radius = radius
			}
			if cmd.Flags().Changed("min-rating") {
				q.MinRating = minRating
			}
			if anyHours {
				q.OpenNow = false
			}

			result, err := s.Nearby(cmd.Context(), q)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(result.Places) == 0 {
				fmt.Fprintln(out, color.YellowString("No film stores found nearby."))
				return nil
			}
			if result.Source == stores.SourceFallback {
				fmt.Fprintln(out, color.New(color.Faint).Sprint("Live search unavailable, showing known shops."))
			}
			for _, p := range result.Places {
				fmt.Fprintln(out, ui.FormatPlace(p))
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lng, "lng", 0, "longitude")
	cmd.Flags().IntVar(&radius, "radius", 0, "search radius in metres")
	cmd.Flags().Float64Var(&minRating, "min-rating", 0, "minimum rating, 0 to 5")
	cmd.Flags().BoolVar(&anyHours, "any-hours", false, "include shops that are currently closed")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")
	return cmd
}
