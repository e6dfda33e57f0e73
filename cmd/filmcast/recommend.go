package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yanqian/filmcast/internal/domain/forecast"
	"github.com/yanqian/filmcast/internal/ui"
)

func newRecommendCmd(svc func() *services) *cobra.Command {
	var (
		city    string
		lat     float64
		lon     float64
		formats []string
		types   []string
		minISO  int
		maxISO  int
	)
	cmd := &cobra.Command{
		Use:     "recommend (--city <name> | --lat <lat> --lon <lon>)",
		Aliases: []string{"r"},
		Short:   "Recommend film stocks for current conditions",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			req := forecast.Request{Query: city, Formats: formats, Types: types}
			if flags.Changed("lat") || flags.Changed("lon") {
				if !flags.Changed("lat") || !flags.Changed("lon") {
					return errors.New("--lat and --lon must be used together")
				}
				req.Lat, req.Lon = &lat, &lon
			}
			if flags.Changed("min-iso") {
				req.MinISO = &minISO
			}
			if flags.Changed("max-iso") {
				req.MaxISO = &maxISO
			}

			resp, err := svc().forecast.Recommend(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.FormatRecommendation(resp))
			return nil
		},
	}
	cmd.Flags().StringVarP(&city, "city", "c", "", "city name to look up")
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude")
	cmd.Flags().StringSliceVarP(&formats, "format", "f", nil, "film formats: 35mm, 120, sheet")
	cmd.Flags().StringSliceVarP(&types, "type", "t", nil, "film types: color, bw")
	cmd.Flags().IntVar(&minISO, "min-iso", 0, "lowest ISO to include")
	cmd.Flags().IntVar(&maxISO, "max-iso", 0, "highest ISO to include")
	cmd.MarkFlagsMutuallyExclusive("city", "lat")
	cmd.MarkFlagsMutuallyExclusive("city", "lon")
	return cmd
}
