package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanqian/filmcast/internal/domain/film"
	"github.com/yanqian/filmcast/internal/domain/forecast"
	"github.com/yanqian/filmcast/internal/domain/locations"
	"github.com/yanqian/filmcast/internal/domain/stores"
	"github.com/yanqian/filmcast/internal/infra/config"
	"github.com/yanqian/filmcast/internal/infra/places/google"
	"github.com/yanqian/filmcast/internal/infra/searchstore"
	"github.com/yanqian/filmcast/internal/infra/weather/openweather"
	"github.com/yanqian/filmcast/pkg/logger"
)

// services are the domain entry points the commands call.
type services struct {
	forecast  forecast.Service
	locations locations.Service
	stores    stores.Service
}

// newRootCmd builds the command tree. A nil svc is built from config on first use.
func newRootCmd(svc *services) *cobra.Command {
	root := &cobra.Command{
		Use:   "filmcast",
		Short: "Film stock recommendations from the weather",
		Long: `Pick a film stock for today's light.

filmcast looks up the current weather for a place, classifies the light as
bright, medium, low or night, and lists the stocks that suit it.

Examples:
  filmcast recommend --city "San Francisco"
  filmcast recommend --lat 51.5 --lon -0.12 --format 120 --type bw
  filmcast stores --lat 40.71 --lng -74.00
  filmcast cities port`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if svc != nil {
				return nil
			}
			built, err := buildServices()
			if err != nil {
				return err
			}
			svc = built
			return nil
		},
	}

	get := func() *services { return svc }
	root.AddCommand(
		newRecommendCmd(get),
		newFilmsCmd(get),
		newStoresCmd(get),
		newCitiesCmd(get),
	)
	return root
}

// buildServices wires the domain without Valkey: a CLI run is too short-lived
// for a shared cache to pay off.
func buildServices() (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log := logger.NewTo(os.Stderr)

	catalog, err := film.NewCatalog(film.DefaultStocks())
	if err != nil {
		return nil, err
	}
	weather := openweather.NewClient(cfg.Weather.BaseURL, cfg.Weather.APIKey, cfg.Weather.Timeout)
	locSvc := locations.NewService(locations.Config{
		CacheTTL:        cfg.Search.CacheTTL,
		SuggestionLimit: cfg.Search.SuggestionLimit,
		TrendingLimit:   cfg.Search.TrendingLimit,
	}, weather, searchstore.NewMemoryStore(), log)

	var strategies []stores.Strategy
	if strings.TrimSpace(cfg.Places.APIKey) != "" {
		strategies = google.NewClient(cfg.Places.BaseURLs, cfg.Places.APIKey, cfg.Places.Timeout).Strategies()
	}
	storeSvc := stores.NewService(stores.Config{
		Radius:      cfg.Places.Radius,
		MaxResults:  cfg.Places.MaxResults,
		MinRating:   cfg.Places.MinRating,
		OpenNow:     cfg.Places.OpenNow,
		UseFallback: cfg.Places.UseFallback,
	}, strategies, log)

	return &services{
		forecast:  forecast.NewService(film.NewEngine(catalog), weather, locSvc, log),
		locations: locSvc,
		stores:    storeSvc,
	}, nil
}
