package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/filmcast/internal/domain/film"
	"github.com/yanqian/filmcast/internal/domain/forecast"
	"github.com/yanqian/filmcast/internal/domain/locations"
	"github.com/yanqian/filmcast/internal/domain/stores"
	"github.com/yanqian/filmcast/internal/infra/config"
	"github.com/yanqian/filmcast/internal/infra/places/google"
	"github.com/yanqian/filmcast/internal/infra/searchstore"
	"github.com/yanqian/filmcast/internal/infra/weather/openweather"
)

func provideEngine() (*film.Engine, error) {
	catalog, err := film.NewCatalog(film.DefaultStocks())
	if err != nil {
		return nil, err
	}
	return film.NewEngine(catalog), nil
}

func provideWeatherClient(cfg *config.Config, logger *slog.Logger) *openweather.Client {
	if strings.TrimSpace(cfg.Weather.APIKey) == "" {
		logger.Warn("openweather api key not set, recommendations will fail upstream")
	}
	return openweather.NewClient(cfg.Weather.BaseURL, cfg.Weather.APIKey, cfg.Weather.Timeout)
}

func provideLocationsConfig(cfg *config.Config) locations.Config {
	return locations.Config{
		CacheTTL:        cfg.Search.CacheTTL,
		SuggestionLimit: cfg.Search.SuggestionLimit,
		TrendingLimit:   cfg.Search.TrendingLimit,
	}
}

func provideStoresConfig(cfg *config.Config) stores.Config {
	return stores.Config{
		Radius:      cfg.Places.Radius,
		MaxResults:  cfg.Places.MaxResults,
		MinRating:   cfg.Places.MinRating,
		OpenNow:     cfg.Places.OpenNow,
		UseFallback: cfg.Places.UseFallback,
	}
}

func provideStoreStrategies(cfg *config.Config, logger *slog.Logger) []stores.Strategy {
	if strings.TrimSpace(cfg.Places.APIKey) == "" {
		logger.Warn("google maps api key not set, store search uses curated fallback only")
		return nil
	}
	return google.NewClient(cfg.Places.BaseURLs, cfg.Places.APIKey, cfg.Places.Timeout).Strategies()
}

func provideSearchRecorder(svc locations.Service) forecast.SearchRecorder {
	return svc
}

// provideSearchStore prefers Valkey and degrades to process memory when it is
// disabled or unreachable.
func provideSearchStore(cfg *config.Config, logger *slog.Logger) (locations.Store, func()) {
	noop := func() {}
	if !cfg.Search.Redis.Enabled {
		return searchstore.NewMemoryStore(), noop
	}
	opt, err := buildValkeyOptions(cfg.Search.Redis.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
		return searchstore.NewMemoryStore(), noop
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory store", "error", err)
		return searchstore.NewMemoryStore(), noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory store", "error", err)
		client.Close()
		return searchstore.NewMemoryStore(), noop
	}
	logger.Info("search valkey store enabled", "addr", cfg.Search.Redis.Addr)
	return searchstore.NewValkeyStore(client, cfg.Search.Redis.Prefix), client.Close
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
