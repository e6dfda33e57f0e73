package locations

import (
	"context"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/yanqian/filmcast/pkg/errors"
)

const (
	defaultSuggestionLimit = 5
	defaultTrendingLimit   = 10
)

// Service exposes city autocomplete and search popularity.
type Service interface {
	Suggest(ctx context.Context, query string) ([]City, error)
	Record(ctx context.Context, city City) error
	Trending(ctx context.Context) ([]TrendingSearch, error)
}

type service struct {
	cfg      Config
	geocoder Geocoder
	store    Store
	logger   *slog.Logger
}

// NewService wires up the location search domain.
func NewService(cfg Config, geocoder Geocoder, store Store, logger *slog.Logger) Service {
	if cfg.SuggestionLimit <= 0 {
		cfg.SuggestionLimit = defaultSuggestionLimit
	}
	if cfg.TrendingLimit <= 0 {
		cfg.TrendingLimit = defaultTrendingLimit
	}
	return &service{
		cfg:      cfg,
		geocoder: geocoder,
		store:    store,
		logger:   logger.With("component", "locations.service"),
	}
}

func (s *service) Suggest(ctx context.Context, query string) ([]City, error) {
	trimmed := strings.TrimSpace(query)
	if len([]rune(trimmed)) < MinQueryLength {
		return []City{}, nil
	}
	key := NormalizeQuery(trimmed)
	if key == "" {
		return []City{}, nil
	}

	cached, ok, err := s.store.GetSuggestions(ctx, key)
	if err != nil {
		s.logger.Warn("suggestion cache read failed", "key", key, "error", err)
	} else if ok {
		s.logger.Debug("suggestion cache hit", "key", key, "results", len(cached))
		return cached, nil
	}

	start := time.Now()
	cities, err := s.geocoder.Geocode(ctx, trimmed, s.cfg.SuggestionLimit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeGeocode, "failed to look up cities", err)
	}
	if cities == nil {
		cities = []City{}
	}
	s.logger.Info("city suggestions fetched", "query", trimmed, "results", len(cities), "latency_ms", time.Since(start).Milliseconds())

	if err := s.store.SaveSuggestions(ctx, key, cities, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("suggestion cache write failed", "key", key, "error", err)
	}
	return cities, nil
}

func (s *service) Record(ctx context.Context, city City) error {
	display := city.Label()
	canonical := NormalizeQuery(display)
	if canonical == "" {
		return nil
	}
	return s.store.IncrementSearch(ctx, canonical, display)
}

func (s *service) Trending(ctx context.Context) ([]TrendingSearch, error) {
	items, err := s.store.TopSearches(ctx, s.cfg.TrendingLimit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []TrendingSearch{}
	}
	return items, nil
}
