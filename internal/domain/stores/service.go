package stores

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	apperrors "github.com/yanqian/filmcast/pkg/errors"
)

const (
	defaultRadius     = 5000
	defaultMaxResults = 6
)

// Service finds film retailers around a coordinate.
type Service interface {
	DefaultQuery(lat, lng float64) Query
	Nearby(ctx context.Context, q Query) (Result, error)
}

type service struct {
	cfg        Config
	strategies []Strategy
	logger     *slog.Logger
}

// NewService tries strategies in the given order before falling back to curated data.
func NewService(cfg Config, strategies []Strategy, logger *slog.Logger) Service {
	if cfg.Radius <= 0 {
		cfg.Radius = defaultRadius
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = defaultMaxResults
	}
	return &service{
		cfg:        cfg,
		strategies: strategies,
		logger:     logger.With("component", "stores.service"),
	}
}

// DefaultQuery fills a query with the configured defaults for lat/lng.
func (s *service) DefaultQuery(lat, lng float64) Query {
	return Query{
		Lat:         lat,
		Lng:         lng,
		Radius:      s.cfg.Radius,
		OpenNow:     s.cfg.OpenNow,
		MinRating:   s.cfg.MinRating,
		MaxResults:  s.cfg.MaxResults,
		UseFallback: s.cfg.UseFallback,
	}
}

func (s *service) Nearby(ctx context.Context, q Query) (Result, error) {
	if err := validateQuery(q); err != nil {
		return Result{}, apperrors.Wrap(apperrors.CodeInvalidInput, err.Error(), nil)
	}
	if q.Radius <= 0 {
		q.Radius = s.cfg.Radius
	}
	if q.MaxResults <= 0 {
		q.MaxResults = s.cfg.MaxResults
	}

	var lastErr error
	for _, strategy := range s.strategies {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		places, err := strategy.Search(ctx, q)
		if err != nil {
			s.logger.Warn("store strategy failed", "strategy", strategy.Name(), "error", err)
			lastErr = err
			continue
		}
		if len(places) == 0 {
			continue
		}
		s.logger.Info("store strategy succeeded", "strategy", strategy.Name(), "results", len(places))
		return Result{Places: rank(places, q), Source: strategy.Name()}, nil
	}

	if !q.UseFallback {
		return Result{Places: []Place{}, Source: SourceNone}, nil
	}
	s.logger.Info("all store strategies exhausted, using fallback data", "lat", q.Lat, "lng", q.Lng, "last_error", lastErr)
	return Result{Places: rank(fallbackPlaces(q.Lat, q.Lng), q), Source: SourceFallback}, nil
}

func validateQuery(q Query) error {
	if q.Lat < -90 || q.Lat > 90 {
		return fmt.Errorf("lat must be between -90 and 90, got %v", q.Lat)
	}
	if q.Lng < -180 || q.Lng > 180 {
		return fmt.Errorf("lng must be between -180 and 180, got %v", q.Lng)
	}
	if q.MinRating < 0 || q.MinRating > 5 {
		return fmt.Errorf("minRating must be between 0 and 5, got %v", q.MinRating)
	}
	return nil
}

// rank drops under-rated places, orders by rating then review count, and truncates.
func rank(places []Place, q Query) []Place {
	out := make([]Place, 0, len(places))
	for _, p := range places {
		if q.MinRating > 0 && (p.Rating == nil || *p.Rating < q.MinRating) {
			continue
		}
		p.MapsURL = MapsURL(p.PlaceID)
		out = append(out, p)
	}
	slices.SortStableFunc(out, func(a, b Place) int {
		if c := cmp.Compare(ratingOf(b), ratingOf(a)); c != 0 {
			return c
		}
		return cmp.Compare(b.UserRatingsTotal, a.UserRatingsTotal)
	})
	if q.MaxResults > 0 && len(out) > q.MaxResults {
		out = out[:q.MaxResults]
	}
	return out
}

func ratingOf(p Place) float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}
