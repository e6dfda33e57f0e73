package forecast

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/yanqian/filmcast/internal/domain/film"
	"github.com/yanqian/filmcast/internal/domain/locations"
	"github.com/yanqian/filmcast/internal/domain/sunlight"
	apperrors "github.com/yanqian/filmcast/pkg/errors"
	"github.com/yanqian/filmcast/pkg/util"
)

// Service turns a location and facet selection into film recommendations.
type Service interface {
	Recommend(ctx context.Context, req Request) (Response, error)
	Catalog() []film.Stock
}

// WeatherClient resolves locations and their current conditions.
type WeatherClient interface {
	Geocode(ctx context.Context, query string, limit int) ([]locations.City, error)
	Current(ctx context.Context, lat, lon float64) (sunlight.Observation, error)
}

// SearchRecorder counts resolved locations for the trending list.
type SearchRecorder interface {
	Record(ctx context.Context, city locations.City) error
}

type service struct {
	engine   *film.Engine
	weather  WeatherClient
	recorder SearchRecorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewService wires up the forecast domain.
func NewService(engine *film.Engine, weather WeatherClient, recorder SearchRecorder, logger *slog.Logger) Service {
	return &service{
		engine:   engine,
		weather:  weather,
		recorder: recorder,
		logger:   logger.With("component", "forecast.service"),
		now:      util.NowUTC,
	}
}

func (s *service) Catalog() []film.Stock {
	return s.engine.Catalog().All()
}

func (s *service) Recommend(ctx context.Context, req Request) (Response, error) {
	criteria, err := parseCriteria(req)
	if err != nil {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, err.Error(), nil)
	}

	loc, err := s.resolveLocation(ctx, req)
	if err != nil {
		return Response{}, err
	}

	obs, err := s.weather.Current(ctx, loc.Lat, loc.Lon)
	if err != nil {
		return Response{}, apperrors.Wrap(apperrors.CodeWeather, "failed to fetch weather data", err)
	}
	if loc.Name == "" {
		loc.Name = obs.LocationName
	}
	if loc.Country == "" {
		loc.Country = obs.CountryCode
	}

	assessment := sunlight.Assess(obs)
	films := s.engine.Recommend(assessment.Category, criteria, assessment.IsDaytime)
	minISO, maxISO := film.Bounds(criteria, assessment.IsDaytime)
	s.logger.Info("film recommendation computed",
		"location", loc.Name,
		"condition", obs.ConditionText,
		"clouds", obs.CloudCoverage,
		"category", assessment.Category,
		"films", len(films),
	)

	s.record(ctx, loc)

	return Response{
		Location:    loc,
		Weather:     toWeather(obs),
		Category:    assessment.Category,
		IsDaytime:   assessment.IsDaytime,
		ISORange:    ISORange{Min: minISO, Max: maxISO},
		Filtered:    criteria.IsFiltered(),
		Films:       films,
		GeneratedAt: s.now().Format(time.RFC3339),
	}, nil
}

func (s *service) resolveLocation(ctx context.Context, req Request) (Location, error) {
	if req.Lat != nil || req.Lon != nil {
		if req.Lat == nil || req.Lon == nil {
			return Location{}, apperrors.Wrap(apperrors.CodeInvalidInput, "lat and lon must be provided together", nil)
		}
		if *req.Lat < -90 || *req.Lat > 90 || *req.Lon < -180 || *req.Lon > 180 {
			return Location{}, apperrors.Wrap(apperrors.CodeInvalidInput, "coordinates out of range", nil)
		}
		return Location{Lat: *req.Lat, Lon: *req.Lon}, nil
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		return Location{}, apperrors.Wrap(apperrors.CodeInvalidInput, "query or coordinates are required", nil)
	}
	if len([]rune(query)) < locations.MinQueryLength {
		return Location{}, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("query must be at least %d characters", locations.MinQueryLength), nil)
	}

	cities, err := s.weather.Geocode(ctx, query, 1)
	if err != nil {
		return Location{}, apperrors.Wrap(apperrors.CodeGeocode, "failed to resolve location", err)
	}
	if len(cities) == 0 {
		return Location{}, apperrors.Wrap(apperrors.CodeLocationNotFound, fmt.Sprintf("no location matches %q", query), nil)
	}
	city := cities[0]
	return Location{Name: city.Name, State: city.State, Country: city.Country, Lat: city.Lat, Lon: city.Lon}, nil
}

func (s *service) record(ctx context.Context, loc Location) {
	if s.recorder == nil || loc.Name == "" {
		return
	}
	city := locations.City{Name: loc.Name, State: loc.State, Country: loc.Country, Lat: loc.Lat, Lon: loc.Lon}
	if err := s.recorder.Record(ctx, city); err != nil {
		s.logger.Warn("record trending search failed", "location", loc.Name, "error", err)
	}
}

func parseCriteria(req Request) (film.Criteria, error) {
	formats, err := film.ParseFormats(req.Formats)
	if err != nil {
		return film.Criteria{}, err
	}
	types, err := film.ParseTypes(req.Types)
	if err != nil {
		return film.Criteria{}, err
	}
	if req.MinISO != nil && *req.MinISO <= 0 {
		return film.Criteria{}, fmt.Errorf("minIso must be positive")
	}
	if req.MaxISO != nil && *req.MaxISO <= 0 {
		return film.Criteria{}, fmt.Errorf("maxIso must be positive")
	}
	if req.MinISO != nil && req.MaxISO != nil && *req.MinISO > *req.MaxISO {
		return film.Criteria{}, fmt.Errorf("minIso cannot exceed maxIso")
	}
	return film.Criteria{Formats: formats, Types: types, MinISO: req.MinISO, MaxISO: req.MaxISO}, nil
}

func toWeather(obs sunlight.Observation) Weather {
	unit := DefaultUnit(obs.CountryCode)
	celsius := math.Round(obs.TemperatureC)
	display := celsius
	if unit == UnitFahrenheit {
		display = util.CelsiusToFahrenheit(obs.TemperatureC)
	}
	return Weather{
		Temperature:   display,
		TemperatureC:  celsius,
		Unit:          unit,
		Condition:     obs.ConditionText,
		Description:   obs.Description,
		Icon:          obs.Icon,
		CloudCoverage: obs.CloudCoverage,
		LocalTime:     formatClock(obs.ObservedAt, obs.UTCOffsetSeconds),
		Sunrise:       formatClock(obs.Sunrise, obs.UTCOffsetSeconds),
		Sunset:        formatClock(obs.Sunset, obs.UTCOffsetSeconds),
	}
}
