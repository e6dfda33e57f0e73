package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/filmcast/internal/domain/film"
	"github.com/yanqian/filmcast/internal/domain/forecast"
	"github.com/yanqian/filmcast/internal/domain/locations"
	"github.com/yanqian/filmcast/internal/domain/stores"
	"github.com/yanqian/filmcast/internal/domain/sunlight"
	"github.com/yanqian/filmcast/internal/infra/config"
	apperrors "github.com/yanqian/filmcast/pkg/errors"
)

func TestRouter_RecommendSuccess(t *testing.T) {
	resp := forecast.Response{
		Location:  forecast.Location{Name: "London", Country: "GB"},
		Category:  sunlight.Medium,
		IsDaytime: true,
		ISORange:  forecast.ISORange{Min: 50, Max: 800},
		Films:     []film.Stock{{ID: "portra-400", Name: "Portra 400", ISO: 400}},
	}
	deps := newStubDeps()
	deps.forecast.recommendFn = func(ctx context.Context, req forecast.Request) (forecast.Response, error) {
		require.Equal(t, "London", req.Query)
		require.Equal(t, []string{"35mm"}, req.Formats)
		return resp, nil
	}

	rec := perform(t, deps, http.MethodPost, "/api/v1/recommendations", `{"query":"London","formats":["35mm"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get(requestIDHeader))

	var got forecast.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, resp, got)
}

func TestRouter_RecommendInvalidJSON(t *testing.T) {
	rec := perform(t, newStubDeps(), http.MethodPost, "/api/v1/recommendations", `{"query":123}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeErrorBody(t, rec.Body.Bytes())
	require.Equal(t, "invalid_request", body["error"]["code"])
	require.NotEmpty(t, body["error"]["message"])
}

func TestRouter_RecommendErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{apperrors.Wrap(apperrors.CodeInvalidInput, "query too short", nil), http.StatusBadRequest, "invalid_input"},
		{apperrors.Wrap(apperrors.CodeLocationNotFound, "location not found", nil), http.StatusNotFound, "location_not_found"},
		{apperrors.Wrap(apperrors.CodeWeather, "failed to fetch weather data", errors.New("401")), http.StatusBadGateway, "weather_error"},
		{errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			deps := newStubDeps()
			deps.forecast.recommendFn = func(context.Context, forecast.Request) (forecast.Response, error) {
				return forecast.Response{}, tc.err
			}
			rec := perform(t, deps, http.MethodPost, "/api/v1/recommendations", `{"query":"Paris"}`)
			require.Equal(t, tc.status, rec.Code)
			body := decodeErrorBody(t, rec.Body.Bytes())
			require.Equal(t, tc.code, body["error"]["code"])
			require.NotContains(t, body["error"]["message"], "401")
		})
	}
}

func TestRouter_Films(t *testing.T) {
	deps := newStubDeps()
	deps.forecast.catalog = film.DefaultStocks()

	rec := perform(t, deps, http.MethodGet, "/api/v1/films", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Films []film.Stock `json:"films"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Films, len(film.DefaultStocks()))
}

func TestRouter_SuggestAndTrending(t *testing.T) {
	deps := newStubDeps()
	deps.locations.suggestFn = func(ctx context.Context, q string) ([]locations.City, error) {
		require.Equal(t, "lon", q)
		return []locations.City{{Name: "London", Country: "GB"}}, nil
	}
	deps.locations.trending = []locations.TrendingSearch{{Location: "Tokyo, JP", Count: 3}}

	rec := perform(t, deps, http.MethodGet, "/api/v1/locations/suggest?q=lon", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"suggestions":[{"name":"London","country":"GB","lat":0,"lon":0}]}`, rec.Body.String())

	rec = perform(t, deps, http.MethodGet, "/api/v1/locations/trending", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"trending":[{"location":"Tokyo, JP","count":3}]}`, rec.Body.String())
}

func TestRouter_SuggestUpstreamFailure(t *testing.T) {
	deps := newStubDeps()
	deps.locations.suggestFn = func(context.Context, string) ([]locations.City, error) {
		return nil, apperrors.Wrap(apperrors.CodeGeocode, "failed to look up cities", errors.New("timeout"))
	}
	rec := perform(t, deps, http.MethodGet, "/api/v1/locations/suggest?q=berlin", "")
	require.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestRouter_NearbyStoresQueryParsing(t *testing.T) {
	deps := newStubDeps()
	deps.stores.nearbyFn = func(ctx context.Context, q stores.Query) (stores.Result, error) {
		require.InDelta(t, 51.5, q.Lat, 1e-9)
		require.InDelta(t, -0.12, q.Lng, 1e-9)
		require.Equal(t, 2000, q.Radius)
		require.False(t, q.OpenNow)
		require.InDelta(t, 4.0, q.MinRating, 1e-9)
		require.Equal(t, 6, q.MaxResults)
		require.True(t, q.UseFallback)
		return stores.Result{Places: []stores.Place{{PlaceID: "mock_london_1", Name: "Snappy Snaps"}}, Source: stores.SourceFallback}, nil
	}

	rec := perform(t, deps, http.MethodGet, "/api/v1/stores?lat=51.5&lng=-0.12&radius=2000&openNow=false&minRating=4", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got stores.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, stores.SourceFallback, got.Source)
	require.Len(t, got.Places, 1)
}

func TestRouter_NearbyStoresBadParams(t *testing.T) {
	for _, path := range []string{
		"/api/v1/stores?lng=1",
		"/api/v1/stores?lat=abc&lng=1",
		"/api/v1/stores?lat=1&lng=1&openNow=maybe",
	} {
		rec := perform(t, newStubDeps(), http.MethodGet, path, "")
		require.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestRouter_HealthzAndRequestID(t *testing.T) {
	server := newRouterUnderTest(t, newStubDeps())
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestRouter_CORSPreflight(t *testing.T) {
	server := newRouterUnderTest(t, newStubDeps())
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/recommendations", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRetryReplaysServerErrors(t *testing.T) {
	attempts := 0
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		body, _ := io.ReadAll(r.Body)
		require.Equal(t, `{"query":"Oslo"}`, string(body))
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	handler := withRetry(inner, config.RetryConfig{Enabled: true, MaxAttempts: 3, BaseBackoff: time.Millisecond}, newTestLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", bytes.NewBufferString(`{"query":"Oslo"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 3, attempts)
}

func TestRateLimiterRefill(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := newIPRateLimiter(config.RateLimitConfig{Enabled: true, RequestsPerMinute: 60, Burst: 2}, func() time.Time { return now })

	ok, _ := limiter.allow("1.2.3.4")
	require.True(t, ok)
	ok, _ = limiter.allow("1.2.3.4")
	require.True(t, ok)
	ok, wait := limiter.allow("1.2.3.4")
	require.False(t, ok)
	require.Equal(t, time.Second, wait)

	ok, _ = limiter.allow("5.6.7.8")
	require.True(t, ok)

	now = now.Add(time.Second)
	ok, _ = limiter.allow("1.2.3.4")
	require.True(t, ok)
}

func perform(t *testing.T, deps *stubDeps, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	newRouterUnderTest(t, deps).Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, deps *stubDeps) *http.Server {
	t.Helper()
	handler := NewHandler(deps.forecast, deps.locations, deps.stores, newTestLogger())
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:        ":0",
			ReadTimeout:    time.Second,
			WriteTimeout:   time.Second,
			AllowedOrigins: []string{"http://localhost:5173"},
		},
	}
	return NewRouter(cfg, handler)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubDeps struct {
	forecast  *stubForecast
	locations *stubLocations
	stores    *stubStores
}

func newStubDeps() *stubDeps {
	return &stubDeps{forecast: &stubForecast{}, locations: &stubLocations{}, stores: &stubStores{}}
}

type stubForecast struct {
	recommendFn func(ctx context.Context, req forecast.Request) (forecast.Response, error)
	catalog     []film.Stock
}

func (s *stubForecast) Recommend(ctx context.Context, req forecast.Request) (forecast.Response, error) {
	if s.recommendFn != nil {
		return s.recommendFn(ctx, req)
	}
	return forecast.Response{}, nil
}

func (s *stubForecast) Catalog() []film.Stock { return s.catalog }

type stubLocations struct {
	suggestFn func(ctx context.Context, q string) ([]locations.City, error)
	trending  []locations.TrendingSearch
}

func (s *stubLocations) Suggest(ctx context.Context, q string) ([]locations.City, error) {
	if s.suggestFn != nil {
		return s.suggestFn(ctx, q)
	}
	return []locations.City{}, nil
}

func (s *stubLocations) Record(context.Context, locations.City) error { return nil }

func (s *stubLocations) Trending(context.Context) ([]locations.TrendingSearch, error) {
	return s.trending, nil
}

type stubStores struct {
	nearbyFn func(ctx context.Context, q stores.Query) (stores.Result, error)
}

func (s *stubStores) DefaultQuery(lat, lng float64) stores.Query {
	return stores.Query{Lat: lat, Lng: lng, Radius: 5000, OpenNow: true, MaxResults: 6, UseFallback: true}
}

func (s *stubStores) Nearby(ctx context.Context, q stores.Query) (stores.Result, error) {
	if s.nearbyFn != nil {
		return s.nearbyFn(ctx, q)
	}
	return stores.Result{Places: []stores.Place{}, Source: stores.SourceNone}, nil
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
