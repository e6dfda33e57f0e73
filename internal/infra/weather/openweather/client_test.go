package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/filmcast/internal/domain/locations"
	"github.com/yanqian/filmcast/internal/domain/sunlight"
)

func TestClientGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/geo/1.0/direct", r.URL.Path)
		require.Equal(t, "San Francisco", r.URL.Query().Get("q"))
		require.Equal(t, "5", r.URL.Query().Get("limit"))
		require.Equal(t, "secret", r.URL.Query().Get("appid"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"San Francisco","state":"California","country":"US","lat":37.7790262,"lon":-122.419906}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", "secret", time.Second)
	cities, err := client.Geocode(context.Background(), "San Francisco", 5)
	require.NoError(t, err)
	require.Equal(t, []locations.City{{
		Name:    "San Francisco",
		State:   "California",
		Country: "US",
		Lat:     37.7790262,
		Lon:     -122.419906,
	}}, cities)
}

func TestClientCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/data/2.5/weather", r.URL.Path)
		require.Equal(t, "51.5", r.URL.Query().Get("lat"))
		require.Equal(t, "-0.12", r.URL.Query().Get("lon"))
		require.Equal(t, "metric", r.URL.Query().Get("units"))
		_, _ = w.Write([]byte(`{
			"name": "London",
			"dt": 1717243200,
			"timezone": 3600,
			"weather": [{"main": "Clouds", "description": "broken clouds", "icon": "04d"}],
			"main": {"temp": 17.4},
			"clouds": {"all": 75},
			"sys": {"country": "GB", "sunrise": 1717213200, "sunset": 1717272000}
		}`))
	}))
	defer srv.Close()

	obs, err := NewClient(srv.URL, "k", 0).Current(context.Background(), 51.5, -0.12)
	require.NoError(t, err)
	require.Equal(t, "London", obs.LocationName)
	require.Equal(t, "GB", obs.CountryCode)
	require.Equal(t, "Clouds", obs.ConditionText)
	require.Equal(t, "broken clouds", obs.Description)
	require.Equal(t, 75, obs.CloudCoverage)
	require.Equal(t, 17.4, obs.TemperatureC)
	require.Equal(t, 3600, obs.UTCOffsetSeconds)
	require.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), obs.ObservedAt)
	require.Equal(t, sunlight.Medium, sunlight.Classify(obs))
}

func TestClientCurrentUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"cod":401,"message":"Invalid API key."}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "bad", time.Second).Current(context.Background(), 0, 0)
	require.ErrorContains(t, err, "status=401")
	require.ErrorContains(t, err, "Invalid API key.")
}

func TestNormalizeCurrentRejectsIncompletePayload(t *testing.T) {
	_, err := normalizeCurrent(currentResponse{})
	require.ErrorContains(t, err, "missing conditions")

	raw := currentResponse{}
	raw.Weather = append(raw.Weather, struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	}{Main: "Clear"})
	_, err = normalizeCurrent(raw)
	require.ErrorContains(t, err, "missing temperature")
}

func TestClampPercent(t *testing.T) {
	require.Equal(t, 0, clampPercent(-3))
	require.Equal(t, 100, clampPercent(140))
	require.Equal(t, 42, clampPercent(42))
}
