package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/filmcast/internal/domain/stores"
)

func TestNearbySearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, nearbyPath, r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "test-key", q.Get("key"))
		require.Equal(t, "37.7749,-122.4194", q.Get("location"))
		require.Equal(t, "5000", q.Get("radius"))
		require.Equal(t, "true", q.Get("opennow"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","results":[{"place_id":"abc","name":"Glass Key","vicinity":"1 Market St","rating":4.6,"user_ratings_total":120,"business_status":"OPERATIONAL","geometry":{"location":{"lat":37.78,"lng":-122.41}},"opening_hours":{"open_now":true}}]}`))
	}))
	defer srv.Close()

	client := NewClient([]string{srv.URL}, "test-key", time.Second)
	strategy := client.Strategies()[0]
	require.Equal(t, stores.SourceNearby, strategy.Name())

	places, err := strategy.Search(context.Background(), stores.Query{Lat: 37.7749, Lng: -122.4194, Radius: 5000, OpenNow: true})
	require.NoError(t, err)
	require.Len(t, places, 1)
	require.Equal(t, "abc", places[0].PlaceID)
	require.NotNil(t, places[0].Rating)
	require.InDelta(t, 4.6, *places[0].Rating, 0.001)
	require.NotNil(t, places[0].OpenNow)
	require.True(t, *places[0].OpenNow)
}

func TestSearchFallsThroughBaseURLs(t *testing.T) {
	denied := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"bad key","results":[]}`))
	}))
	defer denied.Close()
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, textSearchPath, r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"OK","results":[{"place_id":"t1","name":"Camera Corner","formatted_address":"2 Main St, Springfield","geometry":{"location":{"lat":1,"lng":2}}}]}`))
	}))
	defer ok.Close()

	client := NewClient([]string{denied.URL, ok.URL}, "k", time.Second)
	places, err := client.Strategies()[1].Search(context.Background(), stores.Query{Lat: 1, Lng: 2, Radius: 100})
	require.NoError(t, err)
	require.Len(t, places, 1)
	require.Equal(t, "2 Main St, Springfield", places[0].Vicinity)
	require.Nil(t, places[0].Rating)
}

func TestSearchAllEndpointsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"OVER_QUERY_LIMIT","results":[]}`))
	}))
	defer srv.Close()

	client := NewClient([]string{srv.URL}, "k", time.Second)
	_, err := client.Strategies()[0].Search(context.Background(), stores.Query{Lat: 1, Lng: 2})
	require.Error(t, err)
	require.Contains(t, err.Error(), "usage limit")
}

func TestZeroResultsIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	defer srv.Close()

	client := NewClient([]string{srv.URL}, "k", time.Second)
	places, err := client.Strategies()[0].Search(context.Background(), stores.Query{Lat: 1, Lng: 2})
	require.NoError(t, err)
	require.Empty(t, places)
}

func TestGeocodeStrategyGeneratesIdentity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, geocodePath, r.URL.Path)
		require.NotEmpty(t, r.URL.Query().Get("address"))
		_, _ = w.Write([]byte(`{"status":"OK","results":[{"formatted_address":"500 Howard St, San Francisco","geometry":{"location":{"lat":37.78,"lng":-122.39}}},{"formatted_address":"Soho, London","geometry":{"location":{"lat":51.5,"lng":-0.13}}}]}`))
	}))
	defer srv.Close()

	client := NewClient([]string{srv.URL}, "k", time.Second)
	places, err := client.Strategies()[2].Search(context.Background(), stores.Query{Lat: 37.78, Lng: -122.39})
	require.NoError(t, err)
	require.Len(t, places, 2)
	require.Equal(t, "generated_0", places[0].PlaceID)
	require.Equal(t, "Film Shop at 500 Howard St", places[0].Name)
	require.Equal(t, "Film Store near Soho", places[1].Name)
	require.Equal(t, "OPERATIONAL", places[1].BusinessStatus)
	require.Nil(t, places[0].Rating)
}

func TestMissingAPIKey(t *testing.T) {
	client := NewClient(nil, "  ", time.Second)
	_, err := client.Strategies()[0].Search(context.Background(), stores.Query{})
	require.ErrorIs(t, err, errMissingAPIKey)
}
