package locations

import (
	"context"
	"strings"
	"time"
)

// City is a geocoded place a user can pick from the suggestion list.
type City struct {
	Name    string  `json:"name"`
	State   string  `json:"state,omitempty"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Label renders "Name, State, Country" skipping an empty state.
func (c City) Label() string {
	parts := []string{c.Name}
	if strings.TrimSpace(c.State) != "" {
		parts = append(parts, c.State)
	}
	if strings.TrimSpace(c.Country) != "" {
		parts = append(parts, c.Country)
	}
	return strings.Join(parts, ", ")
}

// TrendingSearch is a frequently searched location.
type TrendingSearch struct {
	Location string `json:"location"`
	Count    int64  `json:"count"`
}

// Geocoder resolves free text into candidate cities.
type Geocoder interface {
	Geocode(ctx context.Context, query string, limit int) ([]City, error)
}

// Store caches suggestion lists and counts searches.
type Store interface {
	GetSuggestions(ctx context.Context, key string) ([]City, bool, error)
	SaveSuggestions(ctx context.Context, key string, cities []City, ttl time.Duration) error
	IncrementSearch(ctx context.Context, canonical, display string) error
	TopSearches(ctx context.Context, limit int) ([]TrendingSearch, error)
}

// Config holds runtime knobs for the location search service.
type Config struct {
	CacheTTL        time.Duration
	SuggestionLimit int
	TrendingLimit   int
}
