package stores

import (
	"context"
	"fmt"
	"strings"
)

// Source names where a result list came from.
type Source string

const (
	SourceNearby   Source = "nearby"
	SourceText     Source = "text"
	SourceGeocode  Source = "geocode"
	SourceFallback Source = "fallback"
	SourceNone     Source = "none"
)

// Place is a retail listing that may sell or develop film.
type Place struct {
	PlaceID          string   `json:"placeId"`
	Name             string   `json:"name"`
	Vicinity         string   `json:"vicinity"`
	Rating           *float64 `json:"rating,omitempty"`
	UserRatingsTotal int      `json:"userRatingsTotal,omitempty"`
	Lat              float64  `json:"lat"`
	Lng              float64  `json:"lng"`
	OpenNow          *bool    `json:"openNow,omitempty"`
	BusinessStatus   string   `json:"businessStatus"`
	MapsURL          string   `json:"mapsUrl"`
}

// Query describes a nearby search around a coordinate.
type Query struct {
	Lat         float64
	Lng         float64
	Radius      int
	OpenNow     bool
	MinRating   float64
	MaxResults  int
	UseFallback bool
}

// Result is the outcome of a nearby search.
type Result struct {
	Places []Place `json:"places"`
	Source Source  `json:"source"`
}

// Strategy is one way of asking an upstream provider for stores.
type Strategy interface {
	Name() Source
	Search(ctx context.Context, q Query) ([]Place, error)
}

// Config holds the defaults applied to zero-valued query fields.
type Config struct {
	Radius      int
	MaxResults  int
	MinRating   float64
	OpenNow     bool
	UseFallback bool
}

var statusMessages = map[string]string{
	"ZERO_RESULTS":     "No stores found in this area.",
	"OVER_QUERY_LIMIT": "The API usage limit has been reached.",
	"REQUEST_DENIED":   "The request was denied. Check API key configuration.",
	"INVALID_REQUEST":  "Invalid request parameters.",
	"UNKNOWN_ERROR":    "Unknown server error. Please try again later.",
	"NOT_FOUND":        "The requested resource was not found.",
}

// StatusMessage turns a provider status code into a user facing sentence.
func StatusMessage(status string) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return "API error: " + status
}

// MapsURL links a place to Google Maps. Fallback listings have no real place id
// so they link to a search, scoped to the city when the id carries one.
func MapsURL(placeID string) string {
	if strings.HasPrefix(placeID, "mock_") || strings.HasPrefix(placeID, "generated_") {
		if city, ok := cityFromMockID(placeID); ok {
			return "https://www.google.com/maps/search/film+store+" + city
		}
		return "https://www.google.com/maps/search/film+store"
	}
	return fmt.Sprintf("https://www.google.com/maps/place/?q=place_id:%s", placeID)
}

// cityFromMockID extracts "new+york" from "mock_new_york_2". Generic ids such as
// "mock_place_1" carry no city.
func cityFromMockID(placeID string) (string, bool) {
	trimmed := strings.TrimPrefix(placeID, "mock_")
	if trimmed == placeID {
		return "", false
	}
	idx := strings.LastIndex(trimmed, "_")
	if idx <= 0 {
		return "", false
	}
	city := trimmed[:idx]
	if city == "place" {
		return "", false
	}
	return strings.ReplaceAll(city, "_", "+"), true
}
