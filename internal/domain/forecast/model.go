package forecast

import (
	"time"

	"github.com/yanqian/filmcast/internal/domain/film"
	"github.com/yanqian/filmcast/internal/domain/sunlight"
)

// Request captures the payload accepted by the recommendation endpoint.
// Either Query or both Lat and Lon must be set.
type Request struct {
	Query   string   `json:"query"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
	Formats []string `json:"formats"`
	Types   []string `json:"types"`
	MinISO  *int     `json:"minIso"`
	MaxISO  *int     `json:"maxIso"`
}

// Response is serialized back to API consumers.
type Response struct {
	Location    Location          `json:"location"`
	Weather     Weather           `json:"weather"`
	Category    sunlight.Category `json:"category"`
	IsDaytime   bool              `json:"isDaytime"`
	ISORange    ISORange          `json:"isoRange"`
	Filtered    bool              `json:"filtered"`
	Films       []film.Stock      `json:"films"`
	GeneratedAt string            `json:"generatedAt"`
}

// Location is the resolved place the weather belongs to.
type Location struct {
	Name    string  `json:"name"`
	State   string  `json:"state,omitempty"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Weather is the display form of an observation.
type Weather struct {
	Temperature   float64 `json:"temperature"`
	TemperatureC  float64 `json:"temperatureC"`
	Unit          string  `json:"unit"`
	Condition     string  `json:"condition"`
	Description   string  `json:"description"`
	Icon          string  `json:"icon,omitempty"`
	CloudCoverage int     `json:"cloudCoverage"`
	LocalTime     string  `json:"localTime"`
	Sunrise       string  `json:"sunrise"`
	Sunset        string  `json:"sunset"`
}

// ISORange reports the effective bounds used for filtering.
type ISORange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

const (
	UnitCelsius    = "C"
	UnitFahrenheit = "F"
)

var fahrenheitCountries = map[string]struct{}{
	"US": {}, "BS": {}, "KY": {}, "LR": {}, "PW": {}, "FM": {}, "MH": {},
}

// DefaultUnit picks the temperature unit customary in a country.
func DefaultUnit(countryCode string) string {
	if _, ok := fahrenheitCountries[countryCode]; ok {
		return UnitFahrenheit
	}
	return UnitCelsius
}

func formatClock(ts time.Time, offsetSeconds int) string {
	if ts.IsZero() {
		return ""
	}
	return ts.In(time.FixedZone("", offsetSeconds)).Format(time.RFC3339)
}
