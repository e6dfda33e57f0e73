package sunlight

import "time"

// Category buckets ambient light for film-speed selection.
type Category string

const (
	Bright Category = "bright"
	Medium Category = "medium"
	Low    Category = "low"
	Night  Category = "night"
)

// Categories lists every category in brightness order.
var Categories = []Category{Bright, Medium, Low, Night}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case Bright, Medium, Low, Night:
		return true
	default:
		return false
	}
}

// Observation is a single weather reading for a resolved location.
// ObservedAt, Sunrise and Sunset share a time base and are only compared to each other.
type Observation struct {
	TemperatureC     float64
	ConditionText    string
	Description      string
	Icon             string
	CloudCoverage    int
	ObservedAt       time.Time
	Sunrise          time.Time
	Sunset           time.Time
	LocationName     string
	CountryCode      string
	UTCOffsetSeconds int
}

// LocalTime renders the observation instant in the location's own offset.
func (o Observation) LocalTime() time.Time {
	return o.ObservedAt.In(time.FixedZone("", o.UTCOffsetSeconds))
}

// Assessment pairs a category with the derived daytime flag.
type Assessment struct {
	Category  Category `json:"category"`
	IsDaytime bool     `json:"isDaytime"`
}
