package util

import (
	"math"
	"time"
)

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FromUnix converts upstream epoch seconds into a UTC instant.
func FromUnix(seconds int64) time.Time {
	return time.Unix(seconds, 0).UTC()
}

// CelsiusToFahrenheit converts and rounds to the nearest whole degree.
func CelsiusToFahrenheit(celsius float64) float64 {
	return math.Round(celsius*9/5 + 32)
}
