package locations

import (
	"strings"
	"unicode"
)

// MinQueryLength is the shortest query that reaches the geocoder.
const MinQueryLength = 3

// NormalizeQuery lower-cases q, turns punctuation into spaces and collapses runs of whitespace.
func NormalizeQuery(q string) string {
	lowered := strings.ToLower(strings.TrimSpace(q))
	var builder strings.Builder
	builder.Grow(len(lowered))
	lastSpace := true
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			builder.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.Join(strings.Fields(builder.String()), " ")
}
