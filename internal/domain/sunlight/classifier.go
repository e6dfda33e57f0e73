package sunlight

import "strings"

var (
	brightKeywords = []string{"clear"}
	mediumKeywords = []string{"cloud", "mist"}
	lowKeywords    = []string{"rain", "snow", "drizzle", "thunderstorm"}
)

// Classify maps an observation to exactly one category. Rules are evaluated in
// order and the first match wins; night always takes precedence over weather.
func Classify(obs Observation) Category {
	if obs.ObservedAt.Before(obs.Sunrise) || obs.ObservedAt.After(obs.Sunset) {
		return Night
	}

	condition := strings.ToLower(obs.ConditionText)
	clouds := obs.CloudCoverage

	switch {
	case containsAny(condition, brightKeywords) && clouds < 30:
		return Bright
	case containsAny(condition, mediumKeywords) || (clouds >= 30 && clouds < 70):
		return Medium
	case containsAny(condition, lowKeywords) || clouds >= 70:
		return Low
	default:
		return Medium
	}
}

// IsDaytime is true for every category except Night.
func IsDaytime(c Category) bool {
	return c != Night
}

// Assess classifies obs and derives the daytime flag from the result.
func Assess(obs Observation) Assessment {
	category := Classify(obs)
	return Assessment{Category: category, IsDaytime: IsDaytime(category)}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
