// Package ui renders domain results for the terminal.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/yanqian/filmcast/internal/domain/film"
	"github.com/yanqian/filmcast/internal/domain/forecast"
	"github.com/yanqian/filmcast/internal/domain/locations"
	"github.com/yanqian/filmcast/internal/domain/stores"
	"github.com/yanqian/filmcast/internal/domain/sunlight"
)

var faint = color.New(color.Faint)

// CategoryLabel colours a light category the way the web UI badges it.
func CategoryLabel(c sunlight.Category) string {
	label := strings.ToUpper(string(c))
	switch c {
	case sunlight.Bright:
		return color.YellowString(label)
	case sunlight.Medium:
		return color.CyanString(label)
	case sunlight.Low:
		return color.BlueString(label)
	case sunlight.Night:
		return color.MagentaString(label)
	default:
		return label
	}
}

// FormatWeather renders the conditions header of a recommendation.
func FormatWeather(resp forecast.Response) string {
	w := resp.Weather
	place := resp.Location.Name
	if resp.Location.Country != "" {
		place += ", " + resp.Location.Country
	}
	lines := []string{
		fmt.Sprintf("%s  %s", color.GreenString(place), faint.Sprint(w.LocalTime)),
		fmt.Sprintf("%s°%s  %s (%s)  clouds %d%%", strconv.FormatFloat(w.Temperature, 'f', -1, 64), w.Unit, w.Condition, w.Description, w.CloudCoverage),
		fmt.Sprintf("Light: %s  ISO %d-%d", CategoryLabel(resp.Category), resp.ISORange.Min, resp.ISORange.Max),
	}
	return strings.Join(lines, "\n")
}

// FormatStock renders one film stock on a single line.
func FormatStock(s film.Stock) string {
	formats := make([]string, 0, len(s.Formats))
	for _, f := range s.Formats {
		formats = append(formats, string(f))
	}
	kind := "color"
	if s.Type == film.TypeBlackAndWhite {
		kind = "b&w"
	}
	return fmt.Sprintf("%s %s  %s  %s",
		color.New(color.Bold).Sprintf("ISO %-4d", s.ISO),
		color.GreenString(s.Name),
		faint.Sprint(kind),
		faint.Sprint(strings.Join(formats, "/")))
}

// FormatRecommendation renders a full recommendation with its films.
func FormatRecommendation(resp forecast.Response) string {
	var b strings.Builder
	b.WriteString(FormatWeather(resp))
	b.WriteString("\n\n")
	if len(resp.Films) == 0 {
		msg := "No film stocks suit these conditions."
		if resp.Filtered {
			msg = "No film stocks match your filters. Try widening them."
		}
		b.WriteString(color.YellowString(msg))
		return b.String()
	}
	for i, s := range resp.Films {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatStock(s))
	}
	return b.String()
}

// FormatPlace renders a retailer with rating and open state.
func FormatPlace(p stores.Place) string {
	rating := faint.Sprint("unrated")
	if p.Rating != nil {
		rating = color.YellowString("★ %.1f", *p.Rating)
		if p.UserRatingsTotal > 0 {
			rating += faint.Sprintf(" (%d)", p.UserRatingsTotal)
		}
	}
	open := ""
	if p.OpenNow != nil {
		if *p.OpenNow {
			open = color.GreenString(" open")
		} else {
			open = color.RedString(" closed")
		}
	}
	return fmt.Sprintf("%s  %s%s\n  %s\n  %s", color.CyanString(p.Name), rating, open, p.Vicinity, faint.Sprint(p.MapsURL))
}

// FormatCity renders a suggestion label with coordinates.
func FormatCity(c locations.City) string {
	return fmt.Sprintf("%s %s", color.GreenString(c.Label()), faint.Sprintf("(%.4f, %.4f)", c.Lat, c.Lon))
}
