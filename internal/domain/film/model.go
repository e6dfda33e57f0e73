package film

import (
	"fmt"
	"strings"

	"github.com/yanqian/filmcast/internal/domain/sunlight"
)

// Format is a physical film format.
type Format string

const (
	Format35mm  Format = "35mm"
	Format120   Format = "120"
	FormatSheet Format = "sheet"
)

// Type separates colour from monochrome stock.
type Type string

const (
	TypeColor         Type = "color"
	TypeBlackAndWhite Type = "blackAndWhite"
)

// Stock describes one film stock in the catalog.
type Stock struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Brand           string              `json:"brand"`
	ISO             int                 `json:"iso"`
	Formats         []Format            `json:"format"`
	Type            Type                `json:"type"`
	IdealConditions []sunlight.Category `json:"idealConditions"`
	Description     string              `json:"description"`
	ImageURL        string              `json:"imageUrl"`
	PurchaseURL     string              `json:"purchaseUrl"`
}

// Criteria narrows a recommendation. Empty slices mean no constraint and a nil
// bound falls back to the default ISO policy for that side.
type Criteria struct {
	Formats []Format
	Types   []Type
	MinISO  *int
	MaxISO  *int
}

// IsFiltered reports whether any format or type facet is set.
func (c Criteria) IsFiltered() bool {
	return len(c.Formats) > 0 || len(c.Types) > 0
}

// ParseFormat accepts the canonical values plus the "120mm" label used by older clients.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "35mm", "35":
		return Format35mm, nil
	case "120", "120mm":
		return Format120, nil
	case "sheet":
		return FormatSheet, nil
	default:
		return "", fmt.Errorf("unknown film format %q", raw)
	}
}

// ParseType maps UI labels such as "bw" onto the canonical type values.
func ParseType(raw string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "color", "colour":
		return TypeColor, nil
	case "blackandwhite", "bw", "b&w", "black-and-white":
		return TypeBlackAndWhite, nil
	default:
		return "", fmt.Errorf("unknown film type %q", raw)
	}
}

// ParseFormats parses every value, failing on the first unknown one.
func ParseFormats(values []string) ([]Format, error) {
	out := make([]Format, 0, len(values))
	for _, v := range values {
		f, err := ParseFormat(v)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// ParseTypes parses every value, failing on the first unknown one.
func ParseTypes(values []string) ([]Type, error) {
	out := make([]Type, 0, len(values))
	for _, v := range values {
		typ, err := ParseType(v)
		if err != nil {
			return nil, err
		}
		out = append(out, typ)
	}
	return out, nil
}
