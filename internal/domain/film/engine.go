package film

import (
	"cmp"
	"slices"

	"github.com/yanqian/filmcast/internal/domain/sunlight"
)

const (
	// DefaultMinISO is the lower bound used when the caller sets none.
	DefaultMinISO = 50
	// DefaultDayMaxISO caps sensitivity in daylight.
	DefaultDayMaxISO = 800
	// DefaultNightMaxISO caps sensitivity after dark.
	DefaultNightMaxISO = 3200
)

// Engine filters and ranks the catalog for a lighting category.
type Engine struct {
	catalog *Catalog
}

// NewEngine wires the engine to a read-only catalog.
func NewEngine(catalog *Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Catalog exposes the catalog the engine ranks.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Bounds resolves the effective inclusive ISO range for the given criteria.
func Bounds(criteria Criteria, isDaytime bool) (minISO, maxISO int) {
	minISO = DefaultMinISO
	maxISO = DefaultNightMaxISO
	if isDaytime {
		maxISO = DefaultDayMaxISO
	}
	if criteria.MinISO != nil {
		minISO = *criteria.MinISO
	}
	if criteria.MaxISO != nil {
		maxISO = *criteria.MaxISO
	}
	return minISO, maxISO
}

// Recommend returns the stocks suited to category that satisfy criteria.
// Daytime results run from slowest to fastest, night results the other way;
// equal speeds keep catalog order. No match yields an empty, non-nil slice.
func (e *Engine) Recommend(category sunlight.Category, criteria Criteria, isDaytime bool) []Stock {
	minISO, maxISO := Bounds(criteria, isDaytime)

	out := make([]Stock, 0)
	for _, s := range e.catalog.stocks {
		if !slices.Contains(s.IdealConditions, category) {
			continue
		}
		if len(criteria.Formats) > 0 && !hasAnyFormat(s.Formats, criteria.Formats) {
			continue
		}
		if len(criteria.Types) > 0 && !slices.Contains(criteria.Types, s.Type) {
			continue
		}
		if s.ISO < minISO || s.ISO > maxISO {
			continue
		}
		out = append(out, cloneStock(s))
	}

	slices.SortStableFunc(out, func(a, b Stock) int {
		if isDaytime {
			return cmp.Compare(a.ISO, b.ISO)
		}
		return cmp.Compare(b.ISO, a.ISO)
	})
	return out
}

func hasAnyFormat(have, want []Format) bool {
	for _, f := range want {
		if slices.Contains(have, f) {
			return true
		}
	}
	return false
}
