package film

import (
	"errors"
	"fmt"
	"slices"
)

// Catalog is an immutable, ordered set of film stocks.
type Catalog struct {
	stocks []Stock
}

// NewCatalog validates the entries and keeps a private copy in insertion order.
func NewCatalog(stocks []Stock) (*Catalog, error) {
	seen := make(map[string]struct{}, len(stocks))
	copied := make([]Stock, 0, len(stocks))
	for i, s := range stocks {
		if err := validateStock(s); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		if _, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate id %q", i, s.ID)
		}
		seen[s.ID] = struct{}{}
		copied = append(copied, cloneStock(s))
	}
	return &Catalog{stocks: copied}, nil
}

// MustCatalog panics when stocks violate catalog invariants.
func MustCatalog(stocks []Stock) *Catalog {
	c, err := NewCatalog(stocks)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of stocks.
func (c *Catalog) Len() int {
	return len(c.stocks)
}

// All returns a copy of every stock in insertion order.
func (c *Catalog) All() []Stock {
	out := make([]Stock, 0, len(c.stocks))
	for _, s := range c.stocks {
		out = append(out, cloneStock(s))
	}
	return out
}

// Get looks up a stock by id.
func (c *Catalog) Get(id string) (Stock, bool) {
	for _, s := range c.stocks {
		if s.ID == id {
			return cloneStock(s), true
		}
	}
	return Stock{}, false
}

func validateStock(s Stock) error {
	if s.ID == "" {
		return errors.New("id cannot be empty")
	}
	if s.ISO <= 0 {
		return fmt.Errorf("%s: iso must be positive", s.ID)
	}
	if len(s.Formats) == 0 {
		return fmt.Errorf("%s: at least one format required", s.ID)
	}
	for _, f := range s.Formats {
		if f != Format35mm && f != Format120 && f != FormatSheet {
			return fmt.Errorf("%s: unknown format %q", s.ID, f)
		}
	}
	if len(s.IdealConditions) == 0 {
		return fmt.Errorf("%s: at least one ideal condition required", s.ID)
	}
	for _, cond := range s.IdealConditions {
		if !cond.Valid() {
			return fmt.Errorf("%s: unknown condition %q", s.ID, cond)
		}
	}
	if s.Type != TypeColor && s.Type != TypeBlackAndWhite {
		return fmt.Errorf("%s: unknown type %q", s.ID, s.Type)
	}
	return nil
}

func cloneStock(s Stock) Stock {
	s.Formats = slices.Clone(s.Formats)
	s.IdealConditions = slices.Clone(s.IdealConditions)
	return s
}
