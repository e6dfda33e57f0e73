package searchstore

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/yanqian/filmcast/internal/domain/locations"
)

type cachedSuggestions struct {
	cities    []locations.City
	expiresAt time.Time
}

// MemoryStore keeps suggestion lists and search counts in process memory.
type MemoryStore struct {
	mu          sync.RWMutex
	suggestions map[string]cachedSuggestions
	counts      map[string]int64
	displays    map[string]string
	now         func() time.Time
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		suggestions: make(map[string]cachedSuggestions),
		counts:      make(map[string]int64),
		displays:    make(map[string]string),
		now:         time.Now,
	}
}

// GetSuggestions implements locations.Store. Expired entries are evicted on read.
func (s *MemoryStore) GetSuggestions(_ context.Context, key string) ([]locations.City, bool, error) {
	if key == "" {
		return nil, false, nil
	}
	s.mu.RLock()
	entry, ok := s.suggestions[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && !entry.expiresAt.After(s.now()) {
		s.mu.Lock()
		delete(s.suggestions, key)
		s.mu.Unlock()
		return nil, false, nil
	}
	return slices.Clone(entry.cities), true, nil
}

// SaveSuggestions implements locations.Store. A non-positive ttl never expires.
func (s *MemoryStore) SaveSuggestions(_ context.Context, key string, cities []locations.City, ttl time.Duration) error {
	if key == "" {
		return nil
	}
	var exp time.Time
	if ttl > 0 {
		exp = s.now().Add(ttl)
	}
	s.mu.Lock()
	s.suggestions[key] = cachedSuggestions{cities: slices.Clone(cities), expiresAt: exp}
	s.mu.Unlock()
	return nil
}

// IncrementSearch implements locations.Store. The first display label wins.
func (s *MemoryStore) IncrementSearch(_ context.Context, canonical, display string) error {
	if canonical == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[canonical]++
	if _, exists := s.displays[canonical]; !exists && display != "" {
		s.displays[canonical] = display
	}
	return nil
}

// TopSearches implements locations.Store, highest count first with ties by label.
func (s *MemoryStore) TopSearches(_ context.Context, limit int) ([]locations.TrendingSearch, error) {
	s.mu.RLock()
	items := make([]locations.TrendingSearch, 0, len(s.counts))
	for canonical, count := range s.counts {
		label := s.displays[canonical]
		if label == "" {
			label = canonical
		}
		items = append(items, locations.TrendingSearch{Location: label, Count: count})
	}
	s.mu.RUnlock()

	slices.SortFunc(items, func(a, b locations.TrendingSearch) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Location, b.Location)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

var _ locations.Store = (*MemoryStore)(nil)
