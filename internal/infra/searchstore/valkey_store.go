package searchstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/filmcast/internal/domain/locations"
)

const defaultPrefix = "filmcast"

// ValkeyStore persists suggestion lists and search counts in Valkey or Redis.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore wraps an existing client. Keys are namespaced by prefix.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) GetSuggestions(ctx context.Context, key string) ([]locations.City, bool, error) {
	if key == "" {
		return nil, false, nil
	}
	payload, err := s.client.Do(ctx, s.client.B().Get().Key(s.suggestKey(key)).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get suggestions: %w", err)
	}
	var cities []locations.City
	if err := json.Unmarshal([]byte(payload), &cities); err != nil {
		return nil, false, fmt.Errorf("decode suggestions: %w", err)
	}
	return cities, true, nil
}

func (s *ValkeyStore) SaveSuggestions(ctx context.Context, key string, cities []locations.City, ttl time.Duration) error {
	if key == "" {
		return nil
	}
	payload, err := json.Marshal(cities)
	if err != nil {
		return fmt.Errorf("encode suggestions: %w", err)
	}
	builder := s.client.B().Set().Key(s.suggestKey(key)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		// EX has second granularity.
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) IncrementSearch(ctx context.Context, canonical, display string) error {
	if canonical == "" {
		return nil
	}
	cmds := []valkey.Completed{
		s.client.B().Zincrby().Key(s.trendingKey()).Increment(1).Member(canonical).Build(),
	}
	if display != "" {
		cmds = append(cmds, s.client.B().Set().Key(s.displayKey(canonical)).Value(display).Nx().Build())
	}
	resps := s.client.DoMulti(ctx, cmds...)
	if err := resps[0].Error(); err != nil {
		return fmt.Errorf("increment search: %w", err)
	}
	return nil
}

func (s *ValkeyStore) TopSearches(ctx context.Context, limit int) ([]locations.TrendingSearch, error) {
	if limit <= 0 {
		limit = 10
	}
	cmd := s.client.B().Zrevrange().Key(s.trendingKey()).Start(0).Stop(int64(limit - 1)).Withscores().Build()
	scores, err := s.client.Do(ctx, cmd).AsZScores()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("top searches: %w", err)
	}
	out := make([]locations.TrendingSearch, 0, len(scores))
	for _, z := range scores {
		out = append(out, locations.TrendingSearch{
			Location: s.display(ctx, z.Member),
			Count:    int64(z.Score),
		})
	}
	return out, nil
}

// display falls back to the canonical key when no label was stored.
func (s *ValkeyStore) display(ctx context.Context, canonical string) string {
	label, err := s.client.Do(ctx, s.client.B().Get().Key(s.displayKey(canonical)).Build()).ToString()
	if err != nil || label == "" {
		return canonical
	}
	return label
}

func (s *ValkeyStore) suggestKey(key string) string {
	return fmt.Sprintf("%s:suggest:%s", s.prefix, key)
}

func (s *ValkeyStore) trendingKey() string {
	return fmt.Sprintf("%s:trending", s.prefix)
}

func (s *ValkeyStore) displayKey(canonical string) string {
	return fmt.Sprintf("%s:display:%s", s.prefix, canonical)
}

var _ locations.Store = (*ValkeyStore)(nil)
