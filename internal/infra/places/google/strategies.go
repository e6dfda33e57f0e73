package google

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/yanqian/filmcast/internal/domain/stores"
)

type nearbyStrategy struct {
	client *Client
}

func (s *nearbyStrategy) Name() stores.Source { return stores.SourceNearby }

func (s *nearbyStrategy) Search(ctx context.Context, q stores.Query) ([]stores.Place, error) {
	params := url.Values{}
	params.Set("location", location(q))
	params.Set("radius", strconv.Itoa(q.Radius))
	params.Set("keyword", nearbyKeyword)
	params.Set("type", "store")
	if q.OpenNow {
		params.Set("opennow", "true")
	}
	results, err := s.client.search(ctx, nearbyPath, params)
	if err != nil {
		return nil, err
	}
	return convert(results), nil
}

type textStrategy struct {
	client *Client
}

func (s *textStrategy) Name() stores.Source { return stores.SourceText }

func (s *textStrategy) Search(ctx context.Context, q stores.Query) ([]stores.Place, error) {
	params := url.Values{}
	params.Set("query", fmt.Sprintf("film store OR camera store OR photography store near %s", location(q)))
	params.Set("radius", strconv.Itoa(q.Radius))
	if q.OpenNow {
		params.Set("opennow", "true")
	}
	results, err := s.client.search(ctx, textSearchPath, params)
	if err != nil {
		return nil, err
	}
	return convert(results), nil
}

// geocodeStrategy is the last resort: geocoding results carry no ratings or
// opening hours, so those fields stay unset.
type geocodeStrategy struct {
	client *Client
}

func (s *geocodeStrategy) Name() stores.Source { return stores.SourceGeocode }

func (s *geocodeStrategy) Search(ctx context.Context, q stores.Query) ([]stores.Place, error) {
	params := url.Values{}
	params.Set("address", fmt.Sprintf("film store OR camera store OR photography store near %s", location(q)))
	results, err := s.client.search(ctx, geocodePath, params)
	if err != nil {
		return nil, err
	}
	places := make([]stores.Place, 0, len(results))
	for i, r := range results {
		p := toPlace(r)
		if p.PlaceID == "" {
			p.PlaceID = fmt.Sprintf("generated_%d", i)
		}
		if p.Name == "" {
			p.Name = nameFromAddress(r.FormattedAddress)
		}
		if p.BusinessStatus == "" {
			p.BusinessStatus = "OPERATIONAL"
		}
		places = append(places, p)
	}
	return places, nil
}

func convert(results []apiResult) []stores.Place {
	places := make([]stores.Place, 0, len(results))
	for _, r := range results {
		places = append(places, toPlace(r))
	}
	return places
}

// nameFromAddress guesses a display name from the first address component.
func nameFromAddress(address string) string {
	first := strings.TrimSpace(strings.Split(address, ",")[0])
	if strings.Contains(first, " ") {
		return "Film Shop at " + first
	}
	return "Film Store near " + first
}
