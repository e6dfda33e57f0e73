package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yanqian/filmcast/internal/domain/stores"
)

const (
	defaultBaseURL = "https://maps.googleapis.com"
	defaultTimeout = 10 * time.Second
	nearbyPath     = "/maps/api/place/nearbysearch/json"
	textSearchPath = "/maps/api/place/textsearch/json"
	geocodePath    = "/maps/api/geocode/json"
	nearbyKeyword  = "film camera store photography development"
)

var errMissingAPIKey = errors.New("google maps api key not configured")

// Client queries Google Places through one or more base URLs, tried in order.
type Client struct {
	baseURLs   []string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a places client. An empty baseURLs uses the public endpoint.
func NewClient(baseURLs []string, apiKey string, timeout time.Duration) *Client {
	bases := make([]string, 0, len(baseURLs))
	for _, b := range baseURLs {
		if trimmed := strings.TrimRight(strings.TrimSpace(b), "/"); trimmed != "" {
			bases = append(bases, trimmed)
		}
	}
	if len(bases) == 0 {
		bases = []string{defaultBaseURL}
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURLs:   bases,
		apiKey:     strings.TrimSpace(apiKey),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Strategies returns nearby, text and geocode search in that order.
func (c *Client) Strategies() []stores.Strategy {
	return []stores.Strategy{
		&nearbyStrategy{client: c},
		&textStrategy{client: c},
		&geocodeStrategy{client: c},
	}
}

type apiResponse struct {
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message"`
	Results      []apiResult `json:"results"`
}

type apiResult struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	Vicinity         string   `json:"vicinity"`
	FormattedAddress string   `json:"formatted_address"`
	Rating           *float64 `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	BusinessStatus   string   `json:"business_status"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	OpeningHours *struct {
		OpenNow bool `json:"open_now"`
	} `json:"opening_hours"`
}

// search calls path on every base URL until one answers OK or ZERO_RESULTS.
func (c *Client) search(ctx context.Context, path string, params url.Values) ([]apiResult, error) {
	if c.apiKey == "" {
		return nil, errMissingAPIKey
	}
	params.Set("key", c.apiKey)

	var errs []error
	for _, base := range c.baseURLs {
		resp, err := c.fetch(ctx, base+path+"?"+params.Encode())
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", base, err))
			if ctx.Err() != nil {
				break
			}
			continue
		}
		switch resp.Status {
		case "OK":
			return resp.Results, nil
		case "ZERO_RESULTS":
			return nil, nil
		default:
			msg := stores.StatusMessage(resp.Status)
			if resp.ErrorMessage != "" {
				msg += " " + resp.ErrorMessage
			}
			errs = append(errs, fmt.Errorf("%s: %s", base, msg))
		}
	}
	return nil, fmt.Errorf("all places endpoints failed: %w", errors.Join(errs...))
}

func (c *Client) fetch(ctx context.Context, endpoint string) (apiResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return apiResponse{}, fmt.Errorf("build places request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apiResponse{}, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return apiResponse{}, fmt.Errorf("places request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var out apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return apiResponse{}, fmt.Errorf("decode places response: %w", err)
	}
	return out, nil
}

func toPlace(r apiResult) stores.Place {
	p := stores.Place{
		PlaceID:          r.PlaceID,
		Name:             r.Name,
		Vicinity:         r.Vicinity,
		Rating:           r.Rating,
		UserRatingsTotal: r.UserRatingsTotal,
		Lat:              r.Geometry.Location.Lat,
		Lng:              r.Geometry.Location.Lng,
		BusinessStatus:   r.BusinessStatus,
	}
	if p.Vicinity == "" {
		p.Vicinity = r.FormattedAddress
	}
	if r.OpeningHours != nil {
		open := r.OpeningHours.OpenNow
		p.OpenNow = &open
	}
	return p
}

func location(q stores.Query) string {
	return strconv.FormatFloat(q.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(q.Lng, 'f', -1, 64)
}
