package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yanqian/filmcast/internal/domain/locations"
	"github.com/yanqian/filmcast/internal/domain/sunlight"
	"github.com/yanqian/filmcast/pkg/util"
)

const (
	defaultBaseURL = "https://api.openweathermap.org"
	geocodingPath  = "/geo/1.0/direct"
	currentPath    = "/data/2.5/weather"
	defaultTimeout = 10 * time.Second
	errorBodyLimit = 4 << 10
)

// Client talks to the OpenWeatherMap geocoding and current weather APIs.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds an API client. A zero timeout uses the package default.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	u := strings.TrimSpace(baseURL)
	if u == "" {
		u = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(u, "/"),
		apiKey:  strings.TrimSpace(apiKey),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Geocode resolves a free text query into at most limit cities.
func (c *Client) Geocode(ctx context.Context, query string, limit int) ([]locations.City, error) {
	if limit <= 0 {
		limit = 5
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("appid", c.apiKey)

	body, err := c.get(ctx, geocodingPath, params)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", query, err)
	}

	var raw []geoResult
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode geocoding response: %w", err)
	}

	cities := make([]locations.City, 0, len(raw))
	for _, r := range raw {
		cities = append(cities, locations.City{
			Name:    r.Name,
			State:   r.State,
			Country: r.Country,
			Lat:     r.Lat,
			Lon:     r.Lon,
		})
	}
	return cities, nil
}

// Current fetches the present conditions at a coordinate in metric units.
func (c *Client) Current(ctx context.Context, lat, lon float64) (sunlight.Observation, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("units", "metric")
	params.Set("appid", c.apiKey)

	body, err := c.get(ctx, currentPath, params)
	if err != nil {
		return sunlight.Observation{}, fmt.Errorf("current weather: %w", err)
	}

	var raw currentResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return sunlight.Observation{}, fmt.Errorf("decode weather response: %w", err)
	}
	return normalizeCurrent(raw)
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	endpoint := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, fmt.Errorf("request error: status=%d body=%s", resp.StatusCode, upstreamMessage(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

type geoResult struct {
	Name    string  `json:"name"`
	State   string  `json:"state"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type currentResponse struct {
	Name     string `json:"name"`
	Dt       int64  `json:"dt"`
	Timezone int    `json:"timezone"`
	Weather  []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main *struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Sys struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
}

// normalizeCurrent rejects payloads missing the fields classification depends on.
func normalizeCurrent(raw currentResponse) (sunlight.Observation, error) {
	if len(raw.Weather) == 0 {
		return sunlight.Observation{}, fmt.Errorf("weather response missing conditions")
	}
	if raw.Main == nil {
		return sunlight.Observation{}, fmt.Errorf("weather response missing temperature")
	}
	if raw.Dt == 0 || raw.Sys.Sunrise == 0 || raw.Sys.Sunset == 0 {
		return sunlight.Observation{}, fmt.Errorf("weather response missing timestamps")
	}
	cond := raw.Weather[0]
	return sunlight.Observation{
		TemperatureC:     raw.Main.Temp,
		ConditionText:    cond.Main,
		Description:      cond.Description,
		Icon:             cond.Icon,
		CloudCoverage:    clampPercent(raw.Clouds.All),
		ObservedAt:       util.FromUnix(raw.Dt),
		Sunrise:          util.FromUnix(raw.Sys.Sunrise),
		Sunset:           util.FromUnix(raw.Sys.Sunset),
		LocationName:     raw.Name,
		CountryCode:      raw.Sys.Country,
		UTCOffsetSeconds: raw.Timezone,
	}, nil
}

func clampPercent(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

// upstreamMessage prefers the "message" field of an error payload over the raw body.
func upstreamMessage(payload []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return string(payload)
}
