package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "configs/config.yaml"

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Weather WeatherConfig `yaml:"weather"`
	Places  PlacesConfig  `yaml:"places"`
	Search  SearchConfig  `yaml:"search"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Retry          RetryConfig     `yaml:"retry"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries for idempotent requests.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// WeatherConfig points at the OpenWeatherMap API.
type WeatherConfig struct {
	APIKey  string        `yaml:"apiKey"`
	BaseURL string        `yaml:"baseUrl"`
	Timeout time.Duration `yaml:"timeout"`
}

// PlacesConfig holds Google Places settings and store search defaults.
type PlacesConfig struct {
	APIKey      string        `yaml:"apiKey"`
	BaseURLs    []string      `yaml:"baseUrls"`
	Radius      int           `yaml:"radius"`
	MaxResults  int           `yaml:"maxResults"`
	MinRating   float64       `yaml:"minRating"`
	OpenNow     bool          `yaml:"openNow"`
	UseFallback bool          `yaml:"useFallback"`
	Timeout     time.Duration `yaml:"timeout"`
}

// SearchConfig controls city suggestions and trending searches.
type SearchConfig struct {
	CacheTTL        time.Duration `yaml:"cacheTtl"`
	SuggestionLimit int           `yaml:"suggestionLimit"`
	TrendingLimit   int           `yaml:"trendingLimit"`
	Redis           RedisConfig   `yaml:"redis"`
}

// RedisConfig contains connection information for cache storage.
type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// Load reads configuration from .env, a YAML file and environment variables,
// in that order of increasing precedence.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat(defaultConfigPath); err == nil {
		if err := hydrateFromFile(cfg, defaultConfigPath); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	setString(&cfg.HTTP.Address, "HTTP_ADDRESS")
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	setBool(&cfg.HTTP.RateLimit.Enabled, "HTTP_RATE_LIMIT_ENABLED")
	setInt(&cfg.HTTP.RateLimit.RequestsPerMinute, "HTTP_RATE_LIMIT_RPM")
	setInt(&cfg.HTTP.RateLimit.Burst, "HTTP_RATE_LIMIT_BURST")
	setBool(&cfg.HTTP.Retry.Enabled, "HTTP_RETRY_ENABLED")
	setInt(&cfg.HTTP.Retry.MaxAttempts, "HTTP_RETRY_MAX_ATTEMPTS")
	setDuration(&cfg.HTTP.Retry.BaseBackoff, "HTTP_RETRY_BASE_BACKOFF")

	setString(&cfg.Weather.APIKey, "OPENWEATHER_API_KEY")
	setString(&cfg.Weather.BaseURL, "OPENWEATHER_BASE_URL")
	setDuration(&cfg.Weather.Timeout, "OPENWEATHER_TIMEOUT")

	setString(&cfg.Places.APIKey, "GOOGLE_MAPS_API_KEY")
	if v := os.Getenv("GOOGLE_MAPS_BASE_URLS"); v != "" {
		cfg.Places.BaseURLs = splitList(v)
	}
	setInt(&cfg.Places.Radius, "PLACES_RADIUS")
	setInt(&cfg.Places.MaxResults, "PLACES_MAX_RESULTS")
	if v := os.Getenv("PLACES_MIN_RATING"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Places.MinRating = parsed
		}
	}
	setBool(&cfg.Places.OpenNow, "PLACES_OPEN_NOW")
	setBool(&cfg.Places.UseFallback, "PLACES_USE_FALLBACK")
	setDuration(&cfg.Places.Timeout, "PLACES_TIMEOUT")

	setDuration(&cfg.Search.CacheTTL, "SEARCH_CACHE_TTL")
	setInt(&cfg.Search.SuggestionLimit, "SEARCH_SUGGESTION_LIMIT")
	setInt(&cfg.Search.TrendingLimit, "SEARCH_TRENDING_LIMIT")
	setBool(&cfg.Search.Redis.Enabled, "SEARCH_REDIS_ENABLED")
	setString(&cfg.Search.Redis.Addr, "SEARCH_REDIS_ADDR")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v == "1" || strings.EqualFold(v, "true")
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			*dst = parsed
		}
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 15 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 3,
				BaseBackoff: 150 * time.Millisecond,
			},
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		Weather: WeatherConfig{
			BaseURL: "https://api.openweathermap.org",
			Timeout: 10 * time.Second,
		},
		Places: PlacesConfig{
			BaseURLs:    []string{"https://maps.googleapis.com"},
			Radius:      5000,
			MaxResults:  6,
			MinRating:   0,
			OpenNow:     true,
			UseFallback: true,
			Timeout:     10 * time.Second,
		},
		Search: SearchConfig{
			CacheTTL:        time.Hour,
			SuggestionLimit: 5,
			TrendingLimit:   10,
			Redis: RedisConfig{
				Prefix: "filmcast",
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled && c.HTTP.RateLimit.RequestsPerMinute <= 0 {
		return errors.New("http.rateLimit.requestsPerMinute must be positive")
	}
	if c.HTTP.Retry.Enabled && c.HTTP.Retry.MaxAttempts <= 0 {
		return errors.New("http.retry.maxAttempts must be positive")
	}
	if c.Weather.BaseURL == "" {
		return errors.New("weather.baseUrl cannot be empty")
	}
	if c.Places.Radius <= 0 || c.Places.Radius > 50000 {
		return errors.New("places.radius must be between 1 and 50000 metres")
	}
	if c.Places.MaxResults <= 0 {
		return errors.New("places.maxResults must be positive")
	}
	if c.Places.MinRating < 0 || c.Places.MinRating > 5 {
		return errors.New("places.minRating must be between 0 and 5")
	}
	if c.Search.SuggestionLimit <= 0 {
		return errors.New("search.suggestionLimit must be positive")
	}
	if c.Search.TrendingLimit <= 0 {
		return errors.New("search.trendingLimit must be positive")
	}
	if c.Search.CacheTTL < 0 {
		return errors.New("search.cacheTtl cannot be negative")
	}
	if c.Search.Redis.Enabled && c.Search.Redis.Addr == "" {
		return errors.New("search.redis.addr required when redis is enabled")
	}
	return nil
}
