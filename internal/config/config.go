package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"bitbucket.org/crgw/hotel-avail/internal/availability"
	"github.com/joho/godotenv"
)

const (
	DefaultPort            = "8080"
	DefaultOpenAPILocation = "./api/openapi.json"
	DefaultRateLimitBurst  = 20
)

type Config struct {
	Port                   string
	LogLevel               string
	Env                    string
	OpenAPILocation        string
	ResponsesCacheRedisURI string
	ResponsesCacheTTL      time.Duration
	Handshake              string
	// RateLimitRPS is per client ip, 0 disables limiting
	RateLimitRPS           float64
	RateLimitBurst         int
}

// Load reads the optional dotenv files and then the environment. Variables
// already set in the environment win over the files.
func Load(files ...string) (*Config, error) {
	// Missing dotenv files are fine, deployments pass the environment directly
	_ = godotenv.Load(files...)

	return FromLookup(os.LookupEnv)
}

// FromLookup builds the configuration from lookup, applying defaults for
// unset or empty variables.
func FromLookup(lookup func(key string) (string, bool)) (*Config, error) {
	get := func(key string, fallback string) string {
		value, ok := lookup(key)
		if !ok || value == "" {
			return fallback
		}
		return value
	}

	cfg := &Config{
		Port:                   get("PORT", DefaultPort),
		LogLevel:               get("LOG_LEVEL", "info"),
		Env:                    get("ENV", ""),
		OpenAPILocation:        get("OPENAPI_LOCATION", DefaultOpenAPILocation),
		ResponsesCacheRedisURI: get("RESPONSES_CACHE_REDIS_URI", ""),
		ResponsesCacheTTL:      availability.DefaultCacheTTL,
		Handshake:              get("AVAIL_HANDSHAKE", availability.DefaultHandshake),
		RateLimitBurst:         DefaultRateLimitBurst,
	}

	if ttl := get("RESPONSES_CACHE_TTL", ""); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid RESPONSES_CACHE_TTL %q: %w", ttl, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("invalid RESPONSES_CACHE_TTL %q: must be positive", ttl)
		}
		cfg.ResponsesCacheTTL = parsed
	}

	if rps := get("RATE_LIMIT_RPS", ""); rps != "" {
		parsed, err := strconv.ParseFloat(rps, 64)
		if err != nil || parsed < 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RPS %q", rps)
		}
		cfg.RateLimitRPS = parsed
	}

	if burst := get("RATE_LIMIT_BURST", ""); burst != "" {
		parsed, err := strconv.Atoi(burst)
		if err != nil || parsed < 1 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_BURST %q", burst)
		}
		cfg.RateLimitBurst = parsed
	}

	return cfg, nil
}

func (c *Config) Production() bool {
	return c.Env == "production"
}

func (c *Config) RateLimitEnabled() bool {
	return c.RateLimitRPS > 0
}

// CacheEnabled reports whether a responses cache redis is configured.
func (c *Config) CacheEnabled() bool {
	return c.ResponsesCacheRedisURI != ""
}
