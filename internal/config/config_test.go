package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"bitbucket.org/crgw/hotel-avail/internal/availability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

func TestFromLookup(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		cfg, err := FromLookup(lookupFrom(map[string]string{}))
		require.NoError(t, err)

		assert.Equal(t, &Config{
			Port:              "8080",
			LogLevel:          "info",
			OpenAPILocation:   "./api/openapi.json",
			ResponsesCacheTTL: time.Minute,
			Handshake:         "my_secret_handshake",
			RateLimitBurst:    20,
		}, cfg)
		assert.False(t, cfg.RateLimitEnabled())
		assert.Equal(t, availability.DefaultHandshake, cfg.Handshake)
		assert.Equal(t, availability.DefaultCacheTTL, cfg.ResponsesCacheTTL)
		assert.False(t, cfg.Production())
		assert.False(t, cfg.CacheEnabled())
	})

	t.Run("should read every variable", func(t *testing.T) {
		cfg, err := FromLookup(lookupFrom(map[string]string{
			"PORT":                      "9090",
			"LOG_LEVEL":                 "debug",
			"ENV":                       "production",
			"OPENAPI_LOCATION":          "/srv/openapi.json",
			"RESPONSES_CACHE_REDIS_URI": "redis://localhost:6379/1",
			"RESPONSES_CACHE_TTL":       "30s",
			"AVAIL_HANDSHAKE":           "other",
			"RATE_LIMIT_RPS":            "2.5",
			"RATE_LIMIT_BURST":          "5",
		}))
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.True(t, cfg.Production())
		assert.Equal(t, "/srv/openapi.json", cfg.OpenAPILocation)
		assert.True(t, cfg.CacheEnabled())
		assert.Equal(t, 30*time.Second, cfg.ResponsesCacheTTL)
		assert.Equal(t, "other", cfg.Handshake)
		assert.True(t, cfg.RateLimitEnabled())
		assert.Equal(t, 2.5, cfg.RateLimitRPS)
		assert.Equal(t, 5, cfg.RateLimitBurst)
	})

	t.Run("should treat empty values as unset", func(t *testing.T) {
		cfg, err := FromLookup(lookupFrom(map[string]string{
			"PORT":            "",
			"AVAIL_HANDSHAKE": "",
		}))
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "my_secret_handshake", cfg.Handshake)
	})

	t.Run("should reject a broken ttl", func(t *testing.T) {
		for _, ttl := range []string{"soon", "-1s", "0s"} {
			cfg, err := FromLookup(lookupFrom(map[string]string{"RESPONSES_CACHE_TTL": ttl}))
			assert.Nil(t, cfg)
			assert.ErrorContains(t, err, "RESPONSES_CACHE_TTL")
		}
	})
}

func TestFromLookupRateLimit(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"rps not a number", "RATE_LIMIT_RPS", "fast"},
		{"negative rps", "RATE_LIMIT_RPS", "-1"},
		{"burst not a number", "RATE_LIMIT_BURST", "many"},
		{"zero burst", "RATE_LIMIT_BURST", "0"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg, err := FromLookup(lookupFrom(map[string]string{test.key: test.value}))

			assert.Nil(t, cfg)
			assert.ErrorContains(t, err, test.key)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("should read a dotenv file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(file, []byte("PORT=7070\n"), 0o600))

		t.Setenv("PORT", "")
		require.NoError(t, os.Unsetenv("PORT"))

		cfg, err := Load(file)
		require.NoError(t, err)

		assert.Equal(t, "7070", cfg.Port)
	})

	t.Run("should prefer the environment over the file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(file, []byte("LOG_LEVEL=debug\n"), 0o600))

		t.Setenv("LOG_LEVEL", "warn")

		cfg, err := Load(file)
		require.NoError(t, err)

		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("should ignore a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		assert.NoError(t, err)
	})
}
