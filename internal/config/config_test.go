package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"HOST", "PORT", "ENV", "LOG_LEVEL", "SWAGGER_ENABLED",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB",
		"RATE_LIMIT_ENABLED", "RATE_LIMIT_CAPACITY", "RATE_LIMIT_REFILL_INTERVAL",
		"RATE_LIMIT_TTL", "RATE_LIMIT_PREFIX",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.SwaggerEnabled)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, "6379", cfg.Redis.Port)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 60, cfg.RateLimit.Capacity)
	assert.Equal(t, time.Second, cfg.RateLimit.RefillInterval)
	assert.Equal(t, 10*time.Minute, cfg.RateLimit.TTL)
	assert.Equal(t, "rl", cfg.RateLimit.Prefix)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("SWAGGER_ENABLED", "false")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_CAPACITY", "5")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1h")

	cfg := Load()

	assert.Equal(t, "127.0.0.1:9090", cfg.Address())
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.SwaggerEnabled)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 5, cfg.RateLimit.Capacity)
	assert.Equal(t, 2*time.Second, cfg.RateLimit.RefillInterval)
	assert.Equal(t, time.Hour, cfg.RateLimit.TTL)
}

func TestLoadNormalizesRateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "-1s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := Load()

	assert.Equal(t, 1, cfg.RateLimit.Capacity)
	assert.Equal(t, time.Second, cfg.RateLimit.RefillInterval)
	assert.Equal(t, 5*time.Second, cfg.RateLimit.TTL)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("SWAGGER_ENABLED", "maybe")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "soon")

	cfg := Load()

	assert.Equal(t, 0, cfg.Redis.DB)
	assert.True(t, cfg.SwaggerEnabled)
	assert.Equal(t, time.Second, cfg.RateLimit.RefillInterval)
}
