package middleware

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aouiniamine/recipe-recommender-service/internal/config"
	"github.com/aouiniamine/recipe-recommender-service/pkg/response"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// tokenBucketScript refills the bucket for the elapsed whole intervals and
// takes one token if available. Returns {allowed, remaining}.
var tokenBucketScript = redis.NewScript(`
	local key = KEYS[1]
	local now_ms = tonumber(ARGV[1])
	local capacity = tonumber(ARGV[2])
	local interval_ms = tonumber(ARGV[3])
	local ttl_ms = tonumber(ARGV[4])

	local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
	local tokens = tonumber(state[1])
	local last_refill = tonumber(state[2])

	if tokens == nil or last_refill == nil then
		tokens = capacity
		last_refill = now_ms
	end

	if interval_ms > 0 then
		local elapsed = math.max(0, now_ms - last_refill)
		local intervals = math.floor(elapsed / interval_ms)
		if intervals > 0 then
			tokens = math.min(capacity, tokens + intervals)
			last_refill = last_refill + (intervals * interval_ms)
		end
	end

	local allowed = 0
	if tokens > 0 then
		allowed = 1
		tokens = tokens - 1
	end

	redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
	redis.call('PEXPIRE', key, ttl_ms)

	return { allowed, tokens }
`)

// RedisStore is an echo RateLimiterStore backed by a redis token bucket
// shared by all replicas.
type RedisStore struct {
	client  *redis.Client
	cfg     config.RateLimitConfig
	log     *zap.Logger
	timeout time.Duration
	now     func() time.Time
}

func NewRedisStore(client *redis.Client, cfg config.RateLimitConfig, log *zap.Logger) *RedisStore {
	return &RedisStore{
		client:  client,
		cfg:     cfg,
		log:     log,
		timeout: 500 * time.Millisecond,
		now:     time.Now,
	}
}

// Allow fails open: a redis error lets the request through.
func (s *RedisStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	allowed, _, err := s.take(ctx, identifier)
	if err != nil {
		s.log.Warn("rate limiter store unavailable", zap.String("identifier", identifier), zap.Error(err))
		return true, nil
	}
	return allowed, nil
}

func (s *RedisStore) take(ctx context.Context, identifier string) (bool, int64, error) {
	args := []interface{}{
		s.now().UnixMilli(),
		s.cfg.Capacity,
		s.cfg.RefillInterval.Milliseconds(),
		s.cfg.TTL.Milliseconds(),
	}

	res, err := tokenBucketScript.Run(ctx, s.client, []string{s.key(identifier)}, args...).Int64Slice()
	if err != nil {
		return false, 0, fmt.Errorf("failed to run token bucket script: %w", err)
	}
	if len(res) != 2 {
		return false, 0, fmt.Errorf("unexpected token bucket result: %v", res)
	}

	return res[0] == 1, res[1], nil
}

func (s *RedisStore) key(identifier string) string {
	return strings.Join([]string{s.cfg.Prefix, "ip", identifier}, ":")
}

// NewMemoryStore is the single-process fallback used when redis is not
// reachable at startup.
func NewMemoryStore(cfg config.RateLimitConfig) echomw.RateLimiterStore {
	return echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Every(cfg.RefillInterval),
		Burst:     cfg.Capacity,
		ExpiresIn: cfg.TTL,
	})
}

// RateLimit limits requests per client IP. Health probes and API docs are
// never limited.
func RateLimit(store echomw.RateLimiterStore) echo.MiddlewareFunc {
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return strings.HasPrefix(path, "/health/") || strings.HasPrefix(path, "/swagger/")
		},
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return response.InternalError(c, "failed to identify client")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return response.TooManyRequests(c, "rate limit exceeded")
		},
	})
}
