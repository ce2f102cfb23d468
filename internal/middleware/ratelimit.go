package middleware

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ucsb-cslas/cslas-api/internal/service"
	appErrors "github.com/ucsb-cslas/cslas-api/pkg/errors"
	"github.com/ucsb-cslas/cslas-api/pkg/response"
)

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RateLimiter is a fixed-window limiter shared across instances through Redis.
type RateLimiter struct {
	client   redis.Scripter
	limit    int
	window   time.Duration
	prefix   string
	failOpen bool
	metrics  *service.MetricsService
	logger   *zap.Logger
}

// RateLimiterConfig tunes a RateLimiter.
type RateLimiterConfig struct {
	Limit    int
	Window   time.Duration
	Prefix   string
	FailOpen bool
}

// NewRateLimiter builds a limiter. Non-positive limits default to 60 per minute.
func NewRateLimiter(client redis.Scripter, cfg RateLimiterConfig, metrics *service.MetricsService, logger *zap.Logger) *RateLimiter {
	if cfg.Limit <= 0 {
		cfg.Limit = 60
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if strings.TrimSpace(cfg.Prefix) == "" {
		cfg.Prefix = "rl"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RateLimiter{
		client:   client,
		limit:    cfg.Limit,
		window:   cfg.Window,
		prefix:   strings.TrimSpace(cfg.Prefix),
		failOpen: cfg.FailOpen,
		metrics:  metrics,
		logger:   logger,
	}
}

// Middleware counts requests per client IP within the current window.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := rl.incr(c.Request.Context(), rl.prefix+":"+c.ClientIP())
		if err != nil {
			rl.logger.Warn("redis rate limiter error", zap.Error(err))
			if rl.failOpen {
				c.Next()
				return
			}
			response.Error(c, appErrors.Clone(appErrors.ErrUnavailable, "rate limiter unavailable"))
			c.Abort()
			return
		}

		remaining := int64(rl.limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(rl.limit) {
			rl.metrics.ObserveRateLimitRejection()
			c.Header("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			response.Error(c, appErrors.ErrTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) incr(ctx context.Context, key string) (int64, error) {
	res, err := fixedWindowScript.Run(ctx, rl.client, []string{key}, rl.window.Milliseconds()).Result()
	if err != nil {
		return 0, err
	}
	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected redis script result type %T", res)
	}
}
