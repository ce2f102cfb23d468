package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/ucsb-cslas/cslas-api/internal/service"
)

// counterScripter answers the fixed-window script with an in-memory counter.
type counterScripter struct {
	mu     sync.Mutex
	counts map[string]int64
	err    error
}

func newCounterScripter() *counterScripter {
	return &counterScripter{counts: map[string]int64{}}
}

func (s *counterScripter) run(keys []string) *redis.Cmd {
	if s.err != nil {
		return redis.NewCmdResult(nil, s.err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[keys[0]]++
	return redis.NewCmdResult(s.counts[keys[0]], nil)
}

func (s *counterScripter) Eval(_ context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	return s.run(keys)
}

func (s *counterScripter) EvalSha(_ context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	return s.run(keys)
}

func (s *counterScripter) EvalRO(_ context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	return s.run(keys)
}

func (s *counterScripter) EvalShaRO(_ context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	return s.run(keys)
}

func (s *counterScripter) ScriptExists(_ context.Context, hashes ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceResult(make([]bool, len(hashes)), nil)
}

func (s *counterScripter) ScriptLoad(_ context.Context, _ string) *redis.StringCmd {
	return redis.NewStringResult("", nil)
}

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/api/public/officeHours", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRateLimiterRejectsOverLimit(t *testing.T) {
	metrics := service.NewMetricsService()
	rl := NewRateLimiter(newCounterScripter(), RateLimiterConfig{Limit: 2, Window: time.Minute}, metrics, nil)
	router := newLimitedRouter(rl)

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		router.ServeHTTP(last, httptest.NewRequest(http.MethodGet, "/api/public/officeHours", nil))
		codes = append(codes, last.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "0", last.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", last.Header().Get("Retry-After"))
	assert.Contains(t, last.Body.String(), "RATE_LIMITED")

	scrape := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, scrape.Body.String(), "rate_limit_rejected_total 1")
}

func TestRateLimiterFailOpen(t *testing.T) {
	scripter := newCounterScripter()
	scripter.err = redis.ErrClosed
	router := newLimitedRouter(NewRateLimiter(scripter, RateLimiterConfig{Limit: 1, FailOpen: true}, nil, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/public/officeHours", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiterFailClosed(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	defer client.Close()
	router := newLimitedRouter(NewRateLimiter(client, RateLimiterConfig{Limit: 1}, nil, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/public/officeHours", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
