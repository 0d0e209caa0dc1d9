package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"fractional-quest-backend/internal/delivery/http/response"
	"fractional-quest-backend/internal/domain"
	"fractional-quest-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
}

// rateLimitEntry tracks the request count of one key inside the current window
type rateLimitEntry struct {
	count   int
	resetAt time.Time
}

type rateLimiter struct {
	cfg     RateLimitConfig
	now     func() time.Time
	mu      sync.Mutex
	entries map[string]*rateLimitEntry
}

// DefaultRateLimitConfig limits tool calls per client IP
func DefaultRateLimitConfig(perMinute int) RateLimitConfig {
	return RateLimitConfig{
		Limit:  perMinute,
		Window: time.Minute,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// RateLimitMiddleware rejects requests over cfg.Limit per cfg.Window with 429.
// A non-positive limit disables the check. Counters live in process memory.
func RateLimitMiddleware(cfg RateLimitConfig) gin.HandlerFunc {
	return newRateLimiter(cfg, time.Now).handle
}

func newRateLimiter(cfg RateLimitConfig, now func() time.Time) *rateLimiter {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	return &rateLimiter{cfg: cfg, now: now, entries: make(map[string]*rateLimitEntry)}
}

func (l *rateLimiter) handle(c *gin.Context) {
	if l.cfg.Limit <= 0 {
		c.Next()
		return
	}

	count, resetAt := l.hit(l.cfg.KeyFunc(c))

	c.Header("X-RateLimit-Limit", strconv.Itoa(l.cfg.Limit))
	c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

	if count > l.cfg.Limit {
		retryAfter := int(resetAt.Sub(l.now()).Seconds())
		if retryAfter < 1 {
			retryAfter = 1
		}
		c.Header("X-RateLimit-Remaining", "0")
		c.Header("Retry-After", strconv.Itoa(retryAfter))

		logger.Log.Warn("rate limit exceeded", "ip", c.ClientIP(), "path", c.FullPath(), "request_id", c.GetString(string(domain.KeyRequestID)))

		response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
		c.Abort()
		return
	}

	c.Header("X-RateLimit-Remaining", strconv.Itoa(l.cfg.Limit-count))
	c.Next()
}

// hit counts one request for key and drops expired windows
func (l *rateLimiter) hit(key string) (int, time.Time) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for k, e := range l.entries {
		if now.After(e.resetAt) {
			delete(l.entries, k)
		}
	}

	entry, ok := l.entries[key]
	if !ok {
		entry = &rateLimitEntry{resetAt: now.Add(l.cfg.Window)}
		l.entries[key] = entry
	}
	entry.count++

	return entry.count, entry.resetAt
}
