package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"farmpower-chat/config"
	"farmpower-chat/pkg/response"
)

const defaultMaxClients = 10000

// RateLimit limits requests per client address. It is a no-op when rate limiting is disabled.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		allowed, remaining, retryAfter := m.limiter.allow(c.ClientIP(), time.Now())

		c.Header("X-RateLimit-Limit", strconv.Itoa(m.limiter.burst))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if !allowed {
			seconds := int(math.Ceil(retryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(seconds))
			m.l.Debugf(c.Request.Context(), "middleware.RateLimit: client %s limited, retry in %ds", c.ClientIP(), seconds)
			response.TooManyRequests(c, seconds)
			return
		}

		c.Next()
	}
}

// rateLimiter keeps one token bucket per client, refilling burst tokens per window.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(cfg config.RateLimitConfig) *rateLimiter {
	maxClients := cfg.MaxClients
	if maxClients <= 0 {
		maxClients = defaultMaxClients
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			maxClients,
			nil,
			cfg.Window, // a bucket idle for one window is full again
		),
		rate:  rate.Limit(float64(cfg.MaxRequests) / cfg.Window.Seconds()),
		burst: cfg.MaxRequests,
	}
}

// allow consumes one token for key. When denied it reports how long until a token is available.
func (rl *rateLimiter) allow(key string, now time.Time) (bool, int, time.Duration) {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
	}
	// Re-adding restarts the TTL, so only a bucket idle for a full window is dropped.
	rl.limiters.Add(key, limiter)
	rl.mu.Unlock()

	r := limiter.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, 0, delay
	}

	remaining := int(limiter.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}
	return true, remaining, 0
}
