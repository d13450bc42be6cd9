package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/config"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps a token bucket per client IP
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	rate     rate.Limit
	burst    int
	logger   logger.Logger
}

// NewRateLimiter creates a rate limiter. A zero rate disables limiting.
func NewRateLimiter(settings config.RateLimitSettings, logger logger.Logger) *RateLimiter {
	burst := settings.Burst
	if burst == 0 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*clientLimiter),
		rate:     rate.Limit(settings.RequestsPerSecond),
		burst:    burst,
		logger:   logger,
	}
}

// Handler rejects requests over the limit with 429
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.rate <= 0 {
			c.Next()
			return
		}

		key := c.ClientIP()
		if !rl.allow(key) {
			rl.logger.Warn("Rate limit exceeded for ", key, " on ", c.Request.Method, " ", c.Request.URL.Path)
			c.Header("Retry-After", "1")
			abortWithMessage(c, http.StatusTooManyRequests, "too many requests")
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, ok := rl.limiters[key]
	if !ok {
		entry = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter.Allow()
}

// Cleanup forgets clients idle for longer than maxIdle
func (rl *RateLimiter) Cleanup(maxIdle time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	for key, entry := range rl.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(rl.limiters, key)
		}
	}
}

// StartCleanup runs Cleanup every interval until done is closed
func (rl *RateLimiter) StartCleanup(interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.Cleanup(interval)
			case <-done:
				return
			}
		}
	}()
}
