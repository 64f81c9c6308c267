package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"ai-todo-manager/internal/ai"
	"ai-todo-manager/pkg/response"
)

// AIRateLimit caps model-backed requests per user. It runs after Auth,
// so the key is the caller's user ID.
func (m Middleware) AIRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := GetScope(c)
		if !ok {
			response.Unauthorized(c)
			return
		}

		if !m.aiRateLimiter.Allow(sc.UserID) {
			m.l.Warnf(c.Request.Context(), "middleware.AIRateLimit: user %s throttled", sc.UserID)
			response.TooManyRequests(c, ai.MsgQuotaExceeded)
			return
		}

		c.Next()
	}
}

// rateLimiter tracks a token bucket per key with auto-cleanup of idle
// entries.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 10
	}
	burst := requestsPerMin / 2
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,
			nil,
			time.Minute*5,
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
