package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter hands out one token bucket per user. Buckets live for the
// process lifetime; the map is tiny compared to the connection state the
// users already cost us.
type RateLimiter struct {
	limit    rate.Limit
	burst    int
	limiters map[int64]*rate.Limiter
	mu       sync.Mutex
}

// NewRateLimiter allows perMinute requests per user with the given burst.
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	return &RateLimiter{
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
		limiters: make(map[int64]*rate.Limiter),
	}
}

func (rl *RateLimiter) limiterFor(userID int64) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters[userID]
	if !ok {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[userID] = limiter
	}
	return limiter
}

// PerUser must run after Auth.
func (rl *RateLimiter) PerUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		if !rl.limiterFor(user.ID).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}
