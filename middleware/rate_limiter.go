package middleware

import (
	"net/http"
	"sync"
	"time"

	"pioneertravel/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const defaultRequestsPerMinute = 100

// RateLimiterStore holds one token bucket per client IP.
type RateLimiterStore struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
}

// NewRateLimiterStore allows perMinute requests per IP, all of which may
// arrive in a burst.
func NewRateLimiterStore(perMinute int) *RateLimiterStore {
	if perMinute <= 0 {
		perMinute = defaultRequestsPerMinute
	}
	return &RateLimiterStore{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
	}
}

// getLimiter returns the rate limiter for a given IP, creating one if it doesn't exist.
func (s *RateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(s.limit, s.burst)
		s.limiters[ip] = limiter
	}
	return limiter
}

// RateLimitMiddleware limits requests per IP address.
func RateLimitMiddleware(store *RateLimiterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !store.getLimiter(ip).Allow() {
			zap.L().Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.Failure("Rate limit exceeded. Try again later."))
			return
		}
		c.Next()
	}
}
