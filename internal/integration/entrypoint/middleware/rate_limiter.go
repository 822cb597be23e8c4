// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/homeledger/backend/internal/domain/error"
	"github.com/homeledger/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed requests per window.
	defaultMaxAttempts = 5
	// defaultWindow is the default fixed rate-limit window.
	defaultWindow = 1 * time.Minute
)

// RateLimiter provides IP-based fixed-window rate limiting backed by
// Redis, so the limit holds across replicas. A Redis outage fails open:
// losing the limiter must not take the API down with it.
type RateLimiter struct {
	client      *redis.Client
	prefix      string
	maxAttempts int
	window      time.Duration
}

// NewRateLimiter creates a rate limiter with default settings.
func NewRateLimiter(client *redis.Client, prefix string) *RateLimiter {
	return NewRateLimiterWithConfig(client, prefix, defaultMaxAttempts, defaultWindow)
}

// NewRateLimiterWithConfig creates a rate limiter with custom settings.
func NewRateLimiterWithConfig(client *redis.Client, prefix string, maxAttempts int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		client:      client,
		prefix:      prefix,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// Middleware returns a Gin middleware handler that enforces the limit.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.client == nil {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		allowed, err := rl.allow(c, clientIP)
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}
		if !allowed {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow increments the caller's counter for the current window and checks
// it against the limit. The key expires with the window.
func (rl *RateLimiter) allow(c *gin.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("%s:%s", rl.prefix, key)
	ctx := c.Request.Context()

	count, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(rl.maxAttempts), nil
}
