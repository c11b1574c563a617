package middleware

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"flashcardapp/internal/core/telemetry"
	"flashcardapp/pkg"
	"flashcardapp/pkg/logger"
)

const defaultRateLimitKey = "default"

// RateLimitEndpointConfig is the limit applied to one route.
type RateLimitEndpointConfig struct {
	Requests int
	Window   time.Duration
	KeyFunc  func(*gin.Context) string
}

type RateLimiter struct {
	store   RateLimitStore
	config  map[string]RateLimitEndpointConfig
	logger  *logger.Logger
	metrics *telemetry.AppMetrics
}

func DefaultRateLimits() map[string]RateLimitEndpointConfig {
	return map[string]RateLimitEndpointConfig{
		"POST /register": {
			Requests: 5,
			Window:   time.Minute,
			KeyFunc:  pkg.GetClientIP,
		},
		"POST /login": {
			Requests: 10,
			Window:   time.Minute,
			KeyFunc:  pkg.GetClientIP,
		},
		defaultRateLimitKey: {
			Requests: 120,
			Window:   time.Minute,
			KeyFunc:  pkg.GetClientIP,
		},
	}
}

func NewRateLimiter(store RateLimitStore, logger *logger.Logger, metrics *telemetry.AppMetrics) *RateLimiter {
	return &RateLimiter{
		store:   store,
		config:  DefaultRateLimits(),
		logger:  logger,
		metrics: metrics,
	}
}

func (rl *RateLimiter) lookup(methodPath string) RateLimitEndpointConfig {
	if config, exists := rl.config[methodPath]; exists {
		return config
	}

	return rl.config[defaultRateLimitKey]
}

// RateLimitMiddleware answers 429 once a client exceeds its route limit. A
// failing store lets the request through.
func (rl *RateLimiter) RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		path := routeLabel(c)
		methodPath := c.Request.Method + " " + path
		config := rl.lookup(methodPath)
		key := fmt.Sprintf("rate_limit:%s:%s", methodPath, config.KeyFunc(c))

		count, resetTime, err := rl.store.Hit(ctx, key, config.Window)
		if err != nil {
			rl.logger.WarnWithTrace(ctx, "Rate limit check failed",
				zap.String("key", key),
				zap.Error(err))
			c.Next()
			return
		}

		remaining := config.Requests - count
		if remaining < 0 {
			remaining = 0
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Requests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if count > config.Requests {
			rl.metrics.RecordRateLimitHit(ctx, path, "ip")

			rl.logger.WarnWithTrace(ctx, "Rate limit exceeded",
				zap.String("key", key),
				zap.Int("limit", config.Requests),
				zap.Duration("window", config.Window))

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"message":     fmt.Sprintf("Too many requests. Limit: %d per %v", config.Requests, config.Window),
				"retry_after": int(time.Until(resetTime).Seconds()),
			})
			return
		}

		rl.metrics.RecordRateLimitAllowed(ctx, path, "ip")

		c.Next()
	}
}

// Close releases the store's connections when it holds any.
func (rl *RateLimiter) Close() error {
	if closer, ok := rl.store.(io.Closer); ok {
		return closer.Close()
	}

	return nil
}
