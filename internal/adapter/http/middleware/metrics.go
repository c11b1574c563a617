package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"flashcardapp/internal/core/telemetry"
)

func MetricsMiddleware(metrics *telemetry.AppMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		metrics.IncrementActiveConnections(c.Request.Context())
		defer metrics.DecrementActiveConnections(c.Request.Context())

		c.Next()

		metrics.RecordRequest(
			c.Request.Context(),
			c.Request.Method,
			routeLabel(c),
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}

// routeLabel is the registered route pattern, or "unmatched" so arbitrary
// request paths never become label values.
func routeLabel(c *gin.Context) string {
	if path := c.FullPath(); path != "" {
		return path
	}

	return "unmatched"
}
