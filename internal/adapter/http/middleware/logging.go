package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"flashcardapp/pkg"
	ct "flashcardapp/pkg/context"
	"flashcardapp/pkg/logger"
)

func LoggingMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		ctx := c.Request.Context()
		status := c.Writer.Status()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", pkg.GetClientIP(c)),
			zap.String("user_agent", c.Request.UserAgent()),
			zap.String("request_id", ct.RequestID(ctx)),
		}

		if status >= 500 {
			l.ErrorWithTrace(ctx, "HTTP Request", fields...)
			return
		}

		l.InfoWithTrace(ctx, "HTTP Request", fields...)
	}
}
