package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"flashcardapp/pkg"
	ct "flashcardapp/pkg/context"
)

const (
	RequestIDHeader = "X-Request-ID"
	currentKey      = "current"
)

// CurrentMiddleware stores a per-request Current carrying the request id,
// reusing the client's X-Request-ID when present.
func CurrentMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		current := ct.NewCurrent()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		current.Set(ct.RequestIDKey, requestID)
		current.Set("user_agent", c.Request.UserAgent())
		current.Set("ip_address", pkg.GetClientIP(c))
		current.Set("method", c.Request.Method)
		current.Set("path", c.Request.URL.Path)

		ctx := ct.WithCurrent(c.Request.Context(), current)
		c.Request = c.Request.WithContext(ctx)

		c.Set(currentKey, current)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

func GetCurrent(c *gin.Context) *ct.Current {
	if current, ok := c.Get(currentKey); ok {
		if curr, ok := current.(*ct.Current); ok {
			return curr
		}
	}

	return ct.GetCurrent(c.Request.Context())
}
