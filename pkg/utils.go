// Package pkg holds small request helpers shared by the HTTP middlewares.
package pkg

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// GetClientIP returns the first well-formed address from X-Forwarded-For, then
// X-Real-IP, then the socket address. Malformed header values are skipped so a
// client cannot pick an arbitrary rate-limit key.
func GetClientIP(c *gin.Context) string {
	for _, hop := range strings.Split(c.GetHeader("X-Forwarded-For"), ",") {
		if ip := parseIP(hop); ip != "" {
			return ip
		}
	}

	if ip := parseIP(c.GetHeader("X-Real-IP")); ip != "" {
		return ip
	}

	if ip := c.ClientIP(); ip != "" {
		return ip
	}

	return "unknown"
}

func parseIP(value string) string {
	ip := net.ParseIP(strings.TrimSpace(value))
	if ip == nil {
		return ""
	}

	return ip.String()
}
