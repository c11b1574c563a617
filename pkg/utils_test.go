package pkg

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded list", map[string]string{"X-Forwarded-For": "10.0.0.1, 10.0.0.2"}, "192.168.1.1:1234", "10.0.0.1"},
		{"real ip", map[string]string{"X-Real-IP": "10.0.0.9"}, "192.168.1.1:1234", "10.0.0.9"},
		{"remote addr", nil, "192.168.1.1:1234", "192.168.1.1"},
		{"malformed first hop", map[string]string{"X-Forwarded-For": "spoofed, 10.0.0.3"}, "192.168.1.1:1234", "10.0.0.3"},
		{"empty hops", map[string]string{"X-Forwarded-For": " , "}, "192.168.1.1:1234", "192.168.1.1"},
		{"malformed real ip", map[string]string{"X-Real-IP": "nope"}, "192.168.1.1:1234", "192.168.1.1"},
		{"ipv6 forwarded", map[string]string{"X-Forwarded-For": " 2001:db8::1 "}, "192.168.1.1:1234", "2001:db8::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tt.remote

			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, GetClientIP(c))
		})
	}
}
