package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"flashcardapp/internal/core/telemetry"
	ct "flashcardapp/pkg/context"
	"flashcardapp/pkg/logger"
)

func TestCurrentMiddleware_GeneratesRequestID(t *testing.T) {
	RegisterTestingT(t)
	gin.SetMode(gin.TestMode)

	var seen string

	router := gin.New()
	router.Use(CurrentMiddleware())
	router.GET("/", func(c *gin.Context) {
		seen = ct.RequestID(c.Request.Context())
		id, _ := GetCurrent(c).GetString(ct.RequestIDKey)
		Expect(id).To(Equal(seen))
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	Expect(seen).To(HaveLen(36))
	Expect(rr.Header().Get(RequestIDHeader)).To(Equal(seen))
}

func TestCurrentMiddleware_KeepsClientRequestID(t *testing.T) {
	RegisterTestingT(t)
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(CurrentMiddleware())
	router.GET("/", func(c *gin.Context) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-id")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	Expect(rr.Header().Get(RequestIDHeader)).To(Equal("client-id"))
}

func TestMetricsMiddleware_RecordsStatus(t *testing.T) {
	RegisterTestingT(t)
	gin.SetMode(gin.TestMode)

	registry := prometheus.NewRegistry()
	metrics := telemetry.NewAppMetrics(registry)

	router := gin.New()
	router.Use(LoggingMiddleware(logger.NewNop()))
	router.Use(MetricsMiddleware(metrics))
	router.GET("/collections/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/collections/1", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	count, err := testutil.GatherAndCount(registry, "http_requests_total")
	Expect(err).ToNot(HaveOccurred())
	Expect(count).To(Equal(2))

	families, err := registry.Gather()
	Expect(err).ToNot(HaveOccurred())

	labels := map[string]string{}
	for _, family := range families {
		if family.GetName() != "http_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			values := map[string]string{}
			for _, pair := range metric.GetLabel() {
				values[pair.GetName()] = pair.GetValue()
			}
			labels[values["path"]] = values["status"]
		}
	}

	Expect(labels).To(HaveKeyWithValue("/collections/:id", "200"))
	Expect(labels).To(HaveKeyWithValue("unmatched", "404"))
}
