package http

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"flashcardapp/internal/core/telemetry"
	"flashcardapp/pkg/config"
	"flashcardapp/pkg/logger"
	. "flashcardapp/pkg/test"
)

type RouterSuite struct {
	suite.Suite
	Router *gin.Engine
}

func testConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.URL = ":memory:"
	return cfg
}

func (s *RouterSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	metrics := telemetry.NewAppMetrics(prometheus.NewRegistry())
	router, err := NewRouter(testConfig(), NewTestDB(s.T()), logger.NewNop(), metrics)
	s.Require().NoError(err)

	s.Router = router
}

func TestRouterSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://client.test")

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	return rr
}

func (s *RouterSuite) TestRoot() {
	rr := s.do(http.MethodGet, "/", "")

	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(rr.Body.String()).To(MatchJSON(`{"msg":"Hello! There's nothing interesting for GET /"}`))
	Expect(rr.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
	Expect(rr.Header().Get("X-Request-ID")).ToNot(BeEmpty())
}

func (s *RouterSuite) TestPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/collections", nil)
	req.Header.Set("Origin", "http://client.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "X-Client-Version")

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusNoContent))
	Expect(rr.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
	Expect(rr.Header().Get("Access-Control-Allow-Headers")).To(Equal("*"))
}

func (s *RouterSuite) TestCORSWithoutOrigin() {
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/collections", nil))

	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(rr.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
}

func (s *RouterSuite) TestCORSOnUnknownRoute() {
	rr := s.do(http.MethodGet, "/nothing-here", "")

	Expect(rr.Code).To(Equal(http.StatusNotFound))
	Expect(rr.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
}

func (s *RouterSuite) TestUnknownRoute() {
	rr := s.do(http.MethodGet, "/nothing-here", "")

	Expect(rr.Code).To(Equal(http.StatusNotFound))
	Expect(rr.Body.String()).To(ContainSubstring("NOT_FOUND"))
}

func (s *RouterSuite) TestRegisterLoginFlow() {
	Expect(s.do(http.MethodPost, "/register", `{"username":"ana","password":"pw"}`).Code).To(Equal(http.StatusCreated))
	Expect(s.do(http.MethodPost, "/login", `{"username":"ana","password":"pw"}`).Code).To(Equal(http.StatusOK))
	Expect(s.do(http.MethodPost, "/login", `{"username":"ana","password":"nope"}`).Code).To(Equal(http.StatusUnauthorized))
}

func (s *RouterSuite) TestCollectionLifecycle() {
	Expect(s.do(http.MethodPost, "/collections", `{"name":"Deck"}`).Code).To(Equal(http.StatusOK))
	Expect(s.do(http.MethodPost, "/collections/1", `{"question":"q","answer":"a"}`).Code).To(Equal(http.StatusOK))

	rr := s.do(http.MethodGet, "/collections/1/flashcards", "")
	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(rr.Body.String()).To(ContainSubstring(`"question":"q"`))

	rr = s.do(http.MethodGet, "/collections", "")
	Expect(rr.Header().Get("X-RateLimit-Limit")).To(Equal("120"))
}

func (s *RouterSuite) TestLoginRateLimit() {
	for i := 0; i < 10; i++ {
		s.do(http.MethodPost, "/login", `{"username":"x","password":"y"}`)
	}

	rr := s.do(http.MethodPost, "/login", `{"username":"x","password":"y"}`)

	Expect(rr.Code).To(Equal(http.StatusTooManyRequests))
	Expect(rr.Header().Get("X-RateLimit-Remaining")).To(Equal("0"))
}

func TestNewRouter_RateLimitDisabled(t *testing.T) {
	RegisterTestingT(t)
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	cfg.RateLimit.Enabled = false

	router, err := NewRouter(cfg, NewTestDB(t), logger.NewNop(), nil)
	Expect(err).ToNot(HaveOccurred())

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/collections", nil))

	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(rr.Header().Get("X-RateLimit-Limit")).To(BeEmpty())
}

func TestNewRouter_InvalidRedisURL(t *testing.T) {
	RegisterTestingT(t)

	cfg := testConfig()
	cfg.RateLimit.RedisURL = "://bad"

	_, err := NewRouter(cfg, NewTestDB(t), logger.NewNop(), nil)

	Expect(err).To(HaveOccurred())
}

func TestStartServer_GracefulShutdown(t *testing.T) {
	RegisterTestingT(t)
	gin.SetMode(gin.TestMode)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	Expect(err).ToNot(HaveOccurred())
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	cfg := testConfig()
	cfg.HTTP.Host = "127.0.0.1"
	cfg.HTTP.Port = port
	cfg.HTTP.ShutdownTimeout = time.Second

	db := NewTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- StartServer(ctx, cfg, db, logger.NewNop(), nil)
	}()

	Eventually(func() error {
		resp, err := http.Get("http://" + cfg.HTTP.Addr() + "/")
		if err == nil {
			resp.Body.Close()
		}
		return err
	}, 2*time.Second, 20*time.Millisecond).Should(Succeed())

	cancel()

	Eventually(done, 2*time.Second).Should(Receive(BeNil()))
}
