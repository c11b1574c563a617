package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"flashcardapp/internal/adapter/database"
	"flashcardapp/internal/adapter/http/middleware"
	"flashcardapp/internal/adapter/http/routes"
	"flashcardapp/internal/core/telemetry"
	"flashcardapp/pkg/config"
	"flashcardapp/pkg/logger"
)

// NewRouter wires the container into a gin engine configured from cfg.
func NewRouter(cfg *config.Config, db *database.DB, logger *logger.Logger, metrics *telemetry.AppMetrics) (*gin.Engine, error) {
	limiter, err := newRateLimiter(cfg.RateLimit, logger, metrics)
	if err != nil {
		return nil, err
	}

	return newRouter(cfg, db, logger, metrics, limiter), nil
}

func newRouter(cfg *config.Config, db *database.DB, logger *logger.Logger, metrics *telemetry.AppMetrics, limiter *middleware.RateLimiter) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	container := NewContainer(db, logger, metrics)

	return routes.SetupRouter(routes.HandlersConfig{
		AuthHandler:       container.AuthHandler,
		CollectionHandler: container.CollectionHandler,
	}, routes.RouterConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Logger:      logger,
		Metrics:     metrics,
		RateLimiter: limiter,
	})
}

// newRateLimiter returns nil when rate limiting is disabled. Counters live in
// redis when a URL is configured and in process memory otherwise.
func newRateLimiter(cfg config.RateLimit, logger *logger.Logger, metrics *telemetry.AppMetrics) (*middleware.RateLimiter, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	var store middleware.RateLimitStore = middleware.NewMemoryStore()

	if cfg.RedisURL != "" {
		redisStore, err := middleware.NewRedisStore(cfg.RedisURL)
		if err != nil {
			return nil, err
		}

		store = redisStore
	}

	return middleware.NewRateLimiter(store, logger, metrics), nil
}

// StartServer serves the API until ctx is cancelled, then shuts down within
// the configured budget.
func StartServer(ctx context.Context, cfg *config.Config, db *database.DB, logger *logger.Logger, metrics *telemetry.AppMetrics) error {
	limiter, err := newRateLimiter(cfg.RateLimit, logger, metrics)
	if err != nil {
		return err
	}

	if limiter != nil {
		defer func() {
			if err := limiter.Close(); err != nil {
				logger.Warn("Failed to close rate limit store", zap.Error(err))
			}
		}()
	}

	router := newRouter(cfg, db, logger, metrics, limiter)

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)

	go func() {
		logger.Info("Server started listening for HTTP requests",
			zap.String("addr", srv.Addr),
			zap.String("environment", cfg.Environment),
			zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
