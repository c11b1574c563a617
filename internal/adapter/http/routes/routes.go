package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	. "flashcardapp/internal/adapter/http/helper"
	"flashcardapp/internal/adapter/http/handler"
	"flashcardapp/internal/adapter/http/middleware"
	"flashcardapp/internal/core/telemetry"
	"flashcardapp/pkg/logger"
)

type HandlersConfig struct {
	AuthHandler       *handler.AuthHandler
	CollectionHandler *handler.CollectionHandler
}

type RouterConfig struct {
	ServiceName string
	Logger      *logger.Logger
	Metrics     *telemetry.AppMetrics
	// RateLimiter is optional; nil disables rate limiting.
	RateLimiter *middleware.RateLimiter
}

func SetupRouter(handlers HandlersConfig, config RouterConfig) *gin.Engine {
	router := gin.New()

	router.Use(otelgin.Middleware(config.ServiceName))
	router.Use(middleware.CurrentMiddleware())
	router.Use(middleware.LoggingMiddleware(config.Logger))
	router.Use(middleware.MetricsMiddleware(config.Metrics))
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	if config.RateLimiter != nil {
		router.Use(config.RateLimiter.RateLimitMiddleware())
	}

	router.GET("/", handler.Root)

	if handlers.AuthHandler != nil {
		setupAuthRoutes(router, handlers.AuthHandler)
	}

	if handlers.CollectionHandler != nil {
		setupCollectionRoutes(router, handlers.CollectionHandler)
	}

	router.NoRoute(func(c *gin.Context) {
		SendNotFoundError(c, "Route not found")
	})

	return router
}

func setupAuthRoutes(router *gin.Engine, authHandler *handler.AuthHandler) {
	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)
}

func setupCollectionRoutes(router *gin.Engine, h *handler.CollectionHandler) {
	collections := router.Group("/collections")
	{
		collections.GET("", h.GetAll)
		collections.POST("", h.Create)
		collections.GET("/:id", h.GetByID)
		collections.POST("/:id", h.CreateFlashcard)
		collections.PUT("/:id", h.Rename)
		collections.DELETE("/:id", h.Delete)
		collections.GET("/:id/flashcards", h.GetFlashcards)
	}
}

// corsMiddleware allows every origin and header. The allow-origin header is set
// on every response, including ones without an Origin header, which cors.New
// leaves untouched.
func corsMiddleware() gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"*"}
	config.ExposeHeaders = []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"}

	handler := cors.New(config)

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		handler(c)
	}
}
