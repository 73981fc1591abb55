package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pbsgifts/promoweb/internal/api/middleware"
	"github.com/pbsgifts/promoweb/internal/logging"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	logger := logging.GetLogger()

	// Health check endpoint - no auth required
	SetupHealthRoutes(router, h.Health)

	// Create base API v1 group
	v1 := router.Group("/api/v1")

	// Contact routes (public)
	SetupContactRoutes(v1, h.Contact, m)

	// Quote routes (public)
	SetupQuoteRoutes(v1, h.Quote, m)

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.PreserveRequestBody())
	router.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   10,
		Burst: 20,
	}))
}
