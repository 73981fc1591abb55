package server

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/pbsgifts/promoweb/internal/config"
	"github.com/pbsgifts/promoweb/internal/metrics"
	"github.com/pbsgifts/promoweb/internal/server/routes"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()

	return &Server{
		router: router,
		cfg:    cfg,
	}
}

// Init wires middleware and routes
func (s *Server) Init(h *routes.Handlers, m *routes.Middleware, metrics *metrics.Metrics) {
	routes.SetupGlobalMiddleware(s.router)
	routes.Setup(s.router, h, m)
	s.router.GET("/metrics", metrics.Handler())
}

// Router exposes the engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the server
func (s *Server) Start() error {
	return s.router.Run(":" + s.cfg.Port)
}
