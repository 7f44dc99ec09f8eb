package api

import (
	"io"
	"net/http"

	"folio/internal/api/dto/common"
	"folio/internal/api/handlers"
	"folio/internal/api/middleware"
	"folio/internal/config"
	"folio/internal/logging"
	"folio/internal/ratelimit"
	"folio/internal/service"
	"folio/internal/utils"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
}

// NewServer wires the middleware stack and routes. The verifier and mailer
// are passed in so the entrypoint decides the concrete providers.
func NewServer(cfg *config.Config, verifier service.TokenVerifier, mailer service.Mailer) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()

	// Always add recovery middleware for panic handling
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.Environment, cfg.AllowedOrigins))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   10,
		Burst: 20,
	}))

	s := &Server{
		router: router,
		cfg:    cfg,
	}

	limiter := ratelimit.NewMemoryStore(cfg.ContactRateWindow, cfg.ContactRateMax)

	contactHandler := handlers.NewContactHandler(cfg, limiter, verifier, mailer)
	healthHandler := handlers.NewHealthHandler()
	siteHandler := handlers.NewSiteHandler()

	// Health check endpoint
	router.GET("/health", healthHandler.Check)

	// The contact endpoint is mounted on both paths: /api/contact is the
	// public contract, /api/v1 is where the rest of the API lives.
	router.POST("/api/contact", contactHandler.Submit)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/contact", contactHandler.Submit)
		v1.GET("/site", siteHandler.Content)
		v1.GET("/site/projects", siteHandler.Projects)
		v1.GET("/site/skills", siteHandler.Skills)
		v1.GET("/site/experience", siteHandler.Experience)
	}

	router.NoRoute(func(c *gin.Context) {
		utils.HandleAPIError(c, nil, http.StatusNotFound, common.ErrCodeNotFound, "Resource not found")
	})

	return s
}

// Router exposes the underlying engine. Used by tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the server
func (s *Server) Start() error {
	logger := logging.GetGlobalLogger()
	logger.Info("Listening on :%s", s.cfg.Port)
	return s.router.Run(":" + s.cfg.Port)
}
