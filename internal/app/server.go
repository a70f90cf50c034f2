// File: internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"uniconnect_backend/internal/alumni"
	"uniconnect_backend/internal/auth"
	"uniconnect_backend/internal/chat"
	"uniconnect_backend/internal/club"
	"uniconnect_backend/internal/common"
	"uniconnect_backend/internal/config"
	"uniconnect_backend/internal/event"
	"uniconnect_backend/internal/foodcourt"
	"uniconnect_backend/internal/housing"
	"uniconnect_backend/internal/jobs"
	"uniconnect_backend/internal/marketplace"
	"uniconnect_backend/internal/middleware"
	"uniconnect_backend/internal/platform/elasticsearch"
	"uniconnect_backend/internal/post"
	"uniconnect_backend/internal/pyq"
	"uniconnect_backend/internal/search"
	"uniconnect_backend/internal/shared"
	"uniconnect_backend/internal/university"
	"uniconnect_backend/internal/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server struct holds the dependencies for the HTTP server.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        *config.Config
	logger     *zap.Logger

	esClient *elasticsearch.ESClientWrapper

	marketplaceExpiryJob *jobs.MarketplaceExpiryJob
}

// NewServer creates a new instance of our application server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	tokenService shared.TokenService,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	universityHandler *university.Handler,
	postHandler *post.Handler,
	marketplaceHandler *marketplace.Handler,
	chatHandler *chat.Handler,
	eventHandler *event.Handler,
	foodCourtHandler *foodcourt.Handler,
	housingHandler *housing.Handler,
	clubHandler *club.Handler,
	alumniHandler *alumni.Handler,
	pyqHandler *pyq.Handler,
	searchHandler *search.Handler,
	marketplaceExpiryJob *jobs.MarketplaceExpiryJob,
	esClient *elasticsearch.ESClientWrapper,
) (*Server, error) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()

	router.Use(middleware.ZapLogger(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	authMW := middleware.AuthMiddleware(tokenService, logger.Named("AuthMiddleware"))
	adminRoleMW := middleware.RoleAuthMiddleware(common.RoleAdmin)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "UniConnect API is healthy!"})
	})

	v1 := router.Group("/api/v1")

	authHandler.RegisterRoutes(v1, authMW)
	userHandler.RegisterRoutes(v1, authMW)
	universityHandler.RegisterRoutes(v1, authMW, adminRoleMW)
	postHandler.RegisterRoutes(v1, authMW)
	marketplaceHandler.RegisterRoutes(v1, authMW)
	chatHandler.RegisterRoutes(v1, authMW)
	eventHandler.RegisterRoutes(v1, authMW, adminRoleMW)
	foodCourtHandler.RegisterRoutes(v1, authMW)
	housingHandler.RegisterRoutes(v1, authMW)
	clubHandler.RegisterRoutes(v1, authMW)
	alumniHandler.RegisterRoutes(v1, authMW)
	pyqHandler.RegisterRoutes(v1, authMW)
	searchHandler.RegisterRoutes(v1)

	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer:           httpServer,
		router:               router,
		cfg:                  cfg,
		logger:               logger,
		esClient:             esClient,
		marketplaceExpiryJob: marketplaceExpiryJob,
	}, nil
}

// Start brings up the search index, the expiry job and the HTTP listener.
func (s *Server) Start() error {
	if s.esClient != nil {
		if err := elasticsearch.CreatePostsIndexIfNotExists(s.esClient, s.logger); err != nil {
			s.logger.Error("Failed to ensure Elasticsearch posts index, search falls back to the database", zap.Error(err))
		}
	}

	if s.marketplaceExpiryJob != nil {
		if err := s.marketplaceExpiryJob.SetupAndStart(); err != nil {
			s.logger.Error("Failed to setup and start marketplace expiry job", zap.Error(err))
		}
	} else {
		s.logger.Info("Marketplace expiry job is not configured, skipping start.")
	}

	s.logger.Info("HTTP Server starting",
		zap.String("address", s.httpServer.Addr),
		zap.String("gin_mode", s.cfg.GinMode),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Failed to start HTTP server", zap.Error(err))
		return err
	}
	s.logger.Info("HTTP Server stopped")
	return nil
}

// Shutdown stops the expiry job and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Attempting graceful server shutdown...")
	if s.marketplaceExpiryJob != nil {
		s.marketplaceExpiryJob.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
