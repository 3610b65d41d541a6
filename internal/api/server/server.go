package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pharmatrust/custody/internal/api/middleware"
	"github.com/pharmatrust/custody/internal/api/rest"
	"github.com/pharmatrust/custody/internal/handoff"
	"github.com/pharmatrust/custody/internal/ledger"
	"github.com/pharmatrust/custody/internal/logger"
	"github.com/pharmatrust/custody/internal/onboarding"
	"github.com/pharmatrust/custody/internal/store"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Auth         middleware.AuthConfig
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	store      store.Store
	mirror     *ledger.Mirror
	handoff    *handoff.Service
	onboarding *onboarding.Service
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, s store.Store, mirror *ledger.Mirror, handoffSvc *handoff.Service, onboardingSvc *onboarding.Service) *Server {
	return &Server{
		config:     cfg,
		store:      s,
		mirror:     mirror,
		handoff:    handoffSvc,
		onboarding: onboardingSvc,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	handler := rest.NewHandler(s.store, s.mirror, s.handoff, s.onboarding)
	rest.SetupRoutes(router, handler, s.config.Auth)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
