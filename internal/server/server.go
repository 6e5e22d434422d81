// Package server exposes the dashboard as a REST API with rendered PNG charts.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pcastera/richelieu/internal/common"
	"github.com/pcastera/richelieu/internal/interfaces"
)

// Server wraps the HTTP server and service references.
type Server struct {
	config    *common.Config
	logger    *common.Logger
	dashboard interfaces.DashboardService
	companies interfaces.CompanyService
	server    *http.Server
	startedAt time.Time
}

// NewServer creates a new HTTP REST API server.
func NewServer(config *common.Config, logger *common.Logger, dashboard interfaces.DashboardService, companies interfaces.CompanyService) *Server {
	s := &Server{
		config:    config,
		logger:    logger,
		dashboard: dashboard,
		companies: companies,
		startedAt: time.Now(),
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	handler := applyMiddleware(mux, logger)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server (blocking).
func (s *Server) Start() error {
	s.logger.Info().
		Str("addr", s.server.Addr).
		Msg("Starting REST API server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
