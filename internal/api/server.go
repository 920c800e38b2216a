package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/filmotek/filmotek/internal/api/handlers"
	"github.com/filmotek/filmotek/internal/api/middleware"
	"github.com/filmotek/filmotek/internal/config"
	"github.com/filmotek/filmotek/internal/connectivity"
	"github.com/filmotek/filmotek/internal/models"
	"github.com/filmotek/filmotek/internal/provider"
	"github.com/filmotek/filmotek/internal/storage"
)

// Server represents the HTTP server
type Server struct {
	server *http.Server
	logger *logrus.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, films *models.FilmStore, store storage.Store, oracle connectivity.Oracle, runner *provider.SyncRunner, logger *logrus.Logger) *Server {
	s := &Server{logger: logger}

	mux := http.NewServeMux()
	mux.Handle("/health", handlers.NewHealthHandler(logger))
	mux.Handle("/api/status", handlers.NewStatusHandler(films, store, oracle, logger))
	mux.Handle("/api/sync", handlers.NewSyncHandler(runner, logger))

	s.server = &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      middleware.Logging(mux, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	s.logger.WithField("addr", s.server.Addr).Info("Starting HTTP server")

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}
