package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/filmotek/filmotek/internal/api"
	"github.com/filmotek/filmotek/internal/config"
	"github.com/filmotek/filmotek/internal/connectivity"
	"github.com/filmotek/filmotek/internal/controllers"
	"github.com/filmotek/filmotek/internal/models"
	"github.com/filmotek/filmotek/internal/provider"
	"github.com/filmotek/filmotek/internal/services/cinema"
	"github.com/filmotek/filmotek/internal/storage"
	"github.com/filmotek/filmotek/internal/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Setup logger
	logger := utils.NewLogger(cfg.LogLevel)
	logger.Info("Starting Filmotek")
	logger.WithField("config_dir", filepath.Dir(cfg.DatabaseFile)).Info("Configuration loaded")

	// 3. Open the offline cache
	store, err := storage.OpenBoltStore(cfg.DatabaseFile)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	defer store.Close()
	logger.Info("Cache opened")

	// 4. Initialize the catalog service client and the sync gateway
	client := cinema.NewClient(cfg, logger)
	oracle := connectivity.NewHTTPProbe(cfg.Endpoint)
	gateway := provider.NewProvider(client, store, oracle, logger)
	runner := provider.NewSyncRunner(gateway)
	logger.Info("Sync gateway initialized")

	// 5. Initialize the stores and the mutation orchestrator. The
	// registry is what an embedding UI drives; the daemon itself only
	// reads the film store.
	films := models.NewFilmStore()
	comments := models.NewCommentStore()
	filter := models.NewFilterStore()
	registry := controllers.NewRegistry(gateway, films, comments, filter, logger)
	defer registry.Close()
	logger.Info("Stores initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 6. Load the catalog. A failed fetch still initializes the store,
	// just empty, so the application stays usable.
	catalog, err := gateway.GetFilms(ctx)
	if err != nil {
		logger.WithError(err).Warn("Catalog fetch failed, starting empty")
		catalog = []*models.Film{}
	}
	films.SetFilms(models.UpdateInit, catalog)
	logger.WithField("count", len(catalog)).Info("Catalog loaded")

	// 7. Watch connectivity; a restored connection reconciles the cache
	// and refreshes the catalog.
	monitor := connectivity.NewMonitor(oracle, cfg.ProbeIntervalSeconds, func() {
		if err := runner.Run(ctx); err != nil {
			logger.WithError(err).Warn("Reconciliation failed")
			return
		}
		refreshed, err := gateway.GetFilms(ctx)
		if err != nil {
			logger.WithError(err).Warn("Catalog refresh failed")
			return
		}
		films.SetFilms(models.UpdateMajor, refreshed)
	}, func() {
		logger.Warn("Connection lost, serving from cache")
	}, logger)
	if err := monitor.Start(); err != nil {
		return fmt.Errorf("failed to start connectivity monitor: %w", err)
	}
	defer monitor.Stop()

	// 8. Initialize HTTP server
	server := api.NewServer(cfg, films, store, oracle, runner, logger)

	serverErrChan := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil {
			serverErrChan <- err
		}
	}()

	// 9. Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	logger.Info("Filmotek is running")

	select {
	case err := <-serverErrChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		logger.WithField("signal", sig).Info("Received shutdown signal")
		cancel()
		if err := server.Shutdown(context.Background()); err != nil {
			logger.WithError(err).Error("Error during server shutdown")
		}
	}

	logger.Info("Filmotek stopped")
	return nil
}
