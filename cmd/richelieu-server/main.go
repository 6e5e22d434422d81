package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/pcastera/richelieu/internal/clients/datastore"
	"github.com/pcastera/richelieu/internal/common"
	"github.com/pcastera/richelieu/internal/server"
	"github.com/pcastera/richelieu/internal/services/company"
	"github.com/pcastera/richelieu/internal/services/dashboard"
)

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

func main() {
	configFlag := flag.String("config", "", "path to richelieu.toml")
	flag.Parse()

	// Resolve config path: flag, env, binary dir, then development fallback
	configPath := *configFlag
	if configPath == "" {
		configPath = os.Getenv("RICHELIEU_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "richelieu.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/richelieu.toml"
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := common.NewLogger(config.Logging.Level)
	common.PrintBanner(config, logger)

	client := datastore.NewClient(config.Data.BaseURL,
		datastore.WithLogger(logger),
		datastore.WithTimeout(config.Data.GetTimeout()),
		datastore.WithRateLimit(config.Data.RateLimit),
	)

	dashboardService := dashboard.NewService(client, logger)
	dashboardService.SetMaxConcurrent(config.Data.MaxConcurrent)
	companyService := company.NewService(client, logger)

	// Warm the snapshot in the background; a failed warm-up is retried by the
	// first request and by the scheduler.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		if _, err := dashboardService.Refresh(ctx); err != nil {
			logger.Warn().Err(err).Msg("Initial snapshot build failed")
		}
	}()

	if err := dashboardService.StartScheduler(config.Data.RefreshSchedule); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start refresh scheduler")
	}

	srv := server.NewServer(config, logger, dashboardService, companyService)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	logger.Info().
		Str("url", fmt.Sprintf("http://localhost:%d", config.Server.Port)).
		Msg("Server ready")

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.PrintShutdownBanner(logger)
	dashboardService.StopScheduler()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
