// Package main implements the entry point for the Mindset API server,
// which keeps per-session growth-mindset journals in memory and serves
// them over HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/mindset-api/internal/config"
	"github.com/phrazzld/mindset-api/internal/platform/logger"
)

func main() {
	cfg, l, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app, err := newApplication(cfg, l)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		l.Error("Application stopped with error", "error", err)
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"allowed_origins", len(cfg.Server.AllowedOrigins))
	l.Debug("Session configuration",
		"idle_timeout", cfg.Session.IdleTimeout(),
		"sweep_interval", cfg.Session.SweepInterval(),
		"max_sessions", cfg.Session.MaxSessions)

	return cfg, l, nil
}
