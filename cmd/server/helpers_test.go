package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/mindset-api/internal/config"
	"github.com/stretchr/testify/require"
)

// newTestConfig returns a valid configuration for tests.
func newTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   8080,
			LogLevel:               "info",
			AllowedOrigins:         []string{"http://localhost:3000"},
			ShutdownTimeoutSeconds: 5,
		},
		Session: config.SessionConfig{
			IdleTimeoutMinutes:   30,
			SweepIntervalSeconds: 60,
			MaxSessions:          10,
		},
		RateLimit: config.RateLimitConfig{
			RequestsPerSecond: 1000,
			Burst:             1000,
		},
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *application {
	t.Helper()
	app, err := newApplication(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return app
}
