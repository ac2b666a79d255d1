package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/mindset-api/internal/config"
	"github.com/phrazzld/mindset-api/internal/events"
	"github.com/phrazzld/mindset-api/internal/metrics"
	"github.com/phrazzld/mindset-api/internal/platform/memory"
	"github.com/phrazzld/mindset-api/internal/resources"
	"github.com/phrazzld/mindset-api/internal/service"
	"github.com/phrazzld/mindset-api/internal/session"
	"github.com/phrazzld/mindset-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger  *slog.Logger
	metrics *metrics.Metrics

	// Per-session journals
	sessions *session.Registry

	// Service interfaces
	sessionService service.SessionService
	journalService service.JournalService

	// Static content
	library *resources.Library

	// Event system
	eventEmitter *events.InMemoryEventEmitter
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	app := &application{
		config:  cfg,
		logger:  logger,
		metrics: metrics.New(),
	}

	// Initialize event emitter and its handlers
	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(app.metrics)
	app.eventEmitter.RegisterHandler(events.NewAuditLogger(logger))

	// Each session gets its own in-memory store
	app.sessions = session.NewRegistry(
		session.Config{
			IdleTimeout:   cfg.Session.IdleTimeout(),
			SweepInterval: cfg.Session.SweepInterval(),
			MaxSessions:   cfg.Session.MaxSessions,
		},
		func() store.JournalStore { return memory.NewJournalStore() },
		logger,
		session.WithEndHook(app.sessionEnded),
	)

	var err error
	app.sessionService, err = service.NewSessionService(app.sessions, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}

	app.journalService, err = service.NewJournalService(app.sessions, app.eventEmitter, app.metrics, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create journal service: %w", err)
	}

	app.library, err = resources.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load resources: %w", err)
	}

	logger.Info("Application initialized successfully",
		"concepts", len(app.library.Concepts),
		"books", len(app.library.Reading),
		"tips", len(app.library.Tips))
	return app, nil
}

// sessionEnded is the registry end hook. It runs for explicit ends and expiries.
func (app *application) sessionEnded(id uuid.UUID, reason string) {
	event, err := events.NewJournalEvent(events.TypeSessionEnded, id, events.SessionEndedPayload{Reason: reason})
	if err != nil {
		app.logger.Error("failed to build session ended event", "error", err, "session_id", id)
		return
	}
	if err := app.eventEmitter.EmitEvent(context.Background(), event); err != nil {
		app.logger.Error("failed to emit session ended event", "error", err, "session_id", id)
	}
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	app.sessions.Stop()
	app.logger.Info("Application shutdown completed", "open_sessions", app.sessions.Count())
}
