package events

import (
	"context"
	"log/slog"
)

// AuditLogger records the identity of every journal event at info level.
type AuditLogger struct {
	logger *slog.Logger
}

// NewAuditLogger creates an AuditLogger.
func NewAuditLogger(logger *slog.Logger) *AuditLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{logger: logger.With("component", "audit")}
}

// HandleEvent implements EventHandler.
func (a *AuditLogger) HandleEvent(ctx context.Context, event *JournalEvent) error {
	a.logger.InfoContext(ctx, "journal event",
		"event_id", event.ID,
		"event_type", event.Type,
		"session_id", event.SessionID,
		"created_at", event.CreatedAt)
	return nil
}
