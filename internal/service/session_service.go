package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/mindset-api/internal/events"
)

// SessionService opens and closes journal sessions.
type SessionService interface {
	// Start opens a session with an empty journal and returns its ID.
	Start(ctx context.Context) (uuid.UUID, error)

	// End closes a session; its journal is discarded.
	End(ctx context.Context, id uuid.UUID) error
}

type sessionServiceImpl struct {
	sessions     SessionStores
	eventEmitter events.EventEmitter
	logger       *slog.Logger
}

// NewSessionService creates a new SessionService.
// It returns an error if any of the required dependencies are nil.
//
// Ending a session does not emit session.ended here: the session registry
// reports every end, explicit or by expiry, through its end hook.
func NewSessionService(
	sessions SessionStores,
	eventEmitter events.EventEmitter,
	logger *slog.Logger,
) (SessionService, error) {
	if sessions == nil {
		return nil, &JournalServiceError{
			Operation: "create_service",
			Message:   "sessions cannot be nil",
		}
	}
	if eventEmitter == nil {
		return nil, &JournalServiceError{
			Operation: "create_service",
			Message:   "eventEmitter cannot be nil",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &sessionServiceImpl{
		sessions:     sessions,
		eventEmitter: eventEmitter,
		logger:       logger.With("component", "session_service"),
	}, nil
}

// Start implements SessionService.
func (s *sessionServiceImpl) Start(ctx context.Context) (uuid.UUID, error) {
	id, _, err := s.sessions.Create()
	if err != nil {
		s.logger.WarnContext(ctx, "failed to start session", "error", err)
		return uuid.Nil, NewJournalServiceError("start_session", "failed to create session", err)
	}

	emit(ctx, s.eventEmitter, s.logger, events.TypeSessionStarted, id, nil)
	s.logger.InfoContext(ctx, "session started", "session_id", id)
	return id, nil
}

// End implements SessionService.
func (s *sessionServiceImpl) End(ctx context.Context, id uuid.UUID) error {
	if err := s.sessions.End(id); err != nil {
		s.logger.DebugContext(ctx, "failed to end session", "error", err, "session_id", id)
		return NewJournalServiceError("end_session", "failed to end session", err)
	}

	s.logger.InfoContext(ctx, "session ended", "session_id", id)
	return nil
}

// emit publishes an event. The journal change it describes has already been
// applied, so a failed emit is logged and not returned.
func emit(
	ctx context.Context,
	emitter events.EventEmitter,
	logger *slog.Logger,
	eventType string,
	sessionID uuid.UUID,
	payload interface{},
) {
	event, err := events.NewJournalEvent(eventType, sessionID, payload)
	if err != nil {
		logger.ErrorContext(ctx, "failed to create event",
			"error", err,
			"event_type", eventType,
			"session_id", sessionID)
		return
	}

	if err := emitter.EmitEvent(ctx, event); err != nil {
		logger.ErrorContext(ctx, "failed to emit event",
			"error", err,
			"event_type", eventType,
			"event_id", event.ID,
			"session_id", sessionID)
	}
}
