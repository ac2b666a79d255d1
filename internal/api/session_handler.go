package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/mindset-api/internal/api/shared"
	"github.com/phrazzld/mindset-api/internal/platform/logger"
	"github.com/phrazzld/mindset-api/internal/service"
)

// SessionHandler handles session lifecycle requests.
type SessionHandler struct {
	sessions service.SessionService
	logger   *slog.Logger
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions service.SessionService, logger *slog.Logger) *SessionHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SessionHandler")
	}
	return &SessionHandler{
		sessions: sessions,
		logger:   logger.With(slog.String("component", "session_handler")),
	}
}

// Start handles POST /api/session.
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	id, err := h.sessions.Start(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to start session")
		return
	}

	w.Header().Set(shared.SessionIDHeader, id.String())
	shared.RespondWithJSON(w, r, http.StatusCreated, SessionResponse{SessionID: id})
}

// End handles DELETE /api/session. The session is named by the X-Session-ID header.
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	raw := strings.TrimSpace(r.Header.Get(shared.SessionIDHeader))
	if raw == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Session ID header is required")
		return
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		log.Debug("malformed session header on end")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid session ID format")
		return
	}

	if err := h.sessions.End(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to end session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
