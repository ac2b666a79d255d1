package api

import (
	"net/http"

	"github.com/phrazzld/mindset-api/internal/api/shared"
)

// SessionCounter reports the number of open sessions. *session.Registry satisfies it.
type SessionCounter interface {
	Count() int
}

// HealthHandler serves GET /health.
type HealthHandler struct {
	sessions SessionCounter
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(sessions SessionCounter) *HealthHandler {
	return &HealthHandler{sessions: sessions}
}

// Check reports liveness and the open session count.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:   "ok",
		Sessions: h.sessions.Count(),
	})
}
