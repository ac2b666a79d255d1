package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/mindset-api/internal/api/shared"
	"github.com/phrazzld/mindset-api/internal/domain"
	"github.com/phrazzld/mindset-api/internal/platform/logger"
	"github.com/phrazzld/mindset-api/internal/service"
)

// ReflectionHandler handles reflection requests.
type ReflectionHandler struct {
	journal service.JournalService
	logger  *slog.Logger
}

// NewReflectionHandler creates a new ReflectionHandler.
func NewReflectionHandler(journal service.JournalService, logger *slog.Logger) *ReflectionHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ReflectionHandler")
	}
	return &ReflectionHandler{
		journal: journal,
		logger:  logger.With(slog.String("component", "reflection_handler")),
	}
}

// Create handles POST /api/reflections.
func (h *ReflectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req CreateReflectionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	date, err := parseDateOrToday(req.Date)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	score := domain.DefaultMindsetScore
	if req.MindsetScore != nil {
		score = *req.MindsetScore
	}

	reflection, err := h.journal.AddReflection(r.Context(), sessionID, service.ReflectionInput{
		Date:         date,
		MindsetScore: score,
		Challenges:   req.Challenges,
		Learnings:    req.Learnings,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to save reflection")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("reflection saved",
		slog.String("session_id", sessionID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, reflection)
}

// List handles GET /api/reflections.
func (h *ReflectionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	reflections, err := h.journal.ListReflections(r.Context(), sessionID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list reflections")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(reflections))
}
