package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/mindset-api/internal/api/shared"
	"github.com/phrazzld/mindset-api/internal/service"
)

// JournalHandler serves the read-only views over a whole journal.
type JournalHandler struct {
	journal service.JournalService
	logger  *slog.Logger
}

// NewJournalHandler creates a new JournalHandler.
func NewJournalHandler(journal service.JournalService, logger *slog.Logger) *JournalHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for JournalHandler")
	}
	return &JournalHandler{
		journal: journal,
		logger:  logger.With(slog.String("component", "journal_handler")),
	}
}

// MindsetSeries handles GET /api/series/mindset.
func (h *JournalHandler) MindsetSeries(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	series, err := h.journal.MindsetSeries(r.Context(), sessionID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to build mindset series")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(series))
}

// Dashboard handles GET /api/dashboard.
func (h *JournalHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	dash, err := h.journal.Dashboard(r.Context(), sessionID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to build dashboard")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, dash)
}

// Export handles GET /api/export. The snapshot is served as a JSON attachment.
func (h *JournalHandler) Export(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	snapshot, err := h.journal.Export(r.Context(), sessionID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to export journal")
		return
	}

	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="mindset-journal-%s.json"`, sessionID.String()[:8]))
	shared.RespondWithJSON(w, r, http.StatusOK, snapshot)
}
