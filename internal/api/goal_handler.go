package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/mindset-api/internal/api/shared"
	"github.com/phrazzld/mindset-api/internal/platform/logger"
	"github.com/phrazzld/mindset-api/internal/service"
)

// GoalHandler handles goal requests.
type GoalHandler struct {
	journal service.JournalService
	logger  *slog.Logger
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(journal service.JournalService, logger *slog.Logger) *GoalHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for GoalHandler")
	}
	return &GoalHandler{
		journal: journal,
		logger:  logger.With(slog.String("component", "goal_handler")),
	}
}

// Create handles POST /api/goals.
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req CreateGoalRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	target, err := parseDateOrToday(req.TargetDate)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	index, goal, err := h.journal.AddGoal(r.Context(), sessionID, service.GoalInput{
		Title:       req.Title,
		Description: req.Description,
		TargetDate:  target,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to save goal")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("goal saved",
		slog.String("session_id", sessionID.String()),
		slog.Int("index", index))
	shared.RespondWithJSON(w, r, http.StatusCreated, CreateGoalResponse{Index: index, Goal: *goal})
}

// List handles GET /api/goals.
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	goals, err := h.journal.ListGoals(r.Context(), sessionID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list goals")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(goals))
}

// UpdateProgress handles PUT /api/goals/{index}/progress.
func (h *GoalHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	index, err := getPathIndex(r, "index")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateProgressRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	goal, err := h.journal.UpdateGoalProgress(r.Context(), sessionID, index, *req.Progress)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update goal progress")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, goal)
}

// UpdateProgressByID handles PUT /api/goals/id/{id}/progress.
func (h *GoalHandler) UpdateProgressByID(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	goalID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateProgressRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	goal, err := h.journal.UpdateGoalProgressByID(r.Context(), sessionID, goalID, *req.Progress)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update goal progress")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, goal)
}

// Summaries handles GET /api/goals/summaries.
func (h *GoalHandler) Summaries(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	summaries, err := h.journal.GoalSummaries(r.Context(), sessionID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to summarize goals")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(summaries))
}

// Achievements handles GET /api/achievements.
func (h *GoalHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	achievements, err := h.journal.ListAchievements(r.Context(), sessionID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list achievements")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(achievements))
}
