package api

import (
	"github.com/google/uuid"
	"github.com/phrazzld/mindset-api/internal/domain"
)

// CreateReflectionRequest is the body of POST /api/reflections.
// Date defaults to today and MindsetScore to 5 when omitted.
type CreateReflectionRequest struct {
	Date         string `json:"date"          validate:"omitempty,datetime=2006-01-02"`
	MindsetScore *int   `json:"mindset_score" validate:"omitempty,min=1,max=10"`
	Challenges   string `json:"challenges"`
	Learnings    string `json:"learnings"`
}

// CreateGoalRequest is the body of POST /api/goals.
// TargetDate defaults to today when omitted.
type CreateGoalRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	TargetDate  string `json:"target_date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateProgressRequest is the body of the goal progress endpoints.
type UpdateProgressRequest struct {
	Progress *int `json:"progress" validate:"required,min=0,max=100"`
}

// SessionResponse is returned when a session starts.
type SessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
}

// CreateGoalResponse carries the new goal and its index.
type CreateGoalResponse struct {
	Index int         `json:"index"`
	Goal  domain.Goal `json:"goal"`
}

// ListResponse wraps a collection so the top-level JSON value is an object.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func newListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Count: len(items)}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}
