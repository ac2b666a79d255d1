package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/mindset-api/internal/session"
	"github.com/phrazzld/mindset-api/internal/store"
)

// Sentinel errors returned by the journal services. The API layer maps them
// to HTTP status codes with errors.Is.
var (
	// ErrSessionNotFound indicates an unknown, ended or expired session.
	// API layer should map this to HTTP 404 Not Found.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionLimitReached indicates no more sessions can be opened.
	// API layer should map this to HTTP 503 Service Unavailable.
	ErrSessionLimitReached = errors.New("session limit reached")

	// ErrGoalNotFound indicates no goal has the requested ID.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrGoalIndexOutOfRange indicates no goal sits at the requested position.
	ErrGoalIndexOutOfRange = errors.New("goal index out of range")
)

// JournalServiceError wraps errors from the journal services with context.
type JournalServiceError struct {
	// Operation is the operation that failed (e.g., "add_goal", "update_goal_progress")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for JournalServiceError.
func (e *JournalServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("journal service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("journal service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *JournalServiceError) Unwrap() error {
	return e.Err
}

// NewJournalServiceError creates a new JournalServiceError.
// Session and goal lookup failures are translated to the service sentinels and
// returned without wrapping.
func NewJournalServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, session.ErrSessionNotFound):
		return ErrSessionNotFound
	case errors.Is(err, ErrSessionLimitReached), errors.Is(err, session.ErrSessionLimitReached):
		return ErrSessionLimitReached
	case errors.Is(err, ErrGoalNotFound), errors.Is(err, store.ErrGoalNotFound):
		return ErrGoalNotFound
	case errors.Is(err, ErrGoalIndexOutOfRange), errors.Is(err, store.ErrGoalIndexOutOfRange):
		return ErrGoalIndexOutOfRange
	}

	return &JournalServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
