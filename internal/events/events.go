package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types emitted by the journal services.
const (
	TypeSessionStarted      = "session.started"
	TypeSessionEnded        = "session.ended"
	TypeReflectionAdded     = "reflection.added"
	TypeGoalAdded           = "goal.added"
	TypeGoalProgressUpdated = "goal.progress_updated"
)

// JournalEvent records one change to a session's journal.
type JournalEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of the Type* constants
	Type string `json:"type"`

	// SessionID identifies the journal that changed
	SessionID uuid.UUID `json:"session_id"`

	// Payload contains type-specific data serialized as JSON
	Payload json.RawMessage `json:"payload,omitempty"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// ReflectionAddedPayload is the payload of TypeReflectionAdded.
// Free text is never included.
type ReflectionAddedPayload struct {
	Date         string `json:"date"`
	MindsetScore int    `json:"mindset_score"`
}

// GoalAddedPayload is the payload of TypeGoalAdded.
type GoalAddedPayload struct {
	Index  int       `json:"index"`
	GoalID uuid.UUID `json:"goal_id"`
}

// GoalProgressPayload is the payload of TypeGoalProgressUpdated.
type GoalProgressPayload struct {
	Index            int       `json:"index"`
	GoalID           uuid.UUID `json:"goal_id"`
	PreviousProgress int       `json:"previous_progress"`
	Progress         int       `json:"progress"`
}

// SessionEndedPayload is the payload of TypeSessionEnded.
type SessionEndedPayload struct {
	// Reason is "closed" or "expired"
	Reason string `json:"reason"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *JournalEvent) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewJournalEvent creates a new JournalEvent with the specified type and payload.
// A nil payload leaves Payload empty.
func NewJournalEvent(eventType string, sessionID uuid.UUID, payload interface{}) (*JournalEvent, error) {
	var payloadBytes json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		payloadBytes = b
	}

	return &JournalEvent{
		ID:        uuid.New(),
		Type:      eventType,
		SessionID: sessionID,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *JournalEvent) error
}

// EventHandlerFunc adapts a function to the EventHandler interface.
type EventHandlerFunc func(ctx context.Context, event *JournalEvent) error

// HandleEvent calls f(ctx, event).
func (f EventHandlerFunc) HandleEvent(ctx context.Context, event *JournalEvent) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *JournalEvent) error
}
