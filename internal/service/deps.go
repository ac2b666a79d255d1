package service

import (
	"github.com/google/uuid"
	"github.com/phrazzld/mindset-api/internal/store"
)

// SessionStores resolves sessions to their journal stores.
// *session.Registry satisfies it.
type SessionStores interface {
	// Create opens a new session with an empty store.
	Create() (uuid.UUID, store.JournalStore, error)

	// Get returns the store of an open session.
	Get(id uuid.UUID) (store.JournalStore, error)

	// End closes a session and discards its store.
	End(id uuid.UUID) error
}

// ErrorRecorder counts rejected operations. *metrics.Metrics satisfies it.
type ErrorRecorder interface {
	RecordStoreError(operation string)
}

type nopRecorder struct{}

func (nopRecorder) RecordStoreError(string) {}
