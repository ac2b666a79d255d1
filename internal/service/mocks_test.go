package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/mindset-api/internal/events"
	"github.com/phrazzld/mindset-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockSessionStores mocks the SessionStores interface
type MockSessionStores struct {
	mock.Mock
}

func (m *MockSessionStores) Create() (uuid.UUID, store.JournalStore, error) {
	args := m.Called()
	st, _ := args.Get(1).(store.JournalStore)
	return args.Get(0).(uuid.UUID), st, args.Error(2)
}

func (m *MockSessionStores) Get(id uuid.UUID) (store.JournalStore, error) {
	args := m.Called(id)
	st, _ := args.Get(0).(store.JournalStore)
	return st, args.Error(1)
}

func (m *MockSessionStores) End(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockEventEmitter mocks the events.EventEmitter interface
type MockEventEmitter struct {
	mock.Mock
}

func (m *MockEventEmitter) EmitEvent(ctx context.Context, event *events.JournalEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockErrorRecorder mocks the ErrorRecorder interface
type MockErrorRecorder struct {
	mock.Mock
}

func (m *MockErrorRecorder) RecordStoreError(operation string) {
	m.Called(operation)
}

// eventOfType matches an emitted event by type and session.
func eventOfType(eventType string, sessionID uuid.UUID) interface{} {
	return mock.MatchedBy(func(e *events.JournalEvent) bool {
		return e.Type == eventType && e.SessionID == sessionID
	})
}
