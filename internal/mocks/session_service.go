package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/mindset-api/internal/service"
)

var _ service.SessionService = (*MockSessionService)(nil)

// MockSessionService implements service.SessionService for testing.
type MockSessionService struct {
	callLog

	StartFn func(ctx context.Context) (uuid.UUID, error)
	EndFn   func(ctx context.Context, id uuid.UUID) error

	// SessionID is returned by Start when StartFn is nil.
	SessionID uuid.UUID
	Err       error
}

func (m *MockSessionService) Start(ctx context.Context) (uuid.UUID, error) {
	m.record("Start")
	if m.StartFn != nil {
		return m.StartFn(ctx)
	}
	return m.SessionID, m.Err
}

func (m *MockSessionService) End(ctx context.Context, id uuid.UUID) error {
	m.record("End")
	if m.EndFn != nil {
		return m.EndFn(ctx, id)
	}
	return m.Err
}
