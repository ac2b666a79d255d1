// Package mocks provides shared mock implementations of the service
// interfaces for handler and middleware tests.
//
// Each mock has a function field per interface method. A method whose field
// is nil returns the mock's zero values and Err.
//
//	journal := &mocks.MockJournalService{
//	    ListGoalsFn: func(ctx context.Context, sessionID uuid.UUID) ([]domain.Goal, error) {
//	        return nil, service.ErrSessionNotFound
//	    },
//	}
package mocks
