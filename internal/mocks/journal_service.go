package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/mindset-api/internal/domain"
	"github.com/phrazzld/mindset-api/internal/query"
	"github.com/phrazzld/mindset-api/internal/service"
	"github.com/phrazzld/mindset-api/internal/store"
)

var _ service.JournalService = (*MockJournalService)(nil)

// MockJournalService implements service.JournalService for testing.
type MockJournalService struct {
	callLog

	AddReflectionFn          func(ctx context.Context, sessionID uuid.UUID, in service.ReflectionInput) (*domain.Reflection, error)
	ListReflectionsFn        func(ctx context.Context, sessionID uuid.UUID) ([]domain.Reflection, error)
	AddGoalFn                func(ctx context.Context, sessionID uuid.UUID, in service.GoalInput) (int, *domain.Goal, error)
	ListGoalsFn              func(ctx context.Context, sessionID uuid.UUID) ([]domain.Goal, error)
	UpdateGoalProgressFn     func(ctx context.Context, sessionID uuid.UUID, index, progress int) (*domain.Goal, error)
	UpdateGoalProgressByIDFn func(ctx context.Context, sessionID, goalID uuid.UUID, progress int) (*domain.Goal, error)
	ListAchievementsFn       func(ctx context.Context, sessionID uuid.UUID) ([]domain.Achievement, error)
	MindsetSeriesFn          func(ctx context.Context, sessionID uuid.UUID) ([]query.SeriesPoint, error)
	GoalSummariesFn          func(ctx context.Context, sessionID uuid.UUID) ([]query.GoalSummary, error)
	DashboardFn              func(ctx context.Context, sessionID uuid.UUID) (query.Dashboard, error)
	ExportFn                 func(ctx context.Context, sessionID uuid.UUID) (store.Snapshot, error)

	// Err is returned by methods without a custom function.
	Err error
}

func (m *MockJournalService) AddReflection(
	ctx context.Context,
	sessionID uuid.UUID,
	in service.ReflectionInput,
) (*domain.Reflection, error) {
	m.record("AddReflection")
	if m.AddReflectionFn != nil {
		return m.AddReflectionFn(ctx, sessionID, in)
	}
	return nil, m.Err
}

func (m *MockJournalService) ListReflections(ctx context.Context, sessionID uuid.UUID) ([]domain.Reflection, error) {
	m.record("ListReflections")
	if m.ListReflectionsFn != nil {
		return m.ListReflectionsFn(ctx, sessionID)
	}
	return nil, m.Err
}

func (m *MockJournalService) AddGoal(
	ctx context.Context,
	sessionID uuid.UUID,
	in service.GoalInput,
) (int, *domain.Goal, error) {
	m.record("AddGoal")
	if m.AddGoalFn != nil {
		return m.AddGoalFn(ctx, sessionID, in)
	}
	return -1, nil, m.Err
}

func (m *MockJournalService) ListGoals(ctx context.Context, sessionID uuid.UUID) ([]domain.Goal, error) {
	m.record("ListGoals")
	if m.ListGoalsFn != nil {
		return m.ListGoalsFn(ctx, sessionID)
	}
	return nil, m.Err
}

func (m *MockJournalService) UpdateGoalProgress(
	ctx context.Context,
	sessionID uuid.UUID,
	index, progress int,
) (*domain.Goal, error) {
	m.record("UpdateGoalProgress")
	if m.UpdateGoalProgressFn != nil {
		return m.UpdateGoalProgressFn(ctx, sessionID, index, progress)
	}
	return nil, m.Err
}

func (m *MockJournalService) UpdateGoalProgressByID(
	ctx context.Context,
	sessionID, goalID uuid.UUID,
	progress int,
) (*domain.Goal, error) {
	m.record("UpdateGoalProgressByID")
	if m.UpdateGoalProgressByIDFn != nil {
		return m.UpdateGoalProgressByIDFn(ctx, sessionID, goalID, progress)
	}
	return nil, m.Err
}

func (m *MockJournalService) ListAchievements(ctx context.Context, sessionID uuid.UUID) ([]domain.Achievement, error) {
	m.record("ListAchievements")
	if m.ListAchievementsFn != nil {
		return m.ListAchievementsFn(ctx, sessionID)
	}
	return nil, m.Err
}

func (m *MockJournalService) MindsetSeries(ctx context.Context, sessionID uuid.UUID) ([]query.SeriesPoint, error) {
	m.record("MindsetSeries")
	if m.MindsetSeriesFn != nil {
		return m.MindsetSeriesFn(ctx, sessionID)
	}
	return nil, m.Err
}

func (m *MockJournalService) GoalSummaries(ctx context.Context, sessionID uuid.UUID) ([]query.GoalSummary, error) {
	m.record("GoalSummaries")
	if m.GoalSummariesFn != nil {
		return m.GoalSummariesFn(ctx, sessionID)
	}
	return nil, m.Err
}

func (m *MockJournalService) Dashboard(ctx context.Context, sessionID uuid.UUID) (query.Dashboard, error) {
	m.record("Dashboard")
	if m.DashboardFn != nil {
		return m.DashboardFn(ctx, sessionID)
	}
	return query.Dashboard{}, m.Err
}

func (m *MockJournalService) Export(ctx context.Context, sessionID uuid.UUID) (store.Snapshot, error) {
	m.record("Export")
	if m.ExportFn != nil {
		return m.ExportFn(ctx, sessionID)
	}
	return store.Snapshot{}, m.Err
}
