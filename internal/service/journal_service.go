package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/mindset-api/internal/domain"
	"github.com/phrazzld/mindset-api/internal/events"
	"github.com/phrazzld/mindset-api/internal/query"
	"github.com/phrazzld/mindset-api/internal/session"
	"github.com/phrazzld/mindset-api/internal/store"
)

// ReflectionInput carries the fields of a new reflection.
type ReflectionInput struct {
	Date         domain.Date
	MindsetScore int
	Challenges   string
	Learnings    string
}

// GoalInput carries the fields of a new goal.
type GoalInput struct {
	Title       string
	Description string
	TargetDate  domain.Date
}

// JournalService provides the journal operations of one session.
type JournalService interface {
	// AddReflection appends a reflection to the session's journal.
	AddReflection(ctx context.Context, sessionID uuid.UUID, in ReflectionInput) (*domain.Reflection, error)

	// ListReflections returns the session's reflections in insertion order.
	ListReflections(ctx context.Context, sessionID uuid.UUID) ([]domain.Reflection, error)

	// AddGoal appends a goal with zero progress and returns its index.
	AddGoal(ctx context.Context, sessionID uuid.UUID, in GoalInput) (int, *domain.Goal, error)

	// ListGoals returns the session's goals in insertion order.
	ListGoals(ctx context.Context, sessionID uuid.UUID) ([]domain.Goal, error)

	// UpdateGoalProgress sets the progress of the goal at index.
	UpdateGoalProgress(ctx context.Context, sessionID uuid.UUID, index, progress int) (*domain.Goal, error)

	// UpdateGoalProgressByID sets the progress of the goal with the given ID.
	UpdateGoalProgressByID(ctx context.Context, sessionID, goalID uuid.UUID, progress int) (*domain.Goal, error)

	// ListAchievements returns the session's achievements.
	ListAchievements(ctx context.Context, sessionID uuid.UUID) ([]domain.Achievement, error)

	// MindsetSeries returns the (date, score) chart series.
	MindsetSeries(ctx context.Context, sessionID uuid.UUID) ([]query.SeriesPoint, error)

	// GoalSummaries returns the dashboard view of each goal.
	GoalSummaries(ctx context.Context, sessionID uuid.UUID) ([]query.GoalSummary, error)

	// Dashboard returns the series and goal summaries together.
	Dashboard(ctx context.Context, sessionID uuid.UUID) (query.Dashboard, error)

	// Export returns the whole journal.
	Export(ctx context.Context, sessionID uuid.UUID) (store.Snapshot, error)
}

type journalServiceImpl struct {
	sessions     SessionStores
	eventEmitter events.EventEmitter
	recorder     ErrorRecorder
	logger       *slog.Logger
}

// NewJournalService creates a new JournalService.
// It returns an error if sessions or eventEmitter is nil. A nil recorder
// disables error counting; a nil logger falls back to slog.Default.
func NewJournalService(
	sessions SessionStores,
	eventEmitter events.EventEmitter,
	recorder ErrorRecorder,
	logger *slog.Logger,
) (JournalService, error) {
	if sessions == nil {
		return nil, &JournalServiceError{
			Operation: "create_service",
			Message:   "sessions cannot be nil",
		}
	}
	if eventEmitter == nil {
		return nil, &JournalServiceError{
			Operation: "create_service",
			Message:   "eventEmitter cannot be nil",
		}
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &journalServiceImpl{
		sessions:     sessions,
		eventEmitter: eventEmitter,
		recorder:     recorder,
		logger:       logger.With("component", "journal_service"),
	}, nil
}

func (s *journalServiceImpl) store(ctx context.Context, op string, sessionID uuid.UUID) (store.JournalStore, error) {
	st, err := s.sessions.Get(sessionID)
	if err != nil {
		if !errors.Is(err, session.ErrSessionNotFound) {
			s.logger.ErrorContext(ctx, "failed to resolve session",
				"error", err,
				"operation", op,
				"session_id", sessionID)
		}
		return nil, NewJournalServiceError(op, "failed to resolve session", err)
	}
	return st, nil
}

// rejected records and logs an operation the store refused.
func (s *journalServiceImpl) rejected(ctx context.Context, op string, sessionID uuid.UUID, err error) {
	s.recorder.RecordStoreError(op)
	s.logger.InfoContext(ctx, "journal operation rejected",
		"error", err,
		"operation", op,
		"session_id", sessionID)
}

// AddReflection implements JournalService.
func (s *journalServiceImpl) AddReflection(
	ctx context.Context,
	sessionID uuid.UUID,
	in ReflectionInput,
) (*domain.Reflection, error) {
	const op = "add_reflection"

	st, err := s.store(ctx, op, sessionID)
	if err != nil {
		return nil, err
	}

	reflection := domain.Reflection{
		Date:         in.Date,
		MindsetScore: in.MindsetScore,
		Challenges:   in.Challenges,
		Learnings:    in.Learnings,
	}
	if err := st.AddReflection(reflection); err != nil {
		s.rejected(ctx, op, sessionID, err)
		return nil, NewJournalServiceError(op, "failed to add reflection", err)
	}

	// Free text stays out of logs; only its size is recorded.
	s.logger.InfoContext(ctx, "reflection added",
		"session_id", sessionID,
		"date", reflection.Date.String(),
		"mindset_score", reflection.MindsetScore,
		"challenges_len", len(reflection.Challenges),
		"learnings_len", len(reflection.Learnings))

	emit(ctx, s.eventEmitter, s.logger, events.TypeReflectionAdded, sessionID, events.ReflectionAddedPayload{
		Date:         reflection.Date.String(),
		MindsetScore: reflection.MindsetScore,
	})

	return &reflection, nil
}

// ListReflections implements JournalService.
func (s *journalServiceImpl) ListReflections(ctx context.Context, sessionID uuid.UUID) ([]domain.Reflection, error) {
	st, err := s.store(ctx, "list_reflections", sessionID)
	if err != nil {
		return nil, err
	}
	return st.ListReflections(), nil
}

// AddGoal implements JournalService.
func (s *journalServiceImpl) AddGoal(
	ctx context.Context,
	sessionID uuid.UUID,
	in GoalInput,
) (int, *domain.Goal, error) {
	const op = "add_goal"

	st, err := s.store(ctx, op, sessionID)
	if err != nil {
		return -1, nil, err
	}

	index, err := st.AddGoal(in.Title, in.Description, in.TargetDate)
	if err != nil {
		s.rejected(ctx, op, sessionID, err)
		return -1, nil, NewJournalServiceError(op, "failed to add goal", err)
	}

	goals := st.ListGoals()
	if index < 0 || index >= len(goals) {
		s.logger.ErrorContext(ctx, "added goal missing from store",
			"session_id", sessionID,
			"index", index,
			"goal_count", len(goals))
		return -1, nil, NewJournalServiceError(op, "added goal not found", store.ErrNotFound)
	}
	goal := goals[index]

	s.logger.InfoContext(ctx, "goal added",
		"session_id", sessionID,
		"goal_id", goal.ID,
		"index", index,
		"title_len", len(goal.Title))

	emit(ctx, s.eventEmitter, s.logger, events.TypeGoalAdded, sessionID, events.GoalAddedPayload{
		Index:  index,
		GoalID: goal.ID,
	})

	return index, &goal, nil
}

// ListGoals implements JournalService.
func (s *journalServiceImpl) ListGoals(ctx context.Context, sessionID uuid.UUID) ([]domain.Goal, error) {
	st, err := s.store(ctx, "list_goals", sessionID)
	if err != nil {
		return nil, err
	}
	return st.ListGoals(), nil
}

// UpdateGoalProgress implements JournalService.
func (s *journalServiceImpl) UpdateGoalProgress(
	ctx context.Context,
	sessionID uuid.UUID,
	index, progress int,
) (*domain.Goal, error) {
	const op = "update_goal_progress"

	st, err := s.store(ctx, op, sessionID)
	if err != nil {
		return nil, err
	}
	return s.updateProgress(ctx, op, sessionID, st, index, progress)
}

// UpdateGoalProgressByID implements JournalService.
func (s *journalServiceImpl) UpdateGoalProgressByID(
	ctx context.Context,
	sessionID, goalID uuid.UUID,
	progress int,
) (*domain.Goal, error) {
	const op = "update_goal_progress_by_id"

	st, err := s.store(ctx, op, sessionID)
	if err != nil {
		return nil, err
	}

	index, err := st.GoalIndexByID(goalID)
	if err != nil {
		s.rejected(ctx, op, sessionID, err)
		return nil, NewJournalServiceError(op, "failed to find goal", err)
	}
	return s.updateProgress(ctx, op, sessionID, st, index, progress)
}

func (s *journalServiceImpl) updateProgress(
	ctx context.Context,
	op string,
	sessionID uuid.UUID,
	st store.JournalStore,
	index, progress int,
) (*domain.Goal, error) {
	before, err := st.SwapGoalProgress(index, progress)
	if err != nil {
		s.rejected(ctx, op, sessionID, err)
		return nil, NewJournalServiceError(op, "failed to update goal progress", err)
	}
	previous := before.Progress

	goal := before
	goal.Progress = progress

	s.logger.InfoContext(ctx, "goal progress updated",
		"session_id", sessionID,
		"goal_id", goal.ID,
		"index", index,
		"previous_progress", previous,
		"progress", goal.Progress)

	emit(ctx, s.eventEmitter, s.logger, events.TypeGoalProgressUpdated, sessionID, events.GoalProgressPayload{
		Index:            index,
		GoalID:           goal.ID,
		PreviousProgress: previous,
		Progress:         goal.Progress,
	})

	return &goal, nil
}

// ListAchievements implements JournalService.
func (s *journalServiceImpl) ListAchievements(ctx context.Context, sessionID uuid.UUID) ([]domain.Achievement, error) {
	st, err := s.store(ctx, "list_achievements", sessionID)
	if err != nil {
		return nil, err
	}
	return st.ListAchievements(), nil
}

// MindsetSeries implements JournalService.
func (s *journalServiceImpl) MindsetSeries(ctx context.Context, sessionID uuid.UUID) ([]query.SeriesPoint, error) {
	st, err := s.store(ctx, "mindset_series", sessionID)
	if err != nil {
		return nil, err
	}
	return query.MindsetSeries(st), nil
}

// GoalSummaries implements JournalService.
func (s *journalServiceImpl) GoalSummaries(ctx context.Context, sessionID uuid.UUID) ([]query.GoalSummary, error) {
	st, err := s.store(ctx, "goal_summaries", sessionID)
	if err != nil {
		return nil, err
	}
	return query.GoalSummaries(st), nil
}

// Dashboard implements JournalService.
func (s *journalServiceImpl) Dashboard(ctx context.Context, sessionID uuid.UUID) (query.Dashboard, error) {
	st, err := s.store(ctx, "dashboard", sessionID)
	if err != nil {
		return query.Dashboard{}, err
	}
	return query.BuildDashboard(st), nil
}

// Export implements JournalService.
func (s *journalServiceImpl) Export(ctx context.Context, sessionID uuid.UUID) (store.Snapshot, error) {
	st, err := s.store(ctx, "export", sessionID)
	if err != nil {
		return store.Snapshot{}, err
	}
	return st.Snapshot(), nil
}
