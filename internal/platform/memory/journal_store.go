// Package memory provides the process-local implementation of store.JournalStore.
// Nothing it holds survives a restart.
package memory

import (
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/mindset-api/internal/domain"
	"github.com/phrazzld/mindset-api/internal/store"
)

// JournalStore keeps one session's records in ordered slices.
type JournalStore struct {
	mu           sync.RWMutex
	reflections  []domain.Reflection
	goals        []domain.Goal
	achievements []domain.Achievement
}

// NewJournalStore returns an empty store.
func NewJournalStore() *JournalStore {
	return &JournalStore{
		reflections:  make([]domain.Reflection, 0),
		goals:        make([]domain.Goal, 0),
		achievements: make([]domain.Achievement, 0),
	}
}

var _ store.JournalStore = (*JournalStore)(nil)

// AddReflection implements store.JournalStore.
func (s *JournalStore) AddReflection(r domain.Reflection) error {
	if err := r.Validate(); err != nil {
		return store.InvalidEntity("reflection", "add", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reflections = append(s.reflections, r)
	return nil
}

// AddGoal implements store.JournalStore.
func (s *JournalStore) AddGoal(title, description string, targetDate domain.Date) (int, error) {
	goal, err := domain.NewGoal(title, description, targetDate)
	if err != nil {
		return -1, store.InvalidEntity("goal", "add", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = append(s.goals, *goal)
	return len(s.goals) - 1, nil
}

// UpdateGoalProgress implements store.JournalStore.
func (s *JournalStore) UpdateGoalProgress(index, progress int) error {
	_, err := s.SwapGoalProgress(index, progress)
	return err
}

// SwapGoalProgress implements store.JournalStore.
func (s *JournalStore) SwapGoalProgress(index, progress int) (domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.goals) {
		return domain.Goal{}, store.NewStoreError("goal", "update_progress", "no goal at index", store.ErrGoalIndexOutOfRange)
	}

	previous := s.goals[index]
	if err := s.goals[index].SetProgress(progress); err != nil {
		return domain.Goal{}, store.InvalidValue("goal", "update_progress", err)
	}
	return previous, nil
}

// GoalIndexByID implements store.JournalStore.
func (s *JournalStore) GoalIndexByID(id uuid.UUID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.goals {
		if s.goals[i].ID == id {
			return i, nil
		}
	}
	return -1, store.ErrGoalNotFound
}

// ListReflections implements store.JournalStore.
func (s *JournalStore) ListReflections() []domain.Reflection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Reflection{}, s.reflections...)
}

// ListGoals implements store.JournalStore.
func (s *JournalStore) ListGoals() []domain.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Goal{}, s.goals...)
}

// ListAchievements implements store.JournalStore.
func (s *JournalStore) ListAchievements() []domain.Achievement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Achievement{}, s.achievements...)
}

// Snapshot implements store.JournalStore.
func (s *JournalStore) Snapshot() store.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return store.Snapshot{
		Reflections:  append([]domain.Reflection{}, s.reflections...),
		Goals:        append([]domain.Goal{}, s.goals...),
		Achievements: append([]domain.Achievement{}, s.achievements...),
	}
}
