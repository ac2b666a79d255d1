package store

import (
	"github.com/google/uuid"
	"github.com/phrazzld/mindset-api/internal/domain"
)

// Snapshot is the full content of one journal: the three record sequences in
// insertion order. Its JSON form is one object per record.
type Snapshot struct {
	Reflections  []domain.Reflection  `json:"reflections"`
	Goals        []domain.Goal        `json:"goals"`
	Achievements []domain.Achievement `json:"achievements"`
}

// JournalStore holds one session's reflections, goals and achievements.
//
// Sequences are append-only. The only in-place mutation is a goal's progress,
// addressed by the goal's position; positions are stable because records are
// never deleted or reordered. Deletion is deliberately not part of the contract.
//
// Reads return copies: callers may modify returned slices freely.
type JournalStore interface {
	// AddReflection appends r. It never sorts; chronological order holds only
	// if callers add reflections in date order.
	// Returns ErrInvalidEntity (wrapping the domain error) if r is invalid.
	AddReflection(r domain.Reflection) error

	// AddGoal creates a goal with zero progress, appends it and returns its index.
	// Returns ErrInvalidEntity wrapping domain.ErrGoalTitleEmpty for an empty title.
	AddGoal(title, description string, targetDate domain.Date) (int, error)

	// UpdateGoalProgress overwrites the progress of the goal at index.
	// Returns ErrGoalIndexOutOfRange for an invalid index and ErrInvalidValue
	// (wrapping domain.ErrProgressOutOfRange) for progress outside [0,100].
	// On error nothing changes.
	UpdateGoalProgress(index, progress int) error

	// SwapGoalProgress is UpdateGoalProgress that also returns the goal as it
	// was immediately before the update, read under the same lock.
	SwapGoalProgress(index, progress int) (domain.Goal, error)

	// GoalIndexByID returns the current position of the goal with id.
	// Returns ErrGoalNotFound if no goal has that ID.
	GoalIndexByID(id uuid.UUID) (int, error)

	// ListReflections returns all reflections in insertion order.
	ListReflections() []domain.Reflection

	// ListGoals returns all goals in insertion order; a goal's index is its position.
	ListGoals() []domain.Goal

	// ListAchievements returns the achievements sequence, which nothing populates yet.
	ListAchievements() []domain.Achievement

	// Snapshot returns copies of all three sequences taken atomically.
	Snapshot() Snapshot
}
