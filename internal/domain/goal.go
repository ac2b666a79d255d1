package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Goal progress bounds, inclusive.
const (
	MinProgress = 0
	MaxProgress = 100
)

// Goal validation errors
var (
	// ErrGoalIDEmpty is returned when a goal has a nil ID.
	ErrGoalIDEmpty = fmt.Errorf("%w: goal ID cannot be empty", ErrValidation)

	// ErrGoalTitleEmpty is returned when a goal title is empty or only whitespace.
	ErrGoalTitleEmpty = fmt.Errorf("%w: goal title", ErrEmptyRequiredField)

	// ErrGoalTargetDateEmpty is returned when a goal has no target date.
	ErrGoalTargetDateEmpty = fmt.Errorf("%w: goal target date", ErrEmptyRequiredField)

	// ErrProgressOutOfRange is returned when progress is outside [0,100].
	ErrProgressOutOfRange = fmt.Errorf(
		"%w: progress must be between %d and %d",
		ErrOutOfRange, MinProgress, MaxProgress,
	)
)

// Goal is a tracked objective with a completion percentage.
//
// Title is a display key only and need not be unique. ID is generated at
// creation and never changes, so it stays valid even if goals are ever
// reordered; positional addressing is still the primary way to update one.
type Goal struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TargetDate  Date      `json:"target_date"`
	Progress    int       `json:"progress"`
}

// NewGoal creates a Goal with zero progress and a fresh ID.
// Returns an error if validation fails.
func NewGoal(title, description string, targetDate Date) (*Goal, error) {
	g := &Goal{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		TargetDate:  targetDate,
		Progress:    MinProgress,
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// Validate checks if the Goal has valid data.
func (g *Goal) Validate() error {
	if g.ID == uuid.Nil {
		return ErrGoalIDEmpty
	}

	if strings.TrimSpace(g.Title) == "" {
		return ErrGoalTitleEmpty
	}

	if g.TargetDate.IsZero() {
		return ErrGoalTargetDateEmpty
	}

	if !ValidProgress(g.Progress) {
		return ErrProgressOutOfRange
	}

	return nil
}

// SetProgress overwrites the goal's progress. On error the goal is unchanged.
func (g *Goal) SetProgress(progress int) error {
	if !ValidProgress(progress) {
		return ErrProgressOutOfRange
	}

	g.Progress = progress
	return nil
}

// Completed reports whether the goal has reached 100%.
func (g *Goal) Completed() bool {
	return g.Progress == MaxProgress
}

// ValidProgress reports whether progress is within [MinProgress, MaxProgress].
func ValidProgress(progress int) bool {
	return progress >= MinProgress && progress <= MaxProgress
}
