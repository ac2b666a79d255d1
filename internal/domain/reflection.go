package domain

import "fmt"

// Mindset score bounds, inclusive.
const (
	MinMindsetScore = 1
	MaxMindsetScore = 10

	// DefaultMindsetScore is used when a new reflection omits its score.
	DefaultMindsetScore = 5
)

// Reflection validation errors
var (
	// ErrMindsetScoreOutOfRange is returned when a mindset score is outside [1,10].
	ErrMindsetScoreOutOfRange = fmt.Errorf(
		"%w: mindset score must be between %d and %d",
		ErrOutOfRange, MinMindsetScore, MaxMindsetScore,
	)

	// ErrReflectionDateEmpty is returned when a reflection has no date.
	ErrReflectionDateEmpty = fmt.Errorf("%w: reflection date", ErrEmptyRequiredField)
)

// Reflection is a single dated self-assessment. Several reflections may share
// a date; the journal keeps them in the order they were written.
type Reflection struct {
	Date         Date   `json:"date"`
	MindsetScore int    `json:"mindset_score"`
	Challenges   string `json:"challenges"`
	Learnings    string `json:"learnings"`
}

// NewReflection creates a Reflection and validates it.
func NewReflection(date Date, mindsetScore int, challenges, learnings string) (*Reflection, error) {
	r := &Reflection{
		Date:         date,
		MindsetScore: mindsetScore,
		Challenges:   challenges,
		Learnings:    learnings,
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate checks the reflection's date and score. Free text may be empty.
func (r *Reflection) Validate() error {
	if r.Date.IsZero() {
		return ErrReflectionDateEmpty
	}

	if !ValidMindsetScore(r.MindsetScore) {
		return ErrMindsetScoreOutOfRange
	}

	return nil
}

// ValidMindsetScore reports whether score is within [MinMindsetScore, MaxMindsetScore].
func ValidMindsetScore(score int) bool {
	return score >= MinMindsetScore && score <= MaxMindsetScore
}
