// Package query derives presentation-ready views from a journal without
// modifying it. Every function is a pure projection of the records it reads.
package query

import (
	"github.com/google/uuid"
	"github.com/phrazzld/mindset-api/internal/domain"
)

// Source is the read side of a journal store.
type Source interface {
	ListReflections() []domain.Reflection
	ListGoals() []domain.Goal
}

// SeriesPoint is one (date, score) pair of the mindset chart.
type SeriesPoint struct {
	Date  domain.Date `json:"date"`
	Score int         `json:"score"`
}

// GoalSummary is the dashboard view of a goal.
type GoalSummary struct {
	Index      int         `json:"index"`
	ID         uuid.UUID   `json:"id"`
	Title      string      `json:"title"`
	TargetDate domain.Date `json:"target_date"`
	Progress   int         `json:"progress"`
	Completed  bool        `json:"completed"`
}

// Dashboard combines the mindset chart and the goal list.
type Dashboard struct {
	Series []SeriesPoint `json:"series"`
	Goals  []GoalSummary `json:"goals"`
}

// MindsetSeries returns one point per reflection in the order the reflections
// were added. Points are not sorted by date: a journal written out of order
// yields a non-monotonic series.
func MindsetSeries(src Source) []SeriesPoint {
	reflections := src.ListReflections()
	series := make([]SeriesPoint, 0, len(reflections))
	for _, r := range reflections {
		series = append(series, SeriesPoint{Date: r.Date, Score: r.MindsetScore})
	}
	return series
}

// GoalSummaries returns one summary per goal in insertion order.
func GoalSummaries(src Source) []GoalSummary {
	goals := src.ListGoals()
	summaries := make([]GoalSummary, 0, len(goals))
	for i, g := range goals {
		summaries = append(summaries, GoalSummary{
			Index:      i,
			ID:         g.ID,
			Title:      g.Title,
			TargetDate: g.TargetDate,
			Progress:   g.Progress,
			Completed:  g.Completed(),
		})
	}
	return summaries
}

// BuildDashboard returns both projections.
func BuildDashboard(src Source) Dashboard {
	return Dashboard{
		Series: MindsetSeries(src),
		Goals:  GoalSummaries(src),
	}
}

// Scores returns the series values as float64, the form chart widgets consume.
func Scores(series []SeriesPoint) []float64 {
	out := make([]float64, len(series))
	for i, p := range series {
		out[i] = float64(p.Score)
	}
	return out
}
