// Package dashboard renders the journal dashboard for terminals: the mindset
// series as a sparkline and each goal with a progress bar.
package dashboard

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/phrazzld/mindset-api/internal/domain"
	"github.com/phrazzld/mindset-api/internal/query"
)

// Messages shown for empty panels.
const (
	EmptySeriesMessage = "Start adding daily reflections to see your progress!"
	EmptyGoalsMessage  = "Set your first goal to start tracking it here!"
)

const (
	minWidth        = 20
	maxWidth        = 80
	defaultWidth    = 60
	sparklineHeight = 4
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("42")).
			Bold(true).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	sparklineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)
)

// Render draws d at the given terminal width. A width of 0 or less uses a default.
func Render(d query.Dashboard, width int) string {
	width = clampWidth(width)

	var b strings.Builder
	b.WriteString(headerStyle.Render("Growth Mindset Journey"))
	b.WriteString("\n")
	b.WriteString(renderSeries(d.Series, width))
	b.WriteString("\n")
	b.WriteString(renderGoals(d.Goals, width))
	return b.String()
}

func clampWidth(width int) int {
	switch {
	case width <= 0:
		return defaultWidth
	case width < minWidth:
		return minWidth
	case width > maxWidth:
		return maxWidth
	default:
		return width
	}
}

func renderSeries(series []query.SeriesPoint, width int) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Your Growth Journey"))
	b.WriteString("\n")

	if len(series) == 0 {
		b.WriteString(dimStyle.Render(EmptySeriesMessage))
		b.WriteString("\n")
		return b.String()
	}

	spark := sparkline.New(width, sparklineHeight)
	for _, v := range query.Scores(series) {
		spark.Push(v)
	}
	spark.Draw()
	b.WriteString(sparklineStyle.Render(spark.View()))
	b.WriteString("\n")

	earliest, latest := dateRange(series)
	last := series[len(series)-1]
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s → %s", earliest, latest)))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Latest: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d/%d", last.Score, domain.MaxMindsetScore)))
	b.WriteString(labelStyle.Render("  Average: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.1f", average(series))))
	b.WriteString(labelStyle.Render("  Reflections: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d", len(series))))
	b.WriteString("\n")
	return b.String()
}

func renderGoals(goals []query.GoalSummary, width int) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Active Goals"))
	b.WriteString("\n")

	if len(goals) == 0 {
		b.WriteString(dimStyle.Render(EmptyGoalsMessage))
		b.WriteString("\n")
		return b.String()
	}

	bar := progress.New(
		progress.WithGradient("#5A56E0", "#00D787"),
		progress.WithWidth(width),
	)

	for _, g := range goals {
		title := valueStyle.Render(fmt.Sprintf("[%d] %s", g.Index, g.Title))
		if g.Completed {
			title += " " + doneStyle.Render("✓")
		}
		b.WriteString(title)
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Target Date: " + g.TargetDate.String()))
		b.WriteString("\n")
		b.WriteString(bar.ViewAs(float64(g.Progress) / float64(domain.MaxProgress)))
		b.WriteString("\n")
	}
	return b.String()
}

// dateRange returns the earliest and latest dates in series, which need not
// be in date order.
func dateRange(series []query.SeriesPoint) (domain.Date, domain.Date) {
	earliest, latest := series[0].Date, series[0].Date
	for _, p := range series[1:] {
		if p.Date.Before(earliest) {
			earliest = p.Date
		}
		if latest.Before(p.Date) {
			latest = p.Date
		}
	}
	return earliest, latest
}

func average(series []query.SeriesPoint) float64 {
	if len(series) == 0 {
		return 0
	}
	sum := 0
	for _, p := range series {
		sum += p.Score
	}
	return float64(sum) / float64(len(series))
}
