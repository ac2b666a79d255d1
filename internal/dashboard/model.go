package dashboard

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/phrazzld/mindset-api/internal/query"
)

// FetchFunc loads the current dashboard.
type FetchFunc func(ctx context.Context) (query.Dashboard, error)

const fetchTimeout = 5 * time.Second

// MinInterval is the shortest refresh interval a Model accepts.
const MinInterval = time.Second

var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true)

// Model is a bubbletea model that keeps the dashboard up to date.
type Model struct {
	fetch      FetchFunc
	interval   time.Duration
	width      int
	dashboard  query.Dashboard
	loaded     bool
	lastUpdate time.Time
	err        error
	quitting   bool
}

// NewModel creates a Model refreshing every interval. Intervals shorter than
// MinInterval are raised to it.
func NewModel(fetch FetchFunc, interval time.Duration) Model {
	if interval < MinInterval {
		interval = MinInterval
	}
	return Model{
		fetch:    fetch,
		interval: interval,
	}
}

type tickMsg time.Time
type dashboardMsg query.Dashboard
type errMsg struct{ err error }

// Init starts the refresh loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(m.interval), fetchDashboard(m.fetch))
}

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchDashboard(fetch FetchFunc) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		d, err := fetch(ctx)
		if err != nil {
			return errMsg{err}
		}
		return dashboardMsg(d)
	}
}

// Update handles key presses, resizes, ticks and fetch results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "r":
			return m, fetchDashboard(m.fetch)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		return m, tea.Batch(tick(m.interval), fetchDashboard(m.fetch))

	case dashboardMsg:
		m.dashboard = query.Dashboard(msg)
		m.loaded = true
		m.lastUpdate = time.Now()
		m.err = nil
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// View renders the latest dashboard, or the last fetch error.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := dimStyle.Render("[q] quit  [r] refresh")
	if m.err != nil {
		return errorStyle.Render("Cannot load dashboard: "+m.err.Error()) + "\n\n" + footer + "\n"
	}
	if !m.loaded {
		return dimStyle.Render("Loading dashboard...") + "\n"
	}

	updated := dimStyle.Render("Updated " + m.lastUpdate.Format("15:04:05"))
	return Render(m.dashboard, m.width) + "\n" + updated + "  " + footer + "\n"
}
