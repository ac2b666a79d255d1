package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/phrazzld/mindset-api/internal/domain"
	"github.com/phrazzld/mindset-api/internal/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticFetch(d query.Dashboard, err error) FetchFunc {
	return func(context.Context) (query.Dashboard, error) {
		return d, err
	}
}

func TestNewModel(t *testing.T) {
	model := NewModel(staticFetch(query.Dashboard{}, nil), 5*time.Second)
	assert.Equal(t, 5*time.Second, model.interval)
	assert.False(t, model.quitting)
	assert.NotNil(t, model.Init())
	assert.Contains(t, model.View(), "Loading")
}

func TestNewModel_ClampsInterval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		interval time.Duration
		want     time.Duration
	}{
		{name: "zero", interval: 0, want: MinInterval},
		{name: "negative", interval: -time.Second, want: MinInterval},
		{name: "too short", interval: time.Millisecond, want: MinInterval},
		{name: "accepted", interval: 3 * time.Second, want: 3 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			model := NewModel(staticFetch(query.Dashboard{}, nil), tt.interval)
			assert.Equal(t, tt.want, model.interval)
		})
	}
}

func TestModel_Update_QuitKey(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		model := NewModel(staticFetch(query.Dashboard{}, nil), time.Second)
		updated, cmd := model.Update(key)

		m := updated.(Model)
		assert.True(t, m.quitting)
		assert.NotNil(t, cmd)
		assert.Empty(t, m.View())
	}
}

func TestModel_Update_RefreshKey(t *testing.T) {
	model := NewModel(staticFetch(query.Dashboard{}, nil), time.Second)
	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	assert.False(t, updated.(Model).quitting)
	require.NotNil(t, cmd)
	_, ok := cmd().(dashboardMsg)
	assert.True(t, ok)
}

func TestModel_Update_Tick(t *testing.T) {
	model := NewModel(staticFetch(query.Dashboard{}, nil), time.Second)
	_, cmd := model.Update(tickMsg(time.Now()))
	assert.NotNil(t, cmd)
}

func TestModel_Update_Dashboard(t *testing.T) {
	model := NewModel(nil, time.Second)
	model.err = errors.New("stale")

	d := query.Dashboard{
		Series: []query.SeriesPoint{{Date: domain.MustParseDate("2024-01-01"), Score: 5}},
		Goals:  []query.GoalSummary{{Title: "Learn Rust", TargetDate: domain.MustParseDate("2024-12-31"), Progress: 40}},
	}
	updated, cmd := model.Update(dashboardMsg(d))

	m := updated.(Model)
	assert.Nil(t, cmd)
	assert.NoError(t, m.err)
	assert.True(t, m.loaded)
	assert.False(t, m.lastUpdate.IsZero())
	assert.Contains(t, m.View(), "Learn Rust")
}

func TestModel_Update_Error(t *testing.T) {
	model := NewModel(staticFetch(query.Dashboard{}, errors.New("connection refused")), time.Second)

	msg := fetchDashboard(model.fetch)()
	updated, cmd := model.Update(msg)

	m := updated.(Model)
	assert.Nil(t, cmd)
	require.Error(t, m.err)
	assert.Contains(t, m.View(), "connection refused")
}

func TestModel_Update_WindowSize(t *testing.T) {
	model := NewModel(nil, time.Second)
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 42, Height: 20})
	assert.Equal(t, 42, updated.(Model).width)
}
