package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/mindset-api/internal/events"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emit(t *testing.T, m *Metrics, eventType string) {
	t.Helper()
	event, err := events.NewJournalEvent(eventType, uuid.New(), nil)
	require.NoError(t, err)
	require.NoError(t, m.HandleEvent(context.Background(), event))
}

func TestMetrics_HandleEvent(t *testing.T) {
	t.Parallel()
	m := New()

	emit(t, m, events.TypeReflectionAdded)
	emit(t, m, events.TypeReflectionAdded)
	emit(t, m, events.TypeGoalAdded)
	emit(t, m, events.TypeGoalProgressUpdated)
	emit(t, m, events.TypeSessionStarted)
	emit(t, m, events.TypeSessionStarted)
	emit(t, m, events.TypeSessionEnded)
	emit(t, m, "unknown.type")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.reflectionsAdded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.goalsAdded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.progressUpdates))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.activeSessions))
}

func TestMetrics_Counters(t *testing.T) {
	t.Parallel()
	m := New()

	m.RecordStoreError("update_goal_progress")
	m.RecordStoreError("update_goal_progress")
	m.ObserveRequest(http.MethodGet, "/api/goals", http.StatusOK)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.storeErrors.WithLabelValues("update_goal_progress")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/goals", "200")))
}

func TestMetrics_Handler(t *testing.T) {
	t.Parallel()
	m := New()
	emit(t, m, events.TypeGoalAdded)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mindset_goals_added_total 1")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
