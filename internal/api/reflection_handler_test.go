package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/mindset-api/internal/domain"
	"github.com/phrazzld/mindset-api/internal/mocks"
	"github.com/phrazzld/mindset-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReflectionHandler_Create(t *testing.T) {
	t.Parallel()
	sessionID := uuid.New()

	echo := func(captured *service.ReflectionInput) func(context.Context, uuid.UUID, service.ReflectionInput) (*domain.Reflection, error) {
		return func(_ context.Context, _ uuid.UUID, in service.ReflectionInput) (*domain.Reflection, error) {
			*captured = in
			return &domain.Reflection{
				Date:         in.Date,
				MindsetScore: in.MindsetScore,
				Challenges:   in.Challenges,
				Learnings:    in.Learnings,
			}, nil
		}
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		var captured service.ReflectionInput
		journal := &mocks.MockJournalService{}
		journal.AddReflectionFn = echo(&captured)

		w := doRequest(t, newTestRouter(t, journal, sessionID), http.MethodPost, "/api/reflections", map[string]interface{}{
			"date":          "2024-01-01",
			"mindset_score": 7,
			"challenges":    "Debugging",
			"learnings":     "Patience",
		})

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, service.ReflectionInput{
			Date:         domain.MustParseDate("2024-01-01"),
			MindsetScore: 7,
			Challenges:   "Debugging",
			Learnings:    "Patience",
		}, captured)
		assert.JSONEq(t,
			`{"date":"2024-01-01","mindset_score":7,"challenges":"Debugging","learnings":"Patience"}`,
			w.Body.String())
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		var captured service.ReflectionInput
		journal := &mocks.MockJournalService{}
		journal.AddReflectionFn = echo(&captured)

		w := doRequest(t, newTestRouter(t, journal, sessionID), http.MethodPost, "/api/reflections", `{}`)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, domain.DefaultMindsetScore, captured.MindsetScore)
		assert.Equal(t, domain.Today(), captured.Date)
	})

	tests := []struct {
		name        string
		body        interface{}
		journalErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "malformed json",
			body:        `{"mindset_score":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request format",
		},
		{
			name:        "score out of range",
			body:        map[string]interface{}{"mindset_score": 11},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid mindset_score: must be at most 10",
		},
		{
			name:        "score zero",
			body:        map[string]interface{}{"mindset_score": 0},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid mindset_score: must be at least 1",
		},
		{
			name:        "bad date",
			body:        map[string]interface{}{"date": "2024-02-30"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid date: must be a date in YYYY-MM-DD format",
		},
		{
			name:        "unknown session",
			body:        `{}`,
			journalErr:  service.ErrSessionNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Session not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			journal := &mocks.MockJournalService{Err: tt.journalErr}

			w := doRequest(t, newTestRouter(t, journal, sessionID), http.MethodPost, "/api/reflections", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.wantMessage, resp.Error)
			assert.NotEmpty(t, resp.TraceID)
		})
	}
}

func TestReflectionHandler_List(t *testing.T) {
	t.Parallel()
	sessionID := uuid.New()

	t.Run("empty list is an empty array", func(t *testing.T) {
		t.Parallel()
		journal := &mocks.MockJournalService{}

		w := doRequest(t, newTestRouter(t, journal, sessionID), http.MethodGet, "/api/reflections", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"items":[],"count":0}`, w.Body.String())
	})

	t.Run("insertion order", func(t *testing.T) {
		t.Parallel()
		journal := &mocks.MockJournalService{
			ListReflectionsFn: func(_ context.Context, id uuid.UUID) ([]domain.Reflection, error) {
				assert.Equal(t, sessionID, id)
				return []domain.Reflection{
					{Date: domain.MustParseDate("2024-01-02"), MindsetScore: 8},
					{Date: domain.MustParseDate("2024-01-01"), MindsetScore: 3},
				}, nil
			},
		}

		w := doRequest(t, newTestRouter(t, journal, sessionID), http.MethodGet, "/api/reflections", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp ListResponse[domain.Reflection]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, 2, resp.Count)
		assert.Equal(t, "2024-01-02", resp.Items[0].Date.String())
		assert.Equal(t, "2024-01-01", resp.Items[1].Date.String())
	})

	t.Run("missing session context", func(t *testing.T) {
		t.Parallel()
		journal := &mocks.MockJournalService{}

		w := doRequest(t, newTestRouter(t, journal, uuid.Nil), http.MethodGet, "/api/reflections", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, 0, journal.CallCount("ListReflections"))
	})
}
