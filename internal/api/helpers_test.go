package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/mindset-api/internal/api/shared"
	"github.com/phrazzld/mindset-api/internal/mocks"
	"github.com/phrazzld/mindset-api/internal/resources"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRouter wires the journal handlers the way the server does, with
// sessionID injected in place of the session middleware.
func newTestRouter(t *testing.T, journal *mocks.MockJournalService, sessionID uuid.UUID) http.Handler {
	t.Helper()

	lib, err := resources.Load()
	require.NoError(t, err)

	log := discardLogger()
	reflections := NewReflectionHandler(journal, log)
	goals := NewGoalHandler(journal, log)
	views := NewJournalHandler(journal, log)
	res := NewResourceHandler(lib)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := shared.SetTraceID(req.Context())
			if sessionID != uuid.Nil {
				ctx = shared.WithSessionID(ctx, sessionID)
			}
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Post("/api/reflections", reflections.Create)
	r.Get("/api/reflections", reflections.List)
	r.Post("/api/goals", goals.Create)
	r.Get("/api/goals", goals.List)
	r.Get("/api/goals/summaries", goals.Summaries)
	r.Put("/api/goals/{index}/progress", goals.UpdateProgress)
	r.Put("/api/goals/id/{id}/progress", goals.UpdateProgressByID)
	r.Get("/api/achievements", goals.Achievements)
	r.Get("/api/series/mindset", views.MindsetSeries)
	r.Get("/api/dashboard", views.Dashboard)
	r.Get("/api/export", views.Export)
	r.Get("/api/resources", res.List)
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var resp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
