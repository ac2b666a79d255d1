package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/mindset-api/internal/api/shared"
	"github.com/phrazzld/mindset-api/internal/platform/logger"
	"github.com/phrazzld/mindset-api/internal/service"
)

var errNilSessionID = errors.New("nil session ID")

// SessionStarter opens new sessions. service.SessionService satisfies it.
type SessionStarter interface {
	Start(ctx context.Context) (uuid.UUID, error)
}

// SessionMiddleware resolves the journal session of a request.
//
// A POST without an X-Session-ID header gets a new session, whose ID is
// echoed in the response header. Any other request without the header is
// rejected with 400, so reads never open sessions. A malformed ID is
// rejected with 400. A
// well-formed but unknown ID is passed through; the journal service reports
// it as not found.
type SessionMiddleware struct {
	sessions SessionStarter
	logger   *slog.Logger
}

// NewSessionMiddleware creates a SessionMiddleware.
func NewSessionMiddleware(sessions SessionStarter, logger *slog.Logger) *SessionMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionMiddleware{
		sessions: sessions,
		logger:   logger.With(slog.String("component", "session_middleware")),
	}
}

// Handle is the middleware function.
func (m *SessionMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContextOrDefault(r.Context(), m.logger)

		raw := strings.TrimSpace(r.Header.Get(shared.SessionIDHeader))
		if raw == "" {
			if r.Method != http.MethodPost {
				shared.RespondWithError(w, r, http.StatusBadRequest, "Session ID header is required")
				return
			}
			id, err := m.sessions.Start(r.Context())
			if err != nil {
				status := http.StatusInternalServerError
				message := "Failed to start session"
				if errors.Is(err, service.ErrSessionLimitReached) {
					status = http.StatusServiceUnavailable
					message = "Too many open sessions, try again later"
				}
				shared.RespondWithErrorAndLog(w, r, status, message, err)
				return
			}
			log.Debug("started session for request without session header", slog.String("session_id", id.String()))
			w.Header().Set(shared.SessionIDHeader, id.String())
			next.ServeHTTP(w, r.WithContext(shared.WithSessionID(r.Context(), id)))
			return
		}

		id, err := uuid.Parse(raw)
		if err == nil && id == uuid.Nil {
			err = errNilSessionID
		}
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid session ID format", err,
				shared.WithElevatedLogLevel())
			return
		}

		w.Header().Set(shared.SessionIDHeader, id.String())
		next.ServeHTTP(w, r.WithContext(shared.WithSessionID(r.Context(), id)))
	})
}
