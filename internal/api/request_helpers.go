package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/mindset-api/internal/api/shared"
	"github.com/phrazzld/mindset-api/internal/domain"
)

// getSessionID extracts the session ID placed in the request context by the
// session middleware.
func getSessionID(r *http.Request) (uuid.UUID, bool) {
	return shared.GetSessionID(r.Context())
}

// getPathUUID parses a UUID path parameter.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrEmptyRequiredField)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}
	return id, nil
}

// getPathIndex parses a goal index path parameter. Only the syntax is checked
// here; whether a goal exists at the index is the store's call.
func getPathIndex(r *http.Request, paramName string) (int, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrEmptyRequiredField)
	}

	index, err := strconv.Atoi(pathParam)
	if err != nil {
		return 0, domain.NewValidationError(paramName, "must be an integer", domain.ErrInvalidFormat)
	}
	return index, nil
}

// parseDateOrToday parses a YYYY-MM-DD date, defaulting to today when empty.
func parseDateOrToday(value string) (domain.Date, error) {
	if value == "" {
		return domain.Today(), nil
	}
	return domain.ParseDate(value)
}

// requireSession writes a 500 and returns false when the session middleware
// did not run.
func requireSession(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	sessionID, ok := getSessionID(r)
	if !ok {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"An unexpected error occurred", errMissingSession)
		return uuid.Nil, false
	}
	return sessionID, true
}

// decodeAndValidate decodes the body into req and validates it, writing a 400
// on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}
	return true
}
