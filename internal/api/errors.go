package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/mindset-api/internal/api/shared"
	"github.com/phrazzld/mindset-api/internal/domain"
	"github.com/phrazzld/mindset-api/internal/service"
	"github.com/phrazzld/mindset-api/internal/store"
)

var (
	// ErrRateLimited is reported when a client exceeds its request budget.
	ErrRateLimited = errors.New("rate limit exceeded")

	errMissingSession = errors.New("session ID missing from request context")
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	// Not found errors
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrGoalNotFound),
		errors.Is(err, service.ErrGoalIndexOutOfRange),
		errors.Is(err, store.ErrNotFound),
		errors.Is(err, store.ErrIndexOutOfRange):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrInvalidValue),
		errors.Is(err, shared.ErrEmptyBody):
		return http.StatusBadRequest

	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests

	case errors.Is(err, service.ErrSessionLimitReached):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for err that never
// includes user-supplied text or internal detail.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return "Session not found"
	case errors.Is(err, service.ErrSessionLimitReached):
		return "Too many open sessions, try again later"
	case errors.Is(err, service.ErrGoalNotFound), errors.Is(err, store.ErrNotFound):
		return "Goal not found"
	case errors.Is(err, service.ErrGoalIndexOutOfRange), errors.Is(err, store.ErrIndexOutOfRange):
		return "Goal index out of range"
	case errors.Is(err, ErrRateLimited):
		return "Too many requests"
	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"

	// Domain validation messages are fixed strings and safe to show.
	case errors.Is(err, domain.ErrMindsetScoreOutOfRange):
		return fmt.Sprintf("Mindset score must be between %d and %d", domain.MinMindsetScore, domain.MaxMindsetScore)
	case errors.Is(err, domain.ErrProgressOutOfRange):
		return fmt.Sprintf("Progress must be between %d and %d", domain.MinProgress, domain.MaxProgress)
	case errors.Is(err, domain.ErrGoalTitleEmpty):
		return "Goal title is required"
	case errors.Is(err, domain.ErrReflectionDateEmpty):
		return "Reflection date is required"
	case errors.Is(err, domain.ErrGoalTargetDateEmpty):
		return "Goal target date is required"
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrInvalidValue):
		return "Invalid request data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the error response for err. A non-empty fallback
// replaces the generic message for 500 responses.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallback != "" {
		message = fallback
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// SanitizeValidationError turns a validator error into a message naming the
// field and the failed rule, without echoing the rejected value.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return fmt.Sprintf("Invalid %s: %s", fe.Field(), validationTagMessage(fe.Tag(), fe.Param()))
	}
	return "Validation error"
}

func validationTagMessage(tag, param string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "must be at least " + param
	case "max":
		return "must be at most " + param
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "uuid":
		return "must be a UUID"
	default:
		return "validation failed"
	}
}
