package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// All other validation errors in this package wrap it.
	ErrValidation = errors.New("validation failed")

	// ErrOutOfRange is returned when a bounded numeric field is outside its range.
	ErrOutOfRange = fmt.Errorf("%w: value out of range", ErrValidation)

	// ErrEmptyRequiredField is returned when a required text field is empty.
	ErrEmptyRequiredField = fmt.Errorf("%w: required field is empty", ErrValidation)

	// ErrInvalidFormat is returned when data is not in the expected format.
	ErrInvalidFormat = fmt.Errorf("%w: invalid format", ErrValidation)

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = fmt.Errorf("%w: invalid ID", ErrValidation)
)

// ValidationError describes a single invalid field. It wraps one of the
// sentinel errors above so callers can keep using errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for field. A nil err defaults to ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
