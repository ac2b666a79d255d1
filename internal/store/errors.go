package store

import (
	"errors"
	"fmt"

	"github.com/phrazzld/mindset-api/internal/domain"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrIndexOutOfRange is returned when a positional index does not address
	// an existing record.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidValue is returned when an update carries a value outside the
	// field's allowed range. It always accompanies a domain.ErrOutOfRange cause.
	ErrInvalidValue = errors.New("invalid value")

	// ErrGoalNotFound indicates that no goal has the requested ID.
	ErrGoalNotFound = fmt.Errorf("%w: goal", ErrNotFound)

	// ErrGoalIndexOutOfRange indicates that a goal index is not a valid position.
	ErrGoalIndexOutOfRange = fmt.Errorf("%w: goal", ErrIndexOutOfRange)
)

// IsNotFoundError checks if the error is any kind of "not found" error,
// including out-of-range positional lookups.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrIndexOutOfRange)
}

// IsValidationError reports whether err was caused by invalid input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidEntity) ||
		errors.Is(err, ErrInvalidValue) ||
		errors.Is(err, domain.ErrValidation)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "goal", "reflection")
	Operation string // The operation that failed (e.g., "add", "update_progress")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped errors to support errors.Is/errors.As.
// A StoreError built with a category (ErrInvalidEntity, ErrInvalidValue) and a
// cause matches both.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// invalid joins a store category with the domain cause so both are visible to errors.Is.
func invalid(category, cause error) error {
	return fmt.Errorf("%w: %w", category, cause)
}

// InvalidEntity wraps a domain validation failure for a record being stored.
func InvalidEntity(entity, operation string, cause error) *StoreError {
	return NewStoreError(entity, operation, "validation failed", invalid(ErrInvalidEntity, cause))
}

// InvalidValue wraps a domain range failure for a field being updated.
func InvalidValue(entity, operation string, cause error) *StoreError {
	return NewStoreError(entity, operation, "rejected value", invalid(ErrInvalidValue, cause))
}
