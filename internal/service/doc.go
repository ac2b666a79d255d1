// Package service contains the journal use cases. It resolves a session to its
// journal store, applies the operation, and reports what happened through
// events, metrics and logs.
//
// Services depend on narrow interfaces (SessionStores, events.EventEmitter,
// ErrorRecorder) rather than concrete implementations, so delivery mechanisms
// such as the HTTP API can be tested against mocks.
//
// Error handling:
//   - Expected conditions are returned as sentinels (ErrSessionNotFound,
//     ErrGoalNotFound, ErrGoalIndexOutOfRange, ErrSessionLimitReached)
//   - Invalid input keeps its store and domain error chain, so
//     errors.Is(err, domain.ErrValidation) holds at the API edge
//   - Everything else is wrapped in JournalServiceError
package service
