// Package store defines the journal store contract and the errors its
// implementations return. Implementations live under internal/platform so the
// service layer never depends on how records are held.
package store
