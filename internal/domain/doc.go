// Package domain contains the journal's core records (reflections, goals and
// achievements), their field constraints and the errors raised when those
// constraints are violated. It has no knowledge of storage or delivery.
package domain
