// Package logger provides structured logging functionality for the application.
//
// It configures a log/slog JSON handler at the configured level and carries
// request-scoped loggers through context.
package logger
