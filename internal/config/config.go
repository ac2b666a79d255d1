package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"     validate:"required"`
	Session   SessionConfig   `mapstructure:"session"    validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int      `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string   `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	AllowedOrigins         []string `mapstructure:"allowed_origins"          validate:"required,min=1,dive,required"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds" validate:"required,gt=0"`
}

// SessionConfig controls how long an idle journal session is kept.
type SessionConfig struct {
	IdleTimeoutMinutes   int `mapstructure:"idle_timeout_minutes"   validate:"required,gt=0"`
	SweepIntervalSeconds int `mapstructure:"sweep_interval_seconds" validate:"required,gt=0"`
	// MaxSessions caps concurrently open sessions; 0 means unlimited.
	MaxSessions int `mapstructure:"max_sessions" validate:"gte=0"`
}

// RateLimitConfig contains per-client request limits.
type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"required,gt=0"`
	Burst             int     `mapstructure:"burst"               validate:"required,gt=0"`
}

// ShutdownTimeout returns the graceful shutdown window.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// IdleTimeout returns how long a session may go unused before it is discarded.
func (c SessionConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}

// SweepInterval returns how often idle sessions are looked for.
func (c SessionConfig) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalSeconds) * time.Second
}
