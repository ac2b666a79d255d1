// Package session maps session IDs to independent journal stores. A store is
// created when its session starts and dropped when the session ends, either
// explicitly or after sitting idle too long.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/mindset-api/internal/store"
)

// Registry errors
var (
	// ErrSessionNotFound is returned for unknown, ended or expired sessions.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionLimitReached is returned by Create when MaxSessions are open.
	ErrSessionLimitReached = errors.New("session limit reached")
)

// End reasons passed to the end hook.
const (
	EndReasonClosed  = "closed"
	EndReasonExpired = "expired"
)

// StoreFactory creates the store backing a new session.
type StoreFactory func() store.JournalStore

// EndHook is called, outside the registry lock, after a session is removed.
type EndHook func(id uuid.UUID, reason string)

// Config controls session lifetime.
type Config struct {
	IdleTimeout   time.Duration
	SweepInterval time.Duration
	// MaxSessions caps open sessions; 0 means unlimited.
	MaxSessions int
}

type entry struct {
	store    store.JournalStore
	lastSeen time.Time
}

// Registry holds the open sessions. It is safe for concurrent use.
type Registry struct {
	cfg      Config
	newStore StoreFactory
	logger   *slog.Logger
	now      func() time.Time
	onEnd    EndHook

	mu       sync.Mutex
	sessions map[uuid.UUID]*entry

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// Option customizes a Registry.
type Option func(*Registry)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// WithEndHook registers a hook invoked whenever a session ends.
func WithEndHook(hook EndHook) Option {
	return func(r *Registry) { r.onEnd = hook }
}

// NewRegistry creates an empty registry. Call Start to begin expiring idle sessions.
func NewRegistry(cfg Config, newStore StoreFactory, logger *slog.Logger, opts ...Option) *Registry {
	r := &Registry{
		cfg:      cfg,
		newStore: newStore,
		logger:   logger.With("component", "session_registry"),
		now:      time.Now,
		sessions: make(map[uuid.UUID]*entry),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create starts a new session with an empty store.
func (r *Registry) Create() (uuid.UUID, store.JournalStore, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cfg.MaxSessions > 0 && len(r.sessions) >= r.cfg.MaxSessions {
		return uuid.Nil, nil, ErrSessionLimitReached
	}

	id := uuid.New()
	s := r.newStore()
	r.sessions[id] = &entry{store: s, lastSeen: r.now()}
	r.logger.Debug("session created", "session_id", id, "open_sessions", len(r.sessions))
	return id, s, nil
}

// Get returns the store of an open session and marks the session as used.
// A session idle past IdleTimeout is treated as ended even if the janitor
// has not removed it yet.
func (r *Registry) Get(id uuid.UUID) (store.JournalStore, error) {
	r.mu.Lock()
	e, ok := r.sessions[id]
	if !ok {
		r.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	now := r.now()
	if r.expired(e, now) {
		delete(r.sessions, id)
		r.mu.Unlock()
		r.ended(id, EndReasonExpired)
		return nil, ErrSessionNotFound
	}

	e.lastSeen = now
	r.mu.Unlock()
	return e.store, nil
}

// End closes a session and discards its store.
func (r *Registry) End(id uuid.UUID) error {
	r.mu.Lock()
	if _, ok := r.sessions[id]; !ok {
		r.mu.Unlock()
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	r.mu.Unlock()

	r.ended(id, EndReasonClosed)
	return nil
}

// Count returns the number of open sessions, including expired ones not yet swept.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep removes every session idle past IdleTimeout and returns their IDs.
func (r *Registry) Sweep() []uuid.UUID {
	now := r.now()

	r.mu.Lock()
	var evicted []uuid.UUID
	for id, e := range r.sessions {
		if r.expired(e, now) {
			delete(r.sessions, id)
			evicted = append(evicted, id)
		}
	}
	r.mu.Unlock()

	for _, id := range evicted {
		r.ended(id, EndReasonExpired)
	}
	if len(evicted) > 0 {
		r.logger.Info("expired idle sessions", "count", len(evicted))
	}
	return evicted
}

// Start runs the janitor until ctx is done or Stop is called.
// A zero SweepInterval disables the janitor.
func (r *Registry) Start(ctx context.Context) {
	if r.cfg.SweepInterval <= 0 {
		close(r.done)
		return
	}

	ticker := time.NewTicker(r.cfg.SweepInterval)
	go func() {
		defer close(r.done)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-r.stop:
				return
			case <-ticker.C:
				r.Sweep()
			}
		}
	}()
	r.logger.Info("session janitor started",
		"sweep_interval", r.cfg.SweepInterval.String(),
		"idle_timeout", r.cfg.IdleTimeout.String())
}

// Stop halts the janitor and waits for it to exit. Safe to call more than once;
// must only be called after Start.
func (r *Registry) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
	<-r.done
}

func (r *Registry) expired(e *entry, now time.Time) bool {
	return r.cfg.IdleTimeout > 0 && now.Sub(e.lastSeen) > r.cfg.IdleTimeout
}

func (r *Registry) ended(id uuid.UUID, reason string) {
	r.logger.Debug("session ended", "session_id", id, "reason", reason)
	if r.onEnd != nil {
		r.onEnd(id, reason)
	}
}
