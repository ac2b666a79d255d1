// Package metrics exposes Prometheus collectors for journal activity and HTTP
// traffic. Collectors live on a private registry so tests and multiple
// servers in one process do not collide.
package metrics

import (
	"context"
	"net/http"
	"strconv"

	"github.com/phrazzld/mindset-api/internal/events"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the application's collectors.
type Metrics struct {
	registry *prometheus.Registry

	reflectionsAdded prometheus.Counter
	goalsAdded       prometheus.Counter
	progressUpdates  prometheus.Counter
	storeErrors      *prometheus.CounterVec
	activeSessions   prometheus.Gauge
	httpRequests     *prometheus.CounterVec
}

// New creates and registers all collectors, plus the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		reflectionsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mindset_reflections_added_total",
			Help: "Total number of reflections added",
		}),
		goalsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mindset_goals_added_total",
			Help: "Total number of goals added",
		}),
		progressUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mindset_goal_progress_updates_total",
			Help: "Total number of goal progress updates",
		}),
		storeErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mindset_store_errors_total",
				Help: "Total number of rejected journal operations",
			},
			[]string{"operation"},
		),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mindset_active_sessions",
			Help: "Current number of open journal sessions",
		}),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mindset_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
	}

	m.registry.MustRegister(
		m.reflectionsAdded,
		m.goalsAdded,
		m.progressUpdates,
		m.storeErrors,
		m.activeSessions,
		m.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry holding all collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// HandleEvent implements events.EventHandler.
func (m *Metrics) HandleEvent(_ context.Context, event *events.JournalEvent) error {
	switch event.Type {
	case events.TypeReflectionAdded:
		m.reflectionsAdded.Inc()
	case events.TypeGoalAdded:
		m.goalsAdded.Inc()
	case events.TypeGoalProgressUpdated:
		m.progressUpdates.Inc()
	case events.TypeSessionStarted:
		m.activeSessions.Inc()
	case events.TypeSessionEnded:
		m.activeSessions.Dec()
	}
	return nil
}

// RecordStoreError counts a rejected operation.
func (m *Metrics) RecordStoreError(operation string) {
	m.storeErrors.WithLabelValues(operation).Inc()
}

// ObserveRequest counts one HTTP request. route should be the route pattern,
// not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}
