// Package metrics exposes Prometheus counters for lifecycle transitions and
// login attempts.
package metrics

import (
	"net/http"

	apperrors "parts-tracking-backend/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Login outcomes
const (
	LoginSuccess = "success"
	LoginInvalid = "invalid"
	LoginLocked  = "locked"
	LoginError   = "error"
)

// Metrics owns a private registry so tests can build as many as they need.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry     *prometheus.Registry
	transitions  *prometheus.CounterVec
	failures     *prometheus.CounterVec
	authAttempts *prometheus.CounterVec
}

// New creates the collectors and registers them with Go runtime collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parts_lifecycle_transitions_total",
			Help: "Committed part lifecycle transitions.",
		}, []string{"trigger", "to"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parts_lifecycle_failures_total",
			Help: "Lifecycle operations that returned an error, by error kind.",
		}, []string{"operation", "kind"}),
		authAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parts_auth_attempts_total",
			Help: "Login attempts by role and outcome.",
		}, []string{"role", "outcome"}),
	}
	m.registry.MustRegister(
		m.transitions,
		m.failures,
		m.authAttempts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordTransition counts one committed transition
func (m *Metrics) RecordTransition(trigger, to string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(trigger, to).Inc()
}

// RecordFailure counts a failed lifecycle operation
func (m *Metrics) RecordFailure(operation string, err error) {
	if m == nil || err == nil {
		return
	}
	m.failures.WithLabelValues(operation, Kind(err)).Inc()
}

// RecordLogin counts one login attempt
func (m *Metrics) RecordLogin(role, outcome string) {
	if m == nil {
		return
	}
	m.authAttempts.WithLabelValues(role, outcome).Inc()
}

// Kind classifies an error into a low-cardinality label value
func Kind(err error) string {
	if _, ok := apperrors.IsRateLimited(err); ok {
		return "rate_limited"
	}
	switch {
	case apperrors.IsNotFound(err):
		return "not_found"
	case apperrors.IsAlreadyExists(err):
		return "already_exists"
	case apperrors.IsValidation(err):
		return "validation"
	case apperrors.IsInvalidTransition(err):
		return "invalid_transition"
	case apperrors.IsAuthentication(err):
		return "authentication"
	case apperrors.IsAuthorization(err):
		return "authorization"
	case apperrors.IsConflict(err):
		return "conflict"
	case apperrors.IsConnection(err):
		return "connection"
	}
	return "internal"
}
