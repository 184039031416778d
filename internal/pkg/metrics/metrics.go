// Package metrics exposes Prometheus counters for business rule outcomes and
// HTTP request latency.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yigit/coursemanager/internal/app/rules"
)

// Metrics owns a private registry so tests and multiple instances never collide.
type Metrics struct {
	registry        *prometheus.Registry
	RuleViolations  *prometheus.CounterVec
	Commits         *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them together with the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RuleViolations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "coursemanager_rule_violations_total",
			Help: "Business rule violations by operation and rule code",
		}, []string{"operation", "code"}),
		Commits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "coursemanager_commits_total",
			Help: "Successful commits by operation",
		}, []string{"operation"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "coursemanager_http_request_duration_seconds",
			Help:    "HTTP request duration by route and status",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route", "status"}),
	}
}

// RuleViolated counts a failed rule check.
func (m *Metrics) RuleViolated(operation string, code rules.Code) {
	if m == nil {
		return
	}
	m.RuleViolations.WithLabelValues(operation, string(code)).Inc()
}

// Committed counts a successful save.
func (m *Metrics) Committed(_ context.Context, operation string) {
	if m == nil {
		return
	}
	m.Commits.WithLabelValues(operation).Inc()
}

// ObserveRequest records one HTTP request. Call with time.Now() taken before the handler ran.
func (m *Metrics) ObserveRequest(method, route string, status int, start time.Time) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
