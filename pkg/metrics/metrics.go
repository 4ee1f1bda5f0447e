// Package metrics holds the run metrics registry. Metrics never appear
// in the rendered report; they are written to a Prometheus
// textfile-collector file when requested, so repeated runs stay
// byte-identical on stdout.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metrics for a lint run.
type Registry struct {
	FindingsTotal *prometheus.CounterVec
	RuleDuration  *prometheus.HistogramVec
	BuildDuration prometheus.Histogram
	GraphTypes    prometheus.Gauge
	GraphEdges    prometheus.Gauge
	RunsTotal     *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewRegistry creates a registry with all metrics initialized.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{registry: reg}

	r.FindingsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "solidlint_findings_total",
			Help: "Findings emitted, by principle and severity",
		},
		[]string{"principle", "severity"},
	)

	r.RuleDuration = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "solidlint_rule_duration_seconds",
			Help:    "Checker execution duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0},
		},
		[]string{"rule"},
	)

	r.BuildDuration = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "solidlint_build_duration_seconds",
			Help:    "Graph build duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0},
		},
	)

	r.GraphTypes = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "solidlint_graph_types",
			Help: "Types in the analyzed graph",
		},
	)

	r.GraphEdges = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "solidlint_graph_edges",
			Help: "Inheritance plus dependency edges in the analyzed graph",
		},
	)

	r.RunsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "solidlint_runs_total",
			Help: "Completed runs, by outcome (clean, findings, error)",
		},
		[]string{"status"},
	)

	return r
}

// PrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// RecordFinding counts one finding.
func (r *Registry) RecordFinding(principle, severity string) {
	r.FindingsTotal.WithLabelValues(principle, severity).Inc()
}

// RecordRule observes one checker execution.
func (r *Registry) RecordRule(rule string, duration time.Duration) {
	r.RuleDuration.WithLabelValues(rule).Observe(duration.Seconds())
}

// RecordBuild observes one graph build.
func (r *Registry) RecordBuild(duration time.Duration) {
	r.BuildDuration.Observe(duration.Seconds())
}

// SetGraphSize records the analyzed graph's shape.
func (r *Registry) SetGraphSize(types, edges int) {
	r.GraphTypes.Set(float64(types))
	r.GraphEdges.Set(float64(edges))
}

// RecordRun counts one completed run by outcome.
func (r *Registry) RecordRun(status string) {
	r.RunsTotal.WithLabelValues(status).Inc()
}

// WriteFile writes the registry in textfile-collector format.
func (r *Registry) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
