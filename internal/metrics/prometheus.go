package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Verification failure kinds used as label values.
const (
	FailureConsistency = "consistency"
	FailureMismatch    = "mismatch"
)

// RunMetrics exports sweep progress as Prometheus metrics. Each instance owns
// its registry so that tests and repeated sweeps do not collide.
type RunMetrics struct {
	registry      *prometheus.Registry
	runs          *prometheus.CounterVec
	runDuration   *prometheus.HistogramVec
	failures      *prometheus.CounterVec
	valuesTallied prometheus.Counter
}

// NewRunMetrics creates and registers the histcalc collectors together with
// the Go runtime and process collectors.
func NewRunMetrics() *RunMetrics {
	reg := prometheus.NewRegistry()
	m := &RunMetrics{
		registry: reg,
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "histcalc_runs_total",
			Help: "Histogram runs completed, by thread count (0 is the reference).",
		}, []string{"threads"}),
		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "histcalc_run_duration_seconds",
			Help:    "Wall-clock duration of a histogram run.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 20),
		}, []string{"threads"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "histcalc_verification_failures_total",
			Help: "Runs whose histogram failed verification, by kind.",
		}, []string{"kind"}),
		valuesTallied: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "histcalc_values_tallied_total",
			Help: "Input values counted across all runs.",
		}),
	}
	reg.MustRegister(
		m.runs, m.runDuration, m.failures, m.valuesTallied,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRun records one completed run over n values.
func (m *RunMetrics) ObserveRun(threads, n int, d time.Duration) {
	label := strconv.Itoa(threads)
	m.runs.WithLabelValues(label).Inc()
	m.runDuration.WithLabelValues(label).Observe(d.Seconds())
	m.valuesTallied.Add(float64(n))
}

// ObserveFailure records a verification failure of the given kind.
func (m *RunMetrics) ObserveFailure(kind string) {
	m.failures.WithLabelValues(kind).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *RunMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry.
func (m *RunMetrics) Registry() *prometheus.Registry {
	return m.registry
}
