package standingsmetrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lif_standings"

// PrometheusMetrics implements StandingsMetrics on a Prometheus registry.
type PrometheusMetrics struct {
	operationAttempts  *prometheus.CounterVec
	operationSuccesses *prometheus.CounterVec
	operationFailures  *prometheus.CounterVec
	operationDuration  *prometheus.HistogramVec

	filesScored   prometheus.Counter
	filesSkipped  *prometheus.CounterVec
	races         prometheus.Counter
	contributions prometheus.Counter
	clubs         prometheus.Gauge
}

// NewPrometheusMetrics creates the collectors and registers them on reg.
func NewPrometheusMetrics(reg prometheus.Registerer) (*PrometheusMetrics, error) {
	m := &PrometheusMetrics{
		operationAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_attempts_total",
			Help:      "Service operations started.",
		}, []string{"operation", "service"}),
		operationSuccesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_success_total",
			Help:      "Service operations that completed.",
		}, []string{"operation", "service"}),
		operationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_failures_total",
			Help:      "Service operations that returned an error.",
		}, []string{"operation", "service"}),
		operationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Service operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "service"}),
		filesScored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_scored_total",
			Help:      "Result files segmented and scored.",
		}),
		filesSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_skipped_total",
			Help:      "Result files left out of a run.",
		}, []string{"reason"}),
		races: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "races_segmented_total",
			Help:      "Race blocks found in scored files.",
		}),
		contributions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "point_contributions_total",
			Help:      "Placings that earned a club points.",
		}),
		clubs: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "standings_clubs",
			Help:      "Clubs in the most recent standings.",
		}),
	}

	collectors := []prometheus.Collector{
		m.operationAttempts, m.operationSuccesses, m.operationFailures, m.operationDuration,
		m.filesScored, m.filesSkipped, m.races, m.contributions, m.clubs,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register standings metrics: %w", err)
		}
	}

	return m, nil
}

func (m *PrometheusMetrics) RecordOperationAttempt(_ context.Context, operation, service string) {
	m.operationAttempts.WithLabelValues(operation, service).Inc()
}

func (m *PrometheusMetrics) RecordOperationSuccess(_ context.Context, operation, service string) {
	m.operationSuccesses.WithLabelValues(operation, service).Inc()
}

func (m *PrometheusMetrics) RecordOperationFailure(_ context.Context, operation, service string) {
	m.operationFailures.WithLabelValues(operation, service).Inc()
}

func (m *PrometheusMetrics) RecordOperationDuration(_ context.Context, operation, service string, duration time.Duration) {
	m.operationDuration.WithLabelValues(operation, service).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordFileScored(_ context.Context, races, contributions int) {
	m.filesScored.Inc()
	m.races.Add(float64(races))
	m.contributions.Add(float64(contributions))
}

func (m *PrometheusMetrics) RecordFileSkipped(_ context.Context, reason string) {
	m.filesSkipped.WithLabelValues(reason).Inc()
}

func (m *PrometheusMetrics) RecordStandingsSize(_ context.Context, clubs int) {
	m.clubs.Set(float64(clubs))
}
