// Package metrics defines the Prometheus collectors of the data layer.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "casedesk"

// Metrics holds every collector. Build it with New.
type Metrics struct {
	auditWrites   *prometheus.CounterVec
	auditFailures *prometheus.CounterVec
	auditDegraded *prometheus.CounterVec
	opFailures    *prometheus.CounterVec
	opDuration    *prometheus.HistogramVec
}

// New registers the collectors on reg. Pass prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		auditWrites: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "audit",
			Name:      "writes_total",
			Help:      "Audit entries written successfully.",
		}, []string{"table", "operation"}),
		auditFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "audit",
			Name:      "write_failures_total",
			Help:      "Audit entries that could not be written.",
		}, []string{"table", "operation", "reason"}),
		auditDegraded: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "audit",
			Name:      "degraded_reads_total",
			Help:      "Audit reads flagged as suspiciously empty.",
		}, []string{"query"}),
		opFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "safeexec",
			Name:      "failures_total",
			Help:      "Wrapped operations that failed, by classified kind.",
		}, []string{"kind"}),
		opDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "safeexec",
			Name:      "duration_seconds",
			Help:      "Wrapped operation latency.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"result"}),
	}
}

func (m *Metrics) AuditWritten(table, operation string) {
	if m == nil {
		return
	}
	m.auditWrites.WithLabelValues(table, operation).Inc()
}

func (m *Metrics) AuditFailed(table, operation, reason string) {
	if m == nil {
		return
	}
	m.auditFailures.WithLabelValues(table, operation, reason).Inc()
}

func (m *Metrics) AuditDegraded(query string) {
	if m == nil {
		return
	}
	m.auditDegraded.WithLabelValues(query).Inc()
}

func (m *Metrics) OperationFailed(kind string) {
	if m == nil {
		return
	}
	m.opFailures.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveOperation(result string, seconds float64) {
	if m == nil {
		return
	}
	m.opDuration.WithLabelValues(result).Observe(seconds)
}
