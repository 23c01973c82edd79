package metrics

import (
	"database/sql"
	"time"

	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "community_ledger"

// PrometheusMetrics implements the Metrics port and carries the HTTP, database
// and outbox collectors the adapters report into.
type PrometheusMetrics struct {
	transitions    *prometheus.HistogramVec
	conflicts      *prometheus.CounterVec
	batchRequested *prometheus.CounterVec
	batchApplied   *prometheus.CounterVec

	httpRequests *prometheus.HistogramVec

	dbOpenConns *prometheus.GaugeVec
	dbWaitCount prometheus.Gauge
	dbQueries   *prometheus.HistogramVec

	outboxDelivered prometheus.Counter
	outboxFailed    prometheus.Counter
	outboxBatch     prometheus.Histogram
}

// NewPrometheusMetrics creates the collectors and registers them with registerer
func NewPrometheusMetrics(registerer prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		transitions: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "transition_duration_seconds",
			Help:      "Duration of ledger transitions by operation and outcome.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
		}, []string{"operation", "outcome"}),
		conflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "conflict_retries_total",
			Help:      "Units of work retried after a lock or serialization conflict.",
		}, []string{"operation"}),
		batchRequested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "admin",
			Name:      "batch_requested_total",
			Help:      "Records requested by bulk admin actions.",
		}, []string{"action"}),
		batchApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "admin",
			Name:      "batch_transitioned_total",
			Help:      "Records actually transitioned by bulk admin actions.",
		}, []string{"action"}),
		httpRequests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		dbOpenConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      "connections",
			Help:      "Database pool connections by state.",
		}, []string{"state"}),
		dbWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      "wait_count",
			Help:      "Total number of connections waited for.",
		}),
		dbQueries: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Duration of GORM operations by kind and table.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
		}, []string{"kind", "table"}),
		outboxDelivered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "outbox",
			Name:      "events_delivered_total",
			Help:      "Ledger entries published to Kafka.",
		}),
		outboxFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "outbox",
			Name:      "events_failed_total",
			Help:      "Ledger entries whose publication failed and will be retried.",
		}),
		outboxBatch: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "outbox",
			Name:      "batch_duration_seconds",
			Help:      "Time spent claiming, delivering and marking outbox batches.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		}),
	}

	registerer.MustRegister(
		m.transitions, m.conflicts, m.batchRequested, m.batchApplied,
		m.httpRequests,
		m.dbOpenConns, m.dbWaitCount, m.dbQueries,
		m.outboxDelivered, m.outboxFailed, m.outboxBatch,
	)
	return m
}

// ObserveTransition records one ledger transition
func (m *PrometheusMetrics) ObserveTransition(operation string, outcome string, duration coreport.Duration) {
	m.transitions.WithLabelValues(operation, outcome).Observe(duration.Std().Seconds())
}

// IncConflictRetry counts a retried unit of work
func (m *PrometheusMetrics) IncConflictRetry(operation string) {
	m.conflicts.WithLabelValues(operation).Inc()
}

// ObserveBatch records a bulk admin action
func (m *PrometheusMetrics) ObserveBatch(action string, requested int, transitioned int) {
	m.batchRequested.WithLabelValues(action).Add(float64(requested))
	m.batchApplied.WithLabelValues(action).Add(float64(transitioned))
}

// ObserveHTTPRequest records one served request
func (m *PrometheusMetrics) ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// ObserveQuery records one database operation
func (m *PrometheusMetrics) ObserveQuery(kind, table string, duration time.Duration) {
	m.dbQueries.WithLabelValues(kind, table).Observe(duration.Seconds())
}

// SetPoolStats exports a database pool snapshot
func (m *PrometheusMetrics) SetPoolStats(stats sql.DBStats) {
	m.dbOpenConns.WithLabelValues("open").Set(float64(stats.OpenConnections))
	m.dbOpenConns.WithLabelValues("in_use").Set(float64(stats.InUse))
	m.dbOpenConns.WithLabelValues("idle").Set(float64(stats.Idle))
	m.dbOpenConns.WithLabelValues("max_open").Set(float64(stats.MaxOpenConnections))
	m.dbWaitCount.Set(float64(stats.WaitCount))
}

// ObserveOutboxBatch records one dispatcher cycle
func (m *PrometheusMetrics) ObserveOutboxBatch(delivered, failed int, duration time.Duration) {
	m.outboxDelivered.Add(float64(delivered))
	m.outboxFailed.Add(float64(failed))
	m.outboxBatch.Observe(duration.Seconds())
}
