package metrics

import (
	"database/sql"
	"time"

	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
)

// Recorder is everything the infrastructure adapters report into
type Recorder interface {
	coreport.Metrics
	ObserveHTTPRequest(method, route, status string, duration time.Duration)
	ObserveQuery(kind, table string, duration time.Duration)
	SetPoolStats(stats sql.DBStats)
	ObserveOutboxBatch(delivered, failed int, duration time.Duration)
}

var (
	_ Recorder = (*PrometheusMetrics)(nil)
	_ Recorder = NoopMetrics{}
)
