package metrics

import (
	"database/sql"
	"time"

	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
)

// NoopMetrics discards every observation
type NoopMetrics struct{}

// NewNoopMetrics creates a metrics sink for tests and disabled metrics
func NewNoopMetrics() *NoopMetrics {
	return &NoopMetrics{}
}

func (NoopMetrics) ObserveTransition(string, string, coreport.Duration)      {}
func (NoopMetrics) IncConflictRetry(string)                                  {}
func (NoopMetrics) ObserveBatch(string, int, int)                            {}
func (NoopMetrics) ObserveHTTPRequest(string, string, string, time.Duration) {}
func (NoopMetrics) ObserveQuery(string, string, time.Duration)               {}
func (NoopMetrics) SetPoolStats(sql.DBStats)                                 {}
func (NoopMetrics) ObserveOutboxBatch(int, int, time.Duration)               {}
