package database

import (
	"time"

	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
	"gorm.io/gorm"
)

const queryStartKey = "community_ledger:query_start"

// QueryObserver receives the duration of every GORM operation
type QueryObserver interface {
	ObserveQuery(kind, table string, duration time.Duration)
}

// MetricsCollector is a GORM plugin timing create, query, update, delete and raw operations
type MetricsCollector struct {
	observer     QueryObserver
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	slowQuery    time.Duration
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(observer QueryObserver, logger coreport.Logger, timeProvider coreport.TimeProvider) *MetricsCollector {
	return &MetricsCollector{
		observer:     observer,
		logger:       logger,
		timeProvider: timeProvider,
		slowQuery:    200 * time.Millisecond,
	}
}

// Name implements gorm.Plugin
func (c *MetricsCollector) Name() string {
	return "community_ledger:metrics"
}

// Initialize implements gorm.Plugin
func (c *MetricsCollector) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	if err := cb.Create().Before("gorm:create").Register("metrics:before_create", c.before); err != nil {
		return err
	}
	if err := cb.Create().After("gorm:create").Register("metrics:after_create", c.after("create")); err != nil {
		return err
	}
	if err := cb.Query().Before("gorm:query").Register("metrics:before_query", c.before); err != nil {
		return err
	}
	if err := cb.Query().After("gorm:query").Register("metrics:after_query", c.after("query")); err != nil {
		return err
	}
	if err := cb.Update().Before("gorm:update").Register("metrics:before_update", c.before); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:update").Register("metrics:after_update", c.after("update")); err != nil {
		return err
	}
	if err := cb.Delete().Before("gorm:delete").Register("metrics:before_delete", c.before); err != nil {
		return err
	}
	if err := cb.Delete().After("gorm:delete").Register("metrics:after_delete", c.after("delete")); err != nil {
		return err
	}
	if err := cb.Raw().Before("gorm:raw").Register("metrics:before_raw", c.before); err != nil {
		return err
	}
	return cb.Raw().After("gorm:raw").Register("metrics:after_raw", c.after("raw"))
}

func (c *MetricsCollector) before(db *gorm.DB) {
	db.InstanceSet(queryStartKey, c.timeProvider.Now())
}

func (c *MetricsCollector) after(kind string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		value, ok := db.InstanceGet(queryStartKey)
		if !ok {
			return
		}
		start, ok := value.(time.Time)
		if !ok {
			return
		}

		elapsed := c.timeProvider.Since(start).Std()
		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}
		c.observer.ObserveQuery(kind, table, elapsed)

		if elapsed > c.slowQuery {
			c.logger.Warn("Slow database operation detected", map[string]any{
				"kind":          kind,
				"table":         table,
				"duration_ms":   elapsed.Milliseconds(),
				"rows_affected": db.Statement.RowsAffected,
			})
		}
	}
}
