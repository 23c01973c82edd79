package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DatabaseLogger routes GORM output into the core logger.
// Slow statements are reported by MetricsCollector, not here.
type DatabaseLogger struct {
	coreLogger   coreport.Logger
	logLevel     logger.LogLevel
	timeProvider coreport.TimeProvider
}

// NewDatabaseLogger creates a GORM logger at the configured level (silent, error, warn or info)
func NewDatabaseLogger(coreLogger coreport.Logger, timeProvider coreport.TimeProvider, level string) logger.Interface {
	return &DatabaseLogger{
		coreLogger:   coreLogger,
		logLevel:     parseGormLogLevel(level),
		timeProvider: timeProvider,
	}
}

func parseGormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	default:
		return logger.Info
	}
}

func (l *DatabaseLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.logLevel = level
	return &clone
}

func (l *DatabaseLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Info {
		l.coreLogger.Info(fmt.Sprintf(msg, data...), contextFields(ctx))
	}
}

func (l *DatabaseLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Warn {
		l.coreLogger.Warn(fmt.Sprintf(msg, data...), contextFields(ctx))
	}
}

func (l *DatabaseLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Error {
		l.coreLogger.Error(fmt.Sprintf(msg, data...), contextFields(ctx))
	}
}

// Trace logs one executed statement. Missing rows are expected on lookups and stay at debug.
func (l *DatabaseLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= logger.Silent {
		return
	}
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)
	if !failed && l.logLevel < logger.Info {
		return
	}

	sql, rows := fc()
	kind, table := statementShape(sql)

	fields := contextFields(ctx)
	fields["elapsed_ms"] = l.timeProvider.Since(begin).Std().Milliseconds()
	fields["rows"] = rows
	fields["sql"] = sql
	if kind != "" {
		fields["statement"] = kind
	}
	if table != "" {
		fields["table"] = table
	}

	if failed {
		fields["error"] = err.Error()
		l.coreLogger.Error("SQL statement failed", fields)
		return
	}
	l.coreLogger.Debug("SQL statement", fields)
}

// statementShape returns the verb and the first table a statement touches.
// Quoting is stripped; anything it cannot recognise yields empty strings.
func statementShape(sql string) (kind, table string) {
	words := strings.Fields(strings.ToUpper(sql))
	if len(words) == 0 {
		return "", ""
	}

	var marker string
	switch words[0] {
	case "SELECT", "DELETE":
		marker = "FROM"
	case "INSERT":
		marker = "INTO"
	case "UPDATE":
		if len(words) > 1 {
			return "UPDATE", unquote(words[1])
		}
		return "UPDATE", ""
	default:
		return "", ""
	}

	kind = words[0]
	for i := 1; i < len(words)-1; i++ {
		if words[i] == marker {
			return kind, unquote(words[i+1])
		}
	}
	return kind, ""
}

func unquote(name string) string {
	return strings.ToLower(strings.Trim(name, "\"`();"))
}

// contextFields returns the request and trace identifiers carried by ctx
func contextFields(ctx context.Context) map[string]any {
	fields := map[string]any{"source": "database"}
	if ctx == nil {
		return fields
	}
	if requestID := coreport.RequestIDFromContext(ctx); requestID != "" {
		fields["request_id"] = requestID
	}
	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.HasTraceID() {
		fields["trace_id"] = spanCtx.TraceID().String()
	}
	return fields
}
