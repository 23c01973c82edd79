package middleware

import (
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

// Logger writes one access line per request once the handler chain has finished,
// so the status already reflects ErrorHandler's mapping.
func Logger(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		fields := map[string]any{
			"method":     c.Request.Method,
			"path":       path,
			"route":      c.FullPath(),
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
			"bytes":      c.Writer.Size(),
		}
		if requestID := coreport.RequestIDFromContext(ctx); requestID != "" {
			fields["request_id"] = requestID
		}
		if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.HasTraceID() {
			fields["trace_id"] = spanCtx.TraceID().String()
		}
		if userID, ok := coreport.ActorIDFromContext(ctx); ok {
			fields["user_id"] = userID
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Warn("Request completed with server error", fields)
		case status == http.StatusNotFound && c.FullPath() == "":
			logger.Debug("Unknown route", fields)
		default:
			logger.Info("Request completed", fields)
		}
	}
}
