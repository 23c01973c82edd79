package middleware

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// RetryAfterSeconds is advertised on conflict responses
const RetryAfterSeconds = "1"

// ErrorHandler middleware recovers from panics and renders the last error a handler attached
// with c.Error as the standard error body
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": coreport.RequestIDFromContext(c.Request.Context()),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
					Message: "Internal server error",
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		last := c.Errors.Last()
		err := last.Err
		status := StatusFor(err)

		fields := map[string]any{
			"path":       c.Request.URL.Path,
			"status":     status,
			"request_id": coreport.RequestIDFromContext(c.Request.Context()),
			"error":      err.Error(),
		}
		switch {
		case status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable:
			logger.Error("Request failed", fields)
		case status == http.StatusServiceUnavailable:
			c.Header("Retry-After", RetryAfterSeconds)
			logger.Warn("Request hit a write conflict", fields)
		default:
			logger.Debug("Request rejected", fields)
		}

		c.AbortWithStatusJSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err, status),
			Details: last.Meta,
		})
	}
}

// StatusFor maps a domain error to its HTTP status
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domainerr.ErrInvalidState),
		errors.Is(err, domainerr.ErrAlreadyEnrolled),
		errors.Is(err, domainerr.ErrNoSeatsAvailable),
		errors.Is(err, domainerr.ErrOutOfStock),
		errors.Is(err, domainerr.ErrDuplicateUser):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrInsufficientPoints), errors.Is(err, domainerr.ErrNegativeBalance):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainerr.ErrConflict):
		return http.StatusServiceUnavailable
	case errors.Is(err, domainerr.ErrInvalidRequest),
		errors.Is(err, domainerr.ErrInvalidUserID),
		errors.Is(err, domainerr.ErrInvalidID),
		errors.Is(err, domainerr.ErrInvalidCategory),
		errors.Is(err, domainerr.ErrInvalidSeats),
		errors.Is(err, domainerr.ErrInvalidPoints),
		errors.Is(err, domainerr.ErrPointsOverflow),
		errors.Is(err, domainerr.ErrConstraintViolation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func publicMessage(err error, status int) string {
	switch status {
	case http.StatusInternalServerError:
		return "Internal server error"
	case http.StatusServiceUnavailable:
		return domainerr.ErrConflict.Error()
	}

	var insufficient *domainerr.InsufficientPointsError
	if errors.As(err, &insufficient) {
		return insufficient.Error()
	}
	var ledgerErr *domainerr.LedgerError
	if errors.As(err, &ledgerErr) {
		return ledgerErr.Err.Error()
	}
	return err.Error()
}
