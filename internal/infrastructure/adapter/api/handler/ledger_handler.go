package handler

import (
	"context"
	"net/http"
	"slices"

	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/community-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// LedgerHandler exposes the point, seat and stock transitions
type LedgerHandler struct {
	ledger usecase.LedgerUseCase
	logger coreport.Logger
}

// NewLedgerHandler creates a new ledger handler instance
func NewLedgerHandler(ledger usecase.LedgerUseCase, logger coreport.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledger: ledger,
		logger: logger,
	}
}

// Enroll handles POST /activities/:id/enrollments
func (h *LedgerHandler) Enroll(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	activityID, ok := pathID(c, "id")
	if !ok {
		return
	}

	enrollment, err := h.ledger.Enroll(c.Request.Context(), userID, activityID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewEnrollmentResponse(enrollment))
}

// Cancel handles POST /enrollments/:id/cancel
func (h *LedgerHandler) Cancel(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	enrollmentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	enrollment, err := h.ledger.Cancel(c.Request.Context(), userID, enrollmentID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewEnrollmentResponse(enrollment))
}

// Redeem handles POST /products/:id/redemptions
func (h *LedgerHandler) Redeem(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}

	redemption, err := h.ledger.Redeem(c.Request.Context(), userID, productID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewRedemptionResponse(redemption))
}

// RecordAttendance handles POST /admin/enrollments/attendance
func (h *LedgerHandler) RecordAttendance(c *gin.Context) {
	h.bulk(c, "record_attendance", h.ledger.RecordAttendanceBatch)
}

// MarkAbsent handles POST /admin/enrollments/absence
func (h *LedgerHandler) MarkAbsent(c *gin.Context) {
	h.bulk(c, "mark_absent", h.ledger.MarkAbsent)
}

// MarkDelivered handles POST /admin/redemptions/delivery
func (h *LedgerHandler) MarkDelivered(c *gin.Context) {
	h.bulk(c, "mark_delivered", h.ledger.MarkDelivered)
}

// bulk runs an administrative bulk action over the ids in the body
func (h *LedgerHandler) bulk(c *gin.Context, action string, run func(context.Context, []uint64) (int, error)) {
	var req dto.BulkRequest
	if !bindJSON(c, &req) {
		return
	}

	transitioned, err := run(c.Request.Context(), req.IDs)
	result := dto.BulkResponse{
		Requested:    distinctCount(req.IDs),
		Transitioned: transitioned,
	}
	if err != nil {
		h.logger.Warn("Bulk action stopped early", map[string]any{
			"action":       action,
			"requested":    result.Requested,
			"transitioned": transitioned,
			"error":        err.Error(),
		})
		_ = c.Error(err).SetMeta(result)
		return
	}

	c.JSON(http.StatusOK, result)
}

// distinctCount counts ids the way the batch runs them, duplicates once
func distinctCount(ids []uint64) int {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	return len(slices.Compact(sorted))
}
