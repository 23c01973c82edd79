package dto

import (
	"time"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
)

// EnrollmentResponse represents an enrollment
type EnrollmentResponse struct {
	ID            uint64    `json:"id"`
	UserID        uint64    `json:"userId"`
	ActivityID    uint64    `json:"activityId"`
	Status        string    `json:"status"`
	PointsAwarded int64     `json:"pointsAwarded"`
	EnrolledAt    time.Time `json:"enrolledAt"`
}

// RedemptionResponse represents a redemption
type RedemptionResponse struct {
	ID          uint64     `json:"id"`
	UserID      uint64     `json:"userId"`
	ProductID   uint64     `json:"productId"`
	PointsSpent int64      `json:"pointsSpent"`
	RedeemedAt  time.Time  `json:"redeemedAt"`
	Delivered   bool       `json:"delivered"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
}

// LedgerEntryResponse represents one ledger entry
type LedgerEntryResponse struct {
	ID            uint64    `json:"id"`
	Kind          string    `json:"kind"`
	PointsDelta   int64     `json:"pointsDelta"`
	BalanceAfter  int64     `json:"balanceAfter"`
	ReferenceType string    `json:"referenceType"`
	ReferenceID   uint64    `json:"referenceId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// BulkRequest carries the record ids of an administrative bulk action
type BulkRequest struct {
	IDs []uint64 `json:"ids" binding:"required,max=1000"`
}

// BulkResponse reports how many records a bulk action transitioned
type BulkResponse struct {
	Requested    int `json:"requested"`
	Transitioned int `json:"transitioned"`
}

// NewEnrollmentResponse maps an enrollment entity
func NewEnrollmentResponse(e *entity.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:            e.ID,
		UserID:        e.UserID,
		ActivityID:    e.ActivityID,
		Status:        string(e.Status),
		PointsAwarded: e.PointsAwarded,
		EnrolledAt:    e.EnrolledAt,
	}
}

// NewRedemptionResponse maps a redemption entity
func NewRedemptionResponse(r *entity.Redemption) RedemptionResponse {
	return RedemptionResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		ProductID:   r.ProductID,
		PointsSpent: r.PointsSpent,
		RedeemedAt:  r.RedeemedAt,
		Delivered:   r.Delivered,
		DeliveredAt: r.DeliveredAt,
	}
}

// NewLedgerEntryResponse maps a ledger entry
func NewLedgerEntryResponse(e *entity.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:            e.ID,
		Kind:          string(e.Kind),
		PointsDelta:   e.PointsDelta,
		BalanceAfter:  e.BalanceAfter,
		ReferenceType: string(e.ReferenceType),
		ReferenceID:   e.ReferenceID,
		CreatedAt:     e.CreatedAt,
	}
}
