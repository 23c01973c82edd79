package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
)

// Redemption records points spent on a product
type Redemption struct {
	ID          uint64
	UserID      uint64
	ProductID   uint64
	PointsSpent int64 // Snapshot of the product price at redemption time
	RedeemedAt  time.Time
	Delivered   bool
	DeliveredAt *time.Time
}

// NewRedemption snapshots the product price for the user
func NewRedemption(userID uint64, product *Product, timeProvider coreport.TimeProvider) *Redemption {
	return &Redemption{
		UserID:      userID,
		ProductID:   product.ID,
		PointsSpent: product.PointsRequired,
		RedeemedAt:  timeProvider.Now(),
	}
}

// MarkDelivered flips the one-way delivered flag
func (r *Redemption) MarkDelivered(timeProvider coreport.TimeProvider) error {
	if r.Delivered {
		return fmt.Errorf("%w: redemption %d already delivered", errs.ErrInvalidState, r.ID)
	}
	now := timeProvider.Now()
	r.Delivered = true
	r.DeliveredAt = &now
	return nil
}
