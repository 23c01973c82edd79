package usecase

import (
	"context"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
)

// LedgerUseCase defines the atomic point, seat and stock transitions.
// Every call runs as one unit of work: it either fully applies or leaves no trace.
type LedgerUseCase interface {
	// Enroll reserves a seat for the user and awards the activity points
	Enroll(ctx context.Context, userID, activityID uint64) (*entity.Enrollment, error)

	// Cancel releases the seat of a confirmed enrollment owned by the user and takes the points back
	Cancel(ctx context.Context, userID, enrollmentID uint64) (*entity.Enrollment, error)

	// RecordAttendance moves a confirmed enrollment to attended
	RecordAttendance(ctx context.Context, enrollmentID uint64) (*entity.Enrollment, error)

	// Redeem spends the product price from the user's balance and takes one stock unit
	Redeem(ctx context.Context, userID, productID uint64) (*entity.Redemption, error)

	// RecordAttendanceBatch marks every confirmed enrollment in ids as attended.
	// Records in another state or missing are skipped; returns the number transitioned.
	RecordAttendanceBatch(ctx context.Context, enrollmentIDs []uint64) (int, error)

	// MarkAbsent marks every confirmed enrollment in ids as absent and returns the number transitioned
	MarkAbsent(ctx context.Context, enrollmentIDs []uint64) (int, error)

	// MarkDelivered flags every undelivered redemption in ids as delivered and returns the number transitioned
	MarkDelivered(ctx context.Context, redemptionIDs []uint64) (int, error)
}
