package persistence

import (
	"context"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
)

// EnrollmentRepository defines methods to interact with enrollment data
type EnrollmentRepository interface {
	// GetByID retrieves an enrollment by ID
	//
	// Possible errors:
	// - ErrNotFound: If the enrollment doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Enrollment, error)

	// GetByIDForUpdate retrieves an enrollment and locks its row for the transaction
	//
	// Possible errors:
	// - ErrNotFound: If the enrollment doesn't exist
	// - ErrConflict: If the row lock could not be taken
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Enrollment, error)

	// FindByUserAndActivity returns the single enrollment for the pair, locked for update
	//
	// Possible errors:
	// - ErrNotFound: If the user never enrolled in the activity
	FindByUserAndActivity(ctx context.Context, userID, activityID uint64) (*entity.Enrollment, error)

	// Create stores a new enrollment and fills in its ID
	//
	// Possible errors:
	// - ErrAlreadyEnrolled: If the (user, activity) pair already has a record
	Create(ctx context.Context, enrollment *entity.Enrollment) error

	// Update persists status, awarded points and timestamps
	Update(ctx context.Context, enrollment *entity.Enrollment) error

	// ListByUser returns the user's enrollments, newest first
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Enrollment, error)
}
