package persistence

import (
	"context"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
)

// ActivityFilter narrows activity listings
type ActivityFilter struct {
	Category   entity.Category // Empty matches every category
	OnlyOpen   bool            // Active with at least one seat left
	TitleEqual string          // Exact title match, used by seeding
}

// ActivityRepository defines methods to interact with activity data
type ActivityRepository interface {
	// GetByID retrieves an activity by ID
	//
	// Possible errors:
	// - ErrNotFound: If the activity doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Activity, error)

	// GetByIDForUpdate retrieves an activity and locks its row for the transaction
	//
	// Possible errors:
	// - ErrNotFound: If the activity doesn't exist
	// - ErrConflict: If the row lock could not be taken
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Activity, error)

	// Create stores a new activity and fills in its ID
	Create(ctx context.Context, activity *entity.Activity) error

	// UpdateSeats persists the available seat count
	//
	// Possible errors:
	// - ErrNotFound: If the activity doesn't exist
	UpdateSeats(ctx context.Context, activity *entity.Activity) error

	// List returns activities ordered by schedule
	List(ctx context.Context, filter ActivityFilter) ([]*entity.Activity, error)
}
