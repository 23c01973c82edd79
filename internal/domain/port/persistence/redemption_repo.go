package persistence

import (
	"context"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
)

// RedemptionRepository defines methods to interact with redemption data
type RedemptionRepository interface {
	// GetByIDForUpdate retrieves a redemption and locks its row for the transaction
	//
	// Possible errors:
	// - ErrNotFound: If the redemption doesn't exist
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Redemption, error)

	// Create stores a new redemption and fills in its ID
	Create(ctx context.Context, redemption *entity.Redemption) error

	// MarkDelivered persists the delivered flag
	MarkDelivered(ctx context.Context, redemption *entity.Redemption) error

	// ListByUser returns the user's redemptions, newest first
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Redemption, error)
}
