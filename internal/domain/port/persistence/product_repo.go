package persistence

import (
	"context"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
)

// ProductRepository defines methods to interact with product data
type ProductRepository interface {
	// GetByID retrieves a product by ID
	//
	// Possible errors:
	// - ErrNotFound: If the product doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Product, error)

	// GetByIDForUpdate retrieves a product and locks its row for the transaction
	//
	// Possible errors:
	// - ErrNotFound: If the product doesn't exist
	// - ErrConflict: If the row lock could not be taken
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Product, error)

	// Create stores a new product and fills in its ID
	Create(ctx context.Context, product *entity.Product) error

	// UpdateStock persists the available stock count
	UpdateStock(ctx context.Context, product *entity.Product) error

	// ListAvailable returns active products with stock, cheapest first
	ListAvailable(ctx context.Context) ([]*entity.Product, error)
}
