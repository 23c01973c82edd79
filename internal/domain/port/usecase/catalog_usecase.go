package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
)

// CreateActivityRequest carries the fields of a new activity
type CreateActivityRequest struct {
	Title       string
	Description string
	Category    string
	ScheduledAt time.Time
	Location    string
	TotalSeats  int
	PointsAward *int64 // nil uses the default award
}

// CreateProductRequest carries the fields of a new product
type CreateProductRequest struct {
	Name           string
	Description    string
	PointsRequired int64
	Stock          int
}

// CatalogUseCase manages activities and products
type CatalogUseCase interface {
	CreateActivity(ctx context.Context, req CreateActivityRequest) (*entity.Activity, error)
	GetActivity(ctx context.Context, id uint64) (*entity.Activity, error)

	// ListActivities returns open activities, optionally filtered by category
	ListActivities(ctx context.Context, category string) ([]*entity.Activity, error)

	// SeedDefaultActivities creates the default activities that don't exist yet and returns how many it created
	SeedDefaultActivities(ctx context.Context) (int, error)

	CreateProduct(ctx context.Context, req CreateProductRequest) (*entity.Product, error)
	GetProduct(ctx context.Context, id uint64) (*entity.Product, error)

	// ListProducts returns active products with stock
	ListProducts(ctx context.Context) ([]*entity.Product, error)
}
