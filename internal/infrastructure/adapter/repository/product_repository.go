package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ProductRepository implements ProductRepository interface using GORM
type ProductRepository struct {
	baseRepository
}

// NewProductRepository creates a new ProductRepository instance
func NewProductRepository(db *gorm.DB, logger coreport.Logger) *ProductRepository {
	return &ProductRepository{baseRepository: newBaseRepository(db, logger, "product")}
}

func productToEntity(m *model.Product) *entity.Product {
	return &entity.Product{
		ID:             m.ID,
		Name:           m.Name,
		Description:    m.Description,
		PointsRequired: m.PointsRequired,
		StockAvailable: m.StockAvailable,
		Active:         m.Active,
		CreatedAt:      m.CreatedAt,
	}
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id uint64) (*entity.Product, error) {
	var m model.Product
	if err := r.conn(ctx).First(&m, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting product", err, id)
	}
	return productToEntity(&m), nil
}

// GetByIDForUpdate retrieves a product and locks its row
func (r *ProductRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Product, error) {
	var m model.Product
	if err := r.locked(ctx).First(&m, id).Error; err != nil {
		return nil, r.handleDatabaseError("locking product", err, id)
	}
	return productToEntity(&m), nil
}

// Create stores a new product
func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	m := model.Product{
		Name:           product.Name,
		Description:    product.Description,
		PointsRequired: product.PointsRequired,
		StockAvailable: product.StockAvailable,
		Active:         product.Active,
		CreatedAt:      product.CreatedAt,
	}
	if err := r.conn(ctx).Select("*").Omit("id").Create(&m).Error; err != nil {
		return r.handleDatabaseError("creating product", err, 0)
	}
	product.ID = m.ID

	r.logger.Info("Product created", map[string]any{
		"product_id": product.ID,
		"name":       product.Name,
		"stock":      product.StockAvailable,
	})
	return nil
}

// UpdateStock persists the available stock count
func (r *ProductRepository) UpdateStock(ctx context.Context, product *entity.Product) error {
	result := r.conn(ctx).Model(&model.Product{}).
		Where("id = ?", product.ID).
		Update("stock_available", product.StockAvailable)

	if result.Error != nil {
		return r.handleDatabaseError("updating product stock", result.Error, product.ID)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: product %d", errs.ErrNotFound, product.ID)
	}
	return nil
}

// ListAvailable returns active products with stock, cheapest first
func (r *ProductRepository) ListAvailable(ctx context.Context) ([]*entity.Product, error) {
	var models []model.Product
	err := r.conn(ctx).
		Where("active = ? AND stock_available > 0", true).
		Order("points_required ASC").Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing products", err, 0)
	}

	products := make([]*entity.Product, 0, len(models))
	for i := range models {
		products = append(products, productToEntity(&models[i]))
	}
	return products, nil
}
