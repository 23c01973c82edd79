package catalog

import (
	"context"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/community-ledger/internal/domain/port/usecase"
)

// CreateProduct validates and stores a new product
func (s *Service) CreateProduct(ctx context.Context, req usecase.CreateProductRequest) (*entity.Product, error) {
	product, err := entity.NewProduct(req.Name, req.Description, req.PointsRequired, req.Stock, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.uow.GetProductRepository(ctx).Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product", map[string]any{
			"name":  product.Name,
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Product created", map[string]any{
		"product_id":      product.ID,
		"points_required": product.PointsRequired,
		"stock":           product.StockAvailable,
	})
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *Service) GetProduct(ctx context.Context, id uint64) (*entity.Product, error) {
	if id == 0 {
		return nil, errs.ErrInvalidID
	}
	return s.uow.GetProductRepository(ctx).GetByID(ctx, id)
}

// ListProducts returns active products with stock, cheapest first
func (s *Service) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	return s.uow.GetProductRepository(ctx).ListAvailable(ctx)
}
