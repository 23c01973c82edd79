package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
)

// Product is a reward that can be redeemed for points
type Product struct {
	ID             uint64
	Name           string
	Description    string
	PointsRequired int64
	StockAvailable int
	Active         bool
	CreatedAt      time.Time
}

// NewProduct creates an active product
func NewProduct(name, description string, pointsRequired int64, stock int, timeProvider coreport.TimeProvider) (*Product, error) {
	product := &Product{
		Name:           strings.TrimSpace(name),
		Description:    strings.TrimSpace(description),
		PointsRequired: pointsRequired,
		StockAvailable: stock,
		Active:         true,
		CreatedAt:      timeProvider.Now(),
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	return product, nil
}

// Validate checks the product invariants
func (p *Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", errs.ErrInvalidRequest)
	}
	if p.StockAvailable < 0 {
		return fmt.Errorf("%w: stock cannot be negative", errs.ErrInvalidRequest)
	}
	return ValidatePointsRequired(p.PointsRequired)
}

// IsAvailable reports whether the product can currently be redeemed
func (p *Product) IsAvailable() bool {
	return p.Active && p.StockAvailable > 0
}

// TakeUnit removes one unit from stock
func (p *Product) TakeUnit() error {
	if p.StockAvailable <= 0 {
		return errs.ErrOutOfStock
	}
	p.StockAvailable--
	return nil
}
