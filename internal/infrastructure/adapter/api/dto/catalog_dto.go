package dto

import (
	"time"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
)

// CreateActivityRequest represents the API request for creating an activity
type CreateActivityRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Category    string    `json:"category" binding:"required"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
	Location    string    `json:"location"`
	TotalSeats  int       `json:"totalSeats" binding:"required,min=1"`
	PointsAward *int64    `json:"pointsAward" binding:"omitempty,min=0"`
}

// ActivityResponse represents an activity
type ActivityResponse struct {
	ID             uint64    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	ScheduledAt    time.Time `json:"scheduledAt"`
	Location       string    `json:"location"`
	TotalSeats     int       `json:"totalSeats"`
	AvailableSeats int       `json:"availableSeats"`
	PointsAward    int64     `json:"pointsAward"`
}

// CreateProductRequest represents the API request for creating a product
type CreateProductRequest struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	PointsRequired int64  `json:"pointsRequired" binding:"required,min=1"`
	Stock          int    `json:"stock" binding:"min=0"`
}

// ProductResponse represents a product
type ProductResponse struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	PointsRequired int64  `json:"pointsRequired"`
	StockAvailable int    `json:"stockAvailable"`
}

// SeedResponse reports how many default activities were created
type SeedResponse struct {
	Created int `json:"created"`
}

// NewActivityResponse maps an activity entity
func NewActivityResponse(a *entity.Activity) ActivityResponse {
	return ActivityResponse{
		ID:             a.ID,
		Title:          a.Title,
		Description:    a.Description,
		Category:       string(a.Category),
		ScheduledAt:    a.ScheduledAt,
		Location:       a.Location,
		TotalSeats:     a.TotalSeats,
		AvailableSeats: a.AvailableSeats,
		PointsAward:    a.PointsAward,
	}
}

// NewActivityList maps a list of activities
func NewActivityList(activities []*entity.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, NewActivityResponse(a))
	}
	return out
}

// NewProductResponse maps a product entity
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		PointsRequired: p.PointsRequired,
		StockAvailable: p.StockAvailable,
	}
}

// NewProductList maps a list of products
func NewProductList(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p))
	}
	return out
}
