package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/community-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// CatalogHandler serves activities and products
type CatalogHandler struct {
	catalog usecase.CatalogUseCase
	logger  coreport.Logger
}

// NewCatalogHandler creates a new catalog handler instance
func NewCatalogHandler(catalog usecase.CatalogUseCase, logger coreport.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// ListActivities handles GET /activities?category=
func (h *CatalogHandler) ListActivities(c *gin.Context) {
	activities, err := h.catalog.ListActivities(c.Request.Context(), c.Query("category"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewActivityList(activities))
}

// GetActivity handles GET /activities/:id
func (h *CatalogHandler) GetActivity(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	activity, err := h.catalog.GetActivity(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewActivityResponse(activity))
}

// CreateActivity handles POST /admin/activities
func (h *CatalogHandler) CreateActivity(c *gin.Context) {
	var req dto.CreateActivityRequest
	if !bindJSON(c, &req) {
		return
	}

	activity, err := h.catalog.CreateActivity(c.Request.Context(), usecase.CreateActivityRequest{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		ScheduledAt: req.ScheduledAt,
		Location:    req.Location,
		TotalSeats:  req.TotalSeats,
		PointsAward: req.PointsAward,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewActivityResponse(activity))
}

// SeedActivities handles POST /admin/activities/seed
func (h *CatalogHandler) SeedActivities(c *gin.Context) {
	created, err := h.catalog.SeedDefaultActivities(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.SeedResponse{Created: created})
}

// ListProducts handles GET /products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductList(products))
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

// CreateProduct handles POST /admin/products
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.catalog.CreateProduct(c.Request.Context(), usecase.CreateProductRequest{
		Name:           req.Name,
		Description:    req.Description,
		PointsRequired: req.PointsRequired,
		Stock:          req.Stock,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewProductResponse(product))
}
