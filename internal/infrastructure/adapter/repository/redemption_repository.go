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

// RedemptionRepository implements RedemptionRepository interface using GORM
type RedemptionRepository struct {
	baseRepository
}

// NewRedemptionRepository creates a new RedemptionRepository instance
func NewRedemptionRepository(db *gorm.DB, logger coreport.Logger) *RedemptionRepository {
	return &RedemptionRepository{baseRepository: newBaseRepository(db, logger, "redemption")}
}

func redemptionToEntity(m *model.Redemption) *entity.Redemption {
	return &entity.Redemption{
		ID:          m.ID,
		UserID:      m.UserID,
		ProductID:   m.ProductID,
		PointsSpent: m.PointsSpent,
		RedeemedAt:  m.RedeemedAt,
		Delivered:   m.Delivered,
		DeliveredAt: m.DeliveredAt,
	}
}

// GetByIDForUpdate retrieves a redemption and locks its row
func (r *RedemptionRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Redemption, error) {
	var m model.Redemption
	if err := r.locked(ctx).First(&m, id).Error; err != nil {
		return nil, r.handleDatabaseError("locking redemption", err, id)
	}
	return redemptionToEntity(&m), nil
}

// Create stores a new redemption
func (r *RedemptionRepository) Create(ctx context.Context, redemption *entity.Redemption) error {
	m := model.Redemption{
		UserID:      redemption.UserID,
		ProductID:   redemption.ProductID,
		PointsSpent: redemption.PointsSpent,
		RedeemedAt:  redemption.RedeemedAt,
		Delivered:   redemption.Delivered,
		DeliveredAt: redemption.DeliveredAt,
	}
	if err := r.conn(ctx).Omit("User", "Product").Create(&m).Error; err != nil {
		return r.handleDatabaseError("creating redemption", err, redemption.ProductID)
	}
	redemption.ID = m.ID
	return nil
}

// MarkDelivered persists the delivered flag
func (r *RedemptionRepository) MarkDelivered(ctx context.Context, redemption *entity.Redemption) error {
	result := r.conn(ctx).Model(&model.Redemption{}).
		Where("id = ?", redemption.ID).
		Updates(map[string]interface{}{
			"delivered":    redemption.Delivered,
			"delivered_at": redemption.DeliveredAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("marking redemption delivered", result.Error, redemption.ID)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: redemption %d", errs.ErrNotFound, redemption.ID)
	}
	return nil
}

// ListByUser returns the user's redemptions, newest first
func (r *RedemptionRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Redemption, error) {
	var models []model.Redemption
	err := r.conn(ctx).
		Where("user_id = ?", userID).
		Order("redeemed_at DESC").Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing redemptions", err, userID)
	}

	redemptions := make([]*entity.Redemption, 0, len(models))
	for i := range models {
		redemptions = append(redemptions, redemptionToEntity(&models[i]))
	}
	return redemptions, nil
}
