package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/community-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ActivityRepository implements ActivityRepository interface using GORM
type ActivityRepository struct {
	baseRepository
}

// NewActivityRepository creates a new ActivityRepository instance
func NewActivityRepository(db *gorm.DB, logger coreport.Logger) *ActivityRepository {
	return &ActivityRepository{baseRepository: newBaseRepository(db, logger, "activity")}
}

func activityToEntity(m *model.Activity) *entity.Activity {
	return &entity.Activity{
		ID:             m.ID,
		Title:          m.Title,
		Description:    m.Description,
		Category:       entity.Category(m.Category),
		ScheduledAt:    m.ScheduledAt,
		Location:       m.Location,
		TotalSeats:     m.TotalSeats,
		AvailableSeats: m.AvailableSeats,
		PointsAward:    m.PointsAward,
		Active:         m.Active,
		CreatedAt:      m.CreatedAt,
	}
}

// GetByID retrieves an activity by ID
func (r *ActivityRepository) GetByID(ctx context.Context, id uint64) (*entity.Activity, error) {
	var m model.Activity
	if err := r.conn(ctx).First(&m, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting activity", err, id)
	}
	return activityToEntity(&m), nil
}

// GetByIDForUpdate retrieves an activity and locks its row
func (r *ActivityRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Activity, error) {
	var m model.Activity
	if err := r.locked(ctx).First(&m, id).Error; err != nil {
		return nil, r.handleDatabaseError("locking activity", err, id)
	}
	return activityToEntity(&m), nil
}

// Create stores a new activity
func (r *ActivityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	m := model.Activity{
		Title:          activity.Title,
		Description:    activity.Description,
		Category:       string(activity.Category),
		ScheduledAt:    activity.ScheduledAt,
		Location:       activity.Location,
		TotalSeats:     activity.TotalSeats,
		AvailableSeats: activity.AvailableSeats,
		PointsAward:    activity.PointsAward,
		Active:         activity.Active,
		CreatedAt:      activity.CreatedAt,
	}
	// Select every column so a false Active is not replaced by the column default
	if err := r.conn(ctx).Select("*").Omit("id").Create(&m).Error; err != nil {
		return r.handleDatabaseError("creating activity", err, 0)
	}
	activity.ID = m.ID

	r.logger.Info("Activity created", map[string]any{
		"activity_id": activity.ID,
		"title":       activity.Title,
		"seats":       activity.TotalSeats,
	})
	return nil
}

// UpdateSeats persists the available seat count
func (r *ActivityRepository) UpdateSeats(ctx context.Context, activity *entity.Activity) error {
	result := r.conn(ctx).Model(&model.Activity{}).
		Where("id = ?", activity.ID).
		Update("available_seats", activity.AvailableSeats)

	if result.Error != nil {
		return r.handleDatabaseError("updating activity seats", result.Error, activity.ID)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: activity %d", errs.ErrNotFound, activity.ID)
	}
	return nil
}

// List returns activities ordered by schedule
func (r *ActivityRepository) List(ctx context.Context, filter persistence.ActivityFilter) ([]*entity.Activity, error) {
	query := r.conn(ctx).Model(&model.Activity{})
	if filter.Category != "" {
		query = query.Where("category = ?", string(filter.Category))
	}
	if filter.OnlyOpen {
		query = query.Where("active = ? AND available_seats > 0", true)
	}
	if filter.TitleEqual != "" {
		query = query.Where("title = ?", filter.TitleEqual)
	}

	var models []model.Activity
	if err := query.Order("scheduled_at ASC").Order("id ASC").Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing activities", err, 0)
	}

	activities := make([]*entity.Activity, 0, len(models))
	for i := range models {
		activities = append(activities, activityToEntity(&models[i]))
	}
	return activities, nil
}
