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

// EnrollmentRepository implements EnrollmentRepository interface using GORM
type EnrollmentRepository struct {
	baseRepository
}

// NewEnrollmentRepository creates a new EnrollmentRepository instance
func NewEnrollmentRepository(db *gorm.DB, logger coreport.Logger) *EnrollmentRepository {
	return &EnrollmentRepository{baseRepository: newBaseRepository(db, logger, "enrollment")}
}

func enrollmentToEntity(m *model.Enrollment) *entity.Enrollment {
	return &entity.Enrollment{
		ID:            m.ID,
		UserID:        m.UserID,
		ActivityID:    m.ActivityID,
		Status:        entity.EnrollmentStatus(m.Status),
		PointsAwarded: m.PointsAwarded,
		EnrolledAt:    m.EnrolledAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// GetByID retrieves an enrollment by ID
func (r *EnrollmentRepository) GetByID(ctx context.Context, id uint64) (*entity.Enrollment, error) {
	var m model.Enrollment
	if err := r.conn(ctx).First(&m, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting enrollment", err, id)
	}
	return enrollmentToEntity(&m), nil
}

// GetByIDForUpdate retrieves an enrollment and locks its row
func (r *EnrollmentRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Enrollment, error) {
	var m model.Enrollment
	if err := r.locked(ctx).First(&m, id).Error; err != nil {
		return nil, r.handleDatabaseError("locking enrollment", err, id)
	}
	return enrollmentToEntity(&m), nil
}

// FindByUserAndActivity returns the enrollment for the pair, locked for update
func (r *EnrollmentRepository) FindByUserAndActivity(ctx context.Context, userID, activityID uint64) (*entity.Enrollment, error) {
	var m model.Enrollment
	err := r.locked(ctx).
		Where("user_id = ? AND activity_id = ?", userID, activityID).
		First(&m).Error
	if err != nil {
		return nil, r.handleDatabaseError("finding enrollment", err, activityID)
	}
	return enrollmentToEntity(&m), nil
}

// Create stores a new enrollment
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *entity.Enrollment) error {
	m := model.Enrollment{
		UserID:        enrollment.UserID,
		ActivityID:    enrollment.ActivityID,
		Status:        string(enrollment.Status),
		PointsAwarded: enrollment.PointsAwarded,
		EnrolledAt:    enrollment.EnrolledAt,
		UpdatedAt:     enrollment.UpdatedAt,
	}

	if err := r.conn(ctx).Omit("User", "Activity").Create(&m).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Warn("Duplicate enrollment", map[string]any{
				"user_id":     enrollment.UserID,
				"activity_id": enrollment.ActivityID,
			})
			return fmt.Errorf("%w: user %d, activity %d", errs.ErrAlreadyEnrolled, enrollment.UserID, enrollment.ActivityID)
		}
		return r.handleDatabaseError("creating enrollment", err, enrollment.ActivityID)
	}
	enrollment.ID = m.ID
	return nil
}

// Update persists status, awarded points and timestamps
func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *entity.Enrollment) error {
	result := r.conn(ctx).Model(&model.Enrollment{}).
		Where("id = ?", enrollment.ID).
		Updates(map[string]interface{}{
			"status":         string(enrollment.Status),
			"points_awarded": enrollment.PointsAwarded,
			"enrolled_at":    enrollment.EnrolledAt,
			"updated_at":     enrollment.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating enrollment", result.Error, enrollment.ID)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: enrollment %d", errs.ErrNotFound, enrollment.ID)
	}
	return nil
}

// ListByUser returns the user's enrollments, newest first
func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Enrollment, error) {
	var models []model.Enrollment
	err := r.conn(ctx).
		Where("user_id = ?", userID).
		Order("enrolled_at DESC").Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing enrollments", err, userID)
	}

	enrollments := make([]*entity.Enrollment, 0, len(models))
	for i := range models {
		enrollments = append(enrollments, enrollmentToEntity(&models[i]))
	}
	return enrollments, nil
}
