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

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	baseRepository
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{baseRepository: newBaseRepository(db, logger, "user")}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	return entity.RestoreUser(
		userModel.ID,
		userModel.Username,
		userModel.Email,
		userModel.Points,
		userModel.CreatedAt,
		userModel.UpdatedAt,
	)
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	if err := r.conn(ctx).First(&userModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting user", err, id)
	}
	return r.modelToEntity(&userModel), nil
}

// GetByIDForUpdate retrieves a user and locks the row until the transaction ends
func (r *UserRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	if err := r.locked(ctx).First(&userModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("locking user", err, id)
	}

	r.logger.Debug("User row locked", map[string]any{
		"user_id": id,
		"points":  userModel.Points,
	})
	return r.modelToEntity(&userModel), nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Points:    user.Points(),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if err := r.conn(ctx).Create(&userModel).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Warn("Duplicate user", map[string]any{
				"username": user.Username,
				"email":    user.Email,
			})
			return errs.ErrDuplicateUser
		}
		return r.handleDatabaseError("creating user", err, user.ID)
	}
	user.ID = userModel.ID

	r.logger.Info("User created successfully", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return nil
}

// UpdatePoints persists the point balance
func (r *UserRepository) UpdatePoints(ctx context.Context, user *entity.User) error {
	result := r.conn(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"points":     user.Points(),
			"updated_at": user.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating user points", result.Error, user.ID)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: user %d", errs.ErrNotFound, user.ID)
	}

	r.logger.Debug("User points updated", map[string]any{
		"user_id": user.ID,
		"points":  user.Points(),
	})
	return nil
}
