package user

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
)

// GetUser returns the user with its current balance
func (u *UserUseCase) GetUser(ctx context.Context, userID uint64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return u.uow.GetUserRepository(ctx).GetByID(ctx, userID)
}

// UserExists checks if a user with the given ID exists
func (u *UserUseCase) UserExists(ctx context.Context, userID uint64) (bool, error) {
	_, err := u.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
