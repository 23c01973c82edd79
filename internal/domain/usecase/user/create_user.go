package user

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
)

// CreateUser registers a user with a zero balance
func (u *UserUseCase) CreateUser(ctx context.Context, username, email string) (*entity.User, error) {
	user, err := entity.NewUser(0, username, email, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.uow.GetUserRepository(ctx).Create(ctx, user); err != nil {
		if !errors.Is(err, errs.ErrDuplicateUser) {
			u.logger.Error("Failed to create user", map[string]any{
				"username": user.Username,
				"error":    err.Error(),
			})
		}
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"userId":   user.ID,
		"username": user.Username,
	})

	return user, nil
}
