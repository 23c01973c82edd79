package usecase

import (
	"context"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
)

// Dashboard is a user's view of their balance and history
type Dashboard struct {
	User          *entity.User
	Enrollments   []*entity.Enrollment
	Redemptions   []*entity.Redemption
	RecentEntries []*entity.LedgerEntry
	// AvailableActivities are open activities the user holds no confirmed seat for
	AvailableActivities []*entity.Activity
}

// UserUseCase defines methods for user-related business operations
type UserUseCase interface {
	// CreateUser registers a user with a zero balance
	CreateUser(ctx context.Context, username, email string) (*entity.User, error)

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, userID uint64) (*entity.User, error)

	// UserExists checks if a user exists with the given ID
	UserExists(ctx context.Context, userID uint64) (bool, error)

	// Dashboard returns the user with their history and the activities still open to them
	Dashboard(ctx context.Context, userID uint64) (*Dashboard, error)
}
