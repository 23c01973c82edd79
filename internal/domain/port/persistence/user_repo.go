package persistence

import (
	"context"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByIDForUpdate retrieves a user and holds a row lock until the transaction ends
	//
	// Possible errors:
	// - ErrNotFound: If user with specified ID doesn't exist
	// - ErrConflict: If the row lock could not be taken (timeout, deadlock, serialization)
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error)

	// Create stores a new user and fills in its ID
	//
	// Possible errors:
	// - ErrDuplicateUser: If the username or email is already taken
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// UpdatePoints persists the user's point balance
	//
	// Possible errors:
	// - ErrNotFound: If user doesn't exist
	// - ErrConstraintViolation: If the balance breaks the non-negative check
	UpdatePoints(ctx context.Context, user *entity.User) error
}
