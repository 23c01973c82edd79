package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Execute runs fn inside a single transaction and commits it.
	// The whole unit is retried with backoff while it fails with ErrConflict;
	// once retries are exhausted a ConflictError is returned and nothing is persisted.
	Execute(ctx context.Context, operation string, fn func(txCtx context.Context) error) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetActivityRepository returns an activity repository bound to the current transaction
	GetActivityRepository(ctx context.Context) ActivityRepository

	// GetEnrollmentRepository returns an enrollment repository bound to the current transaction
	GetEnrollmentRepository(ctx context.Context) EnrollmentRepository

	// GetProductRepository returns a product repository bound to the current transaction
	GetProductRepository(ctx context.Context) ProductRepository

	// GetRedemptionRepository returns a redemption repository bound to the current transaction
	GetRedemptionRepository(ctx context.Context) RedemptionRepository

	// GetLedgerEntryRepository returns a ledger entry repository bound to the current transaction
	GetLedgerEntryRepository(ctx context.Context) LedgerEntryRepository
}
