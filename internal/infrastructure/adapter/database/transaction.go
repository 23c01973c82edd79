package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/community-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// UnitOfWorkOptions tunes how units of work run
type UnitOfWorkOptions struct {
	Retry       RetryConfig
	LockTimeout time.Duration    // Upper bound on waiting for a row lock, postgres only
	UnitTimeout time.Duration    // Upper bound on a single attempt, zero for none
	Metrics     coreport.Metrics // Optional; conflicts are counted per operation
}

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	errorMapper  *ErrorMapper
	options      UnitOfWorkOptions
	metrics      coreport.Metrics
	tracer       trace.Tracer
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider, options UnitOfWorkOptions) persistence.UnitOfWork {
	if options.Retry.MaxRetries == 0 {
		options.Retry = DefaultRetryConfig()
	}
	m := options.Metrics
	if m == nil {
		m = metrics.NewNoopMetrics()
	}
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		errorMapper:  NewErrorMapper(),
		options:      options,
		metrics:      m,
		tracer:       otel.Tracer("community-ledger/database"),
	}
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	if IsPostgres(u.db) {
		// Must be the first statement of the transaction
		if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL SERIALIZABLE").Error; err != nil {
			tx.Rollback()
			u.logger.Error("Failed to set transaction isolation level", map[string]any{"error": err.Error()})
			return ctx, fmt.Errorf("failed to set transaction isolation level: %w", err)
		}
		if u.options.LockTimeout > 0 {
			stmt := fmt.Sprintf("SET LOCAL lock_timeout = %d", u.options.LockTimeout.Milliseconds())
			if err := tx.Exec(stmt).Error; err != nil {
				tx.Rollback()
				return ctx, fmt.Errorf("failed to set lock timeout: %w", err)
			}
		}
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Warn("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Rollback rolls back the current transaction
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	err := tx.Rollback().Error

	// If the error indicates the transaction was already committed or rolled back,
	// log it as a warning but don't return an error
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// Execute runs fn in one transaction and retries the whole unit on ErrConflict.
// A context that already carries a transaction joins it instead of starting a new one.
func (u *UnitOfWork) Execute(ctx context.Context, operation string, fn func(txCtx context.Context) error) error {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		return fn(ctx)
	}

	ctx, span := u.tracer.Start(ctx, "uow."+operation, trace.WithAttributes(
		attribute.String("ledger.operation", operation),
	))
	defer span.End()

	attempts, err := RetryOnConflict(
		ctx,
		u.options.Retry,
		func() error { return u.runOnce(ctx, operation, fn) },
		func(attempt int, err error) {
			u.metrics.IncConflictRetry(operation)
			span.AddEvent("conflict", trace.WithAttributes(attribute.Int("attempt", attempt)))
		},
		u.logger,
	)
	span.SetAttributes(attribute.Int("ledger.attempts", attempts))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		var conflict *errs.ConflictError
		if errors.Is(err, errs.ErrConflict) && !errors.As(err, &conflict) {
			return errs.NewConflictError(operation, attempts, err)
		}
		return err
	}
	return nil
}

// runOnce executes a single attempt of a unit of work
func (u *UnitOfWork) runOnce(ctx context.Context, operation string, fn func(txCtx context.Context) error) (err error) {
	if u.options.UnitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.options.UnitTimeout)
		defer cancel()
	}

	txCtx, err := u.Begin(ctx)
	if err != nil {
		return u.errorMapper.MapError(err, operation)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := u.Rollback(txCtx); rbErr != nil {
			u.logger.Warn("Rollback after failed unit of work failed", map[string]any{
				"operation": operation,
				"error":     rbErr.Error(),
			})
		}
		if p := recover(); p != nil {
			panic(p)
		}
	}()

	if err := fn(txCtx); err != nil {
		return u.errorMapper.MapError(err, operation)
	}

	if err := u.Commit(txCtx); err != nil {
		return u.errorMapper.MapError(err, operation)
	}
	committed = true
	return nil
}

// GetUserRepository returns a user repository in the current transaction
func (u *UnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.getDbFromContext(ctx), u.logger)
}

// GetActivityRepository returns an activity repository in the current transaction
func (u *UnitOfWork) GetActivityRepository(ctx context.Context) persistence.ActivityRepository {
	return repository.NewActivityRepository(u.getDbFromContext(ctx), u.logger)
}

// GetEnrollmentRepository returns an enrollment repository in the current transaction
func (u *UnitOfWork) GetEnrollmentRepository(ctx context.Context) persistence.EnrollmentRepository {
	return repository.NewEnrollmentRepository(u.getDbFromContext(ctx), u.logger)
}

// GetProductRepository returns a product repository in the current transaction
func (u *UnitOfWork) GetProductRepository(ctx context.Context) persistence.ProductRepository {
	return repository.NewProductRepository(u.getDbFromContext(ctx), u.logger)
}

// GetRedemptionRepository returns a redemption repository in the current transaction
func (u *UnitOfWork) GetRedemptionRepository(ctx context.Context) persistence.RedemptionRepository {
	return repository.NewRedemptionRepository(u.getDbFromContext(ctx), u.logger)
}

// GetLedgerEntryRepository returns a ledger entry repository in the current transaction
func (u *UnitOfWork) GetLedgerEntryRepository(ctx context.Context) persistence.LedgerEntryRepository {
	return repository.NewLedgerEntryRepository(u.getDbFromContext(ctx), u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
