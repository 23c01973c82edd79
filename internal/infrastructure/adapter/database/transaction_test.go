package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/community-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/community-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUnitOfWork(t *testing.T, options UnitOfWorkOptions) (*TestDBManager, persistence.UnitOfWork) {
	t.Helper()

	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	testDB.Connect(t)
	testDB.SetupTestDB(t)

	if options.Retry.MaxRetries == 0 {
		options.Retry = fastRetry(3)
	}
	return testDB, testDB.Manager.CreateUnitOfWork(options)
}

func TestUnitOfWorkExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("Commits every write of the unit", func(t *testing.T) {
		testDB, uow := setupUnitOfWork(t, UnitOfWorkOptions{})
		userID := testDB.CreateTestUser(t, "ana", 0)

		err := uow.Execute(ctx, "credit", func(txCtx context.Context) error {
			users := uow.GetUserRepository(txCtx)
			user, err := users.GetByIDForUpdate(txCtx, userID)
			if err != nil {
				return err
			}
			if err := user.Credit(15, testDB.TimeProvider); err != nil {
				return err
			}
			if err := users.UpdatePoints(txCtx, user); err != nil {
				return err
			}
			entry := entity.NewLedgerEntry(userID, entity.EntryEnrolled, 15, user.Points(), entity.ReferenceEnrollment, 1, testDB.TimeProvider)
			return uow.GetLedgerEntryRepository(txCtx).Append(txCtx, entry)
		})
		require.NoError(t, err)

		user, err := uow.GetUserRepository(ctx).GetByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(15), user.Points())

		entries, err := uow.GetLedgerEntryRepository(ctx).ListByUser(ctx, userID, 10)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("Rolls back on error", func(t *testing.T) {
		testDB, uow := setupUnitOfWork(t, UnitOfWorkOptions{})
		userID := testDB.CreateTestUser(t, "ben", 5)

		err := uow.Execute(ctx, "debit", func(txCtx context.Context) error {
			users := uow.GetUserRepository(txCtx)
			user, err := users.GetByIDForUpdate(txCtx, userID)
			if err != nil {
				return err
			}
			if err := user.Credit(100, testDB.TimeProvider); err != nil {
				return err
			}
			if err := users.UpdatePoints(txCtx, user); err != nil {
				return err
			}
			return errs.ErrOutOfStock
		})
		assert.ErrorIs(t, err, errs.ErrOutOfStock)

		user, err := uow.GetUserRepository(ctx).GetByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(5), user.Points())
	})

	t.Run("Retries conflicts and counts them", func(t *testing.T) {
		metrics := coremocks.NewMockMetrics(t)
		metrics.EXPECT().IncConflictRetry("enroll").Return().Times(2)

		_, uow := setupUnitOfWork(t, UnitOfWorkOptions{Metrics: metrics})

		calls := 0
		err := uow.Execute(ctx, "enroll", func(txCtx context.Context) error {
			calls++
			if calls < 3 {
				return errs.ErrConflict
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("Exhausted retries surface a ConflictError", func(t *testing.T) {
		_, uow := setupUnitOfWork(t, UnitOfWorkOptions{Retry: fastRetry(2)})

		err := uow.Execute(ctx, "redeem", func(txCtx context.Context) error {
			return errs.ErrConflict
		})

		var conflict *errs.ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, "redeem", conflict.Operation)
		assert.Equal(t, 2, conflict.Attempts)
		assert.True(t, errs.IsConflictError(err))
	})

	t.Run("Nested units join the outer transaction", func(t *testing.T) {
		testDB, uow := setupUnitOfWork(t, UnitOfWorkOptions{})
		userID := testDB.CreateTestUser(t, "cy", 0)

		err := uow.Execute(ctx, "outer", func(txCtx context.Context) error {
			if err := uow.Execute(txCtx, "inner", func(innerCtx context.Context) error {
				users := uow.GetUserRepository(innerCtx)
				user, err := users.GetByIDForUpdate(innerCtx, userID)
				if err != nil {
					return err
				}
				if err := user.Credit(3, testDB.TimeProvider); err != nil {
					return err
				}
				return users.UpdatePoints(innerCtx, user)
			}); err != nil {
				return err
			}
			return errs.ErrInvalidState
		})
		assert.ErrorIs(t, err, errs.ErrInvalidState)

		user, err := uow.GetUserRepository(ctx).GetByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), user.Points(), "inner writes roll back with the outer unit")
	})

	t.Run("Missing rows map to ErrNotFound", func(t *testing.T) {
		_, uow := setupUnitOfWork(t, UnitOfWorkOptions{})

		err := uow.Execute(ctx, "lookup", func(txCtx context.Context) error {
			_, err := uow.GetActivityRepository(txCtx).GetByIDForUpdate(txCtx, 999)
			return err
		})
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestUnitOfWorkUnitTimeout(t *testing.T) {
	_, uow := setupUnitOfWork(t, UnitOfWorkOptions{UnitTimeout: 20 * time.Millisecond})

	err := uow.Execute(context.Background(), "slow", func(txCtx context.Context) error {
		<-txCtx.Done()
		return txCtx.Err()
	})
	assert.Error(t, err)
	assert.False(t, errs.IsConflictError(err))
}

func TestManagerHealthChecker(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	testDB.Connect(t)

	assert.NoError(t, testDB.Manager.HealthChecker().Check(context.Background()))
}

func TestNewTestDBManagerConnects(t *testing.T) {
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	require.NoError(t, testDB.Config.Validate())

	db, err := testDB.Manager.Connect()
	require.NoError(t, err)
	t.Cleanup(func() { testDB.Close(t) })

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.PingContext(context.Background()))
}
