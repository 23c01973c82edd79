package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/community-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/community-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type ledgerFixture struct {
	t       *testing.T
	ctx     context.Context
	db      *database.TestDBManager
	uow     persistence.UnitOfWork
	service usecase.LedgerUseCase
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	return fixtureFor(t, database.NewTestDBManager(t, logger.NewNoopLogger()))
}

func fixtureFor(t *testing.T, testDB *database.TestDBManager) *ledgerFixture {
	t.Helper()

	testDB.Connect(t)
	testDB.SetupTestDB(t)

	uow := testDB.Manager.CreateUnitOfWork(database.UnitOfWorkOptions{
		Retry: database.RetryConfig{
			MaxRetries:    5,
			RetryInterval: time.Millisecond,
			MaxInterval:   5 * time.Millisecond,
			JitterFactor:  0.5,
		},
		LockTimeout: time.Second,
	})

	return &ledgerFixture{
		t:       t,
		ctx:     context.Background(),
		db:      testDB,
		uow:     uow,
		service: NewLedgerService(uow, testDB.TimeProvider, testDB.Logger, metrics.NewNoopMetrics()),
	}
}

func (f *ledgerFixture) points(userID uint64) int64 {
	f.t.Helper()
	user, err := f.uow.GetUserRepository(f.ctx).GetByID(f.ctx, userID)
	require.NoError(f.t, err)
	return user.Points()
}

func (f *ledgerFixture) seats(activityID uint64) int {
	f.t.Helper()
	activity, err := f.uow.GetActivityRepository(f.ctx).GetByID(f.ctx, activityID)
	require.NoError(f.t, err)
	return activity.AvailableSeats
}

func (f *ledgerFixture) stock(productID uint64) int {
	f.t.Helper()
	product, err := f.uow.GetProductRepository(f.ctx).GetByID(f.ctx, productID)
	require.NoError(f.t, err)
	return product.StockAvailable
}

func (f *ledgerFixture) status(enrollmentID uint64) entity.EnrollmentStatus {
	f.t.Helper()
	enrollment, err := f.uow.GetEnrollmentRepository(f.ctx).GetByID(f.ctx, enrollmentID)
	require.NoError(f.t, err)
	return enrollment.Status
}

func (f *ledgerFixture) entries(userID uint64) []*entity.LedgerEntry {
	f.t.Helper()
	entries, err := f.uow.GetLedgerEntryRepository(f.ctx).ListByUser(f.ctx, userID, 100)
	require.NoError(f.t, err)
	return entries
}

func TestEnrollThenCancelIsIdentity(t *testing.T) {
	f := newLedgerFixture(t)
	userID := f.db.CreateTestUser(t, "ana", 0)
	activityID := f.db.CreateTestActivity(t, "Football", 1, 10)

	enrollment, err := f.service.Enroll(f.ctx, userID, activityID)
	require.NoError(t, err)
	assert.Equal(t, entity.EnrollmentConfirmed, enrollment.Status)
	assert.Equal(t, int64(10), enrollment.PointsAwarded)
	assert.Equal(t, int64(10), f.points(userID))
	assert.Equal(t, 0, f.seats(activityID))

	cancelled, err := f.service.Cancel(f.ctx, userID, enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EnrollmentCancelled, cancelled.Status)
	assert.Equal(t, int64(0), cancelled.PointsAwarded)
	assert.Equal(t, int64(0), f.points(userID))
	assert.Equal(t, 1, f.seats(activityID))

	entries := f.entries(userID)
	require.Len(t, entries, 2)
	assert.Equal(t, entity.EntryCancelled, entries[0].Kind)
	assert.Equal(t, int64(-10), entries[0].PointsDelta)
	assert.Equal(t, int64(0), entries[0].BalanceAfter)
	assert.Equal(t, entity.EntryEnrolled, entries[1].Kind)
	assert.Equal(t, int64(10), entries[1].PointsDelta)
	assert.Equal(t, int64(10), entries[1].BalanceAfter)
}

func TestEnrollFailures(t *testing.T) {
	t.Run("No seats left", func(t *testing.T) {
		f := newLedgerFixture(t)
		first := f.db.CreateTestUser(t, "ana", 0)
		second := f.db.CreateTestUser(t, "ben", 0)
		activityID := f.db.CreateTestActivity(t, "Piano", 1, 10)

		_, err := f.service.Enroll(f.ctx, first, activityID)
		require.NoError(t, err)

		_, err = f.service.Enroll(f.ctx, second, activityID)
		assert.ErrorIs(t, err, errs.ErrNoSeatsAvailable)
		assert.Equal(t, 0, f.seats(activityID))
		assert.Equal(t, int64(0), f.points(second))
		assert.Empty(t, f.entries(second))
	})

	t.Run("Already enrolled performs no mutation", func(t *testing.T) {
		f := newLedgerFixture(t)
		userID := f.db.CreateTestUser(t, "ana", 0)
		activityID := f.db.CreateTestActivity(t, "Dance", 5, 10)

		_, err := f.service.Enroll(f.ctx, userID, activityID)
		require.NoError(t, err)

		_, err = f.service.Enroll(f.ctx, userID, activityID)
		assert.ErrorIs(t, err, errs.ErrAlreadyEnrolled)
		assert.Equal(t, 4, f.seats(activityID))
		assert.Equal(t, int64(10), f.points(userID))
		assert.Len(t, f.entries(userID), 1)
	})

	t.Run("Missing or inactive targets", func(t *testing.T) {
		f := newLedgerFixture(t)
		userID := f.db.CreateTestUser(t, "ana", 0)
		activityID := f.db.CreateTestActivity(t, "Arts", 5, 10)
		f.db.Deactivate(t, "activities", activityID)

		_, err := f.service.Enroll(f.ctx, userID, activityID)
		assert.ErrorIs(t, err, errs.ErrNotFound)
		assert.Equal(t, 5, f.seats(activityID))

		_, err = f.service.Enroll(f.ctx, userID, 999)
		assert.ErrorIs(t, err, errs.ErrNotFound)

		_, err = f.service.Enroll(f.ctx, 999, activityID)
		assert.ErrorIs(t, err, errs.ErrNotFound)

		_, err = f.service.Enroll(f.ctx, 0, activityID)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Re-enrolling reuses the cancelled record", func(t *testing.T) {
		f := newLedgerFixture(t)
		userID := f.db.CreateTestUser(t, "ana", 0)
		activityID := f.db.CreateTestActivity(t, "Drums", 2, 10)

		first, err := f.service.Enroll(f.ctx, userID, activityID)
		require.NoError(t, err)
		_, err = f.service.Cancel(f.ctx, userID, first.ID)
		require.NoError(t, err)

		second, err := f.service.Enroll(f.ctx, userID, activityID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, entity.EnrollmentConfirmed, f.status(second.ID))
		assert.Equal(t, int64(10), f.points(userID))
		assert.Equal(t, 1, f.seats(activityID))
	})
}

func TestCancelFailures(t *testing.T) {
	t.Run("Only the owner may cancel", func(t *testing.T) {
		f := newLedgerFixture(t)
		owner := f.db.CreateTestUser(t, "ana", 0)
		other := f.db.CreateTestUser(t, "ben", 0)
		activityID := f.db.CreateTestActivity(t, "Guitar", 3, 10)

		enrollment, err := f.service.Enroll(f.ctx, owner, activityID)
		require.NoError(t, err)

		_, err = f.service.Cancel(f.ctx, other, enrollment.ID)
		assert.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, entity.EnrollmentConfirmed, f.status(enrollment.ID))
		assert.Equal(t, int64(10), f.points(owner))
	})

	t.Run("Non-confirmed enrollments keep balances", func(t *testing.T) {
		f := newLedgerFixture(t)
		userID := f.db.CreateTestUser(t, "ana", 0)
		activityID := f.db.CreateTestActivity(t, "Handball", 3, 10)

		enrollment, err := f.service.Enroll(f.ctx, userID, activityID)
		require.NoError(t, err)
		_, err = f.service.RecordAttendance(f.ctx, enrollment.ID)
		require.NoError(t, err)

		_, err = f.service.Cancel(f.ctx, userID, enrollment.ID)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, entity.EnrollmentAttended, f.status(enrollment.ID))
		assert.Equal(t, int64(10), f.points(userID))
		assert.Equal(t, 2, f.seats(activityID))

		_, err = f.service.Cancel(f.ctx, userID, 999)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("Spent award blocks the cancellation", func(t *testing.T) {
		f := newLedgerFixture(t)
		userID := f.db.CreateTestUser(t, "ana", 0)
		activityID := f.db.CreateTestActivity(t, "Basketball", 3, 10)
		productID := f.db.CreateTestProduct(t, "Sticker", 5, 10)

		enrollment, err := f.service.Enroll(f.ctx, userID, activityID)
		require.NoError(t, err)
		_, err = f.service.Redeem(f.ctx, userID, productID)
		require.NoError(t, err)

		_, err = f.service.Cancel(f.ctx, userID, enrollment.ID)
		var insufficient *errs.InsufficientPointsError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, int64(10), insufficient.Required)
		assert.Equal(t, int64(5), insufficient.Available)

		assert.Equal(t, int64(5), f.points(userID))
		assert.Equal(t, 2, f.seats(activityID))
		assert.Equal(t, entity.EnrollmentConfirmed, f.status(enrollment.ID))
	})
}

func TestRedeem(t *testing.T) {
	t.Run("Spends points and stock", func(t *testing.T) {
		f := newLedgerFixture(t)
		userID := f.db.CreateTestUser(t, "ana", 50)
		productID := f.db.CreateTestProduct(t, "T-shirt", 50, 2)

		redemption, err := f.service.Redeem(f.ctx, userID, productID)
		require.NoError(t, err)
		assert.Equal(t, int64(50), redemption.PointsSpent)
		assert.False(t, redemption.Delivered)
		assert.Equal(t, int64(0), f.points(userID))
		assert.Equal(t, 1, f.stock(productID))

		_, err = f.service.Redeem(f.ctx, userID, productID)
		assert.ErrorIs(t, err, errs.ErrInsufficientPoints)
		assert.Equal(t, int64(0), f.points(userID))
		assert.Equal(t, 1, f.stock(productID))
	})

	t.Run("Out of stock leaves the balance", func(t *testing.T) {
		f := newLedgerFixture(t)
		userID := f.db.CreateTestUser(t, "ana", 100)
		productID := f.db.CreateTestProduct(t, "Mug", 10, 0)

		_, err := f.service.Redeem(f.ctx, userID, productID)
		assert.ErrorIs(t, err, errs.ErrOutOfStock)
		assert.Equal(t, int64(100), f.points(userID))
		assert.Equal(t, 0, f.stock(productID))
	})

	t.Run("Points are checked before stock", func(t *testing.T) {
		f := newLedgerFixture(t)
		userID := f.db.CreateTestUser(t, "ana", 1)
		productID := f.db.CreateTestProduct(t, "Mug", 10, 0)

		_, err := f.service.Redeem(f.ctx, userID, productID)
		assert.ErrorIs(t, err, errs.ErrInsufficientPoints)
	})

	t.Run("Inactive product is not found", func(t *testing.T) {
		f := newLedgerFixture(t)
		userID := f.db.CreateTestUser(t, "ana", 100)
		productID := f.db.CreateTestProduct(t, "Mug", 10, 3)
		f.db.Deactivate(t, "products", productID)

		_, err := f.service.Redeem(f.ctx, userID, productID)
		assert.ErrorIs(t, err, errs.ErrNotFound)
		assert.Equal(t, int64(100), f.points(userID))
		assert.Equal(t, 3, f.stock(productID))
	})
}

func TestScenarios(t *testing.T) {
	t.Run("Enroll and cancel the last seat", func(t *testing.T) {
		f := newLedgerFixture(t)
		userID := f.db.CreateTestUser(t, "ana", 0)
		activityID := f.db.CreateTestActivity(t, "Stretching", 1, 10)

		enrollment, err := f.service.Enroll(f.ctx, userID, activityID)
		require.NoError(t, err)
		assert.Equal(t, int64(10), f.points(userID))
		assert.Equal(t, 0, f.seats(activityID))

		_, err = f.service.Cancel(f.ctx, userID, enrollment.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), f.points(userID))
		assert.Equal(t, 1, f.seats(activityID))
	})

	t.Run("Second redemption runs out of points", func(t *testing.T) {
		f := newLedgerFixture(t)
		userID := f.db.CreateTestUser(t, "ana", 50)
		productID := f.db.CreateTestProduct(t, "Hoodie", 50, 2)

		_, err := f.service.Redeem(f.ctx, userID, productID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), f.points(userID))
		assert.Equal(t, 1, f.stock(productID))

		_, err = f.service.Redeem(f.ctx, userID, productID)
		assert.ErrorIs(t, err, errs.ErrInsufficientPoints)
	})
}

// SQLite runs on a single connection, so the concurrent callers below queue rather than
// collide. They check the final counts only; postgres_integration_test.go exercises real
// row-lock contention and TestConflictExhaustionLeavesNoTrace covers the retry path.
func TestConcurrentEnrollLastSeat(t *testing.T) {
	f := newLedgerFixture(t)
	activityID := f.db.CreateTestActivity(t, "Football", 1, 10)

	const callers = 12
	users := make([]uint64, callers)
	for i := range users {
		users[i] = f.db.CreateTestUser(t, "player"+string(rune('a'+i)), 0)
	}

	results := make([]error, callers)
	var g errgroup.Group
	for i := range users {
		g.Go(func() error {
			_, results[i] = f.service.Enroll(f.ctx, users[i], activityID)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
			continue
		}
		assert.Contains(t, []string{"no_seats", "conflict"}, Outcome(err))
	}
	assert.Equal(t, 1, winners)
	assert.Equal(t, 0, f.seats(activityID))

	awarded := int64(0)
	for _, userID := range users {
		awarded += f.points(userID)
	}
	assert.Equal(t, int64(10), awarded)
}

func TestConcurrentRedeemLastUnit(t *testing.T) {
	f := newLedgerFixture(t)
	productID := f.db.CreateTestProduct(t, "Cap", 20, 1)

	const callers = 12
	users := make([]uint64, callers)
	for i := range users {
		users[i] = f.db.CreateTestUser(t, "buyer"+string(rune('a'+i)), 100)
	}

	results := make([]error, callers)
	var g errgroup.Group
	for i := range users {
		g.Go(func() error {
			_, results[i] = f.service.Redeem(f.ctx, users[i], productID)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
			continue
		}
		assert.Contains(t, []string{"out_of_stock", "conflict"}, Outcome(err))
	}
	assert.Equal(t, 1, winners)
	assert.Equal(t, 0, f.stock(productID))

	spent := int64(0)
	for _, userID := range users {
		spent += 100 - f.points(userID)
	}
	assert.Equal(t, int64(20), spent)
}

// failWrites makes every UPDATE on table fail with a lock error, as a contended row would
func (f *ledgerFixture) failWrites(table string) *int {
	f.t.Helper()

	hits := 0
	err := f.db.Manager.DB().Callback().Update().Before("gorm:update").Register("test:lock_"+table, func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			hits++
			_ = tx.AddError(errors.New("database is locked"))
		}
	})
	require.NoError(f.t, err)
	return &hits
}

func TestConflictExhaustionLeavesNoTrace(t *testing.T) {
	t.Run("Enroll", func(t *testing.T) {
		f := newLedgerFixture(t)
		userID := f.db.CreateTestUser(t, "ana", 0)
		activityID := f.db.CreateTestActivity(t, "Handball", 1, 10)
		hits := f.failWrites("activities")

		_, err := f.service.Enroll(f.ctx, userID, activityID)

		var conflict *errs.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, OpEnroll, conflict.Operation)
		assert.Equal(t, 5, conflict.Attempts)
		assert.Equal(t, 5, *hits)
		assert.Equal(t, "conflict", Outcome(err))

		assert.Equal(t, 1, f.seats(activityID))
		assert.Equal(t, int64(0), f.points(userID))
		assert.Empty(t, f.entries(userID))
		_, err = f.uow.GetEnrollmentRepository(f.ctx).FindByUserAndActivity(f.ctx, userID, activityID)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("Redeem", func(t *testing.T) {
		f := newLedgerFixture(t)
		userID := f.db.CreateTestUser(t, "ana", 100)
		productID := f.db.CreateTestProduct(t, "Mug", 40, 1)
		f.failWrites("products")

		_, err := f.service.Redeem(f.ctx, userID, productID)

		assert.True(t, errs.IsConflictError(err))
		assert.Equal(t, int64(100), f.points(userID))
		assert.Equal(t, 1, f.stock(productID))
		assert.Empty(t, f.entries(userID))
	})
}
