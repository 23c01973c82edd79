package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/community-ledger/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/community-ledger/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordAttendanceBatch(t *testing.T) {
	f := newLedgerFixture(t)
	activityID := f.db.CreateTestActivity(t, "Guitar", 5, 10)

	var ids []uint64
	for _, name := range []string{"ana", "ben", "cy"} {
		userID := f.db.CreateTestUser(t, name, 0)
		enrollment, err := f.service.Enroll(f.ctx, userID, activityID)
		require.NoError(t, err)
		ids = append(ids, enrollment.ID)
	}

	// ben cancels; his record is no longer confirmed
	cancelled, err := f.service.Cancel(f.ctx, mustUser(t, f, ids[1]), ids[1])
	require.NoError(t, err)
	require.Equal(t, entity.EnrollmentCancelled, cancelled.Status)

	count, err := f.service.RecordAttendanceBatch(f.ctx, []uint64{ids[0], ids[1], ids[2], ids[0], 999, 0})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.Equal(t, entity.EnrollmentAttended, f.status(ids[0]))
	assert.Equal(t, entity.EnrollmentCancelled, f.status(ids[1]))
	assert.Equal(t, entity.EnrollmentAttended, f.status(ids[2]))

	again, err := f.service.RecordAttendanceBatch(f.ctx, ids)
	require.NoError(t, err)
	assert.Equal(t, 0, again)
}

func mustUser(t *testing.T, f *ledgerFixture, enrollmentID uint64) uint64 {
	t.Helper()
	enrollment, err := f.uow.GetEnrollmentRepository(f.ctx).GetByID(f.ctx, enrollmentID)
	require.NoError(t, err)
	return enrollment.UserID
}

func TestMarkAbsent(t *testing.T) {
	f := newLedgerFixture(t)
	userID := f.db.CreateTestUser(t, "ana", 0)
	activityID := f.db.CreateTestActivity(t, "Dance", 5, 10)

	enrollment, err := f.service.Enroll(f.ctx, userID, activityID)
	require.NoError(t, err)

	count, err := f.service.MarkAbsent(f.ctx, []uint64{enrollment.ID, enrollment.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, entity.EnrollmentAbsent, f.status(enrollment.ID))

	// Absence keeps the award and the seat
	assert.Equal(t, int64(10), f.points(userID))
	assert.Equal(t, 4, f.seats(activityID))

	_, err = f.service.RecordAttendance(f.ctx, enrollment.ID)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestMarkDelivered(t *testing.T) {
	f := newLedgerFixture(t)
	userID := f.db.CreateTestUser(t, "ana", 100)
	productID := f.db.CreateTestProduct(t, "Mug", 10, 5)

	first, err := f.service.Redeem(f.ctx, userID, productID)
	require.NoError(t, err)
	second, err := f.service.Redeem(f.ctx, userID, productID)
	require.NoError(t, err)

	count, err := f.service.MarkDelivered(f.ctx, []uint64{first.ID, second.ID, 12345})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = f.service.MarkDelivered(f.ctx, []uint64{first.ID})
	require.NoError(t, err)
	assert.Equal(t, 0, count, "delivery is one-way")

	entries := f.entries(userID)
	require.NotEmpty(t, entries)
	assert.Equal(t, entity.EntryDelivered, entries[0].Kind)
	assert.Equal(t, int64(0), entries[0].PointsDelta)
	assert.Equal(t, int64(80), entries[0].BalanceAfter)
}

func TestBatchAbortsOnInfrastructureErrors(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	mockUoW := persistencemocks.NewMockUnitOfWork(t)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockLogger := coremocks.NewMockLogger(t)
	mockMetrics := coremocks.NewMockMetrics(t)

	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	mockTime.EXPECT().Since(mock.Anything).Return(0).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	mockMetrics.EXPECT().ObserveTransition(OpMarkDelivered, mock.Anything, mock.Anything).Maybe()

	calls := 0
	mockUoW.EXPECT().Execute(mock.Anything, OpMarkDelivered, mock.Anything).
		RunAndReturn(func(ctx context.Context, op string, fn func(context.Context) error) error {
			calls++
			switch calls {
			case 1:
				return nil
			case 2:
				return errs.ErrNotFound
			default:
				return errs.NewConflictError(op, 5, errs.ErrConflict)
			}
		})
	mockMetrics.EXPECT().ObserveBatch(OpMarkDelivered, 4, 1).Once()

	service := NewLedgerService(mockUoW, mockTime, mockLogger, mockMetrics)
	count, err := service.MarkDelivered(ctx, []uint64{1, 2, 3, 4})

	assert.Equal(t, 1, count)
	assert.True(t, errs.IsConflictError(err))
	assert.Equal(t, 3, calls, "the batch stops at the first hard failure")
}

func TestConflictExhaustionIsReported(t *testing.T) {
	ctx := context.Background()

	mockUoW := persistencemocks.NewMockUnitOfWork(t)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockLogger := coremocks.NewMockLogger(t)
	mockMetrics := coremocks.NewMockMetrics(t)

	mockTime.EXPECT().Now().Return(time.Now()).Maybe()
	mockTime.EXPECT().Since(mock.Anything).Return(0).Maybe()
	mockUoW.EXPECT().Execute(mock.Anything, OpEnroll, mock.Anything).
		Return(errs.NewConflictError(OpEnroll, 5, errs.ErrConflict)).Once()
	mockMetrics.EXPECT().ObserveTransition(OpEnroll, "conflict", mock.Anything).Once()
	mockLogger.EXPECT().Warn("Ledger transition gave up after conflicts", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["attempts"] == 5 && fields["operation"] == OpEnroll
	})).Once()

	service := NewLedgerService(mockUoW, mockTime, mockLogger, mockMetrics)
	enrollment, err := service.Enroll(ctx, 1, 2)

	assert.Nil(t, enrollment)
	var conflict *errs.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, 5, conflict.Attempts)
	assert.Equal(t, errs.CodeConflict, errs.ErrorCode(err))
}
