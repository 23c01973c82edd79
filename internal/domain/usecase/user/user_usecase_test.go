package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/community-ledger/internal/domain/port/persistence"
	coremocks "github.com/amirhossein-jamali/community-ledger/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/community-ledger/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful user creation", func(t *testing.T) {
		mockUoW := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockUoW.EXPECT().GetUserRepository(ctx).Return(mockRepo).Once()
		mockRepo.EXPECT().Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Username == "ana" && user.Email == "ana@example.com" && user.Points() == 0
		})).RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = 11
			return nil
		}).Once()
		mockLogger.EXPECT().Info("User created", mock.Anything).Once()

		userUseCase := NewUserUseCase(mockUoW, mockTime, mockLogger)

		user, err := userUseCase.CreateUser(ctx, " ana ", "ANA@example.com")

		require.NoError(t, err)
		assert.Equal(t, uint64(11), user.ID)
		assert.Equal(t, int64(0), user.Points())
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Invalid email", func(t *testing.T) {
		mockUoW := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		userUseCase := NewUserUseCase(mockUoW, mockTime, mockLogger)

		user, err := userUseCase.CreateUser(ctx, "ana", "nope")

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		assert.Nil(t, user)
	})

	t.Run("Duplicate username is returned without an error log", func(t *testing.T) {
		mockUoW := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockUoW.EXPECT().GetUserRepository(ctx).Return(mockRepo).Once()
		mockRepo.EXPECT().Create(ctx, mock.Anything).Return(errs.ErrDuplicateUser).Once()

		userUseCase := NewUserUseCase(mockUoW, mockTime, mockLogger)

		user, err := userUseCase.CreateUser(ctx, "ana", "ana@example.com")

		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
		assert.Nil(t, user)
	})

	t.Run("Database error is logged", func(t *testing.T) {
		mockUoW := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockUoW.EXPECT().GetUserRepository(ctx).Return(mockRepo).Once()
		mockRepo.EXPECT().Create(ctx, mock.Anything).Return(errs.ErrDatabaseConnection).Once()
		mockLogger.EXPECT().Error("Failed to create user", mock.Anything).Once()

		userUseCase := NewUserUseCase(mockUoW, mockTime, mockLogger)

		_, err := userUseCase.CreateUser(ctx, "ana", "ana@example.com")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("Zero id is rejected", func(t *testing.T) {
		userUseCase := NewUserUseCase(persistencemocks.NewMockUnitOfWork(t), coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t))

		_, err := userUseCase.GetUser(ctx, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Existing user", func(t *testing.T) {
		mockUoW := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockUoW.EXPECT().GetUserRepository(ctx).Return(mockRepo).Once()
		mockRepo.EXPECT().GetByID(ctx, uint64(3)).
			Return(entity.RestoreUser(3, "ana", "ana@example.com", 40, now, now), nil).Once()

		userUseCase := NewUserUseCase(mockUoW, coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t))

		user, err := userUseCase.GetUser(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(40), user.Points())
	})
}

func TestUserExists(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	testCases := []struct {
		name     string
		user     *entity.User
		repoErr  error
		expected bool
		wantErr  error
	}{
		{"found", entity.RestoreUser(1, "ana", "ana@example.com", 0, now, now), nil, true, nil},
		{"missing", nil, errs.ErrNotFound, false, nil},
		{"database down", nil, errs.ErrDatabaseConnection, false, errs.ErrDatabaseConnection},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockUoW := persistencemocks.NewMockUnitOfWork(t)
			mockRepo := persistencemocks.NewMockUserRepository(t)
			mockUoW.EXPECT().GetUserRepository(ctx).Return(mockRepo).Once()
			mockRepo.EXPECT().GetByID(ctx, uint64(1)).Return(tc.user, tc.repoErr).Once()

			userUseCase := NewUserUseCase(mockUoW, coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t))

			exists, err := userUseCase.UserExists(ctx, 1)
			assert.Equal(t, tc.expected, exists)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	runInline := func(ctx context.Context, _ string, fn func(context.Context) error) error {
		return fn(ctx)
	}

	t.Run("Collects balance and history", func(t *testing.T) {
		mockUoW := persistencemocks.NewMockUnitOfWork(t)
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockEnrollments := persistencemocks.NewMockEnrollmentRepository(t)
		mockRedemptions := persistencemocks.NewMockRedemptionRepository(t)
		mockEntries := persistencemocks.NewMockLedgerEntryRepository(t)
		mockActivities := persistencemocks.NewMockActivityRepository(t)

		enrollments := []*entity.Enrollment{
			{ID: 1, UserID: 5, ActivityID: 20, Status: entity.EnrollmentConfirmed, PointsAwarded: 10},
			{ID: 3, UserID: 5, ActivityID: 21, Status: entity.EnrollmentCancelled},
		}
		open := []*entity.Activity{{ID: 20, Title: "Choir"}, {ID: 21, Title: "Chess"}, {ID: 22, Title: "Yoga"}}
		redemptions := []*entity.Redemption{{ID: 2, UserID: 5, PointsSpent: 4}}
		entries := []*entity.LedgerEntry{{ID: 9, UserID: 5, Kind: entity.EntryRedeemed, PointsDelta: -4, BalanceAfter: 6}}

		mockUoW.EXPECT().Execute(ctx, "dashboard", mock.Anything).RunAndReturn(runInline).Once()
		mockUoW.EXPECT().GetUserRepository(ctx).Return(mockUsers).Once()
		mockUoW.EXPECT().GetEnrollmentRepository(ctx).Return(mockEnrollments).Once()
		mockUoW.EXPECT().GetRedemptionRepository(ctx).Return(mockRedemptions).Once()
		mockUoW.EXPECT().GetLedgerEntryRepository(ctx).Return(mockEntries).Once()
		mockUsers.EXPECT().GetByID(ctx, uint64(5)).Return(entity.RestoreUser(5, "ana", "ana@example.com", 6, now, now), nil).Once()
		mockEnrollments.EXPECT().ListByUser(ctx, uint64(5)).Return(enrollments, nil).Once()
		mockRedemptions.EXPECT().ListByUser(ctx, uint64(5)).Return(redemptions, nil).Once()
		mockEntries.EXPECT().ListByUser(ctx, uint64(5), recentEntries).Return(entries, nil).Once()
		mockUoW.EXPECT().GetActivityRepository(ctx).Return(mockActivities).Once()
		mockActivities.EXPECT().List(ctx, persistence.ActivityFilter{OnlyOpen: true}).Return(open, nil).Once()

		userUseCase := NewUserUseCase(mockUoW, coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t))

		dashboard, err := userUseCase.Dashboard(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, int64(6), dashboard.User.Points())
		assert.Equal(t, enrollments, dashboard.Enrollments)
		assert.Equal(t, redemptions, dashboard.Redemptions)
		assert.Equal(t, entries, dashboard.RecentEntries)
		assert.Equal(t, []*entity.Activity{open[1], open[2]}, dashboard.AvailableActivities,
			"a confirmed seat hides the activity, a cancelled one does not")
	})

	t.Run("Unknown user", func(t *testing.T) {
		mockUoW := persistencemocks.NewMockUnitOfWork(t)
		mockUsers := persistencemocks.NewMockUserRepository(t)

		mockUoW.EXPECT().Execute(ctx, "dashboard", mock.Anything).RunAndReturn(runInline).Once()
		mockUoW.EXPECT().GetUserRepository(ctx).Return(mockUsers).Once()
		mockUsers.EXPECT().GetByID(ctx, uint64(5)).Return(nil, errs.ErrNotFound).Once()

		userUseCase := NewUserUseCase(mockUoW, coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t))

		dashboard, err := userUseCase.Dashboard(ctx, 5)
		assert.ErrorIs(t, err, errs.ErrNotFound)
		assert.Nil(t, dashboard)
	})

	t.Run("Read failure is logged", func(t *testing.T) {
		mockUoW := persistencemocks.NewMockUnitOfWork(t)
		mockLogger := coremocks.NewMockLogger(t)
		readErr := errors.New("connection reset")

		mockUoW.EXPECT().Execute(ctx, "dashboard", mock.Anything).Return(readErr).Once()
		mockLogger.EXPECT().Error("Failed to load dashboard", mock.Anything).Once()

		userUseCase := NewUserUseCase(mockUoW, coremocks.NewMockTimeProvider(t), mockLogger)

		_, err := userUseCase.Dashboard(ctx, 5)
		assert.ErrorIs(t, err, readErr)
	})
}
