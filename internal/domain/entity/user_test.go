package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/community-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser(0, "ana", "Ana@Example.com", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "ana", user.Username)
		assert.Equal(t, "ana@example.com", user.Email)
		assert.Equal(t, int64(0), user.Points())
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Invalid input", func(t *testing.T) {
		testCases := []struct {
			username string
			email    string
		}{
			{"", "ana@example.com"},
			{"ana", ""},
			{"ana", "not-an-email"},
			{"   ", "ana@example.com"},
		}

		for _, tc := range testCases {
			t.Run(tc.username+"/"+tc.email, func(t *testing.T) {
				user, err := NewUser(0, tc.username, tc.email, mockTime)
				assert.ErrorIs(t, err, errs.ErrInvalidRequest)
				assert.Nil(t, user)
			})
		}
	})
}

func TestUserCreditAndDebit(t *testing.T) {
	initialTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	updateTime := time.Date(2024, 3, 1, 13, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(updateTime).Maybe()

	user := RestoreUser(1, "ana", "ana@example.com", 20, initialTime, initialTime)

	t.Run("Credit adds points", func(t *testing.T) {
		require.NoError(t, user.Credit(10, mockTime))
		assert.Equal(t, int64(30), user.Points())
		assert.Equal(t, initialTime, user.CreatedAt)
		assert.Equal(t, updateTime, user.UpdatedAt)
	})

	t.Run("Debit within balance", func(t *testing.T) {
		require.NoError(t, user.Debit(30, mockTime))
		assert.Equal(t, int64(0), user.Points())
	})

	t.Run("Debit beyond balance leaves balance untouched", func(t *testing.T) {
		err := user.Debit(1, mockTime)

		var insufficient *errs.InsufficientPointsError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, int64(1), insufficient.Required)
		assert.Equal(t, int64(0), insufficient.Available)
		assert.Equal(t, int64(0), user.Points())
	})

	t.Run("Negative amounts are rejected", func(t *testing.T) {
		assert.ErrorIs(t, user.Credit(-5, mockTime), errs.ErrInvalidPoints)
		assert.ErrorIs(t, user.Debit(-5, mockTime), errs.ErrInvalidPoints)
	})
}

func TestUserCanSpend(t *testing.T) {
	now := time.Now()
	user := RestoreUser(1, "ana", "ana@example.com", 50, now, now)

	assert.True(t, user.CanSpend(50))
	assert.True(t, user.CanSpend(0))
	assert.False(t, user.CanSpend(51))
	assert.False(t, user.CanSpend(-1))
}
