package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/community-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollmentLifecycle(t *testing.T) {
	fixedTime := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	activity := &Activity{ID: 4, PointsAward: 15}

	t.Run("New enrollment is confirmed with the award", func(t *testing.T) {
		enrollment := NewEnrollment(9, activity, mockTime)

		assert.Equal(t, uint64(9), enrollment.UserID)
		assert.Equal(t, uint64(4), enrollment.ActivityID)
		assert.Equal(t, EnrollmentConfirmed, enrollment.Status)
		assert.Equal(t, int64(15), enrollment.PointsAwarded)
		assert.True(t, enrollment.IsOwnedBy(9))
		assert.False(t, enrollment.IsOwnedBy(10))
	})

	t.Run("Cancel returns the awarded points and zeroes them", func(t *testing.T) {
		enrollment := NewEnrollment(9, activity, mockTime)

		refund, err := enrollment.Cancel(mockTime)
		require.NoError(t, err)
		assert.Equal(t, int64(15), refund)
		assert.Equal(t, EnrollmentCancelled, enrollment.Status)
		assert.Equal(t, int64(0), enrollment.PointsAwarded)
	})

	t.Run("Terminal states reject every transition", func(t *testing.T) {
		for _, status := range []EnrollmentStatus{EnrollmentCancelled, EnrollmentAttended, EnrollmentAbsent} {
			t.Run(string(status), func(t *testing.T) {
				enrollment := &Enrollment{ID: 1, Status: status, PointsAwarded: 5}

				_, err := enrollment.Cancel(mockTime)
				assert.ErrorIs(t, err, errs.ErrInvalidState)
				assert.ErrorIs(t, enrollment.MarkAttended(mockTime), errs.ErrInvalidState)
				assert.ErrorIs(t, enrollment.MarkAbsent(mockTime), errs.ErrInvalidState)
				assert.Equal(t, status, enrollment.Status)
				assert.Equal(t, int64(5), enrollment.PointsAwarded)
			})
		}
	})

	t.Run("Attendance and absence from confirmed", func(t *testing.T) {
		attended := NewEnrollment(9, activity, mockTime)
		require.NoError(t, attended.MarkAttended(mockTime))
		assert.Equal(t, EnrollmentAttended, attended.Status)
		assert.Equal(t, int64(15), attended.PointsAwarded)

		absent := NewEnrollment(9, activity, mockTime)
		require.NoError(t, absent.MarkAbsent(mockTime))
		assert.Equal(t, EnrollmentAbsent, absent.Status)
	})

	t.Run("Only cancelled enrollments reopen", func(t *testing.T) {
		enrollment := NewEnrollment(9, activity, mockTime)
		assert.ErrorIs(t, enrollment.Reopen(activity, mockTime), errs.ErrAlreadyEnrolled)

		_, err := enrollment.Cancel(mockTime)
		require.NoError(t, err)
		require.NoError(t, enrollment.Reopen(activity, mockTime))
		assert.Equal(t, EnrollmentConfirmed, enrollment.Status)
		assert.Equal(t, int64(15), enrollment.PointsAwarded)
	})
}
