package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
)

// EnrollmentStatus defines possible status values for an enrollment
type EnrollmentStatus string

// EnrollmentStatus constants
const (
	EnrollmentConfirmed EnrollmentStatus = "confirmed"
	EnrollmentCancelled EnrollmentStatus = "cancelled"
	EnrollmentAttended  EnrollmentStatus = "attended"
	EnrollmentAbsent    EnrollmentStatus = "absent"
)

// Enrollment relates one user to one activity
type Enrollment struct {
	ID            uint64
	UserID        uint64
	ActivityID    uint64
	Status        EnrollmentStatus
	PointsAwarded int64
	EnrolledAt    time.Time
	UpdatedAt     time.Time
}

// NewEnrollment creates a confirmed enrollment holding the activity award
func NewEnrollment(userID uint64, activity *Activity, timeProvider coreport.TimeProvider) *Enrollment {
	now := timeProvider.Now()
	return &Enrollment{
		UserID:        userID,
		ActivityID:    activity.ID,
		Status:        EnrollmentConfirmed,
		PointsAwarded: activity.PointsAward,
		EnrolledAt:    now,
		UpdatedAt:     now,
	}
}

// IsOwnedBy reports whether the enrollment belongs to the user
func (e *Enrollment) IsOwnedBy(userID uint64) bool {
	return e.UserID == userID
}

// IsConfirmed reports whether the enrollment can still transition
func (e *Enrollment) IsConfirmed() bool {
	return e.Status == EnrollmentConfirmed
}

// Reopen turns a cancelled enrollment back into a confirmed one
func (e *Enrollment) Reopen(activity *Activity, timeProvider coreport.TimeProvider) error {
	if e.Status != EnrollmentCancelled {
		return errs.ErrAlreadyEnrolled
	}
	now := timeProvider.Now()
	e.Status = EnrollmentConfirmed
	e.PointsAwarded = activity.PointsAward
	e.EnrolledAt = now
	e.UpdatedAt = now
	return nil
}

// Cancel moves a confirmed enrollment to cancelled and returns the points to take back
func (e *Enrollment) Cancel(timeProvider coreport.TimeProvider) (int64, error) {
	if err := e.requireConfirmed(EnrollmentCancelled); err != nil {
		return 0, err
	}
	refund := e.PointsAwarded
	e.Status = EnrollmentCancelled
	e.PointsAwarded = 0
	e.UpdatedAt = timeProvider.Now()
	return refund, nil
}

// MarkAttended moves a confirmed enrollment to attended
func (e *Enrollment) MarkAttended(timeProvider coreport.TimeProvider) error {
	return e.transition(EnrollmentAttended, timeProvider)
}

// MarkAbsent moves a confirmed enrollment to absent
func (e *Enrollment) MarkAbsent(timeProvider coreport.TimeProvider) error {
	return e.transition(EnrollmentAbsent, timeProvider)
}

func (e *Enrollment) transition(target EnrollmentStatus, timeProvider coreport.TimeProvider) error {
	if err := e.requireConfirmed(target); err != nil {
		return err
	}
	e.Status = target
	e.UpdatedAt = timeProvider.Now()
	return nil
}

func (e *Enrollment) requireConfirmed(target EnrollmentStatus) error {
	if e.Status != EnrollmentConfirmed {
		return fmt.Errorf("%w: enrollment %d is %s, cannot become %s", errs.ErrInvalidState, e.ID, e.Status, target)
	}
	return nil
}
