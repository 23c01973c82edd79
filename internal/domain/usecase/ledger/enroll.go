package ledger

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
)

// Enroll reserves a seat and awards the activity points in one unit of work.
// A cancelled enrollment for the same pair is reopened instead of creating a second row.
func (s *Service) Enroll(ctx context.Context, userID, activityID uint64) (*entity.Enrollment, error) {
	if err := validateIDs(userID, activityID); err != nil {
		return nil, err
	}
	started := s.timeProvider.Now()

	var result *entity.Enrollment
	err := s.uow.Execute(ctx, OpEnroll, func(txCtx context.Context) error {
		users := s.uow.GetUserRepository(txCtx)
		enrollments := s.uow.GetEnrollmentRepository(txCtx)
		activities := s.uow.GetActivityRepository(txCtx)

		user, err := users.GetByIDForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		existing, err := enrollments.FindByUserAndActivity(txCtx, userID, activityID)
		if err != nil && !errs.IsNotFoundError(err) {
			return err
		}

		activity, err := activities.GetByIDForUpdate(txCtx, activityID)
		if err != nil {
			return err
		}
		if !activity.Active {
			return fmt.Errorf("%w: activity %d is inactive", errs.ErrNotFound, activityID)
		}

		if existing != nil && existing.Status != entity.EnrollmentCancelled {
			return errs.ErrAlreadyEnrolled
		}

		if err := activity.TakeSeat(); err != nil {
			return err
		}

		enrollment := existing
		if enrollment != nil {
			if err := enrollment.Reopen(activity, s.timeProvider); err != nil {
				return err
			}
			if err := enrollments.Update(txCtx, enrollment); err != nil {
				return err
			}
		} else {
			enrollment = entity.NewEnrollment(userID, activity, s.timeProvider)
			if err := enrollments.Create(txCtx, enrollment); err != nil {
				return err
			}
		}

		if err := user.Credit(enrollment.PointsAwarded, s.timeProvider); err != nil {
			return err
		}
		if err := users.UpdatePoints(txCtx, user); err != nil {
			return err
		}
		if err := activities.UpdateSeats(txCtx, activity); err != nil {
			return err
		}
		if err := s.appendEntry(txCtx, user, entity.EntryEnrolled, enrollment.PointsAwarded, entity.ReferenceEnrollment, enrollment.ID); err != nil {
			return err
		}

		result = enrollment
		return nil
	})

	if err := s.finish(OpEnroll, started, userID, "activity", activityID, err); err != nil {
		return nil, err
	}
	return result, nil
}
