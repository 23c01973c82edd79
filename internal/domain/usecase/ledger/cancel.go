package ledger

import (
	"context"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
)

// Cancel releases the seat and takes the awarded points back.
// The cancellation is rejected when the balance no longer covers the award.
func (s *Service) Cancel(ctx context.Context, userID, enrollmentID uint64) (*entity.Enrollment, error) {
	if err := validateIDs(userID, enrollmentID); err != nil {
		return nil, err
	}
	started := s.timeProvider.Now()

	var result *entity.Enrollment
	err := s.uow.Execute(ctx, OpCancel, func(txCtx context.Context) error {
		users := s.uow.GetUserRepository(txCtx)
		enrollments := s.uow.GetEnrollmentRepository(txCtx)
		activities := s.uow.GetActivityRepository(txCtx)

		user, err := users.GetByIDForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		enrollment, err := enrollments.GetByIDForUpdate(txCtx, enrollmentID)
		if err != nil {
			return err
		}
		if !enrollment.IsOwnedBy(userID) {
			return errs.ErrForbidden
		}

		activity, err := activities.GetByIDForUpdate(txCtx, enrollment.ActivityID)
		if err != nil {
			return err
		}

		awarded := enrollment.PointsAwarded
		refund, err := enrollment.Cancel(s.timeProvider)
		if err != nil {
			return err
		}
		if err := user.Debit(refund, s.timeProvider); err != nil {
			return err
		}
		activity.ReleaseSeat()

		if err := enrollments.Update(txCtx, enrollment); err != nil {
			return err
		}
		if err := users.UpdatePoints(txCtx, user); err != nil {
			return err
		}
		if err := activities.UpdateSeats(txCtx, activity); err != nil {
			return err
		}
		if err := s.appendEntry(txCtx, user, entity.EntryCancelled, -awarded, entity.ReferenceEnrollment, enrollment.ID); err != nil {
			return err
		}

		result = enrollment
		return nil
	})

	if err := s.finish(OpCancel, started, userID, "enrollment", enrollmentID, err); err != nil {
		return nil, err
	}
	return result, nil
}
