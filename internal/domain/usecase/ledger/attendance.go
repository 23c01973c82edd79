package ledger

import (
	"context"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
)

// RecordAttendance moves a confirmed enrollment to attended
func (s *Service) RecordAttendance(ctx context.Context, enrollmentID uint64) (*entity.Enrollment, error) {
	if enrollmentID == 0 {
		return nil, errs.ErrInvalidID
	}
	return s.closeEnrollment(ctx, OpRecordAttendance, enrollmentID, entity.EntryAttended)
}

// markAbsent moves a confirmed enrollment to absent
func (s *Service) markAbsent(ctx context.Context, enrollmentID uint64) (*entity.Enrollment, error) {
	return s.closeEnrollment(ctx, OpMarkAbsent, enrollmentID, entity.EntryAbsent)
}

// closeEnrollment applies a terminal transition without point or seat effects
func (s *Service) closeEnrollment(ctx context.Context, operation string, enrollmentID uint64, kind entity.EntryKind) (*entity.Enrollment, error) {
	started := s.timeProvider.Now()

	var result *entity.Enrollment
	var userID uint64
	err := s.uow.Execute(ctx, operation, func(txCtx context.Context) error {
		enrollments := s.uow.GetEnrollmentRepository(txCtx)

		enrollment, err := enrollments.GetByIDForUpdate(txCtx, enrollmentID)
		if err != nil {
			return err
		}
		userID = enrollment.UserID

		if kind == entity.EntryAbsent {
			err = enrollment.MarkAbsent(s.timeProvider)
		} else {
			err = enrollment.MarkAttended(s.timeProvider)
		}
		if err != nil {
			return err
		}
		if err := enrollments.Update(txCtx, enrollment); err != nil {
			return err
		}

		user, err := s.uow.GetUserRepository(txCtx).GetByID(txCtx, enrollment.UserID)
		if err != nil {
			return err
		}
		if err := s.appendEntry(txCtx, user, kind, 0, entity.ReferenceEnrollment, enrollment.ID); err != nil {
			return err
		}

		result = enrollment
		return nil
	})

	if err := s.finish(operation, started, userID, "enrollment", enrollmentID, err); err != nil {
		return nil, err
	}
	return result, nil
}
