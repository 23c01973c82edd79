package user

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/community-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/community-ledger/internal/domain/port/usecase"
)

// Dashboard reads the user, their enrollments, redemptions, latest ledger entries and the
// activities they can still enroll in, in one unit of work so the balance agrees with the
// history shown next to it.
func (u *UserUseCase) Dashboard(ctx context.Context, userID uint64) (*usecase.Dashboard, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	dashboard := &usecase.Dashboard{}
	err := u.uow.Execute(ctx, "dashboard", func(txCtx context.Context) error {
		user, err := u.uow.GetUserRepository(txCtx).GetByID(txCtx, userID)
		if err != nil {
			return err
		}
		dashboard.User = user

		if dashboard.Enrollments, err = u.uow.GetEnrollmentRepository(txCtx).ListByUser(txCtx, userID); err != nil {
			return err
		}
		if dashboard.Redemptions, err = u.uow.GetRedemptionRepository(txCtx).ListByUser(txCtx, userID); err != nil {
			return err
		}
		if dashboard.RecentEntries, err = u.uow.GetLedgerEntryRepository(txCtx).ListByUser(txCtx, userID, recentEntries); err != nil {
			return err
		}

		openActivities, err := u.uow.GetActivityRepository(txCtx).List(txCtx, persistence.ActivityFilter{OnlyOpen: true})
		if err != nil {
			return err
		}
		dashboard.AvailableActivities = availableTo(openActivities, dashboard.Enrollments)
		return nil
	})
	if err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			u.logger.Error("Failed to load dashboard", map[string]any{
				"userId": userID,
				"error":  err.Error(),
			})
		}
		return nil, err
	}

	return dashboard, nil
}

// availableTo drops the open activities the user already holds a confirmed seat for
func availableTo(open []*entity.Activity, enrollments []*entity.Enrollment) []*entity.Activity {
	confirmed := make(map[uint64]struct{}, len(enrollments))
	for _, e := range enrollments {
		if e.IsConfirmed() {
			confirmed[e.ActivityID] = struct{}{}
		}
	}

	available := make([]*entity.Activity, 0, len(open))
	for _, a := range open {
		if _, ok := confirmed[a.ID]; !ok {
			available = append(available, a)
		}
	}
	return available
}
