package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/community-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/community-ledger/internal/domain/port/usecase"
)

// Operation names, used for unit of work spans, metrics and logs
const (
	OpEnroll           = "enroll"
	OpCancel           = "cancel"
	OpRecordAttendance = "record_attendance"
	OpMarkAbsent       = "mark_absent"
	OpRedeem           = "redeem"
	OpMarkDelivered    = "mark_delivered"
)

// Service implements the ledger transitions on top of a unit of work.
// Rows are always locked in the order user, enrollment or redemption, activity or product.
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
) usecase.LedgerUseCase {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
	}
}

// appendEntry records the transition in the ledger of the same unit of work
func (s *Service) appendEntry(
	ctx context.Context,
	user *entity.User,
	kind entity.EntryKind,
	delta int64,
	referenceType entity.ReferenceType,
	referenceID uint64,
) error {
	entry := entity.NewLedgerEntry(user.ID, kind, delta, user.Points(), referenceType, referenceID, s.timeProvider)
	return s.uow.GetLedgerEntryRepository(ctx).Append(ctx, entry)
}

// finish records the outcome of a transition and wraps failures with their context
func (s *Service) finish(operation string, started time.Time, userID uint64, resource string, id uint64, err error) error {
	outcome := Outcome(err)
	s.metrics.ObserveTransition(operation, outcome, s.timeProvider.Since(started))

	if err == nil {
		s.logger.Info("Ledger transition applied", map[string]any{
			"operation": operation,
			"user_id":   userID,
			"resource":  resource,
			"id":        id,
		})
		return nil
	}

	wrapped := errs.NewLedgerError(operation, userID, resource, id, err)
	fields := wrapped.(*errs.LedgerError).LogFields()
	fields["outcome"] = outcome

	var conflict *errs.ConflictError
	switch {
	case errors.As(err, &conflict):
		fields["attempts"] = conflict.Attempts
		s.logger.Warn("Ledger transition gave up after conflicts", fields)
	case outcome == "error":
		s.logger.Error("Ledger transition failed", fields)
	default:
		s.logger.Info("Ledger transition rejected", fields)
	}
	return wrapped
}

// Outcome labels an error for metrics
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, errs.ErrNotFound):
		return "not_found"
	case errors.Is(err, errs.ErrForbidden):
		return "forbidden"
	case errors.Is(err, errs.ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, errs.ErrAlreadyEnrolled):
		return "already_enrolled"
	case errors.Is(err, errs.ErrNoSeatsAvailable):
		return "no_seats"
	case errors.Is(err, errs.ErrInsufficientPoints):
		return "insufficient_points"
	case errors.Is(err, errs.ErrOutOfStock):
		return "out_of_stock"
	case errors.Is(err, errs.ErrConflict):
		return "conflict"
	case errors.Is(err, errs.ErrInvalidID), errors.Is(err, errs.ErrInvalidUserID):
		return "invalid"
	default:
		return "error"
	}
}

func validateIDs(userID, id uint64) error {
	if userID == 0 {
		return errs.ErrInvalidUserID
	}
	if id == 0 {
		return errs.ErrInvalidID
	}
	return nil
}
