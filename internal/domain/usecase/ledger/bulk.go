package ledger

import (
	"context"

	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
)

// RecordAttendanceBatch marks every confirmed enrollment in ids as attended
func (s *Service) RecordAttendanceBatch(ctx context.Context, enrollmentIDs []uint64) (int, error) {
	return s.runBatch(ctx, OpRecordAttendance, enrollmentIDs, func(ctx context.Context, id uint64) error {
		_, err := s.RecordAttendance(ctx, id)
		return err
	})
}

// MarkAbsent marks every confirmed enrollment in ids as absent
func (s *Service) MarkAbsent(ctx context.Context, enrollmentIDs []uint64) (int, error) {
	return s.runBatch(ctx, OpMarkAbsent, enrollmentIDs, func(ctx context.Context, id uint64) error {
		_, err := s.markAbsent(ctx, id)
		return err
	})
}

// MarkDelivered flags every undelivered redemption in ids as delivered
func (s *Service) MarkDelivered(ctx context.Context, redemptionIDs []uint64) (int, error) {
	return s.runBatch(ctx, OpMarkDelivered, redemptionIDs, func(ctx context.Context, id uint64) error {
		_, err := s.markDelivered(ctx, id)
		return err
	})
}

// runBatch applies transition to each distinct id in its own unit of work.
// Records in the wrong state or missing are skipped; any other failure stops the batch
// and is returned together with the number transitioned so far.
func (s *Service) runBatch(ctx context.Context, action string, ids []uint64, transition func(context.Context, uint64) error) (int, error) {
	unique := dedupe(ids)
	transitioned, skipped := 0, 0

	for _, id := range unique {
		if err := ctx.Err(); err != nil {
			s.metrics.ObserveBatch(action, len(unique), transitioned)
			return transitioned, err
		}
		if id == 0 {
			skipped++
			continue
		}

		err := transition(ctx, id)
		switch {
		case err == nil:
			transitioned++
		case errs.IsSkippable(err):
			skipped++
			s.logger.Debug("Skipping record in batch", map[string]any{
				"action": action,
				"id":     id,
				"reason": err.Error(),
			})
		default:
			s.metrics.ObserveBatch(action, len(unique), transitioned)
			s.logger.Error("Batch aborted", map[string]any{
				"action":       action,
				"id":           id,
				"transitioned": transitioned,
				"error":        err.Error(),
			})
			return transitioned, err
		}
	}

	s.metrics.ObserveBatch(action, len(unique), transitioned)
	s.logger.Info("Batch completed", map[string]any{
		"action":       action,
		"requested":    len(unique),
		"transitioned": transitioned,
		"skipped":      skipped,
	})
	return transitioned, nil
}

func dedupe(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	unique := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
