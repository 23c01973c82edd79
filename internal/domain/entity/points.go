package entity

import (
	"fmt"
	"math"

	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
)

// DefaultPointsAward is the number of points an activity awards when none is configured
const DefaultPointsAward int64 = 10

// ValidatePointsAward checks that an activity award is not negative
func ValidatePointsAward(points int64) error {
	if points < 0 {
		return fmt.Errorf("%w: award %d is negative", errs.ErrInvalidPoints, points)
	}
	return nil
}

// ValidatePointsRequired checks that a product price is at least one point
func ValidatePointsRequired(points int64) error {
	if points < 1 {
		return fmt.Errorf("%w: price must be at least 1, got %d", errs.ErrInvalidPoints, points)
	}
	return nil
}

// AddPoints adds delta to balance and reports overflow or a negative result
func AddPoints(balance, delta int64) (int64, error) {
	if delta > 0 && balance > math.MaxInt64-delta {
		return 0, errs.ErrPointsOverflow
	}
	if delta < 0 && balance < math.MinInt64-delta {
		return 0, errs.ErrPointsOverflow
	}

	result := balance + delta
	if result < 0 {
		return 0, errs.ErrNegativeBalance
	}
	return result, nil
}
