package database

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries    int // Total attempts, including the first one
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // Factor to add randomness to retry intervals (0.0-1.0)
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    5,
		RetryInterval: 20 * time.Millisecond,
		MaxInterval:   500 * time.Millisecond,
		JitterFactor:  0.5,
	}
}

// RetryOnConflict runs operation until it succeeds, fails with a non-conflict error,
// or the attempts are exhausted. It returns the last error and the number of attempts made.
func RetryOnConflict(
	ctx context.Context,
	config RetryConfig,
	operation func() error,
	onRetry func(attempt int, err error),
	logger coreport.Logger,
) (int, error) {
	maxAttempts := config.MaxRetries
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var err error
	attempt := 0
	for attempt < maxAttempts {
		attempt++
		err = operation()
		if err == nil || !errors.Is(err, errs.ErrConflict) {
			return attempt, err
		}
		if attempt == maxAttempts {
			break
		}

		backoff := calculateBackoffWithJitter(attempt-1, config)
		logger.Debug("Conflicting transaction, retrying", map[string]any{
			"attempt":     attempt,
			"max_retries": maxAttempts,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})
		if onRetry != nil {
			onRetry(attempt, err)
		}

		timer := time.NewTimer(backoff)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			logger.Warn("Retry operation canceled by context", map[string]any{
				"attempts":    attempt,
				"max_retries": maxAttempts,
				"error":       ctx.Err().Error(),
			})
			return attempt, ctx.Err()
		}
	}

	logger.Warn("All retry attempts failed", map[string]any{
		"attempts": attempt,
		"error":    err.Error(),
	})
	return attempt, err
}

// calculateBackoffWithJitter computes the backoff duration with exponential increase and jitter
func calculateBackoffWithJitter(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval * (1 << uint(attempt))

	if backoff > config.MaxInterval || backoff <= 0 {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 {
		jitter := time.Duration(float64(backoff) * config.JitterFactor * rand.Float64())
		backoff += jitter
	}

	return backoff
}
