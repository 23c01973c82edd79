package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxRetries:    attempts,
		RetryInterval: time.Millisecond,
		MaxInterval:   2 * time.Millisecond,
	}
}

func TestRetryOnConflict(t *testing.T) {
	log := logger.NewNoopLogger()

	t.Run("Succeeds after conflicts", func(t *testing.T) {
		calls := 0
		var retried []int

		attempts, err := RetryOnConflict(context.Background(), fastRetry(5), func() error {
			calls++
			if calls < 3 {
				return fmt.Errorf("%w: row busy", errs.ErrConflict)
			}
			return nil
		}, func(attempt int, err error) {
			retried = append(retried, attempt)
		}, log)

		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
		assert.Equal(t, []int{1, 2}, retried)
	})

	t.Run("Stops on non-conflict errors", func(t *testing.T) {
		calls := 0

		attempts, err := RetryOnConflict(context.Background(), fastRetry(5), func() error {
			calls++
			return errs.ErrNoSeatsAvailable
		}, nil, log)

		assert.ErrorIs(t, err, errs.ErrNoSeatsAvailable)
		assert.Equal(t, 1, attempts)
		assert.Equal(t, 1, calls)
	})

	t.Run("Gives up after the configured attempts", func(t *testing.T) {
		calls := 0

		attempts, err := RetryOnConflict(context.Background(), fastRetry(3), func() error {
			calls++
			return errs.ErrConflict
		}, nil, log)

		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, 3, attempts)
		assert.Equal(t, 3, calls)
	})

	t.Run("Canceled context stops retrying", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		config := RetryConfig{MaxRetries: 5, RetryInterval: time.Second, MaxInterval: time.Second}
		attempts, err := RetryOnConflict(ctx, config, func() error {
			return errs.ErrConflict
		}, nil, log)

		assert.True(t, errors.Is(err, context.Canceled))
		assert.Equal(t, 1, attempts)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	config := RetryConfig{RetryInterval: 10 * time.Millisecond, MaxInterval: 50 * time.Millisecond}

	assert.Equal(t, 10*time.Millisecond, calculateBackoffWithJitter(0, config))
	assert.Equal(t, 20*time.Millisecond, calculateBackoffWithJitter(1, config))
	assert.Equal(t, 50*time.Millisecond, calculateBackoffWithJitter(4, config))
	assert.Equal(t, 50*time.Millisecond, calculateBackoffWithJitter(62, config))

	config.JitterFactor = 0.5
	for i := 0; i < 20; i++ {
		backoff := calculateBackoffWithJitter(0, config)
		assert.GreaterOrEqual(t, backoff, 10*time.Millisecond)
		assert.LessOrEqual(t, backoff, 15*time.Millisecond)
	}
}
