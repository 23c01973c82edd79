package time

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
)

func TestRealTimeProvider_NowIsUTC(t *testing.T) {
	now := NewRealTimeProvider().Now()
	assert.Equal(t, time.UTC, now.Location())
}

func TestRealTimeProvider_Sleep(t *testing.T) {
	tp := NewRealTimeProvider()

	t.Run("Waits out the duration", func(t *testing.T) {
		start := time.Now()
		assert.NoError(t, tp.Sleep(context.Background(), 5*core.Millisecond))
		assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
	})

	t.Run("Returns early when cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		start := time.Now()
		err := tp.Sleep(ctx, 10*core.Second)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Less(t, time.Since(start), time.Second)
	})
}
