package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
)

// RealTimeProvider reads the system clock. Every timestamp it hands out is UTC
// so ledger entries compare the same regardless of the host time zone.
type RealTimeProvider struct{}

func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// Sleep returns ctx.Err() when the context ends first
func (p *RealTimeProvider) Sleep(ctx context.Context, d core.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d.Std())
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
