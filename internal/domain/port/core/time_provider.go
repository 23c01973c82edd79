package core

import (
	"context"
	"time"
)

// Duration keeps the domain free of direct time arithmetic on the wall clock
type Duration time.Duration

const (
	Millisecond = Duration(time.Millisecond)
	Second      = Duration(time.Second)
)

// Std converts to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider is the only clock the ledger reads. Timestamps on entries,
// enrollments and redemptions all come from Now.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) Duration
	// Sleep waits for d or until ctx is done, whichever comes first
	Sleep(ctx context.Context, d Duration) error
}
