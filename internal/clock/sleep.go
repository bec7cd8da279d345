// Package clock provides time helpers that honour context cancellation.
package clock

import (
	"context"
	"time"
)

// SleepFunc pauses for a duration unless the context ends first. Components
// that wait between retries take one so tests can replace real waiting.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep waits for d or returns the context error once ctx is done.
// A non-positive duration only reports whether ctx is already done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
