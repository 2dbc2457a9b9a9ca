// Package timing provides the latency controls that keep error handling
// from leaking information through response time.
//
// Two mechanisms: a constant-time floor applied to every error
// construction, and explicit normalization that pads a whole operation to
// a fixed target so success and failure are indistinguishable by latency.
package timing

import (
	"context"
	"time"
)

// FloorDuration is the minimum observable cost of constructing an error.
// Long enough to drown the variance between cheap and expensive
// construction paths, short enough to be free at operation scale.
const FloorDuration = time.Microsecond

// Floor busy-waits until FloorDuration has elapsed since start. A sleep
// would yield the scheduler and make the floor itself noisy at this
// scale, so this spins.
func Floor(start time.Time) {
	for time.Since(start) < FloorDuration {
	}
}

// Normalize blocks until target has elapsed since start. It only pads:
// if the work already overran the target the call returns immediately
// and the equalization guarantee is void for that operation. Callers
// pick targets above their worst observed latency.
func Normalize(start time.Time, target time.Duration) {
	remaining := target - time.Since(start)
	if remaining <= 0 {
		return
	}
	time.Sleep(remaining)
}

// NormalizeContext is the cooperative form of Normalize. Cancellation
// returns ctx.Err() and abandons the padding, which voids the
// equalization guarantee for that call; the caller owns that trade.
// For equal targets, the total observable latency matches Normalize.
func NormalizeContext(ctx context.Context, start time.Time, target time.Duration) error {
	remaining := target - time.Since(start)
	if remaining <= 0 {
		return nil
	}
	timer := time.NewTimer(remaining)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
