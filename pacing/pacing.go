// Package pacing paces the run loop's polling rate so it samples sensors at
// a fixed, predictable cadence instead of spinning as fast as the CPU
// allows. The core state machines are driven by timestamps (see clock), not
// by the loop's own speed, but an unpaced loop would still burn a core and
// jitter the emitted note timing under system load.
package pacing

import "time"

// Limiter blocks a caller until the next scan is due.
type Limiter interface {
	// WaitForNextScan blocks until it's time for the next sensor poll.
	// Returns immediately if timing is behind schedule.
	WaitForNextScan()

	// Reset resets the timing state, useful after a pause (e.g. config
	// reload) so the next scan isn't treated as catching up on missed time.
	Reset()
}

// NewNoOpLimiter returns a Limiter that never waits, for replay and test
// runs that should burn through a script as fast as possible.
func NewNoOpLimiter() Limiter {
	return &noOpLimiter{}
}

type noOpLimiter struct{}

func (n *noOpLimiter) WaitForNextScan() {}
func (n *noOpLimiter) Reset()           {}
