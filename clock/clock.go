// Package clock provides the monotonic millisecond time source the core
// state machines are driven by, and the wraparound-safe arithmetic used for
// every "has Δ elapsed" check.
package clock

import "time"

// Source is a monotonic millisecond counter. Its only contract is
// non-decreasing values modulo 2^32; callers must never compare two
// timestamps with anything but Elapsed, since a single wrap of the
// counter otherwise breaks ordinary subtraction.
type Source interface {
	Now() uint32
}

// Elapsed returns how much time has passed between since and now, correct
// across a single wrap of the uint32 counter. It is the only primitive the
// pad and pedal state machines use to test a duration against a threshold.
func Elapsed(now, since uint32) uint32 {
	return now - since
}

// wraps at ~49.7 days of continuous runtime; a single wrap is tolerated by
// Elapsed's unsigned subtraction, matching the source firmware's millis().

// System is a free-running Source backed by the real wall clock, truncated
// to milliseconds and wrapped into uint32 the same way a microcontroller's
// millis() counter wraps.
type System struct {
	start time.Time
}

// NewSystem creates a Source whose Now() begins counting from the moment of
// construction.
func NewSystem() *System {
	return &System{start: time.Now()}
}

func (s *System) Now() uint32 {
	return uint32(time.Since(s.start).Milliseconds())
}

// Manual is a test/simulation clock that only advances when told to.
type Manual struct {
	now uint32
}

// NewManual creates a Manual clock starting at the given timestamp.
func NewManual(start uint32) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() uint32 {
	return m.now
}

// Set pins the clock to an explicit timestamp, useful for exercising
// wraparound directly in tests.
func (m *Manual) Set(now uint32) {
	m.now = now
}

// Advance moves the clock forward by delta milliseconds, wrapping per the
// uint32 contract.
func (m *Manual) Advance(delta uint32) {
	m.now += delta
}
