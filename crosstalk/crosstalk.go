// Package crosstalk implements the single process-wide arbiter pads consult
// to reject sympathetic-vibration false triggers (spec §4.3, §9).
package crosstalk

import (
	"github.com/arlojansen/drumcore/clock"
	"github.com/arlojansen/drumcore/padcfg"
)

// Arbiter tracks the timestamp of the last high-velocity event and answers
// whether a newly-fired, weak hit should be discarded as crosstalk. It is
// the only shared mutable value pads touch (spec §3, §9); it is written and
// read only from the single tick context, so no locking is required.
type Arbiter struct {
	tunables              padcfg.Tunables
	lastHighVelocityTime  uint32
	hasFired              bool
}

// New creates an Arbiter parameterized by the process-wide tunables.
func New(tunables padcfg.Tunables) *Arbiter {
	return &Arbiter{tunables: tunables}
}

// ShouldDiscard reports whether a hit with the given velocity, occurring at
// now, must be discarded as crosstalk: its velocity is strictly below
// lowVelocityDiscard AND it falls inside the crosstalk window opened by the
// last high-velocity event elsewhere (spec §4.3).
func (a *Arbiter) ShouldDiscard(velocity uint8, now uint32) bool {
	if !a.hasFired {
		return false
	}
	if velocity >= a.tunables.LowVelocityDiscard {
		return false
	}
	return clock.Elapsed(now, a.lastHighVelocityTime) < a.tunables.CrosstalkWindowMS
}

// Observe records a fired hit's velocity and role. Per spec §4.3, the kick
// never arms the crosstalk window (generalized from "noteNumber > 36" to a
// role check), and the window only arms when the velocity strictly exceeds
// highVelocity.
func (a *Arbiter) Observe(velocity uint8, role padcfg.Role, now uint32) {
	if role == padcfg.RoleKick {
		return
	}
	if velocity <= a.tunables.HighVelocity {
		return
	}
	a.lastHighVelocityTime = now
	a.hasFired = true
}
