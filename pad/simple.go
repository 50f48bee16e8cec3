package pad

import (
	"github.com/arlojansen/drumcore/clock"
	"github.com/arlojansen/drumcore/crosstalk"
	"github.com/arlojansen/drumcore/padcfg"
	"github.com/arlojansen/drumcore/voice"
)

// HiHatState lets the hi-hat's pad.Controller consult and react to the
// pedal's open/closed state and sounding voices without the pad package
// importing the pedal package (spec §4.7's pad-side half of the coupling).
type HiHatState interface {
	Closed() bool
	IsPlaying(note uint8) bool
}

// Controller is the single-zone pad state machine of spec §4.1. One
// instance is bound to one analog channel.
type Controller struct {
	cfg      padcfg.PadConfig
	tunables padcfg.Tunables
	hiHat    HiHatState // non-nil only for the hi-hat pad

	st               state
	stateEntry       uint32
	peak             uint16
	retriggerInitial uint16
}

// NewController creates a Controller for a single-zone pad. hiHat must be
// non-nil if and only if cfg.Role == padcfg.RoleHiHat.
func NewController(cfg padcfg.PadConfig, tunables padcfg.Tunables, hiHat HiHatState) *Controller {
	return &Controller{cfg: cfg, tunables: tunables, hiHat: hiHat, st: idle}
}

// State reports the controller's current position in the state machine,
// for monitoring/diagnostics only.
func (c *Controller) State() State { return exportState(c.st) }

// Tick advances the controller by one sample. reading is the current
// 10-bit sensor value; arb is the shared crosstalk arbiter; emit is called
// zero or more times with the events this tick produced.
func (c *Controller) Tick(now uint32, reading uint16, arb *crosstalk.Arbiter, emit voice.EmitFunc) {
	switch c.st {
	case idle:
		if reading > c.cfg.Threshold {
			c.peak = reading
			c.stateEntry = now
			c.st = peakDetect
		}

	case peakDetect:
		if clock.Elapsed(now, c.stateEntry) < c.tunables.PeakWindowMS {
			if reading > c.peak {
				c.peak = reading
			}
			return
		}
		c.resolvePeak(now, arb, emit)

	case silentDebounce:
		if clock.Elapsed(now, c.stateEntry) >= c.tunables.SilentDebounceMS {
			c.st = repiqueCheck
			c.stateEntry = now
		}

	case repiqueCheck:
		elapsed := clock.Elapsed(now, c.stateEntry)
		if elapsed >= c.tunables.RepiqueWindowMS {
			c.st = idle
			return
		}
		decayed := decayedRetriggerThreshold(elapsed, c.retriggerInitial, c.cfg.Threshold, c.tunables)
		if reading > decayed {
			c.peak = reading
			c.stateEntry = now
			c.st = peakDetect
		}

	case chokeConfirm:
		// Simple pads never enter choke confirmation (spec §4.5's
		// defensive invariant restore); reaching here would be a bug
		// in the caller, not a state a simple pad can produce itself.
		c.st = idle
	}
}

// resolvePeak runs the end-of-peak-window resolution shared by every
// simple pad: threshold check, velocity mapping, crosstalk filtering, and
// note emission (spec §4.1, §4.2, §4.3, §4.7).
func (c *Controller) resolvePeak(now uint32, arb *crosstalk.Arbiter, emit voice.EmitFunc) {
	if c.peak <= c.cfg.Threshold {
		c.st = idle
		return
	}

	velocity := mapVelocity(c.peak, c.cfg.Gain, c.cfg.Threshold, c.tunables)

	if arb.ShouldDiscard(velocity, now) {
		c.st = idle
		return
	}

	if c.cfg.Role == padcfg.RoleHiHat && c.hiHat != nil {
		c.emitHiHat(velocity, emit)
	} else {
		emit(voice.Event{Kind: voice.NoteOn, Note: c.cfg.NoteNumber, Velocity: velocity})
	}

	arb.Observe(velocity, c.cfg.Role, now)

	c.retriggerInitial = retriggerSeed(c.peak, c.cfg.RetriggerCeiling, c.cfg.Threshold, c.tunables)
	c.st = silentDebounce
	c.stateEntry = now
}

// emitHiHat implements spec §4.7's "when the hi-hat pad itself fires a hit"
// half of the pedal coupling.
func (c *Controller) emitHiHat(velocity uint8, emit voice.EmitFunc) {
	if c.hiHat.Closed() {
		emit(voice.Event{Kind: voice.NoteOn, Note: padcfg.NoteHiHatClosed, Velocity: velocity})
		if c.hiHat.IsPlaying(padcfg.NoteHiHatOpen) {
			emit(voice.Event{Kind: voice.NoteOff, Note: padcfg.NoteHiHatOpen})
		}
	} else {
		emit(voice.Event{Kind: voice.NoteOn, Note: padcfg.NoteHiHatOpen, Velocity: velocity})
		if c.hiHat.IsPlaying(padcfg.NoteHiHatClosed) {
			emit(voice.Event{Kind: voice.NoteOff, Note: padcfg.NoteHiHatClosed})
		}
	}
}
