package pad

import (
	"github.com/arlojansen/drumcore/clock"
	"github.com/arlojansen/drumcore/crosstalk"
	"github.com/arlojansen/drumcore/padcfg"
	"github.com/arlojansen/drumcore/voice"
)

// DualController is the two-sensor pad state machine of spec §4.1/§4.4/§4.5.
// The two sensors of a dual-zone pad share one state machine, not two
// independent ones (spec §9): this type owns both channel readings and
// both peak registers.
type DualController struct {
	cfg      padcfg.PadConfig
	tunables padcfg.Tunables

	st                           state
	stateEntry                   uint32
	peakPrimary, peakSecondary   uint16
	retriggerInitial             uint16 // shared by both zones, per spec §4.6
}

// NewDualController creates a DualController for a two-zone pad.
func NewDualController(cfg padcfg.PadConfig, tunables padcfg.Tunables) *DualController {
	return &DualController{cfg: cfg, tunables: tunables, st: idle}
}

func (c *DualController) State() State { return exportState(c.st) }

// Tick advances the controller by one sample of both zones.
func (c *DualController) Tick(now uint32, primary, secondary uint16, arb *crosstalk.Arbiter, emit voice.EmitFunc) {
	switch c.st {
	case idle:
		if primary > c.cfg.Threshold || secondary > c.cfg.SecondaryThreshold {
			c.peakPrimary = primary
			c.peakSecondary = secondary
			c.stateEntry = now
			c.st = peakDetect
		}

	case peakDetect:
		if clock.Elapsed(now, c.stateEntry) < c.tunables.PeakWindowMS {
			c.peakPrimary = max16(c.peakPrimary, primary)
			c.peakSecondary = max16(c.peakSecondary, secondary)
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
		if max16(primary, secondary) > decayed {
			c.peakPrimary = primary
			c.peakSecondary = secondary
			c.stateEntry = now
			c.st = peakDetect
		}

	case chokeConfirm:
		if !c.cfg.Role.IsCymbal() {
			// Defensive invariant restore (spec §4.5): only ride/crash
			// may ever be observed here.
			c.st = idle
			c.peakPrimary, c.peakSecondary = 0, 0
			return
		}
		c.tickChoke(now, primary, secondary, emit)
	}
}

func (c *DualController) resolvePeak(now uint32, arb *crosstalk.Arbiter, emit voice.EmitFunc) {
	if c.peakPrimary <= c.cfg.Threshold && c.peakSecondary <= c.cfg.SecondaryThreshold {
		c.st = idle
		return
	}

	vp := mapVelocity(c.peakPrimary, c.cfg.Gain, c.cfg.Threshold, c.tunables)
	vs := mapVelocity(c.peakSecondary, c.cfg.SecondaryGain, c.cfg.SecondaryThreshold, c.tunables)

	if arb.ShouldDiscard(max8(vp, vs), now) {
		c.st = idle
		return
	}

	var result Classification
	if c.cfg.Role == padcfg.RoleSnare {
		result = classifySnare(c.peakPrimary, c.peakSecondary, vp, vs, c.cfg.SecondaryThreshold, c.cfg.NoteNumber, c.cfg.SecondaryNote, padcfg.NoteRimshot)
	} else {
		result = classifyCymbal(c.peakPrimary, c.peakSecondary, vp, vs, c.cfg.NoteNumber, c.cfg.SecondaryNote)
	}

	if result.Choke {
		emit(voice.Event{Kind: voice.NoteOff, Note: c.cfg.NoteNumber})
		emit(voice.Event{Kind: voice.NoteOff, Note: c.cfg.SecondaryNote})
		c.stateEntry = now
		c.st = chokeConfirm
	} else {
		emit(voice.Event{Kind: voice.NoteOn, Note: result.Voice, Velocity: result.Velocity})
		c.retriggerInitial = retriggerSeed(max16(c.peakPrimary, c.peakSecondary), c.cfg.RetriggerCeiling, c.cfg.Threshold, c.tunables)
		c.st = silentDebounce
		c.stateEntry = now
	}

	arb.Observe(max8(vp, vs), c.cfg.Role, now)
}

// tickChoke implements spec §4.5's CHOKE_CONFIRM state.
func (c *DualController) tickChoke(now uint32, primary, secondary uint16, emit voice.EmitFunc) {
	c.peakPrimary = max16(c.peakPrimary, primary)
	c.peakSecondary = max16(c.peakSecondary, secondary)

	if clock.Elapsed(now, c.stateEntry) < c.tunables.ChokeConfirmMS {
		return
	}

	switch {
	case chokeConfirmed(c.peakPrimary, c.peakSecondary):
		emit(voice.Event{Kind: voice.NoteOff, Note: c.cfg.NoteNumber})
		emit(voice.Event{Kind: voice.NoteOff, Note: c.cfg.SecondaryNote})
		c.st = idle
	case c.peakPrimary > c.cfg.Threshold || c.peakSecondary > c.cfg.SecondaryThreshold:
		c.st = peakDetect
		c.stateEntry = now
		return // peaks retained; a fresh peakWindow runs the standard resolution
	default:
		c.st = idle
	}

	c.peakPrimary, c.peakSecondary = 0, 0
}
