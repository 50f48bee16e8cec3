package pad

// Classifier design constants (spec §4.4, §9). These are intentionally not
// exposed as padcfg.Tunables: they are the dual-zone classifier's own design,
// not per-installation knobs.
const (
	rimshotPrimaryFloor   = 600
	dualZoneCeiling       = 1000
	rimDominanceFactor    = 1.1
	chokeRatio            = 0.05
	chokeAbsoluteFloor    = 20
)

// Classification is the result of resolving a dual-zone hit into a single
// logical voice (or a choke event), independent of any emitter so the
// classifier itself stays pure and unit-testable (spec §9).
type Classification struct {
	Voice    uint8
	Velocity uint8
	Choke    bool
}

// classifySnare implements spec §4.4's snare logic: primary zone is the
// head, secondary is the rim.
func classifySnare(pp, ps uint16, vp, vs uint8, secondaryThreshold uint16, headNote, rimNote, rimshotNote uint8) Classification {
	switch {
	case pp > rimshotPrimaryFloor && ps > 2*secondaryThreshold:
		return Classification{Voice: rimshotNote, Velocity: max8(vp, vs)}
	case pp < dualZoneCeiling && float64(ps)*rimDominanceFactor > float64(pp):
		return Classification{Voice: rimNote, Velocity: vs}
	default:
		return Classification{Voice: headNote, Velocity: vp}
	}
}

// classifyCymbal implements spec §4.4's ride/crash logic: primary zone is
// the bow, secondary is the bell. A true Choke result means "emit note-off
// for both voices and begin choke confirmation" rather than firing a note.
func classifyCymbal(pp, ps uint16, vp, vs uint8, bowNote, bellNote uint8) Classification {
	switch {
	case pp < dualZoneCeiling && ps > pp:
		return Classification{Voice: bellNote, Velocity: vs}
	case float64(ps) < float64(pp)*chokeRatio:
		return Classification{Choke: true}
	default:
		return Classification{Voice: bowNote, Velocity: vp}
	}
}

// chokeConfirmed implements the confirmation test of spec §4.5: after
// chokeConfirm milliseconds of continued observation, the secondary peak
// must still be negligible relative to the primary (or in absolute terms)
// for the choke to be confirmed.
func chokeConfirmed(peakPrimary, peakSecondary uint16) bool {
	return float64(peakSecondary) < float64(peakPrimary)*chokeRatio || peakSecondary < chokeAbsoluteFloor
}

func max8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}

func max16(a, b uint16) uint16 {
	if a > b {
		return a
	}
	return b
}
