package pad

import "github.com/arlojansen/drumcore/padcfg"

// mapVelocity implements spec §4.2: adjusted = round(peak * gain), linearly
// mapped from [threshold, 1023] onto [minVelocity, maxVelocity] and clamped.
// gain > 1 can push adjusted above 1023, which clamps to maxVelocity.
func mapVelocity(peak uint16, gain float64, threshold uint16, t padcfg.Tunables) uint8 {
	adjusted := int(roundFloat(float64(peak) * gain))
	return mapAdjustedVelocity(adjusted, threshold, t)
}

func mapAdjustedVelocity(adjusted int, threshold uint16, t padcfg.Tunables) uint8 {
	const outMax = 1023

	lo := int(threshold)
	v := lerpInt(adjusted, lo, outMax, int(t.MinVelocity), int(t.MaxVelocity))

	if v < int(t.MinVelocity) {
		v = int(t.MinVelocity)
	}
	if v > int(t.MaxVelocity) {
		v = int(t.MaxVelocity)
	}
	return uint8(v)
}

// lerpInt is the standard integer "map" primitive: maps x from [inLo,inHi]
// onto [outLo,outHi], extrapolating (not clamping) outside the input range
// -- callers clamp afterward, matching the source firmware's map()+constrain()
// pairing.
func lerpInt(x, inLo, inHi, outLo, outHi int) int {
	if inHi == inLo {
		return outLo
	}
	return outLo + (x-inLo)*(outHi-outLo)/(inHi-inLo)
}

func roundFloat(f float64) float64 {
	if f < 0 {
		return float64(int(f - 0.5))
	}
	return float64(int(f + 0.5))
}
