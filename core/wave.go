// Waveform shaping for channel levels
package core

import "math"

// Shape selects the level curve used while the engine runs steady.
type Shape uint8

const (
	// ShapeSine is a phase-shifted sinusoid: 0.5*(1+sin(2*pi*p+offset))
	ShapeSine Shape = iota
	// ShapeSharpSine is a sharpened half cycle: sin(pi*p)^(2^k)
	ShapeSharpSine
)

// MaxSharpness bounds the sharpening exponent k. Beyond 2^8 the result
// underflows to zero over most of the half cycle.
const MaxSharpness = 8

// SineLevel returns the level of a phase-shifted sinusoid at phase p,
// with offset in radians. Result is clamped to [0,1].
func SineLevel(p, offset float64) float64 {
	return clampLevel(0.5 * (1 + math.Sin(2*math.Pi*p+offset)))
}

// SharpSineLevel returns sin(pi*p) raised to 2^k, clamped to [0,1].
// Larger k narrows the bright part of the half cycle.
func SharpSineLevel(p float64, k uint8) float64 {
	if k > MaxSharpness {
		k = MaxSharpness
	}
	s := math.Sin(math.Pi * p)
	// sin goes negative for phases outside [0,1); at k=0 the exponent is
	// 1 and the sign would leak through, so floor it here.
	if s < 0 {
		s = 0
	}
	return clampLevel(math.Pow(s, float64(uint32(1)<<k)))
}

// EaseLevel returns the cosine ease 0.5*(1-cos(pi*p)) used for one-shot
// travel: 0 at p=0, 0.5 at the midpoint, 1 at p>=1.
func EaseLevel(p float64) float64 {
	if p >= 1 {
		return 1
	}
	if p <= 0 {
		return 0
	}
	return clampLevel(0.5 * (1 - math.Cos(math.Pi*p)))
}

// EaseLevelReverse is the complement of EaseLevel, for travel in the
// closing direction.
func EaseLevelReverse(p float64) float64 {
	return 1 - EaseLevel(p)
}

func clampLevel(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
