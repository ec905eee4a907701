// Engine configuration, fixed at init and validated fail-fast
package core

import "errors"

// Discipline selects how pulses are placed within the frame.
type Discipline uint8

const (
	// DisciplineCentered centers every pulse on a fixed anchor tick:
	// rising edge at anchor-width/2, falling at anchor+width/2.
	DisciplineCentered Discipline = iota
	// DisciplineStacked gives each channel a fixed slot starting where
	// the previous channel's worst-case window ends plus a guard gap.
	DisciplineStacked
)

// Config holds every parameter the engine needs. All fields are fixed at
// init; nothing here is mutated at runtime.
type Config struct {
	Channels    int    // number of output channels, 1..MaxChannels
	PeriodTicks uint32 // counter ticks per output frame
	MinPulse    uint32 // minimum pulse width in ticks
	MaxPulse    uint32 // maximum pulse width in ticks

	// Steady-motion shaping
	BPM       uint32  // motion tempo; one breath spans (60*FrameRate)/BPM frames
	FrameRate uint32  // output frames per second
	Stagger   float64 // per-channel phase offset, fraction of one breath
	Shape     Shape
	Sharpness uint8 // k for ShapeSharpSine, 0..MaxSharpness

	// Pulse placement
	Discipline Discipline
	Anchor     uint32 // centered: anchor tick within the frame
	GuardTicks uint32 // stacked: gap between adjacent slots

	// One-shot travel, in gesture ticks. Zero unless a trigger is bound.
	TravelTicks uint32
}

// CyclesPerBreath returns how many frames one motion cycle spans.
func (c *Config) CyclesPerBreath() uint32 {
	return (60 * c.FrameRate) / c.BPM
}

// Validate checks every init-time precondition. A non-nil error means the
// configuration can never run correctly; there is no partial acceptance
// and nothing is corrected silently.
func (c *Config) Validate() error {
	if c.Channels < 1 || c.Channels > MaxChannels {
		return errors.New("channels must be 1.." + itoa(MaxChannels) + ", got " + itoa(c.Channels))
	}
	if c.PeriodTicks == 0 {
		return errors.New("period must be nonzero")
	}
	if c.PeriodTicks >= 1<<31 {
		// Waits compare ticks by signed difference; a period at or past
		// half the counter range makes "has T arrived" ambiguous.
		return errors.New("period " + utoa(c.PeriodTicks) + " exceeds half the counter range")
	}
	if c.MinPulse > c.MaxPulse {
		return errors.New("min pulse " + utoa(c.MinPulse) + " exceeds max pulse " + utoa(c.MaxPulse))
	}
	if c.MaxPulse > c.PeriodTicks {
		return errors.New("max pulse " + utoa(c.MaxPulse) + " exceeds period " + utoa(c.PeriodTicks))
	}
	if c.BPM == 0 || c.FrameRate == 0 {
		return errors.New("bpm and frame rate must be nonzero")
	}
	if c.CyclesPerBreath() == 0 {
		return errors.New("bpm " + utoa(c.BPM) + " too fast for frame rate " + utoa(c.FrameRate))
	}
	if c.Stagger < 0 || c.Stagger > 1 {
		return errors.New("stagger must be in [0,1]")
	}
	if c.Sharpness > MaxSharpness {
		return errors.New("sharpness must be 0.." + itoa(MaxSharpness) + ", got " + itoa(int(c.Sharpness)))
	}
	if c.TravelTicks >= 1<<31 {
		return errors.New("travel " + utoa(c.TravelTicks) + " exceeds half the counter range")
	}

	switch c.Discipline {
	case DisciplineCentered:
		// Both worst-case edges must land strictly inside [0, period).
		half := c.MaxPulse / 2
		if c.Anchor < half || c.Anchor+(c.MaxPulse-half) >= c.PeriodTicks {
			return errors.New("anchor " + utoa(c.Anchor) + " cannot hold a " +
				utoa(c.MaxPulse) + " tick pulse inside period " + utoa(c.PeriodTicks))
		}
	case DisciplineStacked:
		// Non-overlap of stacked slots is proven here and only here: the
		// frame loop trusts that every width fits its slot and never
		// re-checks. Pulse bounds and guard cannot change at runtime, so
		// this inequality is the whole safety argument.
		// Slots run guard, pulse window, guard, pulse window, ... so the
		// last worst-case falling edge lands at exactly this tick count;
		// it must stay strictly inside the frame.
		need := uint64(c.Channels) * (uint64(c.MaxPulse) + uint64(c.GuardTicks))
		if need >= uint64(c.PeriodTicks) {
			return errors.New("stacked slots need " + utoa(uint32(need)) +
				" ticks, period is " + utoa(c.PeriodTicks))
		}
	default:
		return errors.New("unknown discipline " + itoa(int(c.Discipline)))
	}
	return nil
}
