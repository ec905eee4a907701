// Frame loop: phase advance, level computation, edge emission
package core

import (
	"errors"
	"math"
)

var (
	errNilClock    = errors.New("clock must not be nil")
	errOutputCount = errors.New("output count does not match channel count")
	errNilOutput   = errors.New("channel output must not be nil")
)

// Mode is the trigger state machine state.
type Mode uint8

const (
	// ModeSteady runs the steady waveform, or holds the locked end level
	// when a trigger is bound. The trigger is sampled only in this mode.
	ModeSteady Mode = iota
	// ModeOpening slews every channel toward level 1 over TravelTicks.
	ModeOpening
	// ModeClosing slews every channel toward level 0 over TravelTicks.
	ModeClosing
)

// Driver orchestrates one output frame at a time: advances the motion
// phase, recomputes channel levels and pulse widths, then busy-polls the
// clock and toggles outputs at the scheduled edges. Strictly
// single-threaded; outputs are touched only from RunFrame.
type Driver struct {
	cfg   Config
	clock Clock
	sched *Scheduler

	channels [MaxChannels]Channel
	nchan    int

	cycle           uint32 // frame index within one breath
	cyclesPerBreath uint32

	trigger   TriggerInput
	mode      Mode
	open      bool    // direction of the gesture in flight (or the next one)
	lockLevel float64 // held level while Steady with a trigger bound
	prevHigh  bool    // last sampled trigger line level

	onLevel LevelFunc

	frameStart ClockTick
	started    bool

	// Stats accumulates timing telemetry. Read it only between frames.
	Stats Telemetry
}

// NewDriver builds a driver from a validated config with one output
// bound per channel. The config is copied; outs must supply exactly
// cfg.Channels non-nil outputs.
func NewDriver(cfg Config, clock Clock, outs []Output) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		return nil, errNilClock
	}
	if len(outs) != cfg.Channels {
		return nil, errOutputCount
	}
	d := &Driver{
		cfg:             cfg,
		clock:           clock,
		sched:           NewScheduler(&cfg),
		nchan:           cfg.Channels,
		cyclesPerBreath: cfg.CyclesPerBreath(),
		prevHigh:        true,
	}
	for i := 0; i < d.nchan; i++ {
		if outs[i] == nil {
			return nil, errNilOutput
		}
		d.channels[i] = Channel{
			ID:     ChannelID(i),
			Offset: cfg.Stagger * float64(i),
			Out:    outs[i],
		}
		outs[i].SetLow()
	}
	d.Stats.Reset()
	return d, nil
}

// MustNewDriver is NewDriver that panics on a bad configuration. Wiring
// code uses this: a config that fails validation is a build mistake, not
// a condition to handle.
func MustNewDriver(cfg Config, clock Clock, outs []Output) *Driver {
	d, err := NewDriver(cfg, clock, outs)
	if err != nil {
		panic("sway: " + err.Error())
	}
	return d
}

// BindTrigger attaches the gesture trigger. With a trigger bound the
// driver starts Steady at level 0 and slews on each accepted trigger
// edge, alternating direction; the steady waveform does not run.
// Panics unless the config carries a travel duration.
func (d *Driver) BindTrigger(t TriggerInput) {
	if d.cfg.TravelTicks == 0 {
		panic("sway: trigger requires a nonzero travel duration")
	}
	d.trigger = t
}

// SetLevelFunc registers a callback receiving each channel's level once
// per frame. Must be set before the first frame.
func (d *Driver) SetLevelFunc(fn LevelFunc) {
	d.onLevel = fn
}

// Mode returns the current trigger state.
func (d *Driver) Mode() Mode {
	return d.mode
}

// Run drives frames forever. It never returns; the engine has no stop
// condition and no blocking primitive to park on.
func (d *Driver) Run() {
	for {
		d.RunFrame()
	}
}

// RunFrame executes exactly one output frame. All recomputation happens
// up front, inside the slack before the frame's earliest edge; the rest
// of the frame is polling and pin toggles.
func (d *Driver) RunFrame() {
	if !d.started {
		d.frameStart = d.clock.Now()
		d.started = true
	}
	frameStart := d.frameStart

	d.advancePhase()
	d.computeLevels()
	entries := d.sched.Rebuild(d.channels[:d.nchan])

	if d.onLevel != nil {
		for i := 0; i < d.nchan; i++ {
			d.onLevel(d.channels[i].ID, d.channels[i].Level)
		}
	}

	// Slack to the first edge is the frame's deadline budget. An overrun
	// is recorded, not repaired: the late edges still go out in order,
	// just shifted.
	now := d.clock.Now()
	d.Stats.noteFrame(int32(frameStart + ClockTick(entries[0].Time) - now))

	for i := range entries {
		e := entries[i]
		WaitUntil(d.clock, frameStart+ClockTick(e.Time))
		out := d.channels[e.Channel].Out
		if e.Edge == EdgeRising {
			out.SetHigh()
		} else {
			out.SetLow()
		}
	}

	d.pollTrigger()
	WaitUntil(d.clock, frameStart+ClockTick(d.cfg.PeriodTicks))
	d.frameStart = frameStart + ClockTick(d.cfg.PeriodTicks)
}

// advancePhase steps the breath cycle counter, wrapping at the
// BPM-derived cycle count. Gesture frames keep the counter advancing so
// steady motion resumes in phase.
func (d *Driver) advancePhase() {
	d.cycle++
	if d.cycle >= d.cyclesPerBreath {
		d.cycle = 0
	}
}

// computeLevels refreshes every channel's target level for this frame.
func (d *Driver) computeLevels() {
	if d.trigger != nil {
		level := d.gestureLevel()
		for i := 0; i < d.nchan; i++ {
			d.channels[i].Level = level
		}
		return
	}

	p := float64(d.cycle) / float64(d.cyclesPerBreath)
	for i := 0; i < d.nchan; i++ {
		ch := &d.channels[i]
		switch d.cfg.Shape {
		case ShapeSharpSine:
			q := p + ch.Offset
			q -= math.Floor(q)
			ch.Level = SharpSineLevel(q, d.cfg.Sharpness)
		default:
			ch.Level = SineLevel(p, 2*math.Pi*ch.Offset)
		}
	}
}

// gestureLevel evaluates the one-shot slew. While moving, progress comes
// from elapsed gesture ticks since the trigger, not from the breath
// phase; past the travel duration the ease curve saturates at the end
// level, which is also what Steady holds.
func (d *Driver) gestureLevel() float64 {
	switch d.mode {
	case ModeOpening:
		return EaseLevel(d.travelProgress())
	case ModeClosing:
		return EaseLevelReverse(d.travelProgress())
	default:
		return d.lockLevel
	}
}

func (d *Driver) travelProgress() float64 {
	return float64(GestureTicks()) / float64(d.cfg.TravelTicks)
}

// pollTrigger runs the gesture state machine between frames. A gesture
// in flight is never interrupted: the trigger line is sampled only in
// Steady, and only a high-to-low transition starts a slew.
func (d *Driver) pollTrigger() {
	if d.trigger == nil {
		return
	}
	switch d.mode {
	case ModeSteady:
		high := d.trigger.Get()
		if d.prevHigh && !high {
			d.open = !d.open
			ResetGestureTicks()
			if d.open {
				d.mode = ModeOpening
			} else {
				d.mode = ModeClosing
			}
		}
		d.prevHigh = high
	default:
		if GestureTicks() >= d.cfg.TravelTicks {
			if d.mode == ModeOpening {
				d.lockLevel = 1
			} else {
				d.lockLevel = 0
			}
			d.mode = ModeSteady
		}
	}
}
