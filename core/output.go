// Hardware capability interfaces bound at init
package core

// Output is the per-channel pin capability. Implementations set the
// electrical level of one output line; they are bound to a channel once
// at init and touched only from the frame loop.
type Output interface {
	SetHigh()
	SetLow()
}

// TriggerInput samples the gesture trigger line. The line is active-low
// with a pull-up: Get returns true while the line idles high and false
// while the trigger is asserted.
type TriggerInput interface {
	Get() bool
}

// LevelFunc receives a channel's freshly computed level once per frame,
// before edges are emitted. Used by sinks that render brightness some
// other way than a duty pin (an addressable LED, a host-side trace).
// Registered at init; must not block.
type LevelFunc func(id ChannelID, level float64)
