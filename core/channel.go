// Channel and schedule entry types
package core

// MaxChannels caps the number of output channels. Channel storage is
// fixed-capacity arrays sized by this constant; nothing grows at runtime.
const MaxChannels = 8

// ChannelID identifies one output channel.
type ChannelID uint8

// Channel is one output line with its per-frame state. Channels are
// created once at init for a fixed count and never destroyed; Level and
// PulseWidth are recomputed every frame.
type Channel struct {
	ID         ChannelID
	Level      float64 // target level in [0,1], fresh each frame
	PulseWidth uint32  // active ticks within the frame, in [MinPulse,MaxPulse]
	Offset     float64 // stagger offset in radians
	Out        Output
}

// EdgeKind distinguishes the two halves of a pulse.
type EdgeKind uint8

const (
	EdgeRising EdgeKind = iota
	EdgeFalling
)

// ScheduleEntry is one electrical edge within the upcoming frame. Times
// are ticks relative to the frame start, always inside [0, period).
// Entries are rebuilt from scratch every frame.
type ScheduleEntry struct {
	Channel ChannelID
	Time    uint32
	Edge    EdgeKind
}

// entryBefore is the schedule ordering: ascending event time, ties broken
// by lower channel id.
func entryBefore(a, b ScheduleEntry) bool {
	if a.Time != b.Time {
		return a.Time < b.Time
	}
	return a.Channel < b.Channel
}
