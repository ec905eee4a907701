// Frame timing telemetry
//
// The frame loop runs hard realtime, so nothing here logs or allocates
// while a frame is in flight; counters accumulate and are formatted into
// a report line only between frames, when the driver asks for one.
package core

// Telemetry accumulates frame timing counters. A missed deadline cannot
// be recovered, only observed: Overruns counts frames whose recompute
// finished after the first scheduled edge had already passed.
type Telemetry struct {
	Frames   uint32
	Overruns uint32
	MinSlack uint32 // smallest observed gap before the first edge, ticks
}

// Reset clears all counters.
func (t *Telemetry) Reset() {
	t.Frames = 0
	t.Overruns = 0
	t.MinSlack = ^uint32(0)
}

// noteFrame records one frame's slack before its earliest edge. slack is
// the signed tick distance from recompute completion to the first edge;
// negative means the edge was already due.
func (t *Telemetry) noteFrame(slack int32) {
	t.Frames++
	if slack < 0 {
		t.Overruns++
		return
	}
	if uint32(slack) < t.MinSlack {
		t.MinSlack = uint32(slack)
	}
}

// Report formats the counters as a single line for the host monitor.
func (t *Telemetry) Report() string {
	return "sway frames=" + utoa(t.Frames) +
		" overruns=" + utoa(t.Overruns) +
		" min_slack=" + utoa(t.MinSlack)
}
