// Pulse width derivation and per-frame edge scheduling
package core

// SortStrategy orders a schedule in place: ascending event time, ties by
// lower channel id.
type SortStrategy func(entries []ScheduleEntry)

// Scheduler turns fresh channel levels into pulse widths and a sorted
// list of edge events for the next frame. All storage is fixed-capacity;
// Rebuild allocates nothing.
type Scheduler struct {
	discipline Discipline
	minPulse   uint32
	maxPulse   uint32
	pulseRange uint32
	anchor     uint32
	slotStarts [MaxChannels]uint32

	// Entry identity (channel, edge) is fixed at init; only event times
	// change between frames, and only slightly, so the array stays
	// nearly sorted from one frame to the next.
	entries [2 * MaxChannels]ScheduleEntry
	n       int
	sort    SortStrategy
}

// NewScheduler builds a scheduler from a validated config. cfg must have
// passed Validate; slot placement trusts its preconditions.
func NewScheduler(cfg *Config) *Scheduler {
	s := &Scheduler{
		discipline: cfg.Discipline,
		minPulse:   cfg.MinPulse,
		maxPulse:   cfg.MaxPulse,
		pulseRange: cfg.MaxPulse - cfg.MinPulse,
		anchor:     cfg.Anchor,
		sort:       BubbleSettle,
	}
	if cfg.Discipline == DisciplineStacked {
		// The first slot starts one guard interval into the frame, so the
		// per-frame recompute has at least that much slack before the
		// earliest edge.
		start := cfg.GuardTicks
		for i := 0; i < cfg.Channels; i++ {
			s.slotStarts[i] = start
			start += cfg.MaxPulse + cfg.GuardTicks
		}
	}
	s.n = 2 * cfg.Channels
	for i := 0; i < cfg.Channels; i++ {
		s.entries[2*i] = ScheduleEntry{Channel: ChannelID(i), Edge: EdgeRising}
		s.entries[2*i+1] = ScheduleEntry{Channel: ChannelID(i), Edge: EdgeFalling}
	}
	return s
}

// SetSortStrategy swaps the ordering strategy. The default, BubbleSettle,
// assumes nearly sorted input; replace it when feeding schedules that
// jump arbitrarily between frames.
func (s *Scheduler) SetSortStrategy(fn SortStrategy) {
	s.sort = fn
}

// PulseWidth maps a level in [0,1] to an active tick count, always inside
// [MinPulse, MaxPulse] whatever the input.
func (s *Scheduler) PulseWidth(level float64) uint32 {
	level = clampLevel(level)
	w := s.minPulse + uint32(level*float64(s.pulseRange)+0.5)
	if w < s.minPulse {
		w = s.minPulse
	}
	if w > s.maxPulse {
		w = s.maxPulse
	}
	return w
}

// Rebuild derives each channel's pulse width from its level and rewrites
// the edge schedule for the next frame. The returned slice is valid until
// the next Rebuild. Identical channel levels always produce the identical
// schedule.
func (s *Scheduler) Rebuild(channels []Channel) []ScheduleEntry {
	for i := range channels {
		channels[i].PulseWidth = s.PulseWidth(channels[i].Level)
	}
	for i := 0; i < s.n; i++ {
		e := &s.entries[i]
		w := channels[e.Channel].PulseWidth
		var rise uint32
		switch s.discipline {
		case DisciplineCentered:
			rise = s.anchor - w/2
		case DisciplineStacked:
			rise = s.slotStarts[e.Channel]
		}
		if e.Edge == EdgeRising {
			e.Time = rise
		} else {
			e.Time = rise + w
		}
	}
	s.sort(s.entries[:s.n])
	return s.entries[:s.n]
}

// BubbleSettle sorts a nearly sorted schedule with repeated adjacent-swap
// passes, stopping on the first pass with no swaps. Between consecutive
// frames event times move only slightly, so one pass is the common case:
// O(N) typical, O(N*N) worst. This trade-off only holds for small N with
// slowly varying widths; it is the deliberate choice here, not a general
// purpose sort.
func BubbleSettle(entries []ScheduleEntry) {
	for {
		swapped := false
		for i := 1; i < len(entries); i++ {
			if entryBefore(entries[i], entries[i-1]) {
				entries[i-1], entries[i] = entries[i], entries[i-1]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}
