package core

import (
	"sort"
	"testing"
)

func centeredConfig(channels int) Config {
	return Config{
		Channels:    channels,
		PeriodTicks: 26667,
		MinPulse:    1333,
		MaxPulse:    2666,
		BPM:         20,
		FrameRate:   50,
		Discipline:  DisciplineCentered,
		Anchor:      13333,
	}
}

func stackedConfig(channels int) Config {
	cfg := centeredConfig(channels)
	cfg.Discipline = DisciplineStacked
	cfg.Anchor = 0
	cfg.GuardTicks = 100
	return cfg
}

func TestPulseWidthBounds(t *testing.T) {
	// Width must land in [MinPulse, MaxPulse] for any level, any channel
	// count and any valid bounds, including degenerate min==max.
	bounds := []struct{ min, max uint32 }{
		{0, 0},
		{0, 26000},
		{1333, 2666},
		{2000, 2000},
	}
	levels := []float64{-5, -0.001, 0, 0.25, 0.5, 0.999, 1, 1.5, 100}

	for _, b := range bounds {
		for n := 1; n <= MaxChannels; n++ {
			cfg := centeredConfig(n)
			cfg.MinPulse = b.min
			cfg.MaxPulse = b.max
			if err := cfg.Validate(); err != nil {
				t.Fatalf("Config rejected for bounds [%d,%d] n=%d: %v", b.min, b.max, n, err)
			}
			s := NewScheduler(&cfg)
			for _, level := range levels {
				w := s.PulseWidth(level)
				if w < b.min || w > b.max {
					t.Errorf("PulseWidth(%g) = %d outside [%d,%d]", level, w, b.min, b.max)
				}
			}
		}
	}
}

func TestPulseWidthRounding(t *testing.T) {
	cfg := centeredConfig(1)
	cfg.MinPulse = 1000
	cfg.MaxPulse = 2000
	s := NewScheduler(&cfg)

	if w := s.PulseWidth(0); w != 1000 {
		t.Errorf("Level 0: expected 1000, got %d", w)
	}
	if w := s.PulseWidth(1); w != 2000 {
		t.Errorf("Level 1: expected 2000, got %d", w)
	}
	if w := s.PulseWidth(0.5); w != 1500 {
		t.Errorf("Level 0.5: expected 1500, got %d", w)
	}
	// round() semantics, not truncation
	if w := s.PulseWidth(0.0005); w != 1001 {
		t.Errorf("Level 0.0005: expected 1001, got %d", w)
	}
}

func makeChannels(levels []float64) []Channel {
	chs := make([]Channel, len(levels))
	for i, l := range levels {
		chs[i] = Channel{ID: ChannelID(i), Level: l}
	}
	return chs
}

func assertSorted(t *testing.T, entries []ScheduleEntry) {
	t.Helper()
	for i := 1; i < len(entries); i++ {
		if entryBefore(entries[i], entries[i-1]) {
			t.Fatalf("Schedule not sorted at %d: %+v before %+v", i, entries[i-1], entries[i])
		}
	}
}

func TestRebuildSortedCentered(t *testing.T) {
	// Descending levels give descending widths, which under the centered
	// discipline puts the rising edges in reverse channel order. The
	// rebuilt schedule must come out sorted anyway.
	cfg := centeredConfig(4)
	s := NewScheduler(&cfg)
	chs := makeChannels([]float64{1.0, 0.7, 0.4, 0.1})

	entries := s.Rebuild(chs)
	if len(entries) != 8 {
		t.Fatalf("Expected 8 entries, got %d", len(entries))
	}
	assertSorted(t, entries)

	// Reversing the levels reorders nearly every entry; the settle pass
	// must still restore full order.
	chs = makeChannels([]float64{0.1, 0.4, 0.7, 1.0})
	entries = s.Rebuild(chs)
	assertSorted(t, entries)
}

func TestRebuildTieBreak(t *testing.T) {
	// Equal widths collapse all rising edges onto one tick under the
	// centered discipline; ties must resolve by lower channel id.
	cfg := centeredConfig(4)
	s := NewScheduler(&cfg)
	entries := s.Rebuild(makeChannels([]float64{0.5, 0.5, 0.5, 0.5}))

	assertSorted(t, entries)
	for i := 0; i < 4; i++ {
		if entries[i].Edge != EdgeRising || entries[i].Channel != ChannelID(i) {
			t.Errorf("Rising entry %d: expected channel %d, got %+v", i, i, entries[i])
		}
	}
	for i := 4; i < 8; i++ {
		if entries[i].Edge != EdgeFalling || entries[i].Channel != ChannelID(i-4) {
			t.Errorf("Falling entry %d: expected channel %d, got %+v", i, i-4, entries[i])
		}
	}
}

func TestRebuildStackedSlots(t *testing.T) {
	cfg := stackedConfig(3)
	s := NewScheduler(&cfg)
	chs := makeChannels([]float64{1, 1, 1})
	entries := s.Rebuild(chs)
	assertSorted(t, entries)

	// Worst-case widths: windows must still not overlap and every edge
	// must stay inside the period. The first slot sits one guard into
	// the frame to leave recompute slack.
	slot := cfg.MaxPulse + cfg.GuardTicks
	var lastFall uint32
	for i := 0; i < 3; i++ {
		rise := cfg.GuardTicks + uint32(i)*slot
		fall := rise + chs[i].PulseWidth
		if entries[2*i] != (ScheduleEntry{Channel: ChannelID(i), Time: rise, Edge: EdgeRising}) {
			t.Errorf("Channel %d rising: got %+v", i, entries[2*i])
		}
		if entries[2*i+1] != (ScheduleEntry{Channel: ChannelID(i), Time: fall, Edge: EdgeFalling}) {
			t.Errorf("Channel %d falling: got %+v", i, entries[2*i+1])
		}
		if i > 0 && rise <= lastFall {
			t.Errorf("Channel %d window overlaps previous (rise %d, prev fall %d)", i, rise, lastFall)
		}
		if fall >= cfg.PeriodTicks {
			t.Errorf("Channel %d falling edge %d outside period %d", i, fall, cfg.PeriodTicks)
		}
		lastFall = fall
	}
}

func TestRebuildIdempotent(t *testing.T) {
	cfg := centeredConfig(4)
	s := NewScheduler(&cfg)
	chs := makeChannels([]float64{0.1, 0.9, 0.3, 0.6})

	first := make([]ScheduleEntry, 8)
	copy(first, s.Rebuild(chs))
	widths := make([]uint32, 4)
	for i := range chs {
		widths[i] = chs[i].PulseWidth
	}

	second := s.Rebuild(chs)
	for i := range chs {
		if chs[i].PulseWidth != widths[i] {
			t.Errorf("Channel %d width changed on identical recompute: %d vs %d",
				i, chs[i].PulseWidth, widths[i])
		}
	}
	for i := range second {
		if second[i] != first[i] {
			t.Errorf("Entry %d changed on identical recompute: %+v vs %+v",
				i, second[i], first[i])
		}
	}
}

func TestBubbleSettleAdversarial(t *testing.T) {
	// The settle pass is tuned for nearly sorted schedules, but it must
	// still agree with a full sort on adversarial input such as fully
	// reversed order.
	mk := func() []ScheduleEntry {
		var entries []ScheduleEntry
		for i := 7; i >= 0; i-- {
			entries = append(entries,
				ScheduleEntry{Channel: ChannelID(7 - i), Time: uint32(i * 97), Edge: EdgeRising},
				ScheduleEntry{Channel: ChannelID(7 - i), Time: uint32(i * 97), Edge: EdgeFalling},
			)
		}
		return entries
	}

	got := mk()
	BubbleSettle(got)

	want := mk()
	sort.SliceStable(want, func(i, j int) bool { return entryBefore(want[i], want[j]) })

	for i := range got {
		if got[i] != want[i] {
			t.Errorf("Entry %d: BubbleSettle %+v, full sort %+v", i, got[i], want[i])
		}
	}
}

func TestSetSortStrategy(t *testing.T) {
	cfg := centeredConfig(3)
	s := NewScheduler(&cfg)
	s.SetSortStrategy(func(entries []ScheduleEntry) {
		sort.SliceStable(entries, func(i, j int) bool { return entryBefore(entries[i], entries[j]) })
	})
	entries := s.Rebuild(makeChannels([]float64{0.9, 0.1, 0.5}))
	assertSorted(t, entries)
}
