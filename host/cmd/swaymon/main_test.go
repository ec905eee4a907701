package main

import "testing"

func TestParseReport(t *testing.T) {
	cases := []struct {
		name string
		line string
		want report
		ok   bool
	}{
		{"valid", "sway frames=1024 overruns=3 min_slack=417", report{1024, 3, 417}, true},
		{"zeroes", "sway frames=0 overruns=0 min_slack=0", report{}, true},
		{"wrong prefix", "gcode frames=1 overruns=0 min_slack=9", report{}, false},
		{"missing field", "sway frames=1 overruns=0", report{}, false},
		{"garbage value", "sway frames=x overruns=0 min_slack=9", report{}, false},
		{"unknown key", "sway frames=1 overruns=0 max_slack=9", report{}, false},
		{"empty", "", report{}, false},
		{"noise line", "boot: sway v1", report{}, false},
	}

	for _, tc := range cases {
		got, ok := parseReport(tc.line)
		if ok != tc.ok {
			t.Errorf("%s: parseReport(%q) ok=%v, expected %v", tc.name, tc.line, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("%s: parseReport(%q) = %+v, expected %+v", tc.name, tc.line, got, tc.want)
		}
	}
}
