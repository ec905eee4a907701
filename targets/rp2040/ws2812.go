//go:build rp2040

package main

import (
	"machine"

	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/pio/rp2-pio/piolib"

	"sway/core"
)

// ws2812Sink renders one channel's level as warm-white brightness on an
// addressable LED, offloading the tight WS2812 bit timing to a PIO state
// machine so the frame loop never bit-bangs.
type ws2812Sink struct {
	ws      *piolib.WS2812B
	channel core.ChannelID
	last    uint8
}

func newWS2812Sink(pin machine.Pin, channel core.ChannelID) (*ws2812Sink, error) {
	sm, err := pio.PIO0.ClaimStateMachine()
	if err != nil {
		return nil, err
	}
	ws, err := piolib.NewWS2812B(sm, pin)
	if err != nil {
		return nil, err
	}
	return &ws2812Sink{ws: ws, channel: channel, last: 1}, nil
}

// LevelFunc adapts the sink to the driver's per-frame level callback.
// The LED is rewritten only when the quantized brightness changes, so
// steady levels cost nothing inside the frame's slack.
func (s *ws2812Sink) LevelFunc(id core.ChannelID, level float64) {
	if id != s.channel {
		return
	}
	b := uint8(level*255 + 0.5)
	if b == s.last {
		return
	}
	s.last = b
	s.ws.SetRGB(b, b/2, b/8) // warm white ramp
}
