//go:build rp2040

package main

import "machine"

// ModeConfig determines how the engine runs on this board.
type ModeConfig struct {
	// Triggered selects the one-shot gesture variant driven by the
	// trigger button. False runs the steady breathing waveform.
	Triggered bool
}

// modeStrapPin selects the variant at boot: strap it to ground for the
// triggered variant, leave it floating (pull-up) for breathing.
const modeStrapPin = machine.GP22

// GetMode reads the strap pin once at boot. The variant never changes at
// runtime; re-strap and reset to switch.
func GetMode() ModeConfig {
	modeStrapPin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return ModeConfig{Triggered: !modeStrapPin.Get()}
}
