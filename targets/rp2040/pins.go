//go:build rp2040

package main

import (
	"machine"

	"sway/core"
)

// outPin binds one machine pin as a channel output capability.
type outPin struct {
	pin machine.Pin
}

func newOutPin(pin machine.Pin) outPin {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.Low()
	return outPin{pin: pin}
}

func (p outPin) SetHigh() { p.pin.High() }
func (p outPin) SetLow()  { p.pin.Low() }

// trigPin is the gesture trigger input: active-low with the internal
// pull-up, so the line idles high until the button pulls it down.
type trigPin struct {
	pin machine.Pin
}

func newTrigPin(pin machine.Pin) trigPin {
	pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return trigPin{pin: pin}
}

func (p trigPin) Get() bool { return p.pin.Get() }

var _ core.Output = outPin{}
var _ core.TriggerInput = trigPin{}
