//go:build rp2040

package main

import (
	"machine"

	"sway/core"
)

// Board wiring. Channels 0..2 drive servo signal lines, channel 3 gates
// a plain LED; the WS2812 renders channel 3's brightness as well.
const (
	servoPin0  = machine.GP0
	servoPin1  = machine.GP1
	servoPin2  = machine.GP2
	ledPin     = machine.GP3
	triggerPin = machine.GP5
	ws2812Pin  = machine.GP16
)

// reportInterval is how many frames pass between telemetry lines. The
// line is written after a frame completes, inside the slack the leading
// guard provides, and overruns it might cause are themselves counted.
const reportInterval = 256

func engineConfig(mode ModeConfig) core.Config {
	cfg := core.Config{
		Channels:    4,
		PeriodTicks: 20 * (TimerHz / 1000), // 50Hz servo frame
		MinPulse:    1 * (TimerHz / 1000),  // 1ms
		MaxPulse:    2 * (TimerHz / 1000),  // 2ms
		BPM:         12,
		FrameRate:   50,
		Stagger:     0.125,
		Shape:       core.ShapeSine,
		Discipline:  core.DisciplineStacked,
		GuardTicks:  500,
	}
	if mode.Triggered {
		cfg.TravelTicks = 2 * gestureTickHz // 2s of travel
	}
	return cfg
}

func main() {
	mode := GetMode()

	outs := []core.Output{
		newOutPin(servoPin0),
		newOutPin(servoPin1),
		newOutPin(servoPin2),
		newOutPin(ledPin),
	}

	initGestureTicker()

	driver := core.MustNewDriver(engineConfig(mode), hardwareClock{}, outs)
	if mode.Triggered {
		driver.BindTrigger(newTrigPin(triggerPin))
	}

	if sink, err := newWS2812Sink(ws2812Pin, 3); err == nil {
		driver.SetLevelFunc(sink.LevelFunc)
	}

	frames := uint32(0)
	for {
		driver.RunFrame()
		frames++
		if frames%reportInterval == 0 {
			machine.Serial.Write([]byte(driver.Stats.Report() + "\r\n"))
		}
	}
}
