//go:build rp2040

package main

import (
	"device/rp"
	"runtime/interrupt"
	"runtime/volatile"
	"unsafe"

	"sway/core"
)

// RP2040 Timer peripheral memory map
const (
	timerBase     = 0x40054000
	timerTIMERAWL = timerBase + 0x0C // Raw timer low word
)

var timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))

// TimerHz is the RP2040 free-running timer rate: 1MHz, one tick per
// microsecond. All pulse and period constants below are derived from it.
const TimerHz = 1000000

// hardwareClock samples the free-running microsecond counter. The low 32
// bits wrap every ~71 minutes, which the engine's signed-difference
// comparisons absorb.
type hardwareClock struct{}

func (hardwareClock) Now() core.ClockTick {
	return core.ClockTick(timerRAWL.Get())
}

// gestureTickHz is the rate of the periodic alarm interrupt that drives
// gesture timing. 1kHz keeps ISR overhead negligible against the frame
// loop while giving millisecond travel resolution.
const gestureTickHz = 1000

const gestureTickInterval = TimerHz / gestureTickHz

// initGestureTicker arms timer alarm 1 as a periodic interrupt. The
// handler is the sole writer of the gesture tick counter; everything
// else reads it through core.GestureTicks.
func initGestureTicker() {
	intr := interrupt.New(rp.IRQ_TIMER_IRQ_1, gestureTickISR)
	rp.TIMER.INTE.SetBits(rp.TIMER_INTE_ALARM_1)
	rp.TIMER.ALARM1.Set(timerRAWL.Get() + gestureTickInterval)
	intr.Enable()
}

func gestureTickISR(interrupt.Interrupt) {
	rp.TIMER.INTR.Set(rp.TIMER_INTR_ALARM_1) // write-1 clears the alarm
	core.IncrementGestureTicks()
	rp.TIMER.ALARM1.Set(timerRAWL.Get() + gestureTickInterval)
}
