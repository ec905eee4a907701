// Wraparound-safe timing against a free-running hardware counter
package core

// ClockTick is a snapshot of the free-running counter. The counter wraps
// silently, so ticks must never be compared with < or >; use TickExpired.
type ClockTick uint32

// Clock samples the free-running counter. Hardware targets read a timer
// register; tests inject a fake that advances deterministically.
type Clock interface {
	Now() ClockTick
}

// TickExpired reports whether time t has arrived. Implemented as a
// fixed-width signed subtraction so it stays correct across counter
// wraparound, as long as the true forward distance is below half the
// counter range (2^31 ticks).
func TickExpired(now, t ClockTick) bool {
	return int32(now-t) >= 0
}

// WaitUntil busy-polls c until t arrives and returns the tick observed on
// arrival. There is no sleeping anywhere in the engine; every wait is a
// polling loop over this one primitive.
func WaitUntil(c Clock, t ClockTick) ClockTick {
	now := c.Now()
	for !TickExpired(now, t) {
		now = c.Now()
	}
	return now
}

// GestureTicks returns the periodic-interrupt tick counter used to time
// one-shot gestures. The interrupt handler is the only writer; the main
// loop only ever reads it. On tinygo builds the read is atomic.
func GestureTicks() uint32 {
	return getGestureTicks()
}

// ResetGestureTicks zeroes the gesture tick counter. Called only between
// gestures, when the interrupt source is quiescent relative to the value
// being replaced (a missed increment at reset shifts travel start by at
// most one tick).
func ResetGestureTicks() {
	setGestureTicks(0)
}

// IncrementGestureTicks advances the gesture tick counter by one. Called
// from the periodic timer interrupt on hardware targets and from test
// code on the host.
func IncrementGestureTicks() {
	setGestureTicks(getGestureTicks() + 1)
}
