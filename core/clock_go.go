//go:build !tinygo

package core

var gestureTicksValue uint32

// getGestureTicks returns the gesture tick counter (regular Go implementation)
func getGestureTicks() uint32 {
	return gestureTicksValue
}

// setGestureTicks sets the gesture tick counter (regular Go implementation)
func setGestureTicks(ticks uint32) {
	gestureTicksValue = ticks
}
