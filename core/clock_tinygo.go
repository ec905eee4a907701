//go:build tinygo

package core

import "sync/atomic"

var gestureTicksValue uint32

// getGestureTicks returns the gesture tick counter
func getGestureTicks() uint32 {
	return atomic.LoadUint32(&gestureTicksValue)
}

// setGestureTicks sets the gesture tick counter
func setGestureTicks(ticks uint32) {
	atomic.StoreUint32(&gestureTicksValue, ticks)
}
