package core

import "sync/atomic"

// TimerFreq is the rate of the RP2040 system timer (1 MHz, microseconds)
const TimerFreq = 1000000

// systemTicks is written by the main loop and read from the mode
// button interrupt when it records an event
var systemTicks atomic.Uint32

// GetTime returns the current system time in timer ticks
func GetTime() uint32 {
	return systemTicks.Load()
}

// SetTime publishes the hardware timer; targets call it from the main loop
func SetTime(ticks uint32) {
	systemTicks.Store(ticks)
}

// TimerFromMS converts milliseconds to timer ticks
func TimerFromMS(ms uint32) uint32 {
	return ms * (TimerFreq / 1000)
}

// TimerToMS converts timer ticks to milliseconds
func TimerToMS(ticks uint32) uint32 {
	return ticks / (TimerFreq / 1000)
}
