//go:build rp2040 || rp2350

package main

import (
	"runtime/volatile"
	"time"
	"unsafe"

	"sdrbox/core"
)

// RP2040 timer peripheral
const (
	timerBase     = 0x40054000
	timerTIMERAWL = timerBase + 0x28 // raw low word, no latching
)

var timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))

// InitClock registers the timer constants. The RP2040 timer is a free
// running 64-bit microsecond counter; the low word wraps every 71 minutes
// and all deadlines use wrapping arithmetic.
func InitClock() {
	core.RegisterConstant("MCU", "rp2040")
	UpdateSystemTime()
}

// GetHardwareTime returns the low 32 bits of the microsecond counter
func GetHardwareTime() uint32 {
	return timerRAWL.Get()
}

// UpdateSystemTime copies the hardware counter into the core clock
func UpdateSystemTime() {
	core.SetTime(GetHardwareTime())
}

// pumpClock is the game.Clock of the firmware. While it waits it keeps
// the console and the beeper serviced, so a long pause never stalls
// the USB link or leaves a tone running past its duration.
type pumpClock struct {
	service func()
}

func (c pumpClock) Sleep(ms uint32) {
	start := GetHardwareTime()
	ticks := core.TimerFromMS(ms)
	for {
		UpdateSystemTime()
		c.service()
		if core.GetTime()-start >= ticks {
			return
		}
		time.Sleep(200 * time.Microsecond)
	}
}
