//go:build tinygo

package core

import "runtime/interrupt"

// disableInterrupts masks interrupts and returns the previous mask so the
// event ring stays consistent when the mode button ISR records into it
func disableInterrupts() interrupt.State {
	return interrupt.Disable()
}

// restoreInterrupts restores the interrupt mask
func restoreInterrupts(state interrupt.State) {
	interrupt.Restore(state)
}
