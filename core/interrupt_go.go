//go:build !tinygo

package core

import "sync"

// State stands in for the interrupt mask on regular Go
type State uintptr

// On the host the "interrupt" is another goroutine, so a mutex takes the
// place of masking.
var interruptLock sync.Mutex

func disableInterrupts() State {
	interruptLock.Lock()
	return 0
}

func restoreInterrupts(state State) {
	_ = state
	interruptLock.Unlock()
}
