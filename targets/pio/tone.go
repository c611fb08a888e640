// Package pio drives the beeper from an RP2040 PIO state machine, so
// tones keep playing while the main loop sleeps or draws.
package pio

// SMClockHz is the state machine clock after the divider
const SMClockHz = 1000000

// loopOverhead is the number of non-counting instructions per half period
const loopOverhead = 4

// toneOp is one instruction of the square-wave program
type toneOp uint8

const (
	opPullNoblock toneOp = iota // pull noblock: OSR from the FIFO, or from X when empty
	opMovXOSR                   // mov x, osr
	opSetHigh                   // set pins, 1
	opSetLow                    // set pins, 0
	opMovYX                     // mov y, x
	opJmpYDec                   // jmp y--, to itself
)

// toneProgram holds the half period in X and counts each half in Y. X is
// never decremented, so pull noblock on an empty FIFO reloads the same
// period and the tone repeats until a new one is queued.
var toneProgram = [...]toneOp{
	// .wrap_target
	opPullNoblock,
	opMovXOSR,
	opSetHigh,
	opMovYX,
	opJmpYDec,
	opSetLow,
	opMovYX,
	opJmpYDec,
	// .wrap
}

// HalfPeriod returns the count loaded into the square-wave program for
// a tone of hz. Zero means silence.
func HalfPeriod(hz uint32) uint32 {
	if hz == 0 {
		return 0
	}
	n := SMClockHz / (2 * hz)
	if n <= loopOverhead {
		return 1
	}
	return n - loopOverhead
}

// toneTimer tracks when a timed tone has to stop. Times are core timer
// ticks; the comparison survives wrap-around.
type toneTimer struct {
	until   uint32
	timed   bool
	playing bool
}

func (t *toneTimer) start(now, ticks uint32) {
	t.playing = true
	t.timed = ticks != 0
	t.until = now + ticks
}

func (t *toneTimer) stop() {
	t.playing = false
	t.timed = false
}

// expired reports whether a timed tone has run out at now
func (t *toneTimer) expired(now uint32) bool {
	return t.playing && t.timed && int32(now-t.until) >= 0
}
