package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// Event is one entry of the post-mortem event ring
type Event struct {
	Kind   uint8  // Event kind code (Evt*)
	Clock  uint32 // System time when recorded
	Value1 uint32 // Kind-dependent value
	Value2 uint32 // Kind-dependent value
}

// Event kind codes
const (
	EvtModeRequest = 1 // mode button edge, v1=requested mode
	EvtModeEnter   = 2 // mode committed by main loop, v1=mode
	EvtLevelStart  = 3 // v1=level, v2=score
	EvtLifeLost    = 4 // v1=lives left, v2=score
	EvtGameOver    = 5 // v1=score, v2=high score
	EvtHighScore   = 6 // v1=new high score
	EvtBonus       = 7 // mothership hit, v1=bonus, v2=x
	EvtPanic       = 8 // main loop recovered, v1=panic count
	EvtBoot        = 9 // v1=boot status bits
)

const (
	EventRingSize = 32 // Keep the last 32 events
)

var (
	debugPrintln DebugWriter = func(s string) {}

	// Off by default; enable with set_debug enable=1
	debugEnabled bool = false

	eventRing     [EventRingSize]Event
	eventRingHead uint8
)

// SetDebugWriter sets the platform-specific debug output function
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// RecordEvent stores an event in the ring buffer.
// Safe to call from interrupt context: no allocation, bounded work.
func RecordEvent(kind uint8, value1, value2 uint32) {
	state := disableInterrupts()
	idx := eventRingHead
	eventRing[idx] = Event{
		Kind:   kind,
		Clock:  GetTime(),
		Value1: value1,
		Value2: value2,
	}
	eventRingHead = (idx + 1) % EventRingSize
	restoreInterrupts(state)
}

// Events returns the recorded events, oldest first.
func Events() []Event {
	state := disableInterrupts()
	ring := eventRing
	start := eventRingHead
	restoreInterrupts(state)

	out := make([]Event, 0, EventRingSize)
	for i := uint8(0); i < EventRingSize; i++ {
		evt := ring[(start+i)%EventRingSize]
		if evt.Kind == 0 {
			continue
		}
		out = append(out, evt)
	}
	return out
}

// EventName returns the short name of an event kind
func EventName(kind uint8) string {
	switch kind {
	case EvtModeRequest:
		return "MODE_REQ"
	case EvtModeEnter:
		return "MODE_ENTER"
	case EvtLevelStart:
		return "LEVEL"
	case EvtLifeLost:
		return "LIFE_LOST"
	case EvtGameOver:
		return "GAME_OVER"
	case EvtHighScore:
		return "HISCORE"
	case EvtBonus:
		return "BONUS"
	case EvtPanic:
		return "PANIC!"
	case EvtBoot:
		return "BOOT"
	default:
		return "UNKNOWN"
	}
}

// DumpEvents writes the event ring through the debug writer.
// Written unconditionally, the console asked for it.
func DumpEvents() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[EVENTS] === Event Ring Dump ===")
	for _, evt := range Events() {
		debugPrintln("[EVENTS] " + EventName(evt.Kind) +
			" clock=" + Utoa(evt.Clock) +
			" v1=" + Utoa(evt.Value1) +
			" v2=" + Utoa(evt.Value2))
	}
	debugPrintln("[EVENTS] === End Dump ===")
}

// ClearEvents empties the event ring
func ClearEvents() {
	state := disableInterrupts()
	for i := range eventRing {
		eventRing[i] = Event{}
	}
	eventRingHead = 0
	restoreInterrupts(state)
}
