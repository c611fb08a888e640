// Package device runs the top-level mode state machine of the handheld.
// The mode button interrupt only records a request; the main loop applies
// it at the start of the next Step and then runs the mode's tick.
package device

// Mode is the top-level operating state
type Mode uint32

const (
	Idle Mode = iota
	Sending
	Receiving
	Game

	modeCount
)

// Next returns the following mode in the button cycle
func (m Mode) Next() Mode {
	return (m + 1) % modeCount
}

func (m Mode) String() string {
	switch m {
	case Idle:
		return "IDLE"
	case Sending:
		return "SENDING"
	case Receiving:
		return "RECEIVING"
	case Game:
		return "GAME"
	default:
		return "UNKNOWN"
	}
}
