package device

// Timing holds the per-mode pacing in milliseconds
type Timing struct {
	IdleBlinkMs     int `json:"idle_blink_ms"`
	SendingBlinkMs  int `json:"sending_blink_ms"`
	ReceivingPollMs int `json:"receiving_poll_ms"`
	GameFrameMs     int `json:"game_frame_ms"`
}

// DefaultTiming returns the stock pacing
func DefaultTiming() Timing {
	return Timing{
		IdleBlinkMs:     1000,
		SendingBlinkMs:  250,
		ReceivingPollMs: 10,
		GameFrameMs:     10,
	}
}

// WithDefaults fills zero or negative fields from DefaultTiming
func (t Timing) WithDefaults() Timing {
	d := DefaultTiming()
	if t.IdleBlinkMs <= 0 {
		t.IdleBlinkMs = d.IdleBlinkMs
	}
	if t.SendingBlinkMs <= 0 {
		t.SendingBlinkMs = d.SendingBlinkMs
	}
	if t.ReceivingPollMs <= 0 {
		t.ReceivingPollMs = d.ReceivingPollMs
	}
	if t.GameFrameMs <= 0 {
		t.GameFrameMs = d.GameFrameMs
	}
	return t
}

// periodMs returns the pacing sleep after a tick of mode m
func (t Timing) periodMs(m Mode) uint32 {
	switch m {
	case Idle:
		return uint32(t.IdleBlinkMs)
	case Sending:
		return uint32(t.SendingBlinkMs)
	case Receiving:
		return uint32(t.ReceivingPollMs)
	default:
		return uint32(t.GameFrameMs)
	}
}
