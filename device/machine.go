package device

import (
	"sync/atomic"

	"sdrbox/core"
	"sdrbox/game"
)

// Labeler shows a single centred line on a cleared screen
type Labeler interface {
	Label(text string)
}

// LED is the status indicator
type LED interface {
	Set(on bool)
}

// Session is the game as seen from the mode machine
type Session interface {
	Init()
	Tick()
}

// Config gathers the collaborators of a Machine. Sound may be nil.
type Config struct {
	Timing Timing
	Screen Labeler
	LED    LED
	Game   Session
	Clock  game.Clock
	Sound  game.Sounder
}

// Machine is the device mode state machine. Everything except the two
// atomic cells belongs to the main loop.
type Machine struct {
	timing Timing
	screen Labeler
	led    LED
	game   Session
	clock  game.Clock
	sound  game.Sounder

	current Mode
	entered bool
	ledOn   bool
	commits uint32

	// confirmed mirrors current for the interrupt handler; requested is
	// written by the handler and read once per Step.
	confirmed atomic.Uint32
	requested atomic.Uint32
}

// NewMachine creates a machine in Idle. The Idle enter action runs on
// the first Step.
func NewMachine(cfg Config) *Machine {
	return &Machine{
		timing: cfg.Timing.WithDefaults(),
		screen: cfg.Screen,
		led:    cfg.LED,
		game:   cfg.Game,
		clock:  cfg.Clock,
		sound:  cfg.Sound,
	}
}

// RequestAdvance asks for the next mode in the cycle. It is safe to call
// from the mode button interrupt: it does two atomic word accesses and
// records an event. Several calls before the next Step collapse into one
// advance, since each is computed from the same confirmed mode.
func (m *Machine) RequestAdvance() {
	next := Mode(m.confirmed.Load()).Next()
	m.requested.Store(uint32(next))
	core.RecordEvent(core.EvtModeRequest, uint32(next), 0)
}

// Mode returns the committed mode
func (m *Machine) Mode() Mode {
	return Mode(m.confirmed.Load())
}

// Commits returns the number of mode entries so far, boot included
func (m *Machine) Commits() uint32 {
	return m.commits
}

// Step is one main loop iteration: apply a pending request, run the
// current mode's tick, then pace. Only the successor of the current mode
// is accepted, so a stale request never moves the cycle backwards.
func (m *Machine) Step() {
	want := Mode(m.requested.Load())
	switch {
	case !m.entered:
		m.enter(m.current)
	case want != m.current && want == m.current.Next():
		m.enter(want)
	}

	switch m.current {
	case Idle, Sending:
		m.ledOn = !m.ledOn
		if m.led != nil {
			m.led.Set(m.ledOn)
		}
	case Receiving:
	case Game:
		m.game.Tick()
	}
	m.clock.Sleep(m.timing.periodMs(m.current))
}

// Run steps forever, or until stop is closed
func (m *Machine) Run(stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		default:
		}
		m.Step()
	}
}

func (m *Machine) enter(next Mode) {
	prev := m.current
	if m.entered && prev == Game && m.sound != nil {
		m.sound.Quiet()
	}

	m.screen.Label(next.String())
	core.DebugPrintln("[MODE] " + next.String())
	core.RecordEvent(core.EvtModeEnter, uint32(next), uint32(prev))

	if next == Game {
		m.game.Init()
	}

	m.current = next
	m.confirmed.Store(uint32(next))
	m.entered = true
	m.commits++
}
