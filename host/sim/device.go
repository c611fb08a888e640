// Package sim runs the device firmware logic on a desktop: the mode
// machine and the game drive an in-memory framebuffer, the keyboard
// stands in for the buttons and the beeper is recorded to WAV.
package sim

import (
	"sync/atomic"
	"time"

	"sdrbox/config"
	"sdrbox/device"
	"sdrbox/display"
	"sdrbox/game"
)

// Keys holds the button state written by the UI thread
type Keys struct {
	fire, left, right, reset atomic.Bool
}

// Set updates all buttons at once
func (k *Keys) Set(fire, left, right, reset bool) {
	k.fire.Store(fire)
	k.left.Store(left)
	k.right.Store(right)
	k.reset.Store(reset)
}

func (k *Keys) FirePressed() bool  { return k.fire.Load() }
func (k *Keys) LeftPressed() bool  { return k.left.Load() }
func (k *Keys) RightPressed() bool { return k.right.Load() }

// ResetComboHeld is the reset chord with fire
func (k *Keys) ResetComboHeld() bool { return k.reset.Load() && k.fire.Load() }

// LED is the status indicator as a flag the UI can poll
type LED struct {
	on atomic.Bool
}

func (l *LED) Set(on bool) { l.on.Store(on) }
func (l *LED) On() bool    { return l.on.Load() }

// Clock advances the recorder by game time. With Realtime set it also
// waits on the wall clock.
type Clock struct {
	Realtime bool
	Recorder *Recorder
	elapsed  atomic.Uint64
}

func (c *Clock) Sleep(ms uint32) {
	if c.Recorder != nil {
		c.Recorder.Advance(ms)
	}
	c.elapsed.Add(uint64(ms))
	if c.Realtime {
		time.Sleep(time.Duration(ms) * time.Millisecond)
	}
}

// Elapsed returns the total game time slept in ms
func (c *Clock) Elapsed() uint64 {
	return c.elapsed.Load()
}

// Options selects the simulated peripherals. Store and Recorder may
// be nil.
type Options struct {
	Config   config.Config
	Seed     uint16
	Store    game.ScoreStore
	Recorder *Recorder
	Realtime bool
}

// Device is a simulated handheld
type Device struct {
	Frame   *display.Framebuffer
	Screen  *display.Surface
	Keys    *Keys
	LED     *LED
	Clock   *Clock
	Game    *game.Game
	Machine *device.Machine
}

// New wires the simulated device. The boot splash is on screen when it
// returns.
func New(opts Options) *Device {
	cfg := opts.Config.WithDefaults()
	seed := opts.Seed
	if seed == 0 {
		seed = cfg.Board.RandomSeed
	}

	d := &Device{
		Frame: display.NewFramebuffer(),
		Keys:  &Keys{},
		LED:   &LED{},
		Clock: &Clock{Realtime: opts.Realtime, Recorder: opts.Recorder},
	}
	d.Screen = display.NewSurface(d.Frame)

	var sound game.Sounder
	if opts.Recorder != nil {
		sound = opts.Recorder
	}

	d.Game = game.New(cfg.Game, game.Peripherals{
		Display: d.Screen,
		Input:   d.Keys,
		Random:  game.NewLFSR(seed),
		Clock:   d.Clock,
		Store:   opts.Store,
		Sound:   sound,
	})
	d.Machine = device.NewMachine(device.Config{
		Timing: cfg.Modes,
		Screen: d.Screen,
		LED:    d.LED,
		Game:   d.Game,
		Clock:  d.Clock,
		Sound:  sound,
	})

	d.Screen.Label(cfg.Board.Callsign)
	return d
}

// Run steps the machine until stop is closed
func (d *Device) Run(stop <-chan struct{}) {
	d.Machine.Run(stop)
}

// Text returns the last presented frame as ASCII art
func (d *Device) Text() string {
	return display.Text(d.Frame.Snapshot())
}
