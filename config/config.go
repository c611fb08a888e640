// Package config gathers the tunable settings of the device: gameplay
// constants, mode pacing and board wiring. The firmware runs on Default;
// the simulator can load a JSON file.
package config

import (
	"sdrbox/device"
	"sdrbox/game"
)

// Board describes the wiring of the handheld
type Board struct {
	Callsign string `json:"callsign"` // shown on the boot splash

	LEDPin    uint8 `json:"led_pin"`
	FirePin   uint8 `json:"fire_pin"` // PTT key, active low
	ModePin   uint8 `json:"mode_pin"` // falling edge advances the mode
	BeeperPin uint8 `json:"beeper_pin"`

	DisplayBus     uint8  `json:"display_bus"`
	DisplayAddress uint8  `json:"display_address"`
	DisplayHz      uint32 `json:"display_hz"`

	SynthBus     uint8  `json:"synth_bus"`
	SynthAddress uint8  `json:"synth_address"`
	SynthHz      uint32 `json:"synth_hz"`

	RandomSeed uint16 `json:"random_seed"` // 0 seeds from the hardware generator
}

// Config is the whole configuration
type Config struct {
	Game  game.Tuning   `json:"game"`
	Modes device.Timing `json:"modes"`
	Board Board         `json:"board"`
}

// DefaultBoard is the reference wiring on a Pico
func DefaultBoard() Board {
	return Board{
		Callsign:       "ZL4AA",
		LEDPin:         25,
		FirePin:        14,
		ModePin:        15,
		BeeperPin:      16,
		DisplayBus:     1,
		DisplayAddress: 0x3C,
		DisplayHz:      400000,
		SynthBus:       0,
		SynthAddress:   0x60,
		SynthHz:        100000,
	}
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Game:  game.DefaultTuning(),
		Modes: device.DefaultTiming(),
		Board: DefaultBoard(),
	}
}

// WithDefaults fills every unset field. Pin 0 is a valid GPIO, so board
// pins are only defaulted together, when none of them is set.
func (c Config) WithDefaults() Config {
	c.Game = c.Game.WithDefaults()
	c.Modes = c.Modes.WithDefaults()

	d := DefaultBoard()
	b := &c.Board
	if b.Callsign == "" {
		b.Callsign = d.Callsign
	}
	if b.LEDPin == 0 && b.FirePin == 0 && b.ModePin == 0 && b.BeeperPin == 0 {
		b.LEDPin, b.FirePin, b.ModePin, b.BeeperPin = d.LEDPin, d.FirePin, d.ModePin, d.BeeperPin
	}
	if b.DisplayAddress == 0 {
		b.DisplayBus = d.DisplayBus
		b.DisplayAddress = d.DisplayAddress
	}
	if b.DisplayHz == 0 {
		b.DisplayHz = d.DisplayHz
	}
	if b.SynthAddress == 0 {
		b.SynthBus = d.SynthBus
		b.SynthAddress = d.SynthAddress
	}
	if b.SynthHz == 0 {
		b.SynthHz = d.SynthHz
	}
	return c
}
