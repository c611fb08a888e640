// Package radio brings up the Si5351 clock synthesizer that drives the
// quadrature mixer. Only the boot sequence lives here: every output is
// switched off and powered down until a radio mode tunes it.
package radio

import (
	"errors"

	"sdrbox/core"
)

// DefaultAddress is the Si5351A 7-bit I2C address
const DefaultAddress = 0x60

// Si5351 registers used at boot
const (
	RegDeviceStatus = 0
	RegOutputEnable = 3
	RegClk0Control  = 16
	RegCrystalLoad  = 183

	clockCount       = 8
	clkPowerDown     = 0x80
	allOutputsOff    = 0xFF
	crystalLoad10pF  = 0xC0
	statusSysInitBit = 0x80
)

var (
	ErrNotReady = errors.New("si5351: still initialising")
	ErrVerify   = errors.New("si5351: output enable readback mismatch")
)

// Synth talks to one Si5351 on an I2C bus
type Synth struct {
	bus  *core.I2CBus
	addr uint8
}

// NewSynth binds a synthesizer at addr on bus
func NewSynth(bus *core.I2CBus, addr uint8) *Synth {
	return &Synth{bus: bus, addr: addr}
}

// Init disables all outputs, powers down CLK0..CLK7 and sets the
// crystal load capacitance to 10 pF, then reads the enable register back.
func (s *Synth) Init() error {
	status, err := s.ReadRegister(RegDeviceStatus)
	if err != nil {
		return err
	}
	if status&statusSysInitBit != 0 {
		return ErrNotReady
	}

	if err := s.bus.WriteRegister(s.addr, RegOutputEnable, allOutputsOff); err != nil {
		return err
	}
	for i := uint8(0); i < clockCount; i++ {
		if err := s.bus.WriteRegister(s.addr, RegClk0Control+i, clkPowerDown); err != nil {
			return err
		}
	}
	if err := s.bus.WriteRegister(s.addr, RegCrystalLoad, crystalLoad10pF); err != nil {
		return err
	}

	v, err := s.ReadRegister(RegOutputEnable)
	if err != nil {
		return err
	}
	if v != allOutputsOff {
		return ErrVerify
	}
	core.DebugPrintln("[SYNTH] outputs off, xtal load 10pF")
	return nil
}

// ReadRegister reads one register
func (s *Synth) ReadRegister(reg uint8) (uint8, error) {
	var r [1]byte
	if err := s.bus.Tx(uint16(s.addr), []byte{reg}, r[:]); err != nil {
		return 0, err
	}
	return r[0], nil
}
