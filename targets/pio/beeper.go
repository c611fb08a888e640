//go:build rp2040 || rp2350

package pio

import (
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"

	"sdrbox/core"
)

// buildToneProgram assembles toneProgram for a load at origin
func buildToneProgram(origin uint8) []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	program := make([]uint16, len(toneProgram))
	for i, op := range toneProgram {
		switch op {
		case opPullNoblock:
			program[i] = asm.Pull(false, false).Encode()
		case opMovXOSR:
			program[i] = asm.Mov(rp2pio.MovDestX, rp2pio.MovSrcOSR).Encode()
		case opSetHigh:
			program[i] = asm.Set(rp2pio.SetDestPins, 1).Encode()
		case opSetLow:
			program[i] = asm.Set(rp2pio.SetDestPins, 0).Encode()
		case opMovYX:
			program[i] = asm.Mov(rp2pio.MovDestY, rp2pio.MovSrcX).Encode()
		case opJmpYDec:
			program[i] = asm.Jmp(origin+uint8(i), rp2pio.JmpYNZeroDec).Encode()
		}
	}
	return program
}

const toneOrigin = 0

// Beeper implements game.Sounder on one PIO state machine
type Beeper struct {
	pio    *rp2pio.PIO
	sm     rp2pio.StateMachine
	pin    machine.Pin
	offset uint8
	timer  toneTimer
}

// NewBeeper selects the state machine; pioNum 0 or 1, smNum 0-3
func NewBeeper(pioNum, smNum uint8) *Beeper {
	pioHW := rp2pio.PIO0
	if pioNum != 0 {
		pioHW = rp2pio.PIO1
	}
	return &Beeper{
		pio: pioHW,
		sm:  pioHW.StateMachine(smNum),
	}
}

// Init loads the program and parks the pin low
func (b *Beeper) Init(pin uint8) error {
	b.pin = machine.Pin(pin)
	b.sm.TryClaim()

	program := buildToneProgram(toneOrigin)
	offset, err := b.pio.AddProgram(program, toneOrigin)
	if err != nil {
		return err
	}
	b.offset = offset

	b.pin.Configure(machine.PinConfig{Mode: b.pio.PinMode()})

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetSetPins(b.pin, 1)
	cfg.SetOutShift(true, false, 32)
	cfg.SetWrap(offset+uint8(len(program))-1, offset)
	// 125 MHz system clock down to SMClockHz
	cfg.SetClkDivIntFrac(uint16(machine.CPUFrequency()/SMClockHz), 0)

	b.sm.Init(offset, cfg)
	b.sm.SetPindirsConsecutive(b.pin, 1, true)
	b.sm.SetPinsConsecutive(b.pin, 1, false)
	return nil
}

// Tone starts a square wave of hz for ms milliseconds; ms 0 holds it
// until Quiet. Update ends timed tones.
func (b *Beeper) Tone(hz, ms uint32) {
	n := HalfPeriod(hz)
	if n == 0 {
		b.Quiet()
		return
	}
	// Restart from the pull so the new pitch does not wait for the
	// running half period to count out
	b.sm.SetEnabled(false)
	b.sm.ClearFIFOs()
	b.sm.Restart()
	b.sm.Exec(rp2pio.AssemblerV0{}.Jmp(b.offset, rp2pio.JmpAlways).Encode())
	b.sm.TxPut(n)
	b.sm.SetEnabled(true)
	b.timer.start(core.GetTime(), core.TimerFromMS(ms))
}

// Quiet stops the wave with the pin low
func (b *Beeper) Quiet() {
	b.sm.SetEnabled(false)
	b.sm.ClearFIFOs()
	b.sm.SetPinsConsecutive(b.pin, 1, false)
	b.timer.stop()
}

// Update silences a timed tone once it has run out. Call it from the
// main loop's wait.
func (b *Beeper) Update(now uint32) {
	if b.timer.expired(now) {
		b.Quiet()
	}
}
