//go:build rp2040 || rp2350

package main

import (
	"machine"

	"sdrbox/game"
)

// hardwareRandom draws from the ring oscillator generator and falls
// back to a shift register when it fails
type hardwareRandom struct {
	fallback *game.LFSR
}

func newHardwareRandom(seed uint16) game.Random {
	if seed != 0 {
		return game.NewLFSR(seed)
	}
	if v, err := machine.GetRNG(); err == nil {
		seed = uint16(v)
	}
	return &hardwareRandom{fallback: game.NewLFSR(seed)}
}

func (r *hardwareRandom) Below(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	v, err := machine.GetRNG()
	if err != nil {
		return r.fallback.Below(n)
	}
	return v % n
}
