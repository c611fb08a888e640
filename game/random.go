package game

// LFSR is a 16-bit Galois shift register (taps 0xB400). It stands in for
// the hardware generator in tests, the simulator, and on boards without
// a usable entropy source.
type LFSR struct {
	state uint16
}

// NewLFSR seeds the register. A zero seed would lock up, so it maps to 0xACE1.
func NewLFSR(seed uint16) *LFSR {
	if seed == 0 {
		seed = 0xACE1
	}
	return &LFSR{state: seed}
}

func (r *LFSR) next() uint16 {
	lsb := r.state & 1
	r.state >>= 1
	r.state ^= -lsb & 0xB400
	return r.state
}

// Below returns a value in [0, n); 0 for n == 0
func (r *LFSR) Below(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	return uint32(r.next()) % n
}
