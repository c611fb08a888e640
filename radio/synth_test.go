package radio

import (
	"errors"
	"testing"

	"sdrbox/core"
)

// fakeSi5351 records writes into a register file
type fakeSi5351 struct {
	regs     [256]byte
	writes   [][]byte
	failAt   int
	busHz    uint32
	wrongBus bool
}

func (f *fakeSi5351) ConfigureBus(bus core.I2CBusID, hz uint32) error {
	f.busHz = hz
	return nil
}

func (f *fakeSi5351) Write(bus core.I2CBusID, addr core.I2CAddress, data []byte) error {
	if addr != DefaultAddress {
		f.wrongBus = true
	}
	if f.failAt > 0 && len(f.writes)+1 == f.failAt {
		return errors.New("nack")
	}
	f.writes = append(f.writes, append([]byte(nil), data...))
	if len(data) == 2 {
		f.regs[data[0]] = data[1]
	}
	return nil
}

func (f *fakeSi5351) Read(bus core.I2CBusID, addr core.I2CAddress, reg []byte, n uint8) ([]byte, error) {
	out := make([]byte, n)
	copy(out, f.regs[reg[0]:])
	return out, nil
}

func newSynth(t *testing.T, f *fakeSi5351) *Synth {
	t.Helper()
	bus, err := core.NewI2CBus(f, 0, 100000)
	if err != nil {
		t.Fatalf("NewI2CBus failed: %v", err)
	}
	return NewSynth(bus, DefaultAddress)
}

func TestSynthInitSequence(t *testing.T) {
	f := &fakeSi5351{}
	s := newSynth(t, f)

	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if f.busHz != 100000 {
		t.Errorf("Expected 100kHz bus, got %d", f.busHz)
	}
	if f.wrongBus {
		t.Error("Write sent to the wrong address")
	}

	want := [][]byte{{3, 0xFF}}
	for i := byte(16); i <= 23; i++ {
		want = append(want, []byte{i, 0x80})
	}
	want = append(want, []byte{183, 0xC0})

	if len(f.writes) != len(want) {
		t.Fatalf("Expected %d writes, got %d", len(want), len(f.writes))
	}
	for i := range want {
		if f.writes[i][0] != want[i][0] || f.writes[i][1] != want[i][1] {
			t.Errorf("Write %d: expected %v, got %v", i, want[i], f.writes[i])
		}
	}
}

func TestSynthNotReady(t *testing.T) {
	f := &fakeSi5351{}
	f.regs[RegDeviceStatus] = 0x80
	s := newSynth(t, f)

	if err := s.Init(); err != ErrNotReady {
		t.Errorf("Expected ErrNotReady, got %v", err)
	}
	if len(f.writes) != 0 {
		t.Errorf("Expected no writes, got %d", len(f.writes))
	}
}

func TestSynthWriteFailureStops(t *testing.T) {
	f := &fakeSi5351{failAt: 3}
	s := newSynth(t, f)

	if err := s.Init(); err == nil {
		t.Fatal("Expected an error")
	}
	if len(f.writes) != 2 {
		t.Errorf("Expected the sequence to stop after 2 writes, got %d", len(f.writes))
	}
}
