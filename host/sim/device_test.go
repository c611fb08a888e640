package sim

import (
	"strings"
	"testing"

	"sdrbox/config"
	"sdrbox/device"
	"sdrbox/hiscore"
)

func newDevice() *Device {
	return New(Options{
		Config:   config.Default(),
		Seed:     7,
		Store:    &hiscore.Volatile{},
		Recorder: NewRecorder(8000),
	})
}

func advance(d *Device) {
	d.Machine.RequestAdvance()
	d.Machine.Step()
}

func TestBootSplash(t *testing.T) {
	d := newDevice()
	if d.Frame.Frames() != 1 {
		t.Errorf("Expected 1 frame after boot, got %d", d.Frame.Frames())
	}
	if !strings.Contains(d.Text(), "#") {
		t.Error("Expected callsign on the boot splash")
	}
}

func TestIdleBlinksLED(t *testing.T) {
	d := newDevice()
	d.Machine.Step()
	if !d.LED.On() {
		t.Error("Expected LED on after first Idle step")
	}
	d.Machine.Step()
	if d.LED.On() {
		t.Error("Expected LED off after second Idle step")
	}
	if d.Clock.Elapsed() != 2000 {
		t.Errorf("Expected 2000 ms elapsed, got %d", d.Clock.Elapsed())
	}
}

func TestRecorderFollowsGameTime(t *testing.T) {
	d := newDevice()
	d.Machine.Step()
	if got := d.Clock.Recorder.Len(); got != 8000 {
		t.Errorf("Expected 8000 samples for one second, got %d", got)
	}
}

func TestFireStartsGame(t *testing.T) {
	d := newDevice()
	d.Machine.Step()
	advance(d)
	advance(d)
	advance(d)
	if d.Machine.Mode() != device.Game {
		t.Fatalf("Expected GAME, got %v", d.Machine.Mode())
	}
	if d.Game.State().InPlay {
		t.Fatal("Expected attract screen before fire")
	}

	d.Keys.Set(true, false, false, false)
	d.Machine.Step()
	s := d.Game.State()
	if !s.InPlay {
		t.Fatal("Expected game in play after fire")
	}
	if s.Lives != config.Default().Game.Lives {
		t.Errorf("Expected %d lives, got %d", config.Default().Game.Lives, s.Lives)
	}

	d.Keys.Set(false, false, false, false)
	for i := 0; i < 50; i++ {
		d.Machine.Step()
	}
	advance(d)
	if d.Machine.Mode() != device.Idle {
		t.Errorf("Expected IDLE after leaving the game, got %v", d.Machine.Mode())
	}
}

func TestResetComboNeedsFire(t *testing.T) {
	k := &Keys{}
	k.Set(false, false, false, true)
	if k.ResetComboHeld() {
		t.Error("Expected combo to need fire")
	}
	k.Set(true, false, false, true)
	if !k.ResetComboHeld() {
		t.Error("Expected combo held")
	}
}
