package game

import (
	"errors"
	"testing"

	"sdrbox/core"
)

func TestAttractScreen(t *testing.T) {
	r := newRig(t, DefaultTuning())
	r.store.score = 42
	r.g.Init()

	r.g.Tick()
	if r.g.inPlay {
		t.Fatal("Expected attract screen without fire")
	}
	for _, line := range []string{"Play", "Space Invaders", "Press Fire to start", "Hi Score 42"} {
		if !r.disp.hasText(line) {
			t.Errorf("Expected %q on the attract screen", line)
		}
	}
}

func TestHighScoreLoadFailure(t *testing.T) {
	r := newRig(t, DefaultTuning())
	r.store.score = 99
	r.store.loadErr = errors.New("no card")
	r.g.Init()

	if r.g.State().HighScore != 0 {
		t.Errorf("Expected high score 0 after a failed load, got %d", r.g.State().HighScore)
	}
}

func TestStartGame(t *testing.T) {
	r := newRig(t, DefaultTuning())
	core.ClearEvents()
	r.start(t)

	s := r.g.State()
	if s.Level != 1 || s.Lives != 3 || s.Score != 0 || s.Killed != 0 {
		t.Errorf("Unexpected state after start: %+v", s)
	}
	if !r.disp.hasText("Level 1") || !r.disp.hasText("Player 1") {
		t.Errorf("Expected status screen, got %+v", r.disp.texts)
	}
	if !r.clock.sleptFor(2000) {
		t.Error("Expected status screen hold")
	}
	events := core.Events()
	if len(events) != 1 || events[0].Kind != core.EvtLevelStart || events[0].Value1 != 1 {
		t.Errorf("Expected level start event, got %+v", events)
	}
	if r.g.player.AlienSpeed != 24 {
		t.Errorf("Expected level 1 speed 24, got %d", r.g.player.AlienSpeed)
	}
}

func TestResetComboClearsHighScore(t *testing.T) {
	r := newRig(t, DefaultTuning())
	r.store.score = 42
	r.g.Init()

	r.input.combo = true
	r.input.fire = true
	r.g.Tick()

	if r.g.inPlay {
		t.Error("Expected the reset chord to win over fire")
	}
	if r.g.State().HighScore != 0 {
		t.Errorf("Expected high score 0, got %d", r.g.State().HighScore)
	}
	if len(r.store.saves) != 1 || r.store.saves[0] != 0 {
		t.Errorf("Expected a saved zero, got %v", r.store.saves)
	}
}

func TestGameOverNewHighScore(t *testing.T) {
	r := newRig(t, DefaultTuning())
	r.start(t)
	g := r.g
	g.player.Lives = 1
	g.player.Score = 500
	core.ClearEvents()

	g.loseLife()

	if g.inPlay {
		t.Error("Expected game to end")
	}
	if g.player.Lives != 0 {
		t.Errorf("Expected 0 lives, got %d", g.player.Lives)
	}
	if !r.disp.hasText("Game Over") || !r.disp.hasText("NEW HIGH SCORE!!!") || !r.disp.hasText("Score 500") {
		t.Errorf("Unexpected game over screen: %+v", r.disp.texts)
	}
	if len(r.store.saves) != 1 || r.store.saves[0] != 500 {
		t.Errorf("Expected 500 saved, got %v", r.store.saves)
	}
	if g.State().HighScore != 500 {
		t.Errorf("Expected high score 500, got %d", g.State().HighScore)
	}
	if !r.clock.sleptFor(3000) {
		t.Error("Expected game over hold")
	}

	var kinds []uint8
	for _, e := range core.Events() {
		kinds = append(kinds, e.Kind)
	}
	want := []uint8{core.EvtLifeLost, core.EvtGameOver, core.EvtHighScore}
	if len(kinds) != len(want) {
		t.Fatalf("Expected events %v, got %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("Event %d: expected %d, got %d", i, want[i], kinds[i])
		}
	}
}

func TestGameOverKeepsHigherScore(t *testing.T) {
	r := newRig(t, DefaultTuning())
	r.store.score = 1000
	r.g.Init()
	r.start(t)
	g := r.g
	g.player.Lives = 1
	g.player.Score = 10

	g.loseLife()

	if len(r.store.saves) != 0 {
		t.Errorf("Expected no save, got %v", r.store.saves)
	}
	if r.disp.hasText("NEW HIGH SCORE!!!") {
		t.Error("Did not expect a high score banner")
	}
	if g.State().HighScore != 1000 {
		t.Errorf("Expected high score 1000, got %d", g.State().HighScore)
	}
}

func TestNewGameAfterGameOver(t *testing.T) {
	r := newRig(t, DefaultTuning())
	r.start(t)
	g := r.g
	g.player.Lives = 1
	g.player.Score = 70
	g.player.Level = 3
	g.loseLife()

	r.start(t)
	s := g.State()
	if s.Score != 0 || s.Level != 1 || s.Lives != 3 {
		t.Errorf("Expected a fresh session, got %+v", s)
	}
}

func TestLevelStartDepthWraps(t *testing.T) {
	r := newRig(t, DefaultTuning())
	r.start(t)
	g := r.g

	want := []int{4, 8, 12, 0, 4}
	for i, y := range want {
		g.advanceLevel()
		if g.aliens[0][0].Y != y {
			t.Errorf("Level %d: expected start depth %d, got %d", i+2, y, g.aliens[0][0].Y)
		}
	}
}

func TestLevelBaselineFloor(t *testing.T) {
	r := newRig(t, DefaultTuning())
	r.start(t)
	g := r.g
	g.player.Level = 50
	if g.levelBaseline() != TotalAliens {
		t.Errorf("Expected baseline floor %d, got %d", TotalAliens, g.levelBaseline())
	}
}

func TestTuningClampsAlienSpeed(t *testing.T) {
	tn := Tuning{AlienSpeed: 5}.WithDefaults()
	if tn.AlienSpeed != TotalAliens {
		t.Errorf("Expected alien speed raised to %d, got %d", TotalAliens, tn.AlienSpeed)
	}
	tn = Tuning{AlienSpeed: 40}.WithDefaults()
	if tn.AlienSpeed != 40 {
		t.Errorf("Expected alien speed 40 kept, got %d", tn.AlienSpeed)
	}
}

// A long random session must only ever remove base pixels within a level.
func TestBasesOnlyErode(t *testing.T) {
	disp := &fakeDisplay{}
	input := &fakeInput{fire: true}
	g := New(DefaultTuning(), Peripherals{
		Display: disp,
		Input:   input,
		Random:  NewLFSR(0xBEEF),
		Clock:   &fakeClock{},
	})
	g.Init()

	for i := 0; i < 5000; i++ {
		input.right = i%200 < 100
		input.left = !input.right

		before := g.bases
		wasInPlay := g.inPlay
		level := g.player.Level

		g.Tick()

		if !wasInPlay || !g.inPlay || g.player.Level != level {
			continue
		}
		for b := range g.bases {
			if !g.bases[b].Grid.Covers(&before[b].Grid) {
				t.Fatalf("Tick %d: base %d gained pixels", i, b)
			}
		}
		if g.player.Lives < 0 {
			t.Fatalf("Tick %d: negative lives", i)
		}
	}
}
