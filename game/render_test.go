package game

import "testing"

func TestRenderFrame(t *testing.T) {
	r := newRig(t, DefaultTuning())
	r.start(t)
	g := r.g

	presents := r.disp.presents
	g.render()
	if r.disp.presents != presents+1 {
		t.Error("Expected one present per frame")
	}

	// 21 aliens, the tank and three bases
	if len(r.disp.bitmaps) != TotalAliens+1+NumBases {
		t.Errorf("Expected %d bitmaps, got %d", TotalAliens+1+NumBases, len(r.disp.bitmaps))
	}
	if len(r.disp.texts) != 2 {
		t.Fatalf("Expected score and lives, got %+v", r.disp.texts)
	}
	if r.disp.texts[0] != (drawnText{0, 5, "0"}) {
		t.Errorf("Expected score at the left, got %+v", r.disp.texts[0])
	}
	if r.disp.texts[1] != (drawnText{livesX, 5, "3"}) {
		t.Errorf("Expected lives at the right, got %+v", r.disp.texts[1])
	}
}

func TestRenderBonusReplacesHeader(t *testing.T) {
	r := newRig(t, DefaultTuning())
	r.start(t)
	g := r.g
	g.bonus = 150
	g.bonusX = 40
	g.bonusCounter = bonusDisplay

	g.render()
	if len(r.disp.texts) != 1 || r.disp.texts[0] != (drawnText{40, 5, "150"}) {
		t.Errorf("Expected bonus text only, got %+v", r.disp.texts)
	}
	if g.bonusCounter != bonusDisplay-1 {
		t.Errorf("Expected counter %d, got %d", bonusDisplay-1, g.bonusCounter)
	}
}

func TestRenderAlienExplosion(t *testing.T) {
	r := newRig(t, DefaultTuning())
	r.start(t)
	g := r.g
	g.aliens[2][1].Status = Exploding
	g.aliens[2][1].Explosion = alienExplosion

	g.render()
	if r.sound.tones[len(r.sound.tones)-1] != (tone{600, 100}) {
		t.Errorf("Expected explosion tone 600Hz, got %v", r.sound.tones)
	}
	for i := 1; i < alienExplosion; i++ {
		g.render()
	}
	if g.aliens[2][1].Status != Destroyed {
		t.Errorf("Expected alien destroyed after %d frames, got %v", alienExplosion, g.aliens[2][1].Status)
	}
}

func TestRenderMotherShipFragmentsSpanShip(t *testing.T) {
	r := newRig(t, DefaultTuning())
	r.start(t)
	g := r.g
	g.mother.X = 50
	g.mother.Y = 8
	g.mother.Status = Exploding
	g.mother.Explosion = alienExplosion

	g.render()
	var xs []int
	for _, b := range r.disp.bitmaps {
		if b.y == 8 && b.h == MotherShipHeight && b.x >= 50 && b.x < 50+MotherShipWidth {
			xs = append(xs, b.x)
		}
	}
	if len(xs) != MotherShipWidth/2 {
		t.Fatalf("Expected %d fragments, got %v", MotherShipWidth/2, xs)
	}
	if xs[len(xs)-1] != 50+MotherShipWidth-2 {
		t.Errorf("Expected last fragment at %d, got %d", 50+MotherShipWidth-2, xs[len(xs)-1])
	}
}

func TestRenderBombExplosionLastsOneFrame(t *testing.T) {
	r := newRig(t, DefaultTuning())
	r.start(t)
	g := r.g
	g.bombs[1] = Object{X: 30, Y: 20, Status: Exploding}

	g.render()
	found := false
	for _, b := range r.disp.bitmaps {
		if b == (drawnBitmap{26, 20, 4, 8}) {
			found = true
		}
	}
	if !found {
		t.Error("Expected bomb explosion drawn left of the bomb")
	}
	if g.bombs[1].Status != Destroyed {
		t.Error("Expected bomb destroyed after its explosion frame")
	}
}

func TestRenderTankExplosion(t *testing.T) {
	r := newRig(t, DefaultTuning())
	r.start(t)
	g := r.g
	g.playerHit()

	for i := 1; i < playerExplosion; i++ {
		g.render()
		if g.player.Status != Exploding {
			t.Fatalf("Tank finished exploding after %d frames", i)
		}
	}
	g.render()
	if g.player.Status != Destroyed || !g.lifeLost {
		t.Error("Expected life lost after the explosion")
	}
}

func TestTickLosesLifeAfterExplosion(t *testing.T) {
	r := newRig(t, DefaultTuning())
	r.start(t)
	g := r.g
	g.playerHit()
	g.player.Explosion = 1
	g.bombs[0] = Object{X: 50, Y: 30, Status: Active}
	r.clock.slept = nil

	g.Tick()

	if g.player.Lives != 2 {
		t.Errorf("Expected 2 lives, got %d", g.player.Lives)
	}
	if g.player.Status != Active || g.player.X != PlayerStartX {
		t.Errorf("Expected tank back at the start, got %+v", g.player.Object)
	}
	if g.bombs[0].Status != Destroyed {
		t.Error("Expected bombs cleared after a lost life")
	}
	if len(r.clock.slept) != 2 || r.clock.slept[0] != 500 || r.clock.slept[1] != 2000 {
		t.Errorf("Expected death pause then status hold, got %v", r.clock.slept)
	}
	if !r.disp.hasText("Lives 2") {
		t.Errorf("Expected status screen, got %+v", r.disp.texts)
	}
}
