package game

import "sdrbox/core"

// Mothership bonus table, picked at random on a hit
var motherShipBonus = [4]uint32{50, 100, 150, 300}

const smallShipExtra = 100

// checkCollisions resolves every contact of the current tick
func (g *Game) checkCollisions() {
	if g.missileVsAliens() {
		return
	}
	g.motherShipVsMissile()
	g.missileVsBases()
	g.bombCollisions()
	g.aliensVsBases()
}

func (g *Game) missileBox() Box {
	return g.missile.Box(MissileWidth, MissileHeight)
}

func (g *Game) playerBox() Box {
	return g.player.Box(TankWidth, TankHeight)
}

// missileVsAliens scores missile hits and checks whether the formation
// reached the tank. It reports true when the wave was cleared and a new
// level has started.
func (g *Game) missileVsAliens() bool {
	for col := range g.aliens {
		for row := range g.aliens[col] {
			a := &g.aliens[col][row]
			if a.Status != Active {
				continue
			}
			box := a.Box(a.Width(), AlienHeight)

			if g.missile.Status == Active && Overlap(g.missileBox(), box) {
				a.Status = Exploding
				a.Explosion = alienExplosion
				g.missile.Status = Destroyed
				g.player.Score += alienPoints[a.Row]
				g.sound.Tone(700, 100)
				if g.alienKilled() {
					return true
				}
				continue
			}

			if Overlap(g.playerBox(), box) || a.Y+AlienHeight > ScreenHeight {
				g.playerHit()
			}
		}
	}
	return false
}

// alienKilled speeds up the formation after a kill and starts the next
// level once the wave is gone
func (g *Game) alienKilled() bool {
	g.player.Killed++
	g.player.AlienSpeed = g.levelBaseline() * (TotalAliens - g.player.Killed) / TotalAliens

	dir := 1
	if g.stepDX < 0 {
		dir = -1
	}
	switch g.player.Killed {
	case TotalAliens - 2:
		g.stepDX = dir * 2 * g.tune.AlienStep
	case TotalAliens - 1:
		g.stepDX = dir * 4 * g.tune.AlienStep
	case TotalAliens:
		g.advanceLevel()
		return true
	}
	return false
}

func (g *Game) motherShipVsMissile() {
	m := &g.mother
	if m.Status != Active || g.missile.Status != Active {
		return
	}
	if !Overlap(g.missileBox(), m.Box(MotherShipWidth, MotherShipHeight)) {
		return
	}

	m.Status = Exploding
	m.Explosion = alienExplosion
	g.missile.Status = Destroyed

	bonus := motherShipBonus[g.rnd.Below(uint32(len(motherShipBonus)))]
	if m.Small {
		bonus += smallShipExtra
	}
	g.player.Score += bonus
	g.bonus = bonus

	x := m.X
	if x < 0 {
		x = 0
	}
	if x > ScreenWidth-28 {
		x = ScreenWidth - 28
	}
	g.bonusX = x
	g.bonusCounter = bonusDisplay
	core.RecordEvent(core.EvtBonus, bonus, uint32(x))
}

// missileVsBases lets the missile eat upward through a base, starting
// from the bottom row
func (g *Game) missileVsBases() {
	for i := range g.bases {
		b := &g.bases[i]
		if g.missile.Status != Active {
			return
		}
		if !Overlap(g.missileBox(), b.Box(BaseWidth, BaseHeight)) {
			continue
		}
		pair := pairAt(g.missile.X - b.X)
		top := g.missile.Y - b.Y
		if top < 0 {
			top = 0
		}
		for row := BaseHeight - 1; row >= top && g.missile.Status == Active; row-- {
			if !b.Grid.Has(row, PairMask(pair)) {
				continue
			}
			if g.erode(b, row, pair) {
				g.missile.Status = Destroyed
			}
		}
	}
}

func (g *Game) bombCollisions() {
	for i := range g.bombs {
		bomb := &g.bombs[i]
		if bomb.Status != Active {
			continue
		}
		if bomb.Y > ScreenHeight {
			bomb.Status = Destroyed
			continue
		}

		box := bomb.Box(BombWidth, BombHeight)
		if g.missile.Status == Active && Overlap(g.missileBox(), box) {
			bomb.Status = Exploding
			g.missile.Status = Destroyed
			continue
		}
		if Overlap(g.playerBox(), box) {
			g.playerHit()
			bomb.Status = Destroyed
			continue
		}
		g.bombVsBases(bomb, box)
	}
}

// bombVsBases lets a bomb eat downward through a base from the top row
func (g *Game) bombVsBases(bomb *Object, box Box) {
	for i := range g.bases {
		b := &g.bases[i]
		if bomb.Status != Active {
			return
		}
		if !Overlap(box, b.Box(BaseWidth, BaseHeight)) {
			continue
		}
		pair := pairAt(bomb.X - b.X)
		bottom := bomb.Y + BombHeight - b.Y
		for row := 0; row <= bottom && row < BaseHeight && bomb.Status == Active; row++ {
			if !b.Grid.Has(row, PairMask(pair)) {
				continue
			}
			if g.erode(b, row, pair) {
				bomb.Status = Exploding
			}
		}
	}
}

// aliensVsBases flattens whatever part of a base an alien walks through
func (g *Game) aliensVsBases() {
	for col := range g.aliens {
		for row := range g.aliens[col] {
			a := &g.aliens[col][row]
			if a.Status != Active {
				continue
			}
			for i := range g.bases {
				b := &g.bases[i]
				depth := a.Y + AlienHeight - b.Y
				if depth <= 0 || a.Y >= b.Y+BaseHeight {
					continue
				}
				if depth > BaseHeight-1 {
					depth = BaseHeight - 1
				}
				mask := overlapMask(a.X, a.Width(), b.X)
				if mask == 0 {
					continue
				}
				for r := 0; r <= depth; r++ {
					b.Grid.ClearBits(r, mask)
				}
			}
		}
	}
}

// overlapMask returns the grid bits covered by the span [x, x+w) for a
// base whose left edge is at baseX
func overlapMask(x, w, baseX int) uint16 {
	lo := x - baseX
	hi := lo + w
	if lo < 0 {
		lo = 0
	}
	if hi > BaseWidth {
		hi = BaseWidth
	}
	if lo >= hi {
		return 0
	}
	return uint16((uint32(1)<<uint(hi) - 1) &^ (uint32(1)<<uint(lo) - 1))
}

// pairAt maps an x offset into a base to its column pair
func pairAt(dx int) int {
	p := dx >> 1
	if p < 0 {
		return 0
	}
	if p >= Pairs {
		return Pairs - 1
	}
	return p
}

// erode knocks out a pair and maybe its neighbours. It reports whether
// the projectile stops here.
func (g *Game) erode(b *Base, row, pair int) bool {
	b.Grid.ClearBits(row, PairMask(pair))
	if pair > 0 && g.rnd.Below(uint32(g.tune.ErodeChance)) != 0 {
		b.Grid.ClearBits(row, PairMask(pair-1))
	}
	if pair < Pairs-1 && g.rnd.Below(uint32(g.tune.ErodeChance)) != 0 {
		b.Grid.ClearBits(row, PairMask(pair+1))
	}
	return g.rnd.Below(uint32(g.tune.PenetrateChance)) == 0
}

func (g *Game) playerHit() {
	if g.player.Status != Active {
		return
	}
	g.player.Status = Exploding
	g.player.Explosion = playerExplosion
	g.missile.Status = Destroyed
}
