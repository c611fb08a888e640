package game

// physics moves everything by one tick. The world is frozen while the
// tank is exploding.
func (g *Game) physics() {
	if g.player.Status != Active {
		return
	}
	g.alienControl()
	g.motherShipPhysics()
	g.playerControl()
	g.missileControl()
	g.checkCollisions()
}

// alienControl steps the formation when its timer runs out, then spawns
// and moves bombs.
func (g *Game) alienControl() {
	c := g.moveTimer
	g.moveTimer--
	if c < 0 {
		g.stepFormation()
		g.moveTimer = g.player.AlienSpeed
		g.animFrame = !g.animFrame
	}

	if g.rnd.Below(uint32(g.tune.BombChance)) == 0 {
		g.dropBomb()
	}
	for i := range g.bombs {
		if g.bombs[i].Status == Active {
			g.bombs[i].Y += g.tune.BombSpeed
		}
	}
}

// stepFormation moves every active alien by stepDX, or, when that would
// cross a screen edge, reverses and drops instead.
func (g *Game) stepFormation() {
	drop := false
	if g.rightmost()+g.stepDX >= ScreenWidth || g.leftmost()+g.stepDX < 0 {
		g.stepDX = -g.stepDX
		drop = true
	}

	if g.mother.Status != Active {
		g.sound.Tone(marchNotes[g.musicIdx], 100)
		g.musicIdx = (g.musicIdx + 1) % len(marchNotes)
	}

	for col := range g.aliens {
		for row := range g.aliens[col] {
			a := &g.aliens[col][row]
			if a.Status != Active {
				continue
			}
			if drop {
				a.Y += g.tune.AlienDrop
			} else {
				a.X += g.stepDX
			}
		}
	}
}

// rightmost returns the right edge of the rightmost active alien
func (g *Game) rightmost() int {
	edge := 0
	for col := range g.aliens {
		for row := range g.aliens[col] {
			a := &g.aliens[col][row]
			if a.Status == Active && a.X+a.Width() > edge {
				edge = a.X + a.Width()
			}
		}
	}
	return edge
}

// leftmost returns the X of the leftmost active alien
func (g *Game) leftmost() int {
	edge := ScreenWidth * 2
	for col := range g.aliens {
		for row := range g.aliens[col] {
			a := &g.aliens[col][row]
			if a.Status == Active && a.X < edge {
				edge = a.X
			}
		}
	}
	if edge == ScreenWidth*2 {
		return 0
	}
	return edge
}

// dropBomb launches a bomb from the lowest alien of a random column that
// still has aliens. Without a free slot nothing happens.
func (g *Game) dropBomb() {
	slot := -1
	for i := range g.bombs {
		if g.bombs[i].Status == Destroyed {
			slot = i
			break
		}
	}
	if slot < 0 {
		return
	}

	var active [Columns]int
	count := 0
	for col := range g.aliens {
		if g.lowestAlien(col) != nil {
			active[count] = col
			count++
		}
	}
	if count == 0 {
		return
	}

	a := g.lowestAlien(active[g.rnd.Below(uint32(count))])
	b := &g.bombs[slot]
	b.Status = Active
	b.X = a.X + a.Width()/2 - 2 + int(g.rnd.Below(4))
	b.Y = a.Y + 4
}

// lowestAlien returns the bottom-most active alien of a column, or nil
func (g *Game) lowestAlien(col int) *Alien {
	for row := Rows - 1; row >= 0; row-- {
		if g.aliens[col][row].Status == Active {
			return &g.aliens[col][row]
		}
	}
	return nil
}

func (g *Game) motherShipPhysics() {
	m := &g.mother
	if m.Status == Active {
		step := m.X % 8
		if step < 0 {
			step += 8
		}
		if m.Small {
			g.sound.Tone(uint32(step)*800, 200)
		} else {
			g.sound.Tone(uint32(step)*500, 200)
		}

		m.X += m.Speed
		if (m.Speed > 0 && m.X >= ScreenWidth) || (m.Speed < 0 && m.X+MotherShipWidth < 0) {
			m.Status = Destroyed
			g.sound.Quiet()
		}
		return
	}

	if m.Status != Destroyed {
		return
	}
	if g.rnd.Below(uint32(g.tune.MotherShipOdds)) != 0 {
		return
	}
	m.Status = Active
	m.Small = g.rnd.Below(2) == 1
	if g.rnd.Below(2) == 1 {
		m.X = ScreenWidth
		m.Speed = -g.tune.MotherShipSpeed
	} else {
		m.X = -MotherShipWidth
		m.Speed = g.tune.MotherShipSpeed
	}
}

func (g *Game) playerControl() {
	if g.steer != nil {
		if g.steer.RightPressed() && g.player.X+TankWidth < ScreenWidth {
			g.player.X += g.tune.PlayerSpeed
		}
		if g.steer.LeftPressed() && g.player.X > 0 {
			g.player.X -= g.tune.PlayerSpeed
		}
		if g.player.X < 0 {
			g.player.X = 0
		}
		if g.player.X > ScreenWidth-TankWidth {
			g.player.X = ScreenWidth - TankWidth
		}
	}

	if g.missile.Status != Active && g.input.FirePressed() {
		g.missile.X = g.player.X + TankWidth/2
		g.missile.Y = PlayerStartY
		g.missile.Status = Active
		g.sound.Tone(600, 200)
	}
}

func (g *Game) missileControl() {
	if g.missile.Status != Active {
		return
	}
	g.missile.Y -= g.tune.MissileSpeed
	if g.missile.Y+MissileHeight < 0 {
		g.missile.Status = Destroyed
	}
}
