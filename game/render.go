package game

const livesX = ScreenWidth - 7

// render redraws the whole frame and runs the explosion counters
func (g *Game) render() {
	g.disp.Clear()
	g.drawHeader()
	g.drawBombs()
	g.drawAliens()
	g.drawPlayer()
	g.drawMissile()
	g.drawMotherShip()
	g.drawBases()
	g.disp.Present()
}

func (g *Game) drawHeader() {
	y := g.disp.Ascent()
	if g.bonusCounter > 0 {
		g.disp.DrawText(g.bonusX, y, g.bonusText.get(g.bonus))
		g.bonusCounter--
		return
	}
	g.disp.DrawText(0, y, g.scoreText.get(g.player.Score))
	g.disp.DrawText(livesX, y, g.livesText.get(uint32(g.player.Lives)))
}

func (g *Game) drawBombs() {
	for i := range g.bombs {
		b := &g.bombs[i]
		switch b.Status {
		case Active:
			g.disp.DrawBitmap(b.X, b.Y, BombWidth, BombHeight, bombGfx)
		case Exploding:
			g.disp.DrawBitmap(b.X-4, b.Y, 4, 8, explosionGfx)
			b.Status = Destroyed
		}
	}
}

func (g *Game) drawAliens() {
	frame := 1
	if g.animFrame {
		frame = 0
	}
	for col := range g.aliens {
		for row := range g.aliens[col] {
			a := &g.aliens[col][row]
			switch a.Status {
			case Active:
				g.disp.DrawBitmap(a.X, a.Y, a.Width(), AlienHeight, alienGfx[a.Row][frame])
			case Exploding:
				a.Explosion--
				if a.Explosion > 0 {
					g.sound.Tone(uint32(a.Explosion)*100, 100)
					g.disp.DrawBitmap(a.X, a.Y, TankWidth, 8, explosionGfx)
				} else {
					a.Status = Destroyed
				}
			}
		}
	}
}

func (g *Game) drawPlayer() {
	p := &g.player
	switch p.Status {
	case Active:
		g.disp.DrawBitmap(p.X, p.Y, TankWidth, TankHeight, tankGfx)
	case Exploding:
		for i := 0; i < TankWidth; i += 2 {
			w := int(g.rnd.Below(4)) + 2
			g.disp.DrawBitmap(p.X+i, p.Y, w, TankHeight, explosionGfx)
		}
		p.Explosion--
		if p.Explosion <= 0 {
			p.Status = Destroyed
			g.lifeLost = true
		}
	}
}

func (g *Game) drawMissile() {
	if g.missile.Status == Active {
		g.disp.DrawBitmap(g.missile.X, g.missile.Y, MissileWidth, MissileHeight, missileGfx)
	}
}

func (g *Game) drawMotherShip() {
	m := &g.mother
	switch m.Status {
	case Active:
		small := 0
		if m.Small {
			small = 1
		}
		g.disp.DrawBitmap(m.X, m.Y, MotherShipWidth, MotherShipHeight, motherShipGfx[small])
	case Exploding:
		for i := 0; i < MotherShipWidth; i += 2 {
			w := int(g.rnd.Below(4)) + 2
			g.disp.DrawBitmap(m.X+i, m.Y, w, MotherShipHeight, explosionGfx)
		}
		g.sound.Tone(uint32(m.Explosion)*50, 100)
		m.Explosion--
		if m.Explosion <= 0 {
			m.Status = Destroyed
			g.sound.Quiet()
		}
	}
}

func (g *Game) drawBases() {
	var xbm [BaseHeight * 2]byte
	for i := range g.bases {
		b := &g.bases[i]
		if b.Status != Active {
			continue
		}
		b.Grid.XBM(&xbm)
		g.disp.DrawBitmap(b.X, b.Y, BaseWidth, BaseHeight, xbm[:])
	}
}
