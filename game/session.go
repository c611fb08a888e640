// Package game is a small Space Invaders for a 128x64 monochrome display:
// a 7x3 alien formation, a mothership, three destructible bases and one
// tank. The engine is tick driven, allocates nothing while playing, and
// talks to hardware only through the interfaces in collab.go.
package game

import "sdrbox/core"

// Game is one game session and all of its actors
type Game struct {
	tune  Tuning
	disp  Display
	input Input
	steer Steerer
	combo ResetCombo
	rnd   Random
	clock Clock
	store ScoreStore
	sound Sounder

	aliens  [Columns][Rows]Alien
	mother  MotherShip
	bombs   [MaxBombs]Object
	bases   [NumBases]Base
	player  Player
	missile Object

	stepDX    int  // signed formation step
	moveTimer int  // counts down to the next formation step
	animFrame bool // flipped on every step
	musicIdx  int

	bonus        uint32
	bonusX       int
	bonusCounter int

	inPlay    bool
	hiScore   uint32
	lifeLost  bool // tank explosion finished this frame
	scoreText numText
	livesText numText
	bonusText numText
}

// New creates a game. Call Init before the first Tick.
func New(t Tuning, p Peripherals) *Game {
	g := &Game{
		tune:  t.WithDefaults(),
		disp:  p.Display,
		input: p.Input,
		rnd:   p.Random,
		clock: p.Clock,
		store: p.Store,
		sound: p.Sound,
	}
	if g.sound == nil {
		g.sound = silence{}
	}
	if s, ok := p.Input.(Steerer); ok {
		g.steer = s
	}
	if c, ok := p.Input.(ResetCombo); ok {
		g.combo = c
	}
	g.missile.Status = Destroyed
	for i := range g.bombs {
		g.bombs[i].Status = Destroyed
	}
	return g
}

// Init is the entry action of the game mode: it loads the high score,
// parks the formation at the top and shows the attract screen next tick.
func (g *Game) Init() {
	if g.store != nil {
		hi, err := g.store.Load()
		if err != nil {
			core.DebugPrintln("[GAME] high score load failed: " + err.Error())
		} else {
			g.hiScore = hi
		}
	}
	g.initAliens(0)
	g.initPlayer()
	g.inPlay = false
	g.lifeLost = false
	g.bonusCounter = 0
	g.sound.Quiet()
}

// Tick advances the game by one frame: physics and collisions, then a
// full redraw. Outside play it shows the attract screen.
func (g *Game) Tick() {
	if !g.inPlay {
		g.attractScreen()
		return
	}
	g.physics()
	g.render()
	if g.lifeLost {
		g.lifeLost = false
		g.clock.Sleep(uint32(g.tune.DeathPauseMs))
		g.loseLife()
	}
}

// ResetHighScore clears the stored high score
func (g *Game) ResetHighScore() {
	g.hiScore = 0
	g.saveHighScore()
	core.DebugPrintln("[GAME] high score reset")
}

// State is a read-only summary for status queries
type State struct {
	InPlay    bool
	Score     uint32
	HighScore uint32
	Lives     int
	Level     int
	Killed    int
}

// State returns the current counters
func (g *Game) State() State {
	return State{
		InPlay:    g.inPlay,
		Score:     g.player.Score,
		HighScore: g.hiScore,
		Lives:     g.player.Lives,
		Level:     g.player.Level,
		Killed:    g.player.Killed,
	}
}

func (g *Game) attractScreen() {
	g.disp.Clear()
	lh := g.disp.LineHeight()
	y := g.menuTop(4)
	g.centerText("Play", y)
	g.centerText("Space Invaders", y+lh)
	g.centerText("Press Fire to start", y+2*lh)
	g.centerText("Hi Score "+core.Utoa(g.hiScore), y+3*lh)
	g.disp.Present()

	if g.combo != nil && g.combo.ResetComboHeld() {
		g.ResetHighScore()
		return
	}
	if g.input.FirePressed() {
		g.inPlay = true
		g.startNewGame()
	}
}

func (g *Game) startNewGame() {
	g.initPlayer()
	g.player.Score = 0
	g.player.Level = 0
	g.advanceLevel()
}

func (g *Game) initPlayer() {
	g.player.X = PlayerStartX
	g.player.Y = PlayerStartY
	g.player.Status = Active
	g.player.Lives = g.tune.Lives
	g.player.Level = 0
	g.player.Score = 0
	g.missile.Status = Destroyed
}

func (g *Game) initAliens(yStart int) {
	for col := range g.aliens {
		for row := range g.aliens[col] {
			a := &g.aliens[col][row]
			a.Row = row
			a.X = alienXStart + col*columnPitch - alienWidth[row]/2
			a.Y = yStart + row*rowPitch
			a.Status = Active
			a.Explosion = alienExplosion
		}
	}
	g.mother.Y = 0
	g.mother.X = -MotherShipWidth
	g.mother.Status = Destroyed
}

func (g *Game) initBases() {
	spacing := (ScreenWidth - NumBases*BaseWidth) / NumBases
	grid := GridFromXBM(baseGfx)
	for i := range g.bases {
		b := &g.bases[i]
		b.X = i*spacing + i*BaseWidth + spacing/2
		b.Y = BaseY
		b.Status = Active
		b.Grid = grid
	}
}

// levelBaseline is the formation delay at the start of the current
// level. It never drops below TotalAliens, which keeps every kill a
// strict speed-up.
func (g *Game) levelBaseline() int {
	level := g.player.Level
	if level < 1 {
		level = 1
	}
	base := g.tune.AlienSpeed - (level-1)*g.tune.LevelSpeedup
	if base < TotalAliens {
		base = TotalAliens
	}
	return base
}

func (g *Game) advanceLevel() {
	for i := range g.bombs {
		g.bombs[i].Status = Destroyed
	}
	g.animFrame = false
	g.player.Level++

	yStart := ((g.player.Level - 1) % g.tune.LevelDropWrap) * g.tune.LevelDrop
	g.initAliens(yStart)
	g.stepDX = g.tune.AlienStep
	g.player.AlienSpeed = g.levelBaseline()
	g.moveTimer = 0
	g.player.Killed = 0
	g.missile.Status = Destroyed
	g.bonusCounter = 0
	g.initBases()
	g.musicIdx = 0

	core.RecordEvent(core.EvtLevelStart, uint32(g.player.Level), g.player.Score)
	core.DebugPrintln("[GAME] level " + core.Itoa(g.player.Level))
	g.statusScreen()
}

// statusScreen shows the session counters and holds them on screen
func (g *Game) statusScreen() {
	g.disp.Clear()
	lh := g.disp.LineHeight()
	y := g.menuTop(4)
	g.centerText("Player 1", y)
	g.centerText("Score "+core.Utoa(g.player.Score), y+lh)
	g.centerText("Lives "+core.Itoa(g.player.Lives), y+2*lh)
	g.centerText("Level "+core.Itoa(g.player.Level), y+3*lh)
	g.disp.Present()
	g.clock.Sleep(uint32(g.tune.StatusHoldMs))
	g.player.X = PlayerStartX
}

func (g *Game) loseLife() {
	if g.player.Lives > 0 {
		g.player.Lives--
	}
	core.RecordEvent(core.EvtLifeLost, uint32(g.player.Lives), g.player.Score)

	if g.player.Lives == 0 {
		g.gameOver()
		return
	}

	g.statusScreen()
	for i := range g.bombs {
		g.bombs[i].Status = Destroyed
		g.bombs[i].Y = 0
	}
	g.player.Status = Active
	g.player.X = PlayerStartX
}

func (g *Game) gameOver() {
	g.inPlay = false
	newHigh := g.player.Score > g.hiScore

	g.disp.Clear()
	lh := g.disp.LineHeight()
	y := g.menuTop(4)
	if newHigh {
		y = g.disp.Ascent()
	}
	g.centerText("Player 1", y)
	g.centerText("Game Over", y+lh)
	g.centerText("Score "+core.Utoa(g.player.Score), y+2*lh)
	if newHigh {
		g.centerText("NEW HIGH SCORE!!!", y+3*lh)
		g.centerText("**CONGRATULATIONS**", y+4*lh)
	}
	g.disp.Present()

	core.RecordEvent(core.EvtGameOver, g.player.Score, g.hiScore)
	core.DebugPrintln("[GAME] game over, score " + core.Utoa(g.player.Score))

	if newHigh {
		g.hiScore = g.player.Score
		g.saveHighScore()
		core.RecordEvent(core.EvtHighScore, g.hiScore, 0)
		g.playReward()
	}
	g.clock.Sleep(uint32(g.tune.GameOverHoldMs))
}

func (g *Game) saveHighScore() {
	if g.store == nil {
		return
	}
	if err := g.store.Save(g.hiScore); err != nil {
		core.DebugPrintln("[GAME] high score save failed: " + err.Error())
	}
}

func (g *Game) playReward() {
	for i, hz := range rewardNotes {
		g.sound.Tone(hz, 0)
		g.clock.Sleep(rewardDurations[i])
		g.sound.Quiet()
		g.clock.Sleep(20)
	}
	g.sound.Quiet()
}
