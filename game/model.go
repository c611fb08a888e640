package game

// Screen geometry
const (
	ScreenWidth  = 128
	ScreenHeight = 64
)

// Formation and pools. These size fixed arrays, so they are not tunable.
const (
	Columns     = 7
	Rows        = 3
	TotalAliens = Columns * Rows
	MaxBombs    = 3
	NumBases    = 3

	AlienHeight    = 8
	alienXStart    = 6
	columnPitch    = 11 + 5 // widest alien plus gap
	rowPitch       = 9
	alienExplosion = 7

	MotherShipWidth  = 16
	MotherShipHeight = 4
	bonusDisplay     = 20

	TankWidth       = 13
	TankHeight      = 8
	PlayerStartX    = 0
	PlayerStartY    = 56
	playerExplosion = 10

	MissileWidth  = 1
	MissileHeight = 4
	BombWidth     = 2
	BombHeight    = 4

	BaseWidth  = 16
	BaseHeight = 8
	BaseY      = 46
)

// Per-row sprite width and score, top row first
var (
	alienWidth  = [Rows]int{8, 11, 12}
	alienPoints = [Rows]uint32{30, 20, 10}
)

// Status is the life-cycle state of a pooled object
type Status uint8

const (
	Active Status = iota
	Exploding
	Destroyed
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Exploding:
		return "exploding"
	default:
		return "destroyed"
	}
}

// Object is the position and state shared by every actor
type Object struct {
	X, Y   int
	Status Status
}

// Box returns the object's bounding box for the given size
func (o Object) Box(w, h int) Box {
	return Box{X: o.X, Y: o.Y, W: w, H: h}
}

// Alien is one slot of the formation
type Alien struct {
	Object
	Row       int // 0 top, 2 bottom
	Explosion int // frames left
}

// Width returns the sprite width for the alien's row
func (a *Alien) Width() int {
	return alienWidth[a.Row]
}

// MotherShip flies across the top row
type MotherShip struct {
	Object
	Small     bool
	Speed     int // signed pixels per tick
	Explosion int
}

// Base is a destructible shield
type Base struct {
	Object
	Grid BaseGrid
}

// Player holds the tank and the session counters
type Player struct {
	Object
	Score      uint32
	Lives      int
	Level      int
	Killed     int // aliens destroyed this level
	AlienSpeed int // ticks between formation steps
	Explosion  int
}
