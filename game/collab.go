package game

// Display is the monochrome surface the game draws on. Coordinates are
// pixels; text is placed by its baseline.
type Display interface {
	Clear()
	DrawBitmap(x, y, w, h int, xbm []byte)
	DrawText(x, y int, text string)
	TextWidth(text string) int
	LineHeight() int
	Ascent() int
	Present()
}

// Input is the level-sensed fire button
type Input interface {
	FirePressed() bool
}

// Steerer is implemented by inputs that can move the tank
type Steerer interface {
	LeftPressed() bool
	RightPressed() bool
}

// ResetCombo is implemented by inputs with a high score reset chord
type ResetCombo interface {
	ResetComboHeld() bool
}

// Random returns uniform values in [0, n)
type Random interface {
	Below(n uint32) uint32
}

// Clock provides the blocking delays used for pacing
type Clock interface {
	Sleep(ms uint32)
}

// ScoreStore keeps the high score. Failures are tolerated.
type ScoreStore interface {
	Load() (uint32, error)
	Save(score uint32) error
}

// Sounder plays tones in the background. Tone with hz 0 is a rest;
// ms 0 holds the tone until Quiet.
type Sounder interface {
	Tone(hz, ms uint32)
	Quiet()
}

// Peripherals are the collaborators a Game runs against. Store and
// Sound may be nil.
type Peripherals struct {
	Display Display
	Input   Input
	Random  Random
	Clock   Clock
	Store   ScoreStore
	Sound   Sounder
}

type silence struct{}

func (silence) Tone(hz, ms uint32) {}
func (silence) Quiet()             {}
