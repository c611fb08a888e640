package game

import "testing"

type drawnText struct {
	x, y int
	text string
}

type drawnBitmap struct {
	x, y, w, h int
}

// fakeDisplay records one frame of drawing calls
type fakeDisplay struct {
	texts    []drawnText
	bitmaps  []drawnBitmap
	clears   int
	presents int
}

func (d *fakeDisplay) Clear() {
	d.clears++
	d.texts = d.texts[:0]
	d.bitmaps = d.bitmaps[:0]
}

func (d *fakeDisplay) DrawBitmap(x, y, w, h int, xbm []byte) {
	d.bitmaps = append(d.bitmaps, drawnBitmap{x, y, w, h})
}

func (d *fakeDisplay) DrawText(x, y int, text string) {
	d.texts = append(d.texts, drawnText{x, y, text})
}

func (d *fakeDisplay) TextWidth(text string) int { return 4 * len(text) }
func (d *fakeDisplay) LineHeight() int           { return 6 }
func (d *fakeDisplay) Ascent() int               { return 5 }
func (d *fakeDisplay) Present()                  { d.presents++ }

func (d *fakeDisplay) hasText(text string) bool {
	for _, t := range d.texts {
		if t.text == text {
			return true
		}
	}
	return false
}

type fakeInput struct {
	fire, left, right, combo bool
}

func (in *fakeInput) FirePressed() bool    { return in.fire }
func (in *fakeInput) LeftPressed() bool    { return in.left }
func (in *fakeInput) RightPressed() bool   { return in.right }
func (in *fakeInput) ResetComboHeld() bool { return in.combo }

// scriptedRandom replays queued values and then answers n-1, which
// never triggers a "1 in N" event
type scriptedRandom struct {
	queue []uint32
}

func (r *scriptedRandom) Below(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	if len(r.queue) > 0 {
		v := r.queue[0]
		r.queue = r.queue[1:]
		return v % n
	}
	return n - 1
}

type fakeClock struct {
	slept []uint32
}

func (c *fakeClock) Sleep(ms uint32) { c.slept = append(c.slept, ms) }

func (c *fakeClock) sleptFor(ms uint32) bool {
	for _, s := range c.slept {
		if s == ms {
			return true
		}
	}
	return false
}

type memStore struct {
	score   uint32
	saves   []uint32
	loadErr error
}

func (s *memStore) Load() (uint32, error) { return s.score, s.loadErr }

func (s *memStore) Save(score uint32) error {
	s.score = score
	s.saves = append(s.saves, score)
	return nil
}

type tone struct{ hz, ms uint32 }

type fakeSound struct {
	tones  []tone
	quiets int
}

func (s *fakeSound) Tone(hz, ms uint32) { s.tones = append(s.tones, tone{hz, ms}) }
func (s *fakeSound) Quiet()             { s.quiets++ }

type rig struct {
	g     *Game
	disp  *fakeDisplay
	input *fakeInput
	rnd   *scriptedRandom
	clock *fakeClock
	store *memStore
	sound *fakeSound
}

func newRig(t *testing.T, tune Tuning) *rig {
	t.Helper()
	r := &rig{
		disp:  &fakeDisplay{},
		input: &fakeInput{},
		rnd:   &scriptedRandom{},
		clock: &fakeClock{},
		store: &memStore{},
		sound: &fakeSound{},
	}
	r.g = New(tune, Peripherals{
		Display: r.disp,
		Input:   r.input,
		Random:  r.rnd,
		Clock:   r.clock,
		Store:   r.store,
		Sound:   r.sound,
	})
	r.g.Init()
	return r
}

// start presses fire on the attract screen and releases it
func (r *rig) start(t *testing.T) {
	t.Helper()
	r.input.fire = true
	r.g.Tick()
	r.input.fire = false
	if !r.g.inPlay {
		t.Fatal("Expected game to be in play after pressing fire")
	}
}

// clearFormation destroys every alien
func (r *rig) clearFormation() {
	for col := range r.g.aliens {
		for row := range r.g.aliens[col] {
			r.g.aliens[col][row].Status = Destroyed
		}
	}
}
