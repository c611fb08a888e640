package sim

import (
	"os"
	"sync"

	"github.com/youpy/go-wav"
)

// Sample levels of the 8-bit unsigned output
const (
	levelSilent = 128
	levelHigh   = 200
	levelLow    = 56
)

// Recorder is a game.Sounder that renders the beeper's square wave into
// memory. Time only moves when the simulation clock advances it, so the
// recording matches game time, not wall time.
type Recorder struct {
	mu      sync.Mutex
	rate    uint32
	hz      uint32
	left    uint32 // ms of the current tone still to play
	hold    bool
	pos     uint64 // sample index while a tone plays
	samples []wav.Sample
}

// NewRecorder records at the given sample rate
func NewRecorder(rate uint32) *Recorder {
	if rate == 0 {
		rate = 22050
	}
	return &Recorder{rate: rate}
}

// Tone starts a tone; ms 0 holds it until Quiet
func (r *Recorder) Tone(hz, ms uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hz = hz
	r.left = ms
	r.hold = ms == 0
	r.pos = 0
}

func (r *Recorder) Quiet() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hz = 0
	r.left = 0
	r.hold = false
}

// Advance renders ms milliseconds of output
func (r *Recorder) Advance(ms uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	perMs := r.rate / 1000
	for ; ms > 0; ms-- {
		playing := r.hz > 0 && (r.hold || r.left > 0)
		for i := uint32(0); i < perMs; i++ {
			var s wav.Sample
			s.Values[0] = levelSilent
			if playing {
				// Two level changes per period
				if (r.pos*2*uint64(r.hz)/uint64(r.rate))%2 == 0 {
					s.Values[0] = levelHigh
				} else {
					s.Values[0] = levelLow
				}
				r.pos++
			}
			r.samples = append(r.samples, s)
		}
		if !r.hold && r.left > 0 {
			r.left--
		}
	}
}

// Len returns the number of recorded samples
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.samples)
}

// Save writes the recording as a mono 8-bit WAV file
func (r *Recorder) Save(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := wav.NewWriter(f, uint32(len(r.samples)), 1, r.rate, 8)
	if err := enc.WriteSamples(r.samples); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
