package display

import (
	"errors"
	"image/color"
	"sync"
)

const (
	Width  = 128
	Height = 64
	// BufferSize is one bit per pixel in SSD1306 page order
	BufferSize = Width * Height / 8
)

var ErrBufferSize = errors.New("display: buffer is not 128x64")

// Framebuffer is a 128x64 panel kept in memory using the SSD1306 page
// layout: byte x + (y/8)*128, bit y%8. Drawing goes to the back buffer;
// Display copies it to the front buffer, which readers on other
// goroutines may sample at any time.
type Framebuffer struct {
	back [BufferSize]byte

	mu     sync.Mutex
	front  [BufferSize]byte
	frames uint32
}

// NewFramebuffer returns a blank panel
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{}
}

// FromBytes wraps a page-ordered dump, as returned by Snapshot, in a
// Framebuffer whose front and back buffers both hold the image.
func FromBytes(data []byte) (*Framebuffer, error) {
	if len(data) != BufferSize {
		return nil, ErrBufferSize
	}
	fb := &Framebuffer{}
	copy(fb.back[:], data)
	copy(fb.front[:], data)
	return fb, nil
}

func (fb *Framebuffer) Size() (x, y int16) {
	return Width, Height
}

// SetPixel lights the pixel for any non-black colour
func (fb *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	i := int(x) + int(y/8)*Width
	bit := byte(1) << uint(y%8)
	if c.R != 0 || c.G != 0 || c.B != 0 {
		fb.back[i] |= bit
	} else {
		fb.back[i] &^= bit
	}
}

func (fb *Framebuffer) ClearBuffer() {
	fb.back = [BufferSize]byte{}
}

// Display publishes the back buffer
func (fb *Framebuffer) Display() error {
	fb.mu.Lock()
	fb.front = fb.back
	fb.frames++
	fb.mu.Unlock()
	return nil
}

// Bytes returns the back buffer in place, the way ssd1306.Device.GetBuffer does
func (fb *Framebuffer) Bytes() []byte {
	return fb.back[:]
}

// Snapshot returns a copy of the last presented frame
func (fb *Framebuffer) Snapshot() []byte {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	out := make([]byte, BufferSize)
	copy(out, fb.front[:])
	return out
}

// Frames returns how many times Display has been called
func (fb *Framebuffer) Frames() uint32 {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.frames
}

// Pixel reports whether a pixel of the presented frame is lit
func (fb *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return pagePixel(fb.front[:], x, y)
}

func pagePixel(buf []byte, x, y int) bool {
	return buf[x+(y/8)*Width]&(1<<uint(y%8)) != 0
}
