package display

import (
	"errors"
	"testing"

	"sdrbox/core"
)

func litPixels(fb *Framebuffer) int {
	n := 0
	for _, b := range fb.Bytes() {
		for ; b != 0; b &= b - 1 {
			n++
		}
	}
	return n
}

func TestDrawBitmap(t *testing.T) {
	fb := NewFramebuffer()
	s := NewSurface(fb)

	// 10 wide, so two bytes per row; bit 0 of the second byte is column 8
	s.DrawBitmap(4, 2, 10, 2, []byte{0x01, 0x01, 0x80, 0x02})
	fb.Display()

	for _, p := range [][2]int{{4, 2}, {12, 2}, {11, 3}, {13, 3}} {
		if !fb.Pixel(p[0], p[1]) {
			t.Errorf("Expected pixel %v lit", p)
		}
	}
	if litPixels(fb) != 4 {
		t.Errorf("Expected 4 lit pixels, got %d", litPixels(fb))
	}
}

func TestDrawBitmapClips(t *testing.T) {
	fb := NewFramebuffer()
	s := NewSurface(fb)

	s.DrawBitmap(-4, -2, 8, 4, []byte{0xFF, 0xFF, 0xFF, 0xFF})
	if litPixels(fb) != 8 {
		t.Errorf("Expected 8 visible pixels, got %d", litPixels(fb))
	}

	fb.ClearBuffer()
	s.DrawBitmap(0, 0, 8, 8, []byte{0xFF})
	if litPixels(fb) != 8 {
		t.Errorf("Expected short bitmap to stop after its data, got %d", litPixels(fb))
	}
}

func TestText(t *testing.T) {
	fb := NewFramebuffer()
	s := NewSurface(fb)

	if s.LineHeight() <= s.Ascent() {
		t.Errorf("Expected line height above ascent, got %d and %d", s.LineHeight(), s.Ascent())
	}
	w1 := s.TextWidth("8")
	w3 := s.TextWidth("888")
	if w1 <= 0 || w3 != 3*w1 {
		t.Errorf("Expected monospaced widths, got %d and %d", w1, w3)
	}

	s.DrawText(0, 10, "88")
	if litPixels(fb) == 0 {
		t.Fatal("Expected text to light pixels")
	}
	for i := 0; i < Width; i++ {
		// nothing above the glyph box or below the baseline
		for _, y := range []int{0, 11, 20} {
			if fb.Bytes()[i+(y/8)*Width]&(1<<uint(y%8)) != 0 {
				t.Fatalf("Unexpected pixel at (%d,%d)", i, y)
			}
		}
	}
}

func TestClear(t *testing.T) {
	fb := NewFramebuffer()
	s := NewSurface(fb)
	s.DrawBitmap(0, 0, 8, 1, []byte{0xFF})
	s.Clear()
	if litPixels(fb) != 0 {
		t.Error("Expected empty buffer after Clear")
	}
}

func TestLabel(t *testing.T) {
	fb := NewFramebuffer()
	s := NewSurface(fb)
	s.Label("IDLE")

	if fb.Frames() != 1 {
		t.Errorf("Expected one presented frame, got %d", fb.Frames())
	}
	minX, maxX := Width, -1
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if fb.Pixel(x, y) {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
			}
		}
	}
	if maxX < 0 {
		t.Fatal("Expected label pixels")
	}
	left, right := minX, Width-1-maxX
	if d := left - right; d > 4 || d < -4 {
		t.Errorf("Expected centred label, margins %d and %d", left, right)
	}
}

type failingPanel struct {
	*Framebuffer
}

func (failingPanel) Display() error { return errors.New("i2c nack") }

func TestPresentLogsFailure(t *testing.T) {
	var logged []string
	core.SetDebugWriter(func(s string) { logged = append(logged, s) })
	core.SetDebugEnabled(true)
	defer core.SetDebugEnabled(false)

	s := NewSurface(failingPanel{NewFramebuffer()})
	s.Present()

	if s.Errors() != 1 {
		t.Errorf("Expected 1 error, got %d", s.Errors())
	}
	if len(logged) != 1 || logged[0] != "[DISPLAY] flush failed: i2c nack" {
		t.Errorf("Unexpected log %v", logged)
	}
}
