// Package display draws the game and the mode labels onto a monochrome
// panel. Surface works with any tinygo drivers.Displayer; Framebuffer is
// an in-memory panel used by the simulator and the tests.
package display

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"sdrbox/core"
)

// Panel is a displayer whose back buffer can be cleared in one call.
// Both ssd1306.Device and Framebuffer satisfy it.
type Panel interface {
	drivers.Displayer
	ClearBuffer()
}

var (
	On  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Off = color.RGBA{A: 0xFF}
)

// TomThumb glyphs sit 5 pixels above the baseline
const tomThumbAscent = 5

// Surface renders XBM bitmaps and TomThumb text
type Surface struct {
	panel  Panel
	font   *tinyfont.Font
	ascent int
	width  int16
	height int16
	errors uint32
}

// NewSurface wraps a panel
func NewSurface(p Panel) *Surface {
	w, h := p.Size()
	return &Surface{
		panel:  p,
		font:   &tinyfont.TomThumb,
		ascent: tomThumbAscent,
		width:  w,
		height: h,
	}
}

// Clear blanks the back buffer
func (s *Surface) Clear() {
	s.panel.ClearBuffer()
}

// DrawBitmap draws the set bits of an XBM image; clear bits are left
// alone. Rows are (w+7)/8 bytes, least significant bit leftmost. Pixels
// outside the panel are clipped.
func (s *Surface) DrawBitmap(x, y, w, h int, xbm []byte) {
	stride := (w + 7) / 8
	for row := 0; row < h; row++ {
		py := y + row
		if py < 0 || py >= int(s.height) {
			continue
		}
		for col := 0; col < w; col++ {
			px := x + col
			if px < 0 || px >= int(s.width) {
				continue
			}
			i := row*stride + col/8
			if i >= len(xbm) {
				return
			}
			if xbm[i]&(1<<uint(col%8)) != 0 {
				s.panel.SetPixel(int16(px), int16(py), On)
			}
		}
	}
}

// DrawText writes text with its baseline at y
func (s *Surface) DrawText(x, y int, text string) {
	tinyfont.WriteLine(s.panel, s.font, int16(x), int16(y), text, On)
}

// TextWidth returns the advance width of text in pixels
func (s *Surface) TextWidth(text string) int {
	_, outbox := tinyfont.LineWidth(s.font, text)
	return int(outbox)
}

func (s *Surface) LineHeight() int {
	return int(s.font.YAdvance)
}

func (s *Surface) Ascent() int {
	return s.ascent
}

// Present pushes the back buffer to the panel. A failed flush is logged
// and the frame is dropped.
func (s *Surface) Present() {
	if err := s.panel.Display(); err != nil {
		s.errors++
		core.DebugPrintln("[DISPLAY] flush failed: " + err.Error())
	}
}

// Errors returns the number of failed flushes
func (s *Surface) Errors() uint32 {
	return s.errors
}

// Label clears the panel and shows one line of text centred on it
func (s *Surface) Label(text string) {
	s.Clear()
	x := (int(s.width) - s.TextWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	y := (int(s.height)+s.ascent)/2 - 1
	s.DrawText(x, y, text)
	s.Present()
}
