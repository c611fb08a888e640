package display

import (
	"image"
	"image/color"
	"strings"
)

// Image converts a page-ordered dump into a grayscale image scaled by an
// integer factor
func Image(page []byte, scale int) *image.Gray {
	if scale < 1 {
		scale = 1
	}
	img := image.NewGray(image.Rect(0, 0, Width*scale, Height*scale))
	if len(page) != BufferSize {
		return img
	}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if !pagePixel(page, x, y) {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetGray(x*scale+dx, y*scale+dy, color.Gray{Y: 0xFF})
				}
			}
		}
	}
	return img
}

// Text renders a page-ordered dump as ASCII art, '#' for lit pixels
func Text(page []byte) string {
	if len(page) != BufferSize {
		return ""
	}
	var b strings.Builder
	b.Grow((Width + 1) * Height)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if pagePixel(page, x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
