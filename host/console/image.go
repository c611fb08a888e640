package console

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"sdrbox/display"
)

// EncodeScreenshot writes a page-ordered frame as PNG or BMP, chosen by
// format ("png" or "bmp")
func EncodeScreenshot(w io.Writer, format string, frame []byte, scale int) error {
	if len(frame) != display.BufferSize {
		return fmt.Errorf("frame is %d bytes, expected %d", len(frame), display.BufferSize)
	}
	var img image.Image = display.Image(frame, scale)
	switch format {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}

// SaveScreenshot writes the frame to path; the extension picks the format
func SaveScreenshot(path string, frame []byte, scale int) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeScreenshot(f, format, frame, scale); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
