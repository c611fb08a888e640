package device

import "sdrbox/tinycompress"

// Snapshotter returns the last presented frame in SSD1306 page order
type Snapshotter interface {
	Snapshot() []byte
}

const (
	screenshotBlock = 256
	// ScreenshotChunk is the most stream bytes sent per response
	ScreenshotChunk = 40
)

// Screenshot holds one compressed frame for the console to pull in chunks
type Screenshot struct {
	src    Snapshotter
	stream *tinycompress.Stream
	data   []byte
}

// NewScreenshot creates an empty screenshot buffer for src
func NewScreenshot(src Snapshotter) *Screenshot {
	return &Screenshot{
		src:    src,
		stream: tinycompress.NewStream(),
		data:   make([]byte, 0, 1100),
	}
}

// Capture compresses the current frame into a zlib stream and returns
// its length
func (s *Screenshot) Capture() uint32 {
	frame := s.src.Snapshot()
	s.stream.Reset()
	s.data = s.data[:0]
	if len(frame) == 0 {
		s.data = append(s.data, s.stream.WriteBlock(nil, true)...)
		return uint32(len(s.data))
	}
	for off := 0; off < len(frame); off += screenshotBlock {
		end := off + screenshotBlock
		if end > len(frame) {
			end = len(frame)
		}
		s.data = append(s.data, s.stream.WriteBlock(frame[off:end], end == len(frame))...)
	}
	return uint32(len(s.data))
}

// Len returns the length of the captured stream
func (s *Screenshot) Len() uint32 {
	return uint32(len(s.data))
}

// Chunk returns up to count bytes of the captured stream from offset.
// The slice aliases the capture and is valid until the next Capture.
func (s *Screenshot) Chunk(offset uint32, count uint8) []byte {
	if count > ScreenshotChunk {
		count = ScreenshotChunk
	}
	if offset >= uint32(len(s.data)) {
		return nil
	}
	end := offset + uint32(count)
	if end > uint32(len(s.data)) {
		end = uint32(len(s.data))
	}
	return s.data[offset:end]
}
