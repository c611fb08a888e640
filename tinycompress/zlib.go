// Package tinycompress writes zlib streams made of stored DEFLATE blocks.
// It needs no compression tables, so it runs on the microcontroller
// without the memory compress/flate would take, and any zlib reader on
// the host can inflate the result.
package tinycompress

import (
	"errors"
	"hash"
	"hash/adler32"
	"io"
)

const (
	// MaxBlock is the largest payload of one stored block
	MaxBlock = 0xFFFF

	zlibCMF = 0x78
	zlibFLG = 0x9C
)

// ErrClosed is returned when writing to a finished stream
var ErrClosed = errors.New("tinycompress: write after close")

// Writer buffers everything written and emits the zlib stream on Close.
type Writer struct {
	output io.Writer
	buf    []byte
	closed bool
}

// NewWriter creates a Writer that emits to w on Close
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		output: w,
		buf:    make([]byte, 0, 2048),
	}
}

// Write implements io.Writer
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	w.buf = append(w.buf, p...)
	return len(p), nil
}

// Close writes header, stored blocks and checksum
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	s := NewStream()
	data := w.buf
	for {
		n := len(data)
		if n > MaxBlock {
			n = MaxBlock
		}
		final := n == len(data)
		if _, err := w.output.Write(s.WriteBlock(data[:n], final)); err != nil {
			return err
		}
		data = data[n:]
		if final {
			return nil
		}
	}
}

// Stream emits a zlib stream one block at a time, for data that is
// produced and sent in pieces.
type Stream struct {
	adler   hash.Hash32
	started bool
	out     []byte
}

// NewStream creates a stream ready for its first block
func NewStream() *Stream {
	return &Stream{adler: adler32.New()}
}

// WriteBlock returns the encoding of one stored block of input, with the
// zlib header on the first call and the Adler-32 trailer when final is
// set. Input longer than MaxBlock is truncated. The returned slice is
// reused by the next call.
func (s *Stream) WriteBlock(input []byte, final bool) []byte {
	if len(input) > MaxBlock {
		input = input[:MaxBlock]
	}
	s.adler.Write(input)

	out := s.out[:0]
	if !s.started {
		out = append(out, zlibCMF, zlibFLG)
		s.started = true
	}

	if final {
		out = append(out, 0x01)
	} else {
		out = append(out, 0x00)
	}
	length := uint16(len(input))
	nlength := ^length
	out = append(out, byte(length), byte(length>>8), byte(nlength), byte(nlength>>8))
	out = append(out, input...)

	if final {
		sum := s.adler.Sum32()
		out = append(out, byte(sum>>24), byte(sum>>16), byte(sum>>8), byte(sum))
	}

	s.out = out
	return out
}

// Reset prepares the stream for a new zlib stream
func (s *Stream) Reset() {
	s.adler.Reset()
	s.started = false
}
