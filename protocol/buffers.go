package protocol

// InputBuffer is the receive side seen by a transport: it parses what
// Data holds and pops what it consumed
type InputBuffer interface {
	Data() []byte
	Available() int
	Pop(n int)
}

// OutputBuffer is the send side. Frames are written in place, then the
// length byte is patched once the payload is known.
type OutputBuffer interface {
	Output(data []byte)
	CurPosition() int
	Update(pos int, val byte)
	DataSince(pos int) []byte
}

// SliceInputBuffer is an InputBuffer over bytes already in memory
type SliceInputBuffer struct {
	data []byte
}

func NewSliceInputBuffer(data []byte) *SliceInputBuffer {
	return &SliceInputBuffer{data: data}
}

func (s *SliceInputBuffer) Data() []byte   { return s.data }
func (s *SliceInputBuffer) Available() int { return len(s.data) }

func (s *SliceInputBuffer) Pop(n int) {
	s.data = s.data[min(n, len(s.data)):]
}

// ScratchOutput collects outgoing frames in a fixed array until the
// target flushes them. Output past the end is dropped.
type ScratchOutput struct {
	buf [MessageMax]byte
	n   int
}

func NewScratchOutput() *ScratchOutput {
	return &ScratchOutput{}
}

func (s *ScratchOutput) Output(data []byte) {
	s.n += copy(s.buf[s.n:], data)
}

func (s *ScratchOutput) CurPosition() int { return s.n }

func (s *ScratchOutput) Update(pos int, val byte) {
	if pos >= 0 && pos < s.n {
		s.buf[pos] = val
	}
}

func (s *ScratchOutput) DataSince(pos int) []byte {
	if pos < 0 || pos > s.n {
		return nil
	}
	return s.buf[pos:s.n]
}

// Result returns everything written since the last Reset
func (s *ScratchOutput) Result() []byte { return s.buf[:s.n] }

func (s *ScratchOutput) Reset() { s.n = 0 }

// FifoBuffer queues received bytes until a complete frame is there.
// Unread bytes are moved to the front when the tail runs out of room,
// so Data is always one contiguous slice and never allocates.
type FifoBuffer struct {
	buf        []byte
	start, end int
}

func NewFifoBuffer(capacity int) *FifoBuffer {
	return &FifoBuffer{buf: make([]byte, capacity)}
}

// Write queues as much of data as fits and returns the count
func (f *FifoBuffer) Write(data []byte) int {
	if f.end+len(data) > len(f.buf) && f.start > 0 {
		f.end = copy(f.buf, f.buf[f.start:f.end])
		f.start = 0
	}
	n := copy(f.buf[f.end:], data)
	f.end += n
	return n
}

// Read moves up to len(p) queued bytes into p
func (f *FifoBuffer) Read(p []byte) int {
	n := copy(p, f.Data())
	f.Pop(n)
	return n
}

func (f *FifoBuffer) Data() []byte   { return f.buf[f.start:f.end] }
func (f *FifoBuffer) Available() int { return f.end - f.start }
func (f *FifoBuffer) Free() int      { return len(f.buf) - f.Available() }
func (f *FifoBuffer) IsEmpty() bool  { return f.start == f.end }

// Pop drops n bytes from the front
func (f *FifoBuffer) Pop(n int) {
	f.start += min(n, f.Available())
	if f.start == f.end {
		f.Reset()
	}
}

func (f *FifoBuffer) Reset() {
	f.start, f.end = 0, 0
}
