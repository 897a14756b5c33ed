package lazyjson

// terminatorSentinel is the byte placed one past the last valid input
// byte of a complete source. Scanner loops advance until they see it
// instead of checking bounds on every step.
const terminatorSentinel byte = 0x00

// etbSentinel is the byte placed one past the last currently-buffered
// byte of a streaming source that has not yet reached end-of-input. It
// is the ASCII "end of transmission block" control character.
const etbSentinel byte = 0x17

// Source is the byte-level contract the Scanner operates on: a
// contiguous, random-access, sentinel-terminated byte sequence. Buffer,
// Piece (a spliced piece-table) and StreamSource all implement it.
//
// Implementations are free to be read concurrently from multiple
// goroutines as long as they are not being mutated (Buffer and Piece
// never mutate after construction; StreamSource mutates only inside
// Pump).
type Source interface {
	// ByteAt returns the byte at index i. i is 1-based, per the data
	// model: index 0 is never addressed by the scanner. Implementations
	// must return the sentinel byte for i == Len()+1 without requiring
	// the caller to special-case that index.
	ByteAt(i int) byte

	// Advance returns the next index after i. For a flat buffer this is
	// i+1; a piece-table may need to cross a fragment boundary.
	Advance(i int) int

	// Len returns the number of bytes currently addressable without
	// crossing into the sentinel.
	Len() int
}

// Buffer is a Source over a single, immutable, complete byte slice. It
// is the Source produced by Parse and by materialising a Piece back to
// a single contiguous form.
type Buffer struct {
	b []byte
}

// NewBuffer wraps b as a Source. b is never copied or modified; the
// caller must not mutate it for the lifetime of any handle built over
// the returned Buffer.
func NewBuffer(b []byte) *Buffer {
	return &Buffer{b: b}
}

// ByteAt implements Source.
func (s *Buffer) ByteAt(i int) byte {
	if i < 1 || i > len(s.b) {
		return terminatorSentinel
	}
	return s.b[i-1]
}

// Advance implements Source.
func (s *Buffer) Advance(i int) int {
	return i + 1
}

// Len implements Source.
func (s *Buffer) Len() int {
	return len(s.b)
}

// Bytes returns the underlying slice. Callers must treat it as
// read-only.
func (s *Buffer) Bytes() []byte {
	return s.b
}

// Slice returns the inclusive byte range [start, end] as a new slice
// view (no copy) over the underlying buffer. start and end are 1-based
// offsets, as returned by the scanner.
func (s *Buffer) Slice(start, end int) []byte {
	if start < 1 {
		start = 1
	}
	if end > len(s.b) {
		end = len(s.b)
	}
	if start > end {
		return nil
	}
	return s.b[start-1 : end]
}
