package lazyjson

import "sort"

// fragment is one immutable slice making up a Piece. Fragments are
// never themselves a Piece (piece-tables are flattened on
// construction) and are never empty.
type fragment struct {
	bytes []byte
}

// Piece is a logical byte sequence composed of an ordered list of
// fragments, each a view over some backing immutable byte slice. It
// implements Source so the Scanner can operate on an edited document
// without re-serialising the parts that did not change.
//
// spec.md §3 describes a piece-table offset as a composite of
// {fragment number, within-fragment offset}; encoding that as a single
// flat integer, as done here, is explicitly left as an implementation
// choice. starts[k] holds the 1-based global offset of the first byte
// of fragments[k], enabling ByteAt to binary-search the owning
// fragment.
type Piece struct {
	fragments []fragment
	starts    []int
	length    int
}

// PieceFromBytes wraps a single immutable byte slice as a one-fragment
// Piece. b is not copied; the caller must not mutate it afterwards.
func PieceFromBytes(b []byte) *Piece {
	return newPiece([]fragment{{bytes: b}})
}

// NewPiece builds a Piece directly from an ordered list of fragment
// byte slices, for callers (such as internal/piecestore) that
// reconstruct a previously-serialised fragment list. None of the
// slices are copied.
func NewPiece(fragments ...[]byte) *Piece {
	frags := make([]fragment, len(fragments))
	for i, b := range fragments {
		frags[i] = fragment{bytes: b}
	}
	return newPiece(frags)
}

// Fragments returns the byte slices backing each of p's fragments, in
// order, without copying them. Used by internal/piecestore to
// serialise a Piece.
func (p *Piece) Fragments() [][]byte {
	out := make([][]byte, len(p.fragments))
	for i, f := range p.fragments {
		out[i] = f.bytes
	}
	return out
}

func newPiece(frags []fragment) *Piece {
	// Invariant: no empty fragment survives construction.
	out := frags[:0]
	for _, f := range frags {
		if len(f.bytes) > 0 {
			out = append(out, f)
		}
	}
	p := &Piece{fragments: out}
	p.starts = make([]int, len(out))
	pos := 1
	for i, f := range out {
		p.starts[i] = pos
		pos += len(f.bytes)
	}
	p.length = pos - 1
	return p
}

// ByteAt implements Source.
func (p *Piece) ByteAt(i int) byte {
	if i < 1 || i > p.length {
		return terminatorSentinel
	}
	k := sort.Search(len(p.starts), func(k int) bool {
		return p.starts[k]+len(p.fragments[k].bytes) > i
	})
	return p.fragments[k].bytes[i-p.starts[k]]
}

// Advance implements Source. The flat single-integer offset scheme
// means advancing never needs special fragment-boundary handling: it
// is always i+1, same as Buffer.
func (p *Piece) Advance(i int) int {
	return i + 1
}

// Len implements Source.
func (p *Piece) Len() int {
	return p.length
}

// Bytes materialises the Piece's full logical text as a single
// contiguous slice.
func (p *Piece) Bytes() []byte {
	out := make([]byte, 0, p.length)
	for _, f := range p.fragments {
		out = append(out, f.bytes...)
	}
	return out
}

// pieceOf returns src as a *Piece, wrapping it in a single fragment if
// it is not one already, so Splice always has fragment boundaries to
// work with. A Source that is neither a *Piece nor a *Buffer (e.g. a
// StreamSource) is materialised into one fragment; splicing a document
// still being streamed is outside this library's concurrency model
// (spec.md §5) so the copy is an acceptable, rarely-hit fallback.
func pieceOf(src Source) *Piece {
	switch s := src.(type) {
	case *Piece:
		return s
	case *Buffer:
		return PieceFromBytes(s.Bytes())
	default:
		return PieceFromBytes(sourceSlice(src, 1, src.Len()))
	}
}

// replacementFragments flattens a splice replacement — a []byte or
// another *Piece — into the fragment list that will be spliced in.
// Nested piece-tables are already flat (the construction invariant),
// so splicing a *Piece replacement just borrows its fragment slice.
func replacementFragments(replacement any) []fragment {
	switch v := replacement.(type) {
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return []fragment{{bytes: v}}
	case string:
		if len(v) == 0 {
			return nil
		}
		return []fragment{{bytes: []byte(v)}}
	case *Piece:
		return append([]fragment(nil), v.fragments...)
	case *Buffer:
		if v.Len() == 0 {
			return nil
		}
		return []fragment{{bytes: v.Bytes()}}
	default:
		return nil
	}
}

// Splice replaces the logical byte range [start, end] of p with
// replacement, returning a new Piece. p is not modified: fragments
// outside the edited range are shared by reference between the old and
// new Piece (structural sharing), per spec.md §4.I.
func Splice(p *Piece, start, end int, replacement any) *Piece {
	var frags []fragment
	frags = append(frags, fragmentsBefore(p, start)...)
	frags = append(frags, replacementFragments(replacement)...)
	frags = append(frags, fragmentsAfter(p, end)...)
	return newPiece(frags)
}

// fragmentsBefore returns the fragments covering [1, start-1], with the
// fragment straddling start truncated to end just before it.
func fragmentsBefore(p *Piece, start int) []fragment {
	var out []fragment
	for i, f := range p.fragments {
		fStart := p.starts[i]
		fEnd := fStart + len(f.bytes) - 1
		if fEnd < start {
			out = append(out, f)
			continue
		}
		if fStart < start {
			out = append(out, fragment{bytes: f.bytes[:start-fStart]})
		}
		break
	}
	return out
}

// fragmentsAfter returns the fragments covering [end+1, length], with
// the fragment straddling end truncated to start just after it.
func fragmentsAfter(p *Piece, end int) []fragment {
	var out []fragment
	for i, f := range p.fragments {
		fStart := p.starts[i]
		fEnd := fStart + len(f.bytes) - 1
		if fEnd <= end {
			continue
		}
		if fStart > end {
			out = append(out, f)
			continue
		}
		out = append(out, fragment{bytes: f.bytes[end-fStart+1:]})
	}
	return out
}
