package lazyjson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPieceFromBytesBasics(t *testing.T) {
	p := PieceFromBytes([]byte("hello"))
	require.Equal(t, 5, p.Len())
	require.Equal(t, byte('h'), p.ByteAt(1))
	require.Equal(t, byte('o'), p.ByteAt(5))
	require.Equal(t, "hello", string(p.Bytes()))
}

func TestPieceByteAtOutOfRange(t *testing.T) {
	p := PieceFromBytes([]byte("abc"))
	require.Equal(t, byte(0), p.ByteAt(0))
	require.Equal(t, byte(0), p.ByteAt(4))
}

func TestPieceAdvanceIsPlusOne(t *testing.T) {
	p := PieceFromBytes([]byte("abc"))
	require.Equal(t, 2, p.Advance(1))
}

func TestNewPieceDropsEmptyFragments(t *testing.T) {
	p := NewPiece([]byte("a"), []byte(""), []byte("b"))
	require.Equal(t, 2, p.Len())
	require.Equal(t, "ab", string(p.Bytes()))
}

func TestPieceFragmentsAcrossBoundary(t *testing.T) {
	p := NewPiece([]byte("abc"), []byte("def"))
	require.Equal(t, byte('a'), p.ByteAt(1))
	require.Equal(t, byte('d'), p.ByteAt(4))
	require.Equal(t, byte('f'), p.ByteAt(6))
	require.Equal(t, "abcdef", string(p.Bytes()))
}

func TestSpliceReplaceMiddle(t *testing.T) {
	p := PieceFromBytes([]byte("hello world"))
	out := Splice(p, 7, 11, []byte("there"))
	require.Equal(t, "hello there", string(out.Bytes()))
	// original is untouched by structural sharing.
	require.Equal(t, "hello world", string(p.Bytes()))
}

func TestSpliceReplaceSpanningFragments(t *testing.T) {
	p := NewPiece([]byte("abc"), []byte("def"), []byte("ghi"))
	out := Splice(p, 2, 8, []byte("XYZ"))
	require.Equal(t, "aXYZi", string(out.Bytes()))
}

func TestSpliceInsertAtStart(t *testing.T) {
	p := PieceFromBytes([]byte("bcd"))
	out := Splice(p, 1, 0, []byte("a"))
	require.Equal(t, "abcd", string(out.Bytes()))
}

func TestSpliceDeleteRange(t *testing.T) {
	p := PieceFromBytes([]byte("abcdef"))
	out := Splice(p, 2, 4, nil)
	require.Equal(t, "aef", string(out.Bytes()))
}

func TestSpliceWithPieceReplacement(t *testing.T) {
	p := PieceFromBytes([]byte("abcdef"))
	rep := NewPiece([]byte("X"), []byte("Y"))
	out := Splice(p, 2, 4, rep)
	require.Equal(t, "aXYef", string(out.Bytes()))
}
