package lazyjson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func parseString(t *testing.T, text string) *String {
	t.Helper()
	src := NewBuffer([]byte(text))
	s, err := newString(src, 1)
	require.NoError(t, err, text)
	return s
}

func TestStringAsTextIncludesQuotes(t *testing.T) {
	s := parseString(t, `"hello"`)
	require.Equal(t, `"hello"`, string(s.AsText()))
}

func TestStringNoEscapeZeroCopy(t *testing.T) {
	s := parseString(t, `"hello"`)
	require.False(t, s.HasEscape())
	b, ok := s.AsBytesIfNoEscape()
	require.True(t, ok)
	require.Equal(t, "hello", string(b))
}

func TestStringWithEscapeHasNoZeroCopy(t *testing.T) {
	s := parseString(t, `"a\nb"`)
	require.True(t, s.HasEscape())
	_, ok := s.AsBytesIfNoEscape()
	require.False(t, ok)
}

func TestStringDecodeBasicEscapes(t *testing.T) {
	s := parseString(t, `"a\tb\nc\\d\"e"`)
	decoded, err := s.Decode()
	require.NoError(t, err)
	require.Equal(t, "a\tb\nc\\d\"e", decoded)
}

func TestStringDecodeUnicodeEscape(t *testing.T) {
	s := parseString(t, "\"\\u00e9\"")
	decoded, err := s.Decode()
	require.NoError(t, err)
	require.Equal(t, "é", decoded)
}

func TestStringDecodeSurrogatePair(t *testing.T) {
	// U+1F600 GRINNING FACE as a UTF-16 surrogate pair.
	s := parseString(t, "\"\\uD83D\\uDE00\"")
	decoded, err := s.Decode()
	require.NoError(t, err)
	require.Equal(t, "\U0001F600", decoded)
}

func TestStringDecodeLoneSurrogateTolerated(t *testing.T) {
	s := parseString(t, `"\uD800"`)
	_, err := s.Decode()
	require.NoError(t, err)
}

func TestStringDecodeUnknownEscapeKeepsBackslash(t *testing.T) {
	s := parseString(t, `"\q"`)
	decoded, err := s.Decode()
	require.NoError(t, err)
	require.Equal(t, `\q`, decoded)
}

func TestStringDecodeMemoized(t *testing.T) {
	s := parseString(t, `"abc"`)
	a, err := s.Decode()
	require.NoError(t, err)
	b, err := s.Decode()
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestStringChars(t *testing.T) {
	s := parseString(t, `"abé"`)
	it := s.Chars()
	var got []rune
	for {
		r, ok, err := it.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, r)
	}
	require.Equal(t, []rune{'a', 'b', 'é'}, got)
}

func TestStringCharsStopsEarlyWithoutFullDecode(t *testing.T) {
	s := parseString(t, `"a\nbc"`)
	it := s.Chars()
	r, ok, err := it.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 'a', r)
	require.Less(t, it.pos, len(it.raw))
}

func TestStringAt(t *testing.T) {
	s := parseString(t, `"abc"`)
	r, err := s.At(1)
	require.NoError(t, err)
	require.Equal(t, 'b', r)

	_, err = s.At(10)
	require.Error(t, err)
	var ior *IndexOutOfRangeError
	require.ErrorAs(t, err, &ior)
}

func TestStringIsValidCharPosition(t *testing.T) {
	s := parseString(t, `"a\nb"`)
	require.True(t, s.IsValidCharPosition(0))
	require.False(t, s.IsValidCharPosition(2))
}

func TestStringUnterminated(t *testing.T) {
	src := NewBuffer([]byte(`"abc`))
	_, err := newString(src, 1)
	require.Error(t, err)
}
