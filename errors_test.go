package lazyjson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorLineAndColumn(t *testing.T) {
	doc := "{\n  \"a\": invalid\n}"
	src := NewBuffer([]byte(doc))
	_, err := ValueAt(src, Key("a"))
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 2, pe.Line())
	require.Equal(t, 8, pe.Column())
}

func TestParseErrorMessageIncludesHint(t *testing.T) {
	src := NewBuffer([]byte(`@`))
	_, err := Value(src)
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected a JSON value")
}

func TestUnterminatedStringErrorType(t *testing.T) {
	src := NewBuffer([]byte(`"abc`))
	_, err := Value(src)
	require.Error(t, err)
	var use *UnterminatedStringError
	require.ErrorAs(t, err, &use)
}

func TestIsNotFoundDistinguishesNavigationMiss(t *testing.T) {
	require.True(t, IsNotFound(&KeyNotFoundError{Key: []byte("x")}))
	require.True(t, IsNotFound(&IndexOutOfRangeError{Index: 1, Length: 0}))
	require.False(t, IsNotFound(newParseError(nil, 1, ErrUnexpectedByte, "")))
}

func TestErrorCodeString(t *testing.T) {
	require.Equal(t, "unterminated string", ErrUnterminatedString.String())
}
