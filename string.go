package lazyjson

import (
	"unicode/utf8"
)

// String is a lazy view over a JSON string literal. Len reports the
// number of code units (bytes) between the opening and closing quotes;
// hasEscape records whether any backslash escape appeared in the body,
// which the view uses to choose between a zero-copy borrow and
// on-demand decoding.
type String struct {
	src       Source
	offset    int // index of the opening quote
	end       int // index of the closing quote
	hasEscape bool
	decoded   []byte // memoised full decode, filled in lazily
}

func newString(src Source, offset int) (*String, error) {
	end, hasEscape, err := endOfString(src, offset)
	if err != nil {
		return nil, err
	}
	return &String{src: src, offset: offset, end: end, hasEscape: hasEscape}, nil
}

// AsText returns the verbatim JSON text of the string, quotes included.
func (s *String) AsText() []byte {
	return sourceSlice(s.src, s.offset, s.end)
}

// Len returns the number of bytes (code units) between the opening and
// closing quotes of the JSON form.
func (s *String) Len() int {
	n := 0
	for i := s.src.Advance(s.offset); i != s.end; i = s.src.Advance(i) {
		n++
	}
	return n
}

// HasEscape reports whether the string body contains at least one
// backslash escape sequence.
func (s *String) HasEscape() bool {
	return s.hasEscape
}

// AsBytesIfNoEscape returns a zero-copy borrow of the raw body when
// HasEscape is false, and (nil, false) otherwise.
func (s *String) AsBytesIfNoEscape() ([]byte, bool) {
	if s.hasEscape {
		return nil, false
	}
	return sourceSlice(s.src, s.src.Advance(s.offset), s.end-1), true
}

func sourceSlice(src Source, start, end int) []byte {
	if b, ok := src.(*Buffer); ok {
		return b.Slice(start, end)
	}
	var out []byte
	for i := start; i <= end; i = src.Advance(i) {
		out = append(out, src.ByteAt(i))
		if i == end {
			break
		}
	}
	return out
}

// Decode materialises the full decoded string, memoising the result.
// For a string with no escapes this is equivalent to, but allocates
// unlike, AsBytesIfNoEscape.
func (s *String) Decode() (string, error) {
	if s.decoded == nil {
		b, err := decodeStringBody(s.src, s.offset, s.end, s.hasEscape)
		if err != nil {
			return "", err
		}
		if b == nil {
			b = []byte{}
		}
		s.decoded = b
	}
	return string(s.decoded), nil
}

// CharIter walks the decoded code points of a string one at a time,
// decoding escapes only as the iterator reaches them. Holding the raw
// (pre-decode) body is the only up-front cost; a caller that stops
// after the first few characters of a long escaped string never pays
// to decode the rest.
type CharIter struct {
	raw []byte
	pos int
}

// Next returns the next decoded code point and true, or ok=false once
// the string is exhausted.
func (it *CharIter) Next() (r rune, ok bool, err error) {
	if it.pos >= len(it.raw) {
		return 0, false, nil
	}
	r, next, err := decodeOneChar(it.raw, it.pos)
	if err != nil {
		return 0, false, err
	}
	it.pos = next
	return r, true, nil
}

// Chars returns an iterator over the string's decoded code points.
// Per spec.md §4.G, iterating or indexing a string does not require
// materialising the whole decoded value; Decode is the call that does
// that, memoising its result.
func (s *String) Chars() *CharIter {
	raw := sourceSlice(s.src, s.src.Advance(s.offset), s.end-1)
	return &CharIter{raw: raw}
}

// At returns the decoded code point at logical character index idx
// (0-based). It decodes only as far as idx, so it is O(idx) rather
// than O(length of the whole string).
func (s *String) At(idx int) (rune, error) {
	if idx < 0 {
		return 0, &IndexOutOfRangeError{Index: idx, Length: 0}
	}
	it := s.Chars()
	for i := 0; ; i++ {
		r, ok, err := it.Next()
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, &IndexOutOfRangeError{Index: idx, Length: i}
		}
		if i == idx {
			return r, nil
		}
	}
}

// decodeOneChar decodes the single code point beginning at byte offset
// pos of raw (the string body, quotes already stripped), returning the
// decoded rune and the offset of the following code point. An escape
// that cannot be decoded in place (a trailing backslash, an unknown
// escape letter, a truncated \u) yields the backslash itself as a
// literal character and advances by one byte, so the following bytes
// are then read as plain text - the same outcome decodeStringBody
// reaches by appending the backslash and continuing, just spread
// across more Next calls.
func decodeOneChar(raw []byte, pos int) (rune, int, error) {
	c := raw[pos]
	if c != '\\' {
		r, size := utf8.DecodeRune(raw[pos:])
		return r, pos + size, nil
	}
	if pos+1 >= len(raw) {
		return '\\', pos + 1, nil
	}
	switch raw[pos+1] {
	case '"', '\\', '/':
		return rune(raw[pos+1]), pos + 2, nil
	case 'b':
		return '\b', pos + 2, nil
	case 'f':
		return '\f', pos + 2, nil
	case 'n':
		return '\n', pos + 2, nil
	case 'r':
		return '\r', pos + 2, nil
	case 't':
		return '\t', pos + 2, nil
	case 'u':
		unit, ok := readHex4At(raw, pos+2)
		if !ok {
			return '\\', pos + 1, nil
		}
		next := pos + 6
		if unit >= 0xD800 && unit <= 0xDBFF && next+1 < len(raw) && raw[next] == '\\' && raw[next+1] == 'u' {
			low, ok := readHex4At(raw, next+2)
			if ok && low >= 0xDC00 && low <= 0xDFFF {
				cp := 0x10000 + ((unit - 0xD800) << 10) + (low - 0xDC00)
				return rune(cp), next + 6, nil
			}
		}
		return rune(unit), next, nil
	default:
		return '\\', pos + 1, nil
	}
}

// readHex4At reads the 4 hex digits of a \uXXXX escape starting at
// byte offset i of raw.
func readHex4At(raw []byte, i int) (uint32, bool) {
	if i+4 > len(raw) {
		return 0, false
	}
	var v uint32
	for k := 0; k < 4; k++ {
		c := raw[i+k]
		if !isHexDigit(c) {
			return 0, false
		}
		var d uint32
		switch {
		case c >= '0' && c <= '9':
			d = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint32(c-'a') + 10
		default:
			d = uint32(c-'A') + 10
		}
		v = v<<4 | d
	}
	return v, true
}

// IsValidCharPosition reports whether byteOffset (an offset within the
// raw body, 0 being the byte right after the opening quote) lands on
// the first byte of a character rather than inside an escape sequence.
// It implements the "next valid character position" contract of
// spec.md §4.G without decoding the whole string: the byte immediately
// after a backslash is never a valid position.
func (s *String) IsValidCharPosition(byteOffset int) bool {
	body := sourceSlice(s.src, s.src.Advance(s.offset), s.end-1)
	if byteOffset < 0 || byteOffset >= len(body) {
		return byteOffset == len(body)
	}
	// Walk from the start counting valid token boundaries; any position
	// immediately following an odd run of backslashes is invalid.
	i := 0
	for i < len(body) {
		if body[i] == '\\' {
			if i+1 == byteOffset {
				return false
			}
			i += 2
			continue
		}
		i++
	}
	return true
}

// decodeStringBody decodes the body strictly between the quotes at
// offset and end into UTF-8 bytes, applying RFC 7159 §7 escape rules
// and tolerating lone UTF-16 surrogates per spec.md §4.G. It drives
// the same decodeOneChar step Chars/At use one code point at a time,
// just run to completion and appended into a single buffer.
func decodeStringBody(src Source, offset, end int, hasEscape bool) ([]byte, error) {
	if !hasEscape {
		return sourceSlice(src, src.Advance(offset), end-1), nil
	}

	raw := sourceSlice(src, src.Advance(offset), end-1)
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); {
		r, next, err := decodeOneChar(raw, i)
		if err != nil {
			return nil, err
		}
		out = appendUTF16Unit(out, uint32(r))
		i = next
	}
	return out, nil
}

// appendUTF16Unit appends the UTF-8 encoding of a single UTF-16 code
// unit, including lone surrogates encoded as the (technically invalid)
// three-byte form, matching the tolerant decoding policy of spec.md
// §4.G.
func appendUTF16Unit(out []byte, unit uint32) []byte {
	r := rune(unit)
	if unit >= 0xD800 && unit <= 0xDFFF {
		// Force a 3-byte encoding for the lone surrogate rather than the
		// utf8.RuneError substitution utf8.EncodeRune would otherwise
		// produce.
		out = append(out,
			byte(0xE0|(unit>>12)),
			byte(0x80|((unit>>6)&0x3F)),
			byte(0x80|(unit&0x3F)),
		)
		return out
	}
	var buf [4]byte
	n := utf8.EncodeRune(buf[:], r)
	return append(out, buf[:n]...)
}
