package lazyjson

// The scanner is stateless: every function takes (Source, offset) and
// returns a new offset (plus, for a few operations, an extra result).
// Offsets are 1-based byte indices into the Source, matching the data
// model in spec.md §3: index 0 is never produced or consumed here.

// skipWhitespace advances i while the byte at i is whitespace, returning
// the offset of the first non-whitespace byte.
func skipWhitespace(src Source, i int) int {
	for isWhitespace(src.ByteAt(i)) {
		i = src.Advance(i)
	}
	return i
}

// skipNoise advances past the token whose last byte is at i, then skips
// whitespace and the structural separators ',' and ':' that carry no
// information between tokens. This is the canonical "past current
// token" step used between members of a collection.
func skipNoise(src Source, i int) int {
	i = src.Advance(i)
	for isNoise(src.ByteAt(i)) {
		i = src.Advance(i)
	}
	return i
}

// advanceN calls Advance n times, crossing fragment boundaries one step
// at a time so that a piece-table Source never needs a bulk-skip
// operation of its own.
func advanceN(src Source, i, n int) int {
	for ; n > 0; n-- {
		i = src.Advance(i)
	}
	return i
}

// endOfValue returns the index of the last byte of the value whose
// first byte is b, located at i.
func endOfValue(src Source, i int, b byte) (int, error) {
	switch {
	case b == 't':
		return advanceN(src, i, 3), nil
	case b == 'f':
		return advanceN(src, i, 4), nil
	case b == 'n':
		return advanceN(src, i, 3), nil
	case b == '"':
		end, _, err := endOfString(src, i)
		return end, err
	case isNumberStart(b):
		return endOfNumber(src, i)
	case isStructuralBegin(b):
		return endOfCollection(src, i, b)
	default:
		hint := "near " + trimHint(peekBytes(src, i, 32)) + ": cannot begin a value"
		return i, newParseError(src, i, ErrUnexpectedByte, hint)
	}
}

// endOfCollection scans from the opening bracket at i (byte b, '{' or
// '[') to its matching close, skipping over nested collections and
// primitive tokens along the way. Returns the index of the matching
// closing bracket.
func endOfCollection(src Source, i int, b byte) (int, error) {
	depth := 1
	cur := i
	for {
		cur = skipNoise(src, cur)
		c := src.ByteAt(cur)
		switch {
		case c == etbSentinel:
			return cur, ErrInputExhausted
		case c == terminatorSentinel:
			return cur, newParseError(src, cur, ErrUnexpectedEnd, "unterminated object or array")
		case isStructuralBegin(c):
			depth++
		case isStructuralEnd(c):
			depth--
			if depth == 0 {
				return cur, nil
			}
		default:
			end, err := endOfValue(src, cur, c)
			if err != nil {
				return cur, err
			}
			cur = end
		}
	}
}

// endOfString scans the string literal whose opening quote is at i,
// returning the index of the closing quote and whether any escape
// sequence was observed in the body.
func endOfString(src Source, i int) (end int, hasEscape bool, err error) {
	cur := src.Advance(i)
	for {
		b := src.ByteAt(cur)
		switch b {
		case etbSentinel:
			return cur, hasEscape, ErrInputExhausted
		case terminatorSentinel:
			return cur, hasEscape, &UnterminatedStringError{newParseError(src, i, ErrUnterminatedString, "")}
		case '\\':
			hasEscape = true
			cur = src.Advance(cur)
			cur = src.Advance(cur)
		case '"':
			return cur, hasEscape, nil
		default:
			cur = src.Advance(cur)
		}
	}
}

// endOfNumber scans the number literal starting at i, returning the
// index of its last byte.
func endOfNumber(src Source, i int) (int, error) {
	cur := i
	for {
		nxt := src.Advance(cur)
		b := src.ByteAt(nxt)
		switch {
		case b == etbSentinel:
			return cur, ErrInputExhausted
		case isWhitespace(b), isStructuralEnd(b), b == ',', b == terminatorSentinel:
			return cur, nil
		}
		cur = nxt
	}
}

// findKey scans the object whose opening brace is at objOffset for a
// member whose key equals key, returning the offset of that member's
// value. If start is non-zero, the scan resumes from that offset
// instead of objOffset+1, enabling the amortised positional lookup
// described in spec.md §4.C.iii. Returns ok=false (no error) when '}'
// is reached without a match.
func findKey(src Source, objOffset int, key []byte, start int) (valueOffset int, ok bool, err error) {
	cur := objOffset
	if start != 0 {
		cur = start
	}
	for {
		cur = skipNoise(src, cur)
		b := src.ByteAt(cur)
		switch {
		case b == etbSentinel:
			return 0, false, ErrInputExhausted
		case b == terminatorSentinel:
			return 0, false, newParseError(src, cur, ErrUnexpectedEnd, "unterminated object")
		case b == '}':
			return 0, false, nil
		case b != '"':
			return 0, false, newParseError(src, cur, ErrUnexpectedByte, "expected object key")
		}

		keyStart := cur
		keyEnd, hasEscape, err := endOfString(src, keyStart)
		if err != nil {
			return 0, false, err
		}

		match := false
		if !hasEscape {
			body := betweenQuotes(src, keyStart, keyEnd)
			match = bytesEqual(body, key)
		} else {
			decoded, err := decodeStringBody(src, keyStart, keyEnd, hasEscape)
			if err != nil {
				return 0, false, err
			}
			match = string(decoded) == string(key)
		}

		cur = skipNoise(src, keyEnd)
		valOffset := cur
		valEnd, err := endOfValue(src, cur, src.ByteAt(cur))
		if err != nil {
			return 0, false, err
		}
		if match {
			return valOffset, true, nil
		}
		cur = valEnd
	}
}

// betweenQuotes extracts the raw bytes strictly between the quotes at
// keyStart and keyEnd, one byte at a time via Advance so it works for
// any Source, not just a flat Buffer.
func betweenQuotes(src Source, keyStart, keyEnd int) []byte {
	var out []byte
	for i := src.Advance(keyStart); i != keyEnd; i = src.Advance(i) {
		out = append(out, src.ByteAt(i))
	}
	return out
}

// peekBytes reads up to n bytes starting at i for use in an error
// hint, stopping early at either sentinel so the hint never runs past
// the addressable input.
func peekBytes(src Source, i, n int) []byte {
	out := make([]byte, 0, n)
	cur := i
	for k := 0; k < n; k++ {
		b := src.ByteAt(cur)
		if b == terminatorSentinel || b == etbSentinel {
			break
		}
		out = append(out, b)
		cur = src.Advance(cur)
	}
	return out
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
