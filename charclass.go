package lazyjson

// Character classes: pure predicates on a single byte. These are the
// only character interpretations the scanner performs; string content
// bytes beyond quotes and backslashes are opaque to it.

func isWhitespace(b byte) bool {
	switch b {
	case 0x20, 0x09, 0x0A, 0x0D:
		return true
	}
	return false
}

func isStructuralBegin(b byte) bool {
	return b == '{' || b == '['
}

func isStructuralEnd(b byte) bool {
	return b == '}' || b == ']'
}

// isNoise reports whether b is whitespace or one of the structural
// separators ',' / ':' that carry no information between tokens at the
// scanner level.
func isNoise(b byte) bool {
	return isWhitespace(b) || b == ',' || b == ':'
}

func isNumberStart(b byte) bool {
	return b == '-' || isDigit(b)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
