package lazyjson

// PathKey is one step of a path walked by Resolve: either a 1-based
// array index or an object key.
type PathKey struct {
	IsInt bool
	Int   int
	Str   []byte
}

// Index builds an array-index path step.
func Index(i int) PathKey { return PathKey{IsInt: true, Int: i} }

// Key builds an object-key path step.
func Key(k string) PathKey { return PathKey{Str: []byte(k)} }

// Resolve walks path over the value starting at offset in src, per
// spec.md §4.D. It returns the offset of the value reached. A missing
// key, or a type mismatch (an integer step against an object, or vice
// versa), is reported as KeyNotFoundError; an out-of-range index is
// reported as IndexOutOfRangeError. IsNotFound treats both as "the
// path does not exist". On a streaming Source whose buffered bytes end
// before a step's value begins, it returns ErrInputExhausted so Pump
// can read more and retry.
func Resolve(src Source, offset int, path ...PathKey) (int, error) {
	cur := skipWhitespace(src, offset)
	for _, step := range path {
		b := src.ByteAt(cur)
		if b == etbSentinel {
			return 0, ErrInputExhausted
		}
		switch {
		case step.IsInt:
			if b != '[' {
				return 0, &KeyNotFoundError{Key: []byte("[array index on non-array]")}
			}
			next, err := arrayElementOffset(src, cur, step.Int)
			if err != nil {
				return 0, err
			}
			cur = next
		default:
			if b != '{' {
				return 0, &KeyNotFoundError{Key: step.Str}
			}
			valOff, ok, err := findKey(src, cur, step.Str, 0)
			if err != nil {
				return 0, err
			}
			if !ok {
				return 0, &KeyNotFoundError{Key: step.Str}
			}
			cur = valOff
		}
		cur = skipWhitespace(src, cur)
	}
	return cur, nil
}
