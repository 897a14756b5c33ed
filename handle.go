package lazyjson

// Null is the singleton representing a JSON null literal. It is not a
// handle: like Bool, it carries no (source, offset) pair since it has
// no children and no text worth re-scanning lazily.
type Null struct{}

// Value constructs the value at the start of src: it skips leading
// whitespace, inspects the discriminating byte, and dispatches to the
// matching variant. The returned value is one of *Number, *String,
// *Array, *Object, bool, or Null.
func Value(src Source) (any, error) {
	return valueAt(src, 1)
}

// valueAt constructs the value whose first non-whitespace byte is at or
// after offset.
func valueAt(src Source, offset int) (any, error) {
	offset = skipWhitespace(src, offset)
	b := src.ByteAt(offset)
	switch {
	case b == '{':
		return &Object{src: src, offset: offset}, nil
	case b == '[':
		return &Array{src: src, offset: offset}, nil
	case b == '"':
		return newString(src, offset)
	case isNumberStart(b):
		return newNumber(src, offset)
	case b == 't':
		return true, nil
	case b == 'f':
		return false, nil
	case b == 'n':
		return Null{}, nil
	case b == etbSentinel:
		return nil, ErrInputExhausted
	default:
		return nil, newParseError(src, offset, ErrUnexpectedByte, "expected a JSON value")
	}
}

// ValueAt constructs the root value of src, then walks path over it,
// per spec.md §4.D. It fails with KeyNotFoundError on a missing object
// key and on a type mismatch between a path step and the value found
// at that step, and with IndexOutOfRangeError on an out-of-range array
// index.
func ValueAt(src Source, path ...PathKey) (any, error) {
	offset, err := Resolve(src, 1, path...)
	if err != nil {
		return nil, err
	}
	return valueAt(src, offset)
}

// AsText returns the verbatim JSON text of v, i.e. the byte range
// [offset, endOfValue(offset)]. It works for every handle type as well
// as bool and Null (whose canonical text is synthesized, since they
// carry no source/offset of their own).
func AsText(src Source, v any) ([]byte, error) {
	switch t := v.(type) {
	case *Number:
		return t.AsText(), nil
	case *String:
		return t.AsText(), nil
	case *Array:
		return endValueText(src, t.offset)
	case *Object:
		return endValueText(src, t.offset)
	case bool:
		if t {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	case Null:
		return []byte("null"), nil
	default:
		return nil, newParseError(src, 1, ErrUnexpectedByte, "not a JSON value")
	}
}

func endValueText(src Source, offset int) ([]byte, error) {
	end, err := endOfValue(src, offset, src.ByteAt(offset))
	if err != nil {
		return nil, err
	}
	return sourceSlice(src, offset, end), nil
}
