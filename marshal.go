package lazyjson

// MarshalJSON implements json.Marshaler, returning the verbatim JSON text
// of the number without materialising any other representation.
//
// Mirrors the teacher's own Iter/Array/Elements.MarshalJSON pattern
// (minio/simdjson-go's parsed_json.go, parsed_array.go, parsed_object.go),
// generalised from walking a tape to returning a handle's own text span.
func (n *Number) MarshalJSON() ([]byte, error) {
	return n.AsText(), nil
}

// MarshalJSON implements json.Marshaler, returning the verbatim JSON text
// of the string, quotes included.
func (s *String) MarshalJSON() ([]byte, error) {
	return s.AsText(), nil
}

// MarshalJSON implements json.Marshaler, returning the verbatim JSON text
// of the array, brackets included. It does not decode any element.
func (a *Array) MarshalJSON() ([]byte, error) {
	return AsText(a.src, a)
}

// MarshalJSON implements json.Marshaler, returning the verbatim JSON text
// of the object, braces included. It does not decode any member.
func (o *Object) MarshalJSON() ([]byte, error) {
	return AsText(o.src, o)
}
