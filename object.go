package lazyjson

// Object is a lazy view over a JSON object. It carries only the offset
// of its opening '{' plus the source it was cut from.
type Object struct {
	src    Source
	offset int
}

// Get returns the value bound to key, per spec.md §4.C.iii. Fails with
// KeyNotFoundError if no member has that key.
func (o *Object) Get(key string) (any, error) {
	v, _, err := o.GetFrom(key, 0)
	return v, err
}

// GetFrom behaves like Get but resumes the member scan from start
// instead of the opening '{', and also returns the offset the scan
// stopped at so a caller reading several fields in declaration order
// can amortise repeated lookups to O(total bytes) instead of O(n^2) by
// threading the returned offset into the next call, per spec.md §4.H.
// Pass start=0 to scan from the beginning.
func (o *Object) GetFrom(key string, start int) (any, int, error) {
	valOffset, ok, err := findKey(o.src, o.offset, []byte(key), start)
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return nil, 0, &KeyNotFoundError{Key: []byte(key)}
	}
	v, err := valueAt(o.src, valOffset)
	if err != nil {
		return nil, 0, err
	}
	end, err := endOfValue(o.src, valOffset, o.src.ByteAt(valOffset))
	if err != nil {
		return nil, 0, err
	}
	return v, end, nil
}

// Pair is a decoded key, value handle yielded by ObjectIter.
type Pair struct {
	Key   *String
	Value any
}

// ObjectIter iterates the members of an Object in declaration order.
type ObjectIter struct {
	src  Source
	cur  int
	done bool
}

// Iter returns an iterator over o's members in declaration order.
func (o *Object) Iter() *ObjectIter {
	return &ObjectIter{src: o.src, cur: o.offset}
}

// Next advances to and returns the next (key, value) pair, or
// (Pair{}, false, nil) once the closing '}' is reached.
func (it *ObjectIter) Next() (Pair, bool, error) {
	if it.done {
		return Pair{}, false, nil
	}
	cur := skipNoise(it.src, it.cur)
	b := it.src.ByteAt(cur)
	if b == '}' {
		it.done = true
		return Pair{}, false, nil
	}
	key, err := newString(it.src, cur)
	if err != nil {
		return Pair{}, false, err
	}
	valOff := skipNoise(it.src, key.end)
	v, err := valueAt(it.src, valOff)
	if err != nil {
		return Pair{}, false, err
	}
	end, err := endOfValue(it.src, valOff, it.src.ByteAt(valOff))
	if err != nil {
		return Pair{}, false, err
	}
	it.cur = end
	return Pair{Key: key, Value: v}, true, nil
}

// Len returns the number of members in the object. It is O(n), same as
// Array.Len: the teacher's own tape-based Object exposes length only by
// full iteration too, since neither representation caches a count.
func (o *Object) Len() (int, error) {
	n := 0
	it := o.Iter()
	for {
		_, ok, err := it.Next()
		if err != nil {
			return n, err
		}
		if !ok {
			return n, nil
		}
		n++
	}
}

// ForEach calls fn for each member in declaration order, stopping and
// returning fn's error if it returns one. Mirrors the teacher's
// Object.ForEach convenience in parsed_object.go, adapted to the lazy
// scanner instead of the tape.
func (o *Object) ForEach(fn func(key *String, value any) error) error {
	it := o.Iter()
	for {
		pair, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(pair.Key, pair.Value); err != nil {
			return err
		}
	}
}

// FindPath walks a sequence of string keys starting at o, matching the
// teacher's Object.FindPath convenience (parsed_object.go) generalised
// to the lazy scanner: each step must resolve to an Object to continue.
// Fails with KeyNotFoundError at whichever step breaks the chain.
func (o *Object) FindPath(path ...string) (any, error) {
	keys := make([]PathKey, len(path))
	for i, k := range path {
		keys[i] = Key(k)
	}
	off, err := Resolve(o.src, o.offset, keys...)
	if err != nil {
		return nil, err
	}
	return valueAt(o.src, off)
}
