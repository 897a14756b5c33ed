package lazyjson

// Array is a lazy view over a JSON array. It carries only the offset of
// its opening '[' plus the source it was cut from.
type Array struct {
	src    Source
	offset int
}

// Get returns the element at 1-based index i, per spec.md §4.D/§4.H.
// Fails with IndexOutOfRangeError if the array has fewer than i
// elements.
func (a *Array) Get(i int) (any, error) {
	off, err := arrayElementOffset(a.src, a.offset, i)
	if err != nil {
		return nil, err
	}
	return valueAt(a.src, off)
}

// ArrayIter iterates the elements of an Array in document order.
type ArrayIter struct {
	src  Source
	cur  int
	done bool
}

// Iter returns an iterator over a's elements, each yielded as a handle
// in document order.
func (a *Array) Iter() *ArrayIter {
	return &ArrayIter{src: a.src, cur: a.offset}
}

// Next advances to and returns the next element, or (nil, false, nil)
// once the closing ']' is reached.
func (it *ArrayIter) Next() (any, bool, error) {
	if it.done {
		return nil, false, nil
	}
	cur := skipNoise(it.src, it.cur)
	b := it.src.ByteAt(cur)
	if b == ']' {
		it.done = true
		return nil, false, nil
	}
	end, err := endOfValue(it.src, cur, b)
	if err != nil {
		return nil, false, err
	}
	it.cur = end
	v, err := valueAt(it.src, cur)
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// arrayElementOffset locates the offset of the i'th (1-based) element
// of the array whose opening '[' is at arrOffset, per spec.md §4.H:
// iterate child offsets from the opening '[', decrementing a counter
// until it reaches 1; fail IndexOutOfRangeError if ']' is reached
// first.
func arrayElementOffset(src Source, arrOffset int, i int) (int, error) {
	if i < 1 {
		return 0, &IndexOutOfRangeError{Index: i, Length: 0}
	}
	cur := arrOffset
	remaining := i
	n := 0
	for {
		cur = skipNoise(src, cur)
		b := src.ByteAt(cur)
		if b == ']' {
			return 0, &IndexOutOfRangeError{Index: i, Length: n}
		}
		if remaining == 1 {
			return cur, nil
		}
		end, err := endOfValue(src, cur, b)
		if err != nil {
			return 0, err
		}
		cur = end
		remaining--
		n++
	}
}

// Len returns the number of elements in the array. It is O(n): the
// iterator does not report length in advance (spec.md §4.H).
func (a *Array) Len() (int, error) {
	n := 0
	it := a.Iter()
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
