package lazyjson

// EditAt implements the high-level edit of spec.md §4.I: it locates the
// value reached by walking path over root, and returns a new Piece
// equal to
//
//	prefix(root, v.offset-1) ++ replacement ++ suffix(root, end+1)
//
// The resulting Piece implements Source and can be re-parsed with
// Value/ValueAt; its handles point into whichever fragments of root
// survived the edit.
func EditAt(root Source, replacement []byte, path ...PathKey) (*Piece, error) {
	offset, err := Resolve(root, 1, path...)
	if err != nil {
		return nil, err
	}
	end, err := endOfValue(root, offset, root.ByteAt(offset))
	if err != nil {
		return nil, err
	}
	p := pieceOf(root)
	return Splice(p, offset, end, replacement), nil
}
