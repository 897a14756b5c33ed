// Package lazyjson reads a complete JSON document held in a contiguous
// byte buffer without building an intermediate tree of heap-allocated
// nodes. Every value is a small handle: a reference to the source buffer
// plus the byte offset at which the value begins. Navigating into a
// handle's children, reading a number, or decoding a string only scans
// the bytes needed to answer that one call.
//
// The scanner that locates token boundaries is stateless and operates
// directly on a Source; it is shared by the flat-buffer Source, the
// piece-table Source produced by Splice, and the streaming Source fed
// incrementally from an io.Reader.
package lazyjson
