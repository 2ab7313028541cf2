package ngon

import "errors"

var (
	// ErrTooFewVertices is returned by New when N < 3.
	ErrTooFewVertices = errors.New("ngon: polygon needs at least 3 vertices")

	// ErrVertexOutOfRange indicates a vertex label outside [0, N).
	ErrVertexOutOfRange = errors.New("ngon: vertex label out of range")
)

// panic messages for programmer errors in the geometry methods.
const (
	panicZeroNGon   = "ngon: zero NGon, use New"
	panicOutOfRange = "ngon: vertex %d out of range [0,%d)"
)
