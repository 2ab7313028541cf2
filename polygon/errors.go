package polygon

import "errors"

var (
	// ErrDuplicateVertex indicates a vertex label was given more than once.
	ErrDuplicateVertex = errors.New("polygon: duplicate vertex label")

	// ErrNotMember indicates a partition endpoint that is not a vertex of the polygon.
	ErrNotMember = errors.New("polygon: vertex is not a member of the polygon")

	// ErrDegenerateChord indicates a partition chord whose endpoints coincide.
	ErrDegenerateChord = errors.New("polygon: chord endpoints coincide")

	// ErrCatalanOverflow indicates a Catalan number that does not fit in uint64.
	ErrCatalanOverflow = errors.New("polygon: catalan number overflows uint64")
)
