package maxtri

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNotTriangle indicates a reference polygon without exactly 3 vertices.
	ErrNotTriangle = errors.New("maxtri: reference polygon is not a triangle")

	// ErrNGonMismatch indicates a reference polygon built on a different N-gon.
	ErrNGonMismatch = errors.New("maxtri: reference polygon belongs to a different N-gon")

	// ErrOverflow indicates a count that does not fit in uint64.
	ErrOverflow = errors.New("maxtri: count overflows uint64")
)

// Triangle is a reference triangle given by its sorted vertex labels.
type Triangle struct {
	A, B, C int
}

// String implements fmt.Stringer.
func (t Triangle) String() string {
	return fmt.Sprintf("(%d,%d,%d)", t.A, t.B, t.C)
}

// Result holds the outcome of CountAll.
type Result struct {
	// N is the vertex count of the polygon.
	N int

	// Counts maps every reference triangle (0, j, k), 0 < j < k < N, to its
	// configuration count. Rotations of these triangles are not listed; they
	// have the same counts.
	Counts map[Triangle]uint64

	// Total is the number of configurations over all reference triangles of
	// the N-gon.
	Total uint64
}

// Triangles returns the keys of Counts in lexicographic order.
func (r Result) Triangles() []Triangle {
	ts := make([]Triangle, 0, len(r.Counts))
	for t := range r.Counts {
		ts = append(ts, t)
	}
	slices.SortFunc(ts, func(a, b Triangle) int {
		return cmp.Or(cmp.Compare(a.A, b.A), cmp.Compare(a.B, b.B), cmp.Compare(a.C, b.C))
	})

	return ts
}

// Stats accumulates work counters over every call made on a Counter.
type Stats struct {
	// Calls is the number of recursive region evaluations.
	Calls int
	// CacheHits and CacheMisses count symmetry-cache lookups.
	CacheHits   int
	CacheMisses int
	// Shortcuts counts regions resolved by the whole-area Catalan shortcut.
	Shortcuts int
	// Pruned counts fan candidates skipped for reaching the ceiling.
	Pruned int
}
