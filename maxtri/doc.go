// Package maxtri counts triangulations of a regular N-gon in which a chosen
// reference triangle is the unique largest triangle.
//
// 🚀 What is counted?
//
//	Fix a triangle T on three vertices of the N-gon. Removing T leaves up to
//	three convex regions. A configuration is a triangulation of all of them in
//	which every triangle has area strictly below area(T). CountForTriangle
//	returns how many configurations exist for T; CountAll sums that over every T.
//
// ✨ Algorithm:
//   - Fan from a fixed edge: every triangulation of a convex polygon contains
//     exactly one triangle on the edge (v0, v1). Enumerating its third vertex
//     vi splits the polygon into independent pieces, so each triangulation is
//     visited exactly once.
//   - Area pruning: a candidate triangle at or above the ceiling is skipped
//     without recursing.
//   - Whole-region shortcut: if a region's total area is already below the
//     ceiling, all Catalan(k-2) of its triangulations qualify.
//   - Symmetry cache: sub-polygons that differ only by rotation or reflection
//     share one memoized count (see package symcache).
//
// ⚙️ Usage:
//
//	n, err := maxtri.CountForTriangle(7, 0, 1, 4)          // 4
//	res, err := maxtri.CountAll(7)                          // res.Total == 42
//	res, err = maxtri.CountAll(7, maxtri.WithCache(false))  // same result, slower
//
// Complexity:
//
//	With the cache, work is bounded by the number of distinct sub-polygon
//	shapes (polynomial in N). Without it, recursion grows with the Catalan
//	numbers. Recursion depth is at most N.
//
// Errors:
//   - ngon.ErrTooFewVertices, ngon.ErrVertexOutOfRange: invalid input.
//   - polygon.ErrDuplicateVertex: repeated triangle vertex.
//   - ErrNotTriangle, ErrNGonMismatch: CountFor on a bad reference polygon.
//   - ErrOverflow: a count no longer fits a uint64.
//
// A Counter is not safe for concurrent use.
package maxtri
