// Package ngon provides the geometry of a regular N-gon whose side length is 1.
//
// 🚀 What is an NGon?
//
//	N vertices, labelled 0..N-1, equally spaced counter-clockwise on a
//	circumscribed circle of radius R = 1 / (2·sin(π/N)).
//
//	        1
//	    2 ·───· 0      (N=6, vertex 0 at angle 0)
//	     /     \
//	  3 ·       · 5
//	     \     /
//	    4 ·───·
//
// ✨ Key features:
//   - EdgeDistance   : clockwise step count between labels (not commutative)
//   - NumEdgesBetween: shorter arc between labels (commutative)
//   - ChordLength    : law of cosines over the shorter arc
//   - TriangleArea   : Heron's formula over three chord lengths
//   - Point          : Cartesian position as a gonum r2.Vec
//   - Less           : tolerance-aware strict less-than used for area ceilings
//
// Numeric policy:
//
//	Radicands that fall slightly below zero through round-off are clamped to 0,
//	so degenerate triangles report an area of 0 and never NaN.
//
// Labels outside [0, N) passed to the geometry methods are programmer errors
// and panic. Use Validate at API boundaries to turn them into ErrVertexOutOfRange.
package ngon
