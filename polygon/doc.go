// Package polygon models convex sub-polygons of a regular N-gon as immutable
// sorted sets of vertex labels.
//
// A Polygon is described, up to rotation and reflection, by its edge-distance
// signature: the clockwise gaps between consecutive vertices, wrapping from the
// last vertex back to the first. The gaps always sum to N.
//
//	vertices [0 1 4] on N=7  →  signature [1 3 3]
//	vertices [2 3 6] on N=7  →  signature [1 3 3]   (rotation by 2)
//	vertices [0 3 6] on N=7  →  signature [3 3 1]   (same shape)
//
// Canonical returns a Key that is identical for every rotation and mirror image
// of the same shape, so it can be used directly as a memoization key.
//
// Operations never mutate the receiver. Rotate, Flip and Partition all build new
// values.
package polygon
