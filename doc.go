// Package polytri counts the triangulations of a regular polygon in which one
// chosen triangle is the unique largest.
//
// 🚀 What is polytri?
//
//	For a regular N-gon with unit side and a reference triangle on three of its
//	vertices, polytri counts the ways to triangulate the rest of the polygon so
//	that every other triangle has strictly smaller area, and sums that count
//	over all reference triangles.
//
//	    0───1            N=4: every triangle covers half the square,
//	    │ ╲ │            so the other half can never be smaller.
//	    3───2            CountAll(4).Total == 0
//
// Under the hood, everything is organized under four subpackages:
//
//	ngon/    : regular-polygon geometry: edge distances, chords, Heron areas
//	polygon/ : immutable sub-polygons: signature, rotate, flip, partition, canonical key
//	symcache/: memoization keyed on rotation/reflection classes of sub-polygons
//	maxtri/  : the fan-from-fixed-edge triangulation counter and its drivers
//
// The polytri command (cmd/polytri) wraps maxtri for the terminal:
//
//	go install github.com/katalvlaran/polytri/cmd/polytri@latest
//	polytri all 7          # total 42
//	polytri bench 11       # cache vs. no cache
package polytri
