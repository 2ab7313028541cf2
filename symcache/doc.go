// Package symcache memoizes per-shape results for sub-polygons of a regular N-gon.
//
// Entries are keyed by polygon.Key rather than by vertex labels, so every
// rotation and mirror image of a stored polygon hits the same entry:
//
//	Store([0 1 3]/7, 4)
//	Lookup([2 3 5]/7)  → 4, true   (rotation)
//	Lookup([0 4 6]/7)  → 4, true   (reflection)
//	Lookup([0 1 4]/7)  → 0, false  (different shape)
//
// The backing store is a github.com/golang/groupcache/lru cache. A capacity of
// 0 keeps every entry; a positive capacity evicts the least recently used
// shapes, which only costs recomputation.
//
// A Cache is not safe for concurrent use.
package symcache
