package maxtri

import (
	"fmt"
	"math/bits"

	"go.uber.org/zap"

	"github.com/katalvlaran/polytri/ngon"
	"github.com/katalvlaran/polytri/polygon"
	"github.com/katalvlaran/polytri/symcache"
)

// Counter counts max-triangle configurations on one N-gon.
type Counter struct {
	g     ngon.NGon
	opts  options
	stats Stats
}

// New returns a Counter for the regular n-gon.
func New(n int, opts ...Option) (*Counter, error) {
	g, err := ngon.New(n)
	if err != nil {
		return nil, err
	}

	return &Counter{g: g, opts: gatherOptions(opts...)}, nil
}

// NGon returns the polygon the Counter works on.
func (c *Counter) NGon() ngon.NGon { return c.g }

// Stats returns the work counters accumulated so far.
func (c *Counter) Stats() Stats { return c.stats }

// CountForTriangle returns the number of triangulations of the regions left by
// the triangle (v1, v2, v3) in which every triangle is strictly smaller than it.
// Vertex order does not matter.
func (c *Counter) CountForTriangle(v1, v2, v3 int) (uint64, error) {
	tri, err := polygon.New(c.g, v1, v2, v3)
	if err != nil {
		return 0, fmt.Errorf("maxtri: triangle (%d,%d,%d): %w", v1, v2, v3, err)
	}

	return c.CountFor(tri)
}

// CountFor is CountForTriangle for a triangle already built as a Polygon.
func (c *Counter) CountFor(tri polygon.Polygon) (uint64, error) {
	if tri.Len() != 3 {
		return 0, fmt.Errorf("%w: %v", ErrNotTriangle, tri)
	}
	if tri.NGon().N() != c.g.N() {
		return 0, fmt.Errorf("%w: %v on %v", ErrNGonMismatch, tri, c.g)
	}

	// One cache per ceiling: counts depend on the ceiling, so nothing carries over.
	var cache *symcache.Cache
	if c.opts.includeCache {
		cache = symcache.New(c.opts.cacheCapacity)
	}
	ceiling := tri.Area()
	total, err := c.product(ceiling, splitOff(tri, polygon.Full(c.g)), cache)
	if err != nil {
		return 0, err
	}

	entries := 0
	if cache != nil {
		cs := cache.Stats()
		c.stats.CacheHits += cs.Hits
		c.stats.CacheMisses += cs.Misses
		entries = cache.Len()
	}
	c.opts.logger.Debug("counted reference triangle",
		zap.Stringer("triangle", tri),
		zap.Float64("ceiling", ceiling),
		zap.Uint64("count", total),
		zap.Int("cache_entries", entries),
	)

	return total, nil
}

// count returns the number of triangulations of p whose triangles all have
// area strictly below ceiling.
//
// The edge v0–v1 of p belongs to exactly one triangle (v0, v1, vi) of every
// triangulation. Fanning over vi and multiplying the counts of the three
// regions left around each admissible triangle enumerates every triangulation
// once. Stages:
//  1. base cases: an edge counts 1, a triangle counts 1 iff it is below the ceiling;
//  2. cache lookup on p's rotation/reflection class;
//  3. whole-area shortcut: p smaller than the ceiling admits all Catalan(|p|-2)
//     triangulations;
//  4. fan over vi, pruning triangles that reach the ceiling;
//  5. store the total.
//
// Time complexity: O(C(k-2) · k) without the cache for a k-vertex region in
// the worst case; the cache bounds the work by the number of distinct
// sub-polygon shapes, each fanned once in O(k).
// Memory complexity: O(k) recursion depth plus one entry per cached shape.
func (c *Counter) count(ceiling float64, p polygon.Polygon, cache *symcache.Cache) (uint64, error) {
	c.stats.Calls++

	// --- 1. Base cases ---
	switch {
	case p.Len() < 3:
		// A bare edge holds no triangle.
		return 1, nil
	case p.Len() == 3:
		if ngon.Less(p.Area(), ceiling) {
			return 1, nil
		}

		return 0, nil
	}

	// --- 2. Cache lookup ---
	if cache != nil {
		if v, ok := cache.Lookup(p); ok {
			return v, nil
		}
	}

	// --- 3. Whole-area shortcut ---
	// No triangle inside p can be larger than p itself.
	if ngon.Less(p.Area(), ceiling) {
		c.stats.Shortcuts++
		combos, err := p.NumTriangleCombos()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrOverflow, err)
		}

		return combos, nil
	}

	// --- 4. Fan over the apex of the triangle on v0–v1 ---
	v0, v1 := p.Vertex(0), p.Vertex(1)
	var total uint64
	for i := 2; i < p.Len(); i++ {
		vi := p.Vertex(i)
		if !ngon.Less(c.g.TriangleArea(v0, v1, vi), ceiling) {
			c.stats.Pruned++

			continue
		}
		n, err := c.product(ceiling, splitOff(polygon.MustNew(c.g, v0, v1, vi), p), cache)
		if err != nil {
			return 0, err
		}
		if total, err = add(total, n); err != nil {
			return 0, err
		}
	}

	// --- 5. Memoize ---
	if cache != nil {
		cache.Store(p, total)
	}

	return total, nil
}

// product multiplies the counts of independent regions. A zero factor skips
// the remaining regions.
func (c *Counter) product(ceiling float64, pieces [3]polygon.Polygon, cache *symcache.Cache) (uint64, error) {
	acc := uint64(1)
	for _, piece := range pieces {
		n, err := c.count(ceiling, piece, cache)
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, nil
		}
		if acc, err = mul(acc, n); err != nil {
			return 0, err
		}
	}

	return acc, nil
}

// splitOff removes triangle tri from p and returns the three regions around
// it: between tri's first and second vertex, its second and third, and the
// wrapping region from the third back to the first. Regions along a side of p
// have only two vertices.
func splitOff(tri, p polygon.Polygon) [3]polygon.Polygon {
	i, j, k := tri.Vertex(0), tri.Vertex(1), tri.Vertex(2)
	p1, r1 := p.MustPartition(i, j)
	p2, r2 := r1.MustPartition(j, k)
	rest, p3 := r2.MustPartition(i, k)
	if !rest.Equal(tri) {
		panic(fmt.Sprintf("maxtri: splitting %v off %v left %v", tri, p, rest))
	}

	return [3]polygon.Polygon{p1, p2, p3}
}

func add(a, b uint64) (uint64, error) {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}

	return s, nil
}

func mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}

	return lo, nil
}
