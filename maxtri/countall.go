package maxtri

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat/combin"
)

// CountAll counts configurations over every reference triangle of the N-gon.
//
// Only triangles with vertex 0 are evaluated: any triangle is a rotation of
// one of them. The sum over those is multiplied by N for the N choices of the
// fixed vertex and divided by 3, since each triangle was reached through each
// of its 3 vertices.
//
// Time complexity: O(N²) calls to CountForTriangle, each with a fresh cache.
// Memory complexity: O(N²) for the per-triangle counts, plus one cache at a time.
func (c *Counter) CountAll() (Result, error) {
	start := time.Now()
	n := c.g.N()
	res := Result{N: n, Counts: make(map[Triangle]uint64, combin.Binomial(n-1, 2))}

	// --- 1. Count every triangle through vertex 0 ---
	var sum uint64
	pair := make([]int, 2)
	gen := combin.NewCombinationGenerator(n-1, 2)
	for gen.Next() {
		gen.Combination(pair)
		t := Triangle{A: 0, B: pair[0] + 1, C: pair[1] + 1}
		cnt, err := c.CountForTriangle(t.A, t.B, t.C)
		if err != nil {
			return Result{}, err
		}
		res.Counts[t] = cnt
		if sum, err = add(sum, cnt); err != nil {
			return Result{}, err
		}
	}

	// --- 2. Scale to all N anchors, undo the triple count ---
	total, err := mul(sum, uint64(n))
	if err != nil {
		return Result{}, err
	}
	if total%3 != 0 {
		panic(fmt.Sprintf("maxtri: %d-gon total %d is not divisible by 3", n, total))
	}
	res.Total = total / 3

	c.opts.logger.Info("counted all reference triangles",
		zap.Int("n", n),
		zap.Int("triangles", len(res.Counts)),
		zap.Uint64("total", res.Total),
		zap.Bool("cache", c.opts.includeCache),
		zap.Int("calls", c.stats.Calls),
		zap.Int("cache_hits", c.stats.CacheHits),
		zap.Duration("elapsed", time.Since(start)),
	)

	return res, nil
}

// CountForTriangle is a one-shot helper: it builds a Counter for the n-gon and
// counts the configurations of the triangle (v1, v2, v3).
func CountForTriangle(n, v1, v2, v3 int, opts ...Option) (uint64, error) {
	c, err := New(n, opts...)
	if err != nil {
		return 0, err
	}

	return c.CountForTriangle(v1, v2, v3)
}

// CountAll is a one-shot helper around Counter.CountAll.
func CountAll(n int, opts ...Option) (Result, error) {
	c, err := New(n, opts...)
	if err != nil {
		return Result{}, err
	}

	return c.CountAll()
}
