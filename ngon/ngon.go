package ngon

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// NGon is an immutable regular polygon descriptor. The zero value is not usable.
type NGon struct {
	n int
	r float64
}

// New returns the regular polygon with n vertices and unit side length.
func New(n int) (NGon, error) {
	if n < 3 {
		return NGon{}, fmt.Errorf("%w: got %d", ErrTooFewVertices, n)
	}

	return NGon{n: n, r: 1 / (2 * math.Sin(math.Pi/float64(n)))}, nil
}

// MustNew is like New but panics on error. Intended for tests and constants.
func MustNew(n int) NGon {
	g, err := New(n)
	if err != nil {
		panic(err)
	}

	return g
}

// N returns the vertex count.
func (g NGon) N() int { return g.n }

// Circumradius returns the radius of the circumscribed circle.
func (g NGon) Circumradius() float64 { return g.r }

// Contains reports whether v is a valid label.
func (g NGon) Contains(v int) bool { return v >= 0 && v < g.n }

// Validate returns ErrVertexOutOfRange for the first label outside [0, N).
func (g NGon) Validate(vs ...int) error {
	for _, v := range vs {
		if !g.Contains(v) {
			return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, g.n)
		}
	}

	return nil
}

func (g NGon) mustContain(vs ...int) {
	if g.n == 0 {
		panic(panicZeroNGon)
	}
	for _, v := range vs {
		if !g.Contains(v) {
			panic(fmt.Sprintf(panicOutOfRange, v, g.n))
		}
	}
}

// EdgeDistance returns the clockwise step count from v1 forward to v2.
// It is not commutative: EdgeDistance(a,b) + EdgeDistance(b,a) == N.
// For v1 == v2 the walk goes all the way around and yields N.
func (g NGon) EdgeDistance(v1, v2 int) int {
	g.mustContain(v1, v2)
	if v2 <= v1 {
		v2 += g.n
	}

	return v2 - v1
}

// Step returns the label reached by moving k steps from v. k may be negative.
func (g NGon) Step(v, k int) int {
	g.mustContain(v)
	s := (v + k) % g.n
	if s < 0 {
		s += g.n
	}

	return s
}

// NumEdgesBetween returns the length of the shorter arc between v1 and v2.
func (g NGon) NumEdgesBetween(v1, v2 int) int {
	d := g.EdgeDistance(v1, v2)

	return min(d, g.n-d)
}

// ChordLength returns the Euclidean distance between two vertices, from the
// law of cosines over the central angle of the shorter arc.
func (g NGon) ChordLength(v1, v2 int) float64 {
	alpha := float64(g.NumEdgesBetween(v1, v2)) * (2 * math.Pi / float64(g.n))
	rr := g.r * g.r

	return sqrtClamped(2*rr - 2*rr*math.Cos(alpha))
}

// TriangleArea returns the area of the triangle (v1, v2, v3) by Heron's formula.
// Repeated labels give a degenerate triangle of area 0.
func (g NGon) TriangleArea(v1, v2, v3 int) float64 {
	a := g.ChordLength(v1, v2)
	b := g.ChordLength(v1, v3)
	c := g.ChordLength(v2, v3)
	s := (a + b + c) / 2

	return sqrtClamped(s * (s - a) * (s - b) * (s - c))
}

// Point returns the Cartesian position of v, with vertex 0 on the positive X axis.
func (g NGon) Point(v int) r2.Vec {
	g.mustContain(v)
	theta := float64(v) * 2 * math.Pi / float64(g.n)

	return r2.Vec{X: g.r * math.Cos(theta), Y: g.r * math.Sin(theta)}
}

// ShoelaceArea returns the area of the polygon through the given labels, taken
// in order. It uses vertex coordinates and serves as an independent check of
// the chord-based formulas.
func (g NGon) ShoelaceArea(vs ...int) float64 {
	if len(vs) < 3 {
		return 0
	}
	var twice float64
	for i, v := range vs {
		twice += r2.Cross(g.Point(v), g.Point(vs[(i+1)%len(vs)]))
	}

	return math.Abs(twice) / 2
}

// String implements fmt.Stringer.
func (g NGon) String() string {
	return fmt.Sprintf("NGon(%d)", g.n)
}

// sqrtClamped treats round-off negatives as zero.
func sqrtClamped(x float64) float64 {
	if x <= 0 {
		return 0
	}

	return math.Sqrt(x)
}
