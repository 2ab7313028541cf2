package polygon

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/polytri/ngon"
)

// Polygon is an immutable, sorted, duplicate-free set of vertex labels of an NGon.
type Polygon struct {
	g  ngon.NGon
	vs []int
}

// New builds a Polygon from vertex labels in any order.
// It returns ngon.ErrVertexOutOfRange or ErrDuplicateVertex on invalid input.
func New(g ngon.NGon, vertices ...int) (Polygon, error) {
	if err := g.Validate(vertices...); err != nil {
		return Polygon{}, err
	}
	vs := slices.Clone(vertices)
	slices.Sort(vs)
	for i := 1; i < len(vs); i++ {
		if vs[i] == vs[i-1] {
			return Polygon{}, fmt.Errorf("%w: %d", ErrDuplicateVertex, vs[i])
		}
	}

	return Polygon{g: g, vs: vs}, nil
}

// MustNew is like New but panics on error.
func MustNew(g ngon.NGon, vertices ...int) Polygon {
	p, err := New(g, vertices...)
	if err != nil {
		panic(err)
	}

	return p
}

// Full returns the polygon made of every vertex of g.
func Full(g ngon.NGon) Polygon {
	vs := make([]int, g.N())
	for i := range vs {
		vs[i] = i
	}

	return Polygon{g: g, vs: vs}
}

// fromSorted wraps labels already known to be sorted, unique and in range.
func fromSorted(g ngon.NGon, vs []int) Polygon {
	return Polygon{g: g, vs: vs}
}

// NGon returns the regular polygon this Polygon lives on.
func (p Polygon) NGon() ngon.NGon { return p.g }

// Len returns the vertex count.
func (p Polygon) Len() int { return len(p.vs) }

// Vertices returns a copy of the sorted labels.
func (p Polygon) Vertices() []int { return slices.Clone(p.vs) }

// Vertex returns the i-th smallest label.
func (p Polygon) Vertex(i int) int { return p.vs[i] }

// Has reports whether v is a vertex of p.
func (p Polygon) Has(v int) bool {
	_, ok := slices.BinarySearch(p.vs, v)

	return ok
}

// Equal reports whether p and q have the same labels on the same N-gon.
// Use SameShape for equality up to rotation and reflection.
func (p Polygon) Equal(q Polygon) bool {
	return p.g.N() == q.g.N() && slices.Equal(p.vs, q.vs)
}

// Signature returns the clockwise gap from each vertex to the next, wrapping
// from the last vertex to the first. The gaps sum to N.
func (p Polygon) Signature() []int {
	n := len(p.vs)
	sig := make([]int, n)
	for i, v := range p.vs {
		sig[i] = p.g.EdgeDistance(v, p.vs[(i+1)%n])
	}

	return sig
}

// Rotate returns p with every vertex shifted by k steps. k may be negative.
func (p Polygon) Rotate(k int) Polygon {
	vs := make([]int, len(p.vs))
	for i, v := range p.vs {
		vs[i] = p.g.Step(v, k)
	}
	slices.Sort(vs)

	return fromSorted(p.g, vs)
}

// Flip returns the mirror image of p around its first vertex. The first vertex
// stays fixed; every other vertex v moves to the label as far counter-clockwise
// from it as v was clockwise.
func (p Polygon) Flip() Polygon {
	if len(p.vs) == 0 {
		return p
	}
	first := p.vs[0]
	vs := make([]int, len(p.vs))
	for i, v := range p.vs {
		vs[i] = p.g.Step(first, -(v - first))
	}
	slices.Sort(vs)

	return fromSorted(p.g, vs)
}

// Partition cuts p along the chord i–j. The first result is the sub-path from
// i to j in sorted order, the second is the complementary sub-path that wraps
// around. Both include i and j. The order of i and j does not matter; i == j
// is rejected with ErrDegenerateChord.
func (p Polygon) Partition(i, j int) (Polygon, Polygon, error) {
	a, okA := slices.BinarySearch(p.vs, i)
	b, okB := slices.BinarySearch(p.vs, j)
	if !okA {
		return Polygon{}, Polygon{}, fmt.Errorf("%w: %d in %v", ErrNotMember, i, p)
	}
	if !okB {
		return Polygon{}, Polygon{}, fmt.Errorf("%w: %d in %v", ErrNotMember, j, p)
	}
	if a == b {
		return Polygon{}, Polygon{}, fmt.Errorf("%w: %d-%d in %v", ErrDegenerateChord, i, j, p)
	}
	if a > b {
		a, b = b, a
	}
	inner := slices.Clone(p.vs[a : b+1])
	outer := make([]int, 0, len(p.vs)-(b-a)+1)
	outer = append(outer, p.vs[:a+1]...)
	outer = append(outer, p.vs[b:]...)

	return fromSorted(p.g, inner), fromSorted(p.g, outer), nil
}

// MustPartition is like Partition but panics on any error.
func (p Polygon) MustPartition(i, j int) (Polygon, Polygon) {
	inner, outer, err := p.Partition(i, j)
	if err != nil {
		panic(err)
	}

	return inner, outer
}

// Area returns the area of p. It peels off the triangle of the first three
// vertices and recurses on the rest, which is exact for convex polygons.
func (p Polygon) Area() float64 {
	switch {
	case len(p.vs) < 3:
		return 0
	case len(p.vs) == 3:
		return p.g.TriangleArea(p.vs[0], p.vs[1], p.vs[2])
	}
	head, rest := p.MustPartition(p.vs[0], p.vs[2])
	if head.Len() != 3 {
		panic(fmt.Sprintf("polygon: area split of %v produced %v", p, head))
	}

	return head.Area() + rest.Area()
}

// NumTriangleCombos returns the number of triangulations of a convex polygon
// with p's vertex count: 0 below 3 vertices, otherwise Catalan(Len-2).
func (p Polygon) NumTriangleCombos() (uint64, error) {
	if len(p.vs) < 3 {
		return 0, nil
	}

	return Catalan(len(p.vs) - 2)
}

// String implements fmt.Stringer.
func (p Polygon) String() string {
	return fmt.Sprintf("Polygon%v/%d", p.vs, p.g.N())
}
