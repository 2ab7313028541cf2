package polygon_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polytri/ngon"
	"github.com/katalvlaran/polytri/polygon"
)

// ------------------------------------------------------------------------
// 1. Construction.
// ------------------------------------------------------------------------

func TestNew_SortsLabels(t *testing.T) {
	p, err := polygon.New(ngon.MustNew(8), 5, 1, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 5}, p.Vertices())
	assert.Equal(t, 4, p.Len())
	assert.True(t, p.Has(4))
	assert.False(t, p.Has(3))
}

func TestNew_InvalidLabels(t *testing.T) {
	g := ngon.MustNew(5)
	_, err := polygon.New(g, 0, 1, 1)
	assert.ErrorIs(t, err, polygon.ErrDuplicateVertex)

	_, err = polygon.New(g, 0, 5)
	assert.ErrorIs(t, err, ngon.ErrVertexOutOfRange)
}

func TestVertices_ReturnsCopy(t *testing.T) {
	p := polygon.MustNew(ngon.MustNew(6), 0, 2, 4)
	vs := p.Vertices()
	vs[0] = 5
	assert.Equal(t, []int{0, 2, 4}, p.Vertices(), "caller must not mutate the polygon")
}

// ------------------------------------------------------------------------
// 2. Signature, rotation and reflection.
// ------------------------------------------------------------------------

func TestSignature_FullSumsToN(t *testing.T) {
	for n := 3; n <= 40; n++ {
		sig := polygon.Full(ngon.MustNew(n)).Signature()
		assert.Len(t, sig, n)
		assert.Equal(t, n, sum(sig), "n=%d", n)
	}
}

func TestSignature_Wraps(t *testing.T) {
	p := polygon.MustNew(ngon.MustNew(7), 0, 1, 4)
	assert.Equal(t, []int{1, 3, 3}, p.Signature())
}

func TestRotate_IsCyclicShiftOfSignature(t *testing.T) {
	g := ngon.MustNew(11)
	p := polygon.MustNew(g, 0, 1, 3, 7, 8)
	for k := -12; k <= 12; k++ {
		r := p.Rotate(k)
		assert.Equal(t, 11, sum(r.Signature()))
		assert.True(t, polygon.SameUnderRotation(p.Signature(), r.Signature()), "k=%d", k)
	}
	assert.Equal(t, []int{0, 1, 4, 5, 7}, p.Rotate(4).Vertices())
	assert.True(t, p.Rotate(11).Equal(p))
}

func TestFlip(t *testing.T) {
	g := ngon.MustNew(8)
	p := polygon.MustNew(g, 1, 2, 4)
	// 2 → 0, 4 → 6, first vertex fixed.
	assert.Equal(t, []int{0, 1, 6}, p.Flip().Vertices())
	assert.True(t, p.Flip().Flip().SameShape(p))
	assert.True(t, p.Flip().SameShape(p))
}

func TestFlip_ChiralShapeNotRotation(t *testing.T) {
	// Gaps 1,2,4 read clockwise are not a rotation of 4,2,1.
	g := ngon.MustNew(7)
	p := polygon.MustNew(g, 0, 1, 3)
	assert.False(t, polygon.SameUnderRotation(p.Signature(), p.Flip().Signature()))
	assert.True(t, p.SameShape(p.Flip()), "but they are the same shape under reflection")
}

// ------------------------------------------------------------------------
// 3. Partition.
// ------------------------------------------------------------------------

func TestPartition(t *testing.T) {
	g := ngon.MustNew(8)
	p := polygon.MustNew(g, 1, 2, 4, 5)

	inner, outer, err := p.Partition(2, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 5}, inner.Vertices())
	assert.Equal(t, []int{1, 2, 5}, outer.Vertices())

	inner, outer, err = p.Partition(4, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, inner.Vertices())
	assert.Equal(t, []int{1, 2, 4, 5}, outer.Vertices())
}

func TestPartition_Boundary(t *testing.T) {
	p := polygon.MustNew(ngon.MustNew(8), 1, 2, 4, 5)
	inner, outer, err := p.Partition(1, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, inner.Vertices())
	assert.Equal(t, []int{1, 2, 4, 5}, outer.Vertices())
}

func TestPartition_NotMember(t *testing.T) {
	p := polygon.MustNew(ngon.MustNew(8), 1, 2, 4, 5)
	_, _, err := p.Partition(1, 3)
	assert.ErrorIs(t, err, polygon.ErrNotMember)
	_, _, err = p.Partition(0, 4)
	assert.ErrorIs(t, err, polygon.ErrNotMember)
	assert.Panics(t, func() { p.MustPartition(3, 4) })
}

func TestPartition_DegenerateChord(t *testing.T) {
	p := polygon.MustNew(ngon.MustNew(9), 0, 1, 3, 7)
	inner, outer, err := p.Partition(3, 3)
	assert.ErrorIs(t, err, polygon.ErrDegenerateChord)
	assert.Zero(t, inner.Len())
	assert.Zero(t, outer.Len())
	assert.Panics(t, func() { p.MustPartition(0, 0) })
}

// ------------------------------------------------------------------------
// 4. Area and triangulation counts.
// ------------------------------------------------------------------------

func TestArea(t *testing.T) {
	sq := ngon.MustNew(4)
	assert.Equal(t, 0.0, polygon.MustNew(sq, 0, 2).Area())
	assert.InDelta(t, 0.5, polygon.MustNew(sq, 0, 1, 2).Area(), 1e-9)
	assert.InDelta(t, 1.0, polygon.Full(sq).Area(), 1e-9)

	hex := ngon.MustNew(6)
	assert.InDelta(t, 3*math.Sqrt(3)/2, polygon.Full(hex).Area(), 1e-9)
}

func TestArea_MatchesShoelace(t *testing.T) {
	g := ngon.MustNew(13)
	for _, vs := range [][]int{{0, 1, 2, 3}, {0, 2, 5, 9, 12}, {1, 3, 4, 8, 10, 11}} {
		p := polygon.MustNew(g, vs...)
		assert.InDelta(t, g.ShoelaceArea(vs...), p.Area(), 1e-9, "%v", p)
	}
	full := polygon.Full(g)
	assert.InDelta(t, g.ShoelaceArea(full.Vertices()...), full.Area(), 1e-9)
}

func TestNumTriangleCombos(t *testing.T) {
	g := ngon.MustNew(10)
	want := map[int]uint64{0: 0, 1: 0, 2: 0, 3: 1, 4: 2, 5: 5, 6: 14, 7: 42, 10: 1430}
	for k, combos := range want {
		vs := make([]int, k)
		for i := range vs {
			vs[i] = i
		}
		got, err := polygon.MustNew(g, vs...).NumTriangleCombos()
		require.NoError(t, err)
		assert.Equal(t, combos, got, "k=%d", k)
	}
}

func TestCatalan(t *testing.T) {
	for n, want := range []uint64{1, 1, 2, 5, 14, 42, 132, 429} {
		got, err := polygon.Catalan(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "n=%d", n)
	}

	got, err := polygon.Catalan(36)
	require.NoError(t, err)
	assert.Equal(t, uint64(11959798385860453492), got)

	_, err = polygon.Catalan(37)
	assert.ErrorIs(t, err, polygon.ErrCatalanOverflow)
}

func sum(xs []int) int {
	s := 0
	for _, x := range xs {
		s += x
	}

	return s
}
