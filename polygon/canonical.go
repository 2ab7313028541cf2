package polygon

import (
	"slices"
	"strconv"
	"strings"
)

// Key identifies a polygon shape up to rotation and reflection on a given N-gon.
// Keys are comparable and can be used as map keys.
type Key struct {
	N   int
	sig string
}

// String returns "N:g1,g2,...".
func (k Key) String() string {
	return strconv.Itoa(k.N) + ":" + k.sig
}

// Canonical returns the shape key of p: the lexicographically smallest rotation
// of its signature or of its reversed signature.
func (p Polygon) Canonical() Key {
	sig := p.Signature()
	best := smallestRotation(sig)
	slices.Reverse(sig)
	if mirrored := smallestRotation(sig); slices.Compare(mirrored, best) < 0 {
		best = mirrored
	}

	return Key{N: p.g.N(), sig: encode(best)}
}

// SameShape reports whether q is a rotation or reflection of p on the same N-gon.
func (p Polygon) SameShape(q Polygon) bool {
	return p.Canonical() == q.Canonical()
}

// SameUnderRotation reports whether b is a cyclic rotation of a.
func SameUnderRotation(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	doubled := append(slices.Clone(a), a...)
	for i := range a {
		if slices.Equal(doubled[i:i+len(a)], b) {
			return true
		}
	}

	return false
}

// smallestRotation returns the lexicographically smallest cyclic rotation of s.
// Signatures are short, so the quadratic scan is fine.
func smallestRotation(s []int) []int {
	n := len(s)
	best := slices.Clone(s)
	cand := make([]int, n)
	for r := 1; r < n; r++ {
		copy(cand, s[r:])
		copy(cand[n-r:], s[:r])
		if slices.Compare(cand, best) < 0 {
			copy(best, cand)
		}
	}

	return best
}

func encode(gaps []int) string {
	var b strings.Builder
	for i, g := range gaps {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(g))
	}

	return b.String()
}
