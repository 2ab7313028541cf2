package ngon

import "gonum.org/v1/gonum/floats/scalar"

const (
	// RelTolerance is the relative tolerance under which two areas are equal.
	RelTolerance = 1e-9

	// AbsTolerance is the absolute floor so that round-off near zero compares equal to zero.
	AbsTolerance = 1e-12
)

// ApproxEqual reports whether a and b are equal within AbsTolerance or RelTolerance.
func ApproxEqual(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, AbsTolerance, RelTolerance)
}

// Less is a strict less-than that treats approximately equal values as equal.
// Two congruent triangles computed along different chords must not compare
// as smaller than each other.
func Less(a, b float64) bool {
	return !ApproxEqual(a, b) && a < b
}
