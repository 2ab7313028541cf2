package maxtri_test

import (
	"fmt"

	"github.com/katalvlaran/polytri/maxtri"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleCountForTriangle
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Heptagon, reference triangle (0,1,4). Removing it leaves the edge 0–1,
//	the quadrilateral [1 2 3 4] and the quadrilateral [4 5 6 0]. Each
//	quadrilateral has two diagonals and both split it into triangles smaller
//	than the reference, so 2·2 = 4 configurations.
func ExampleCountForTriangle() {
	n, err := maxtri.CountForTriangle(7, 0, 1, 4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(n)
	// Output:
	// 4
}

// ExampleCountAll prints the totals for small polygons, with and without the
// symmetry cache.
func ExampleCountAll() {
	for n := 4; n <= 8; n++ {
		cached, _ := maxtri.CountAll(n)
		plain, _ := maxtri.CountAll(n, maxtri.WithCache(false))
		fmt.Printf("n=%d total=%d same=%t\n", n, cached.Total, cached.Total == plain.Total)
	}
	// Output:
	// n=4 total=0 same=true
	// n=5 total=5 same=true
	// n=6 total=2 same=true
	// n=7 total=42 same=true
	// n=8 total=64 same=true
}
