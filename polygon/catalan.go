package polygon

import (
	"fmt"
	"math/big"
)

// Catalan returns the n-th Catalan number (2n)! / ((n+1)!·n!), the number of
// triangulations of a convex polygon with n+2 vertices. Catalan(n) is 0 for n < 0.
//
// Computed exactly with math/big and reported as ErrCatalanOverflow once it
// no longer fits a uint64 (n > 36).
func Catalan(n int) (uint64, error) {
	if n < 0 {
		return 0, nil
	}
	c := new(big.Int).Binomial(int64(2*n), int64(n))
	c.Quo(c, big.NewInt(int64(n+1)))
	if !c.IsUint64() {
		return 0, fmt.Errorf("%w: n=%d", ErrCatalanOverflow, n)
	}

	return c.Uint64(), nil
}
