package multiplier

import (
	"testing"

	"github.com/bluescarni/piranha-go/monomial"
)

// TestEstimateSizeWithinBoundForDenseProduct checks estimateSize against a
// product whose true output size is known in closed form: v1 and v2 both
// range contiguously over [0, span), so their sumset covers every integer in
// [0, 2*span-2] with no gaps, giving a true size of 2*span-1. This is the
// same dense-univariate shape the birthday-paradox sampler is meant for,
// unlike the toy 2-3 term tables elsewhere in this package.
func TestEstimateSizeWithinBoundForDenseProduct(t *testing.T) {
	const span = 513
	v1 := make([]monomial.Dense, span)
	v2 := make([]monomial.Dense, span)
	for i := 0; i < span; i++ {
		v1[i] = dk(t, int64(i))
		v2[i] = dk(t, int64(i))
	}
	n := 2*span - 1

	est, err := estimateSize[monomial.Dense, int](v1, v2, nil)
	if err != nil {
		t.Fatalf("estimateSize: %v", err)
	}
	if lo, hi := n/2, n*2; est < lo || est > hi {
		t.Fatalf("estimateSize = %d, want within [%d, %d] for true size %d", est, lo, hi, n)
	}
}
