// Package xmath collects the small numeric helpers the multiplier and the
// rational coefficient fast-path need: least-common-multiple over
// arbitrary-precision integers and integer square-root helpers used for the
// estimator's per-trial cap. These mirror
// original_source/src/detail/gcd.hpp and original_source/src/safe_cast.hpp,
// adapted to lean on math/big's own GCD instead of hand-rolling Euclid's
// algorithm, since math/big already provides it correctly and efficiently.
package xmath

import "math/big"

// LCM returns the least common multiple of a and b, both assumed positive
// (as they always are here: denominators of normalised rationals). It is
// the building block for the rational coefficient fast-path of spec.md
// §4.5.1, which accumulates L = lcm(q_i) over every denominator of both
// operands.
func LCM(a, b *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int).Set(b)
	}
	if b.Sign() == 0 {
		return new(big.Int).Set(a)
	}
	g := new(big.Int).GCD(nil, nil, a, b)
	out := new(big.Int).Mul(a, b)
	out.Div(out, g)
	out.Abs(out)
	return out
}

// SqrtFloor returns floor(sqrt(n)) for n >= 0 (and 0 for n <= 0), using
// math/big's integer square root. The multiplier's estimator computes its
// per-trial cap k_max = floor(sqrt(|A|*|B|/c)) of spec.md §4.5.2 with
// SqrtFloorProduct instead.
func SqrtFloor(n int64) int64 {
	if n <= 0 {
		return 0
	}
	b := new(big.Int).Sqrt(big.NewInt(n))
	return b.Int64()
}

// SqrtFloorProduct returns floor(sqrt((a*b)/c)), computing the product and
// division at arbitrary precision before taking the root so that a*b never
// overflows int64 for large series even though the result is returned as
// an int64 (the root itself is expected to fit).
func SqrtFloorProduct(a, b, c int64) int64 {
	prod := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
	prod.Div(prod, big.NewInt(c))
	return new(big.Int).Sqrt(prod).Int64()
}
