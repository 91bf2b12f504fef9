package kronecker

import (
	"errors"
	"fmt"
	"math/big"
	"sync"
)

// ErrOverflow is returned by Encode when a component of the vector to be
// encoded falls outside the documented box for its arity, or by Decode when
// the code is outside [hMin, hMax] for the stated arity.
var ErrOverflow = errors.New("kronecker: value out of the encodable range")

// ErrArity is returned when the requested arity exceeds MaxArity.
var ErrArity = errors.New("kronecker: arity exceeds the maximum supported by this code width")

// Limits is the per-arity quintuple (bits, lower bound, upper bound, hMin,
// hMax) published by the codec, following spec.md §4.1.
type Limits struct {
	Bits uint   // per-component bit width b; R = 2^b.
	L    int64  // lower bound L_i, identical for every component.
	U    int64  // upper bound U_i, identical for every component.
	HMin int64  // smallest representable code for this arity.
	HMax int64  // largest representable code for this arity.
}

var (
	tableOnce  sync.Once
	table      []Limits
	maxArityV  int
)

func build() {
	table = make([]Limits, 1, 64)
	table[0] = Limits{} // arity 0: c = 0.

	for n := 1; ; n++ {
		lim, ok := determineLimit(n)
		if !ok {
			break
		}
		table = append(table, lim)
	}
	maxArityV = len(table) - 1
}

// determineLimit finds the largest bit width b for which h_min, h_max and
// h_max-h_min for an n-component vector are representable in an int64. It
// mirrors kronecker_monomial<SignedInteger>::determine_limit from the
// original C++ implementation, using math/big because the geometric-sum
// intermediates transiently exceed 64 bits before being rejected.
func determineLimit(n int) (Limits, bool) {
	var best Limits
	found := false

	one := big.NewInt(1)
	maxInt64 := big.NewInt(9223372036854775807)
	minInt64 := new(big.Int).Neg(new(big.Int).Add(maxInt64, one))

	for b := 1; b <= 2048; b++ {
		// geom = (2^(b*n) - 1) / (2^b - 1), the exact integer value of
		// sum_{k=0}^{n-1} 2^(b*k).
		pow2bn := new(big.Int).Lsh(one, uint(b*n))
		numerator := new(big.Int).Sub(pow2bn, one)
		denom := new(big.Int).Sub(new(big.Int).Lsh(one, uint(b)), one)
		geom := new(big.Int).Div(numerator, denom)

		halfLow := new(big.Int).Neg(new(big.Int).Lsh(one, uint(b-1)))       // -2^(b-1)
		halfHigh := new(big.Int).Sub(new(big.Int).Lsh(one, uint(b-1)), one) // 2^(b-1)-1

		hMin := new(big.Int).Mul(halfLow, geom)
		hMax := new(big.Int).Mul(halfHigh, geom)
		diff := new(big.Int).Sub(hMax, hMin)

		if hMin.Cmp(minInt64) < 0 || hMax.Cmp(maxInt64) > 0 || diff.Cmp(maxInt64) > 0 {
			break
		}
		best = Limits{
			Bits: uint(b),
			L:    halfLow.Int64(),
			U:    halfHigh.Int64(),
			HMin: hMin.Int64(),
			HMax: hMax.Int64(),
		}
		found = true
	}
	return best, found
}

// MaxArity returns the largest arity for which the codec publishes a valid
// code range, i.e. N_max in spec.md §4.1.
func MaxArity() int {
	tableOnce.Do(build)
	return maxArityV
}

// LimitsFor returns the published (bits, L, U, hMin, hMax) quintuple for the
// given arity. The second return value is false if n exceeds MaxArity.
func LimitsFor(n int) (Limits, bool) {
	tableOnce.Do(build)
	if n < 0 || n >= len(table) {
		return Limits{}, false
	}
	return table[n], true
}

// Encode packs the n-vector e (n = len(e)) into a single int64 code. It
// fails with ErrOverflow if any component lies outside [L, U] for this
// arity, and with ErrArity if n exceeds MaxArity.
func Encode(e []int64) (int64, error) {
	n := len(e)
	if n == 0 {
		return 0, nil
	}
	lim, ok := LimitsFor(n)
	if !ok {
		return 0, fmt.Errorf("%w: arity %d", ErrArity, n)
	}
	for _, v := range e {
		if v < lim.L || v > lim.U {
			return 0, fmt.Errorf("%w: component %d out of [%d, %d]", ErrOverflow, v, lim.L, lim.U)
		}
	}
	code := e[0] - lim.L
	shift := lim.Bits
	for i := 1; i < n; i++ {
		code += (e[i] - lim.L) << shift
		shift += lim.Bits
	}
	return code + lim.HMin, nil
}

// Decode unpacks code into an n-component exponent vector. It fails with
// ErrOverflow if code lies outside [hMin, hMax] for the stated arity.
func Decode(code int64, n int) ([]int64, error) {
	if n == 0 {
		if code != 0 {
			return nil, fmt.Errorf("%w: arity-0 vector must encode as 0", ErrOverflow)
		}
		return nil, nil
	}
	lim, ok := LimitsFor(n)
	if !ok {
		return nil, fmt.Errorf("%w: arity %d", ErrArity, n)
	}
	if code < lim.HMin || code > lim.HMax {
		return nil, fmt.Errorf("%w: code %d out of [%d, %d]", ErrOverflow, code, lim.HMin, lim.HMax)
	}
	u := uint64(code - lim.HMin)
	mask := uint64(1)<<lim.Bits - 1
	out := make([]int64, n)
	shift := uint(0)
	for i := 0; i < n; i++ {
		out[i] = int64((u>>shift)&mask) + lim.L
		shift += lim.Bits
	}
	return out, nil
}

// InRange reports whether code is a valid code for the given arity (i.e.
// within [hMin, hMax]), without allocating a decoded vector.
func InRange(code int64, n int) bool {
	if n == 0 {
		return code == 0
	}
	lim, ok := LimitsFor(n)
	if !ok {
		return false
	}
	return code >= lim.HMin && code <= lim.HMax
}
