package coeff

import (
	"errors"
	"math/big"
)

// ErrZeroDivision is returned by Rational.FromNumDen when den is zero.
// This is normally impossible for a denominator produced by NumDen on a
// valid coefficient; it arises only from malformed deserialized input or
// a corrupted rescale computation (spec.md §7: "Zero division... arises
// from malformed deserialized input").
var ErrZeroDivision = errors.New("coeff: zero denominator")

// Ring is the minimal contract the multiplier requires of a coefficient
// type: an additive monoid with a multiplicative operation and a fused
// multiply-accumulate, per spec.md §4.6. Implementations are expected to be
// comparable-by-value adapters around an immutable or copy-on-write numeric
// type (math/big's own types are mutated in place by convention; the Ring
// methods below always return fresh values so that series.Series, which
// hands out coefficients by value, never observes aliasing).
type Ring[C any] interface {
	// Zero returns the additive identity.
	Zero() C
	// IsZero reports whether v is the additive identity.
	IsZero(v C) bool
	// Add returns a + b.
	Add(a, b C) C
	// Sub returns a - b.
	Sub(a, b C) C
	// Neg returns -a.
	Neg(a C) C
	// Mul returns a * b.
	Mul(a, b C) C
	// MulAdd returns acc + a*b, the fused multiply-accumulate spec.md §4.6
	// requires be closed in C.
	MulAdd(acc, a, b C) C
}

// Rational extends Ring with access to a coefficient's numerator and
// denominator as arbitrary-precision integers, required by the rational
// fast-path of spec.md §4.5.1.
type Rational[C any] interface {
	Ring[C]
	// NumDen returns the numerator and denominator of v. den is always
	// strictly positive.
	NumDen(v C) (num, den *big.Int)
	// FromNumDen builds a coefficient from a numerator and a denominator.
	// It returns ErrZeroDivision if den is zero.
	FromNumDen(num, den *big.Int) (C, error)
}

// BigInt adapts *big.Int to Ring[*big.Int]. The zero value is ready to use.
type BigInt struct{}

func (BigInt) Zero() *big.Int { return new(big.Int) }

func (BigInt) IsZero(v *big.Int) bool { return v == nil || v.Sign() == 0 }

func (BigInt) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(nz(a), nz(b)) }

func (BigInt) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(nz(a), nz(b)) }

func (BigInt) Neg(a *big.Int) *big.Int { return new(big.Int).Neg(nz(a)) }

func (BigInt) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(nz(a), nz(b)) }

func (BigInt) MulAdd(acc, a, b *big.Int) *big.Int {
	out := new(big.Int).Mul(nz(a), nz(b))
	out.Add(out, nz(acc))
	return out
}

func nz(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}

// BigRat adapts *big.Rat to Ring[*big.Rat] and Rational[*big.Rat]. The zero
// value is ready to use.
type BigRat struct{}

func (BigRat) Zero() *big.Rat { return new(big.Rat) }

func (BigRat) IsZero(v *big.Rat) bool { return v == nil || v.Sign() == 0 }

func (BigRat) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(nzr(a), nzr(b)) }

func (BigRat) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(nzr(a), nzr(b)) }

func (BigRat) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(nzr(a)) }

func (BigRat) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(nzr(a), nzr(b)) }

func (BigRat) MulAdd(acc, a, b *big.Rat) *big.Rat {
	out := new(big.Rat).Mul(nzr(a), nzr(b))
	out.Add(out, nzr(acc))
	return out
}

func (BigRat) NumDen(v *big.Rat) (*big.Int, *big.Int) {
	v = nzr(v)
	return new(big.Int).Set(v.Num()), new(big.Int).Set(v.Denom())
}

func (BigRat) FromNumDen(num, den *big.Int) (*big.Rat, error) {
	if den == nil || den.Sign() == 0 {
		return nil, ErrZeroDivision
	}
	out := new(big.Rat)
	return out.SetFrac(num, den), nil
}

func nzr(v *big.Rat) *big.Rat {
	if v == nil {
		return new(big.Rat)
	}
	return v
}

var (
	_ Ring[*big.Int]      = BigInt{}
	_ Ring[*big.Rat]      = BigRat{}
	_ Rational[*big.Rat] = BigRat{}
)
