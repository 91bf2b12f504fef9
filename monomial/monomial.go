package monomial

import "github.com/bluescarni/piranha-go/symbol"

// Key is the contract both monomial representations satisfy, per spec.md
// §3's "Monomial operations (required of both variants)". The two
// representations are never mixed within one series: Equal reports false
// and Multiply returns an error when the other operand is not of the same
// concrete type.
type Key interface {
	// Arity returns the number of exponent components, i.e. the size of
	// the symbol set this monomial was built against.
	Arity() int
	// Hash returns a hash of the monomial suitable for use as a term
	// table key. Equal monomials have equal hashes.
	Hash() uint64
	// Equal reports whether two monomials of the same concrete type and
	// arity represent the same exponent vector.
	Equal(other Key) bool
	// Exponent returns the exponent at position i.
	Exponent(i int) int64
	// Compatible reports whether the monomial's arity matches s's size
	// (and, for Packed, whether its code lies within the codec's range
	// for that arity).
	Compatible(s symbol.Set) bool
	// Multiply returns the product of this monomial and other. It fails
	// with a monomial-overflow error if any resulting exponent would
	// leave the representable range.
	Multiply(other Key) (Key, error)
	// MergeInto lifts the monomial into a larger symbol set: target is
	// the merged set, positions[i] gives the position in target that
	// this monomial's component i maps to; components at newly
	// introduced positions are zero.
	MergeInto(target symbol.Set, positions []int) Key
}

// IsUnitary reports whether a monomial represents the "all exponents zero"
// unitary monomial (spec.md §3: "a term with a zero monomial ... is
// unitary").
func IsUnitary(k Key) bool {
	for i := 0; i < k.Arity(); i++ {
		if k.Exponent(i) != 0 {
			return false
		}
	}
	return true
}
