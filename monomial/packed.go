package monomial

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/bluescarni/piranha-go/kronecker"
	"github.com/bluescarni/piranha-go/symbol"
)

// Packed is the Kronecker-substitution monomial representation: a single
// int64 code plus the implied arity needed to decode it (spec.md §3).
// Arity 0 is always represented by code 0.
type Packed struct {
	code  int64
	arity int
}

// NewPacked encodes exponents into a Packed monomial.
func NewPacked(exponents []int64) (Packed, error) {
	code, err := kronecker.Encode(exponents)
	if err != nil {
		return Packed{}, err
	}
	return Packed{code: code, arity: len(exponents)}, nil
}

// NewPackedUnit builds the unitary (all-zero) Packed monomial of the given
// arity.
func NewPackedUnit(arity int) Packed {
	return Packed{code: 0, arity: arity}
}

// NewPackedFromCode wraps a raw Kronecker code and arity into a Packed
// monomial, validating that the code lies within the codec's range for
// that arity. Used by persistence codecs reading a previously encoded
// code back off the wire, where a corrupted or truncated stream must be
// caught rather than silently producing an invalid monomial.
func NewPackedFromCode(code int64, arity int) (Packed, error) {
	if arity == 0 {
		if code != 0 {
			return Packed{}, fmt.Errorf("%w: nonzero code %d for arity 0", kronecker.ErrOverflow, code)
		}
		return Packed{code: 0, arity: 0}, nil
	}
	if !kronecker.InRange(code, arity) {
		return Packed{}, fmt.Errorf("%w: code %d out of range for arity %d", kronecker.ErrOverflow, code, arity)
	}
	return Packed{code: code, arity: arity}, nil
}

// Code returns the raw Kronecker code.
func (p Packed) Code() int64 { return p.code }

func (p Packed) Arity() int { return p.arity }

func (p Packed) Exponent(i int) int64 {
	v, err := kronecker.Decode(p.code, p.arity)
	if err != nil {
		panic(fmt.Sprintf("monomial: Exponent called on invalid Packed monomial: %v", err))
	}
	return v[i]
}

func (p Packed) Hash() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(p.code))
	return xxhash.Sum64(buf[:])
}

func (p Packed) Equal(other Key) bool {
	o, ok := other.(Packed)
	return ok && o.arity == p.arity && o.code == p.code
}

func (p Packed) Compatible(s symbol.Set) bool {
	if s.Size() != p.arity {
		return false
	}
	return kronecker.InRange(p.code, p.arity)
}

// Multiply computes the product monomial. Per spec.md §4.2, the packed
// variant's multiply is, in the non-overflowing case, a single int64
// addition of the two codes: writing the Kronecker code as
// c = Σ_i e_i·R^i (the "+h_min" term of the encode formula always cancels
// against Σ_i L·R^i = h_min exactly, by construction of the per-arity
// table), code(a)+code(b) is precisely encode(a+b). The catch is that this
// identity only holds when no per-component sum a_i+b_i leaves [L, U] —
// otherwise a component "carries" into its neighbour's digit and corrupts
// the whole vector even though the raw sum might still fall inside
// [hMin, hMax]. So overflow detection must be, and is here, a per-component
// check (spec.md §4.2's first, decode-based option), not a bare range test
// on the summed code.
func (p Packed) Multiply(other Key) (Key, error) {
	o, ok := other.(Packed)
	if !ok {
		return nil, fmt.Errorf("monomial: Multiply called with mismatched key type")
	}
	if o.arity != p.arity {
		return nil, fmt.Errorf("monomial: Multiply called with mismatched arity %d != %d", p.arity, o.arity)
	}
	if p.arity == 0 {
		return Packed{code: 0, arity: 0}, nil
	}
	ea, err := kronecker.Decode(p.code, p.arity)
	if err != nil {
		return nil, err
	}
	eb, err := kronecker.Decode(o.code, o.arity)
	if err != nil {
		return nil, err
	}
	sum := make([]int64, p.arity)
	for i := range sum {
		sum[i] = ea[i] + eb[i]
	}
	code, err := kronecker.Encode(sum)
	if err != nil {
		return nil, err
	}
	return Packed{code: code, arity: p.arity}, nil
}

func (p Packed) MergeInto(target symbol.Set, positions []int) Key {
	src, err := kronecker.Decode(p.code, p.arity)
	if err != nil {
		panic(fmt.Sprintf("monomial: MergeInto called on invalid Packed monomial: %v", err))
	}
	out := make([]int64, target.Size())
	for i, pos := range positions {
		out[pos] = src[i]
	}
	code, err := kronecker.Encode(out)
	if err != nil {
		// The merged vector uses exactly the source's components plus
		// zeros, but the per-arity box narrows as the arity grows, so
		// this fails when a source component lies outside the target
		// arity's box, or when the target arity exceeds
		// kronecker.MaxArity.
		panic(fmt.Sprintf("monomial: MergeInto produced an unencodable vector: %v", err))
	}
	return Packed{code: code, arity: target.Size()}
}

var _ Key = Packed{}
