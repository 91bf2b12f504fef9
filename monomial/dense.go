package monomial

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/bluescarni/piranha-go/symbol"
)

// ErrOverflow is returned by Multiply when a resulting exponent would leave
// the documented safe range [math.MinInt32+1, math.MaxInt32-1] (spec.md
// §4.2: "the unpacked variant multiplies component-wise and must itself
// detect per-component overflow relative to a documented safe range").
var ErrOverflow = errors.New("monomial: exponent overflow")

// denseSafeMin and denseSafeMax bound the exponents Dense accepts. One unit
// of headroom below int32's limits keeps intermediate sums detectable
// before they wrap, the documented safe range spec.md §4.2 calls for.
const (
	denseSafeMin = int64(math.MinInt32) + 1
	denseSafeMax = int64(math.MaxInt32) - 1
)

// Dense is the unpacked monomial representation: a fixed-length vector of
// signed exponents, one per symbol.
type Dense struct {
	exp []int32
}

// NewDense builds a Dense monomial from an exponent vector, copying it.
func NewDense(exponents []int64) (Dense, error) {
	out := make([]int32, len(exponents))
	for i, e := range exponents {
		if e < denseSafeMin || e > denseSafeMax {
			return Dense{}, fmt.Errorf("%w: exponent %d out of range", ErrOverflow, e)
		}
		out[i] = int32(e)
	}
	return Dense{exp: out}, nil
}

// NewDenseUnit builds the unitary (all-zero) Dense monomial of the given
// arity.
func NewDenseUnit(arity int) Dense {
	return Dense{exp: make([]int32, arity)}
}

func (d Dense) Arity() int { return len(d.exp) }

func (d Dense) Exponent(i int) int64 { return int64(d.exp[i]) }

func (d Dense) Hash() uint64 {
	buf := make([]byte, 4*len(d.exp))
	for i, e := range d.exp {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(e))
	}
	return xxhash.Sum64(buf)
}

func (d Dense) Equal(other Key) bool {
	o, ok := other.(Dense)
	if !ok || len(o.exp) != len(d.exp) {
		return false
	}
	for i := range d.exp {
		if d.exp[i] != o.exp[i] {
			return false
		}
	}
	return true
}

func (d Dense) Compatible(s symbol.Set) bool {
	return s.Size() == len(d.exp)
}

func (d Dense) Multiply(other Key) (Key, error) {
	o, ok := other.(Dense)
	if !ok {
		return nil, fmt.Errorf("monomial: Multiply called with mismatched key type")
	}
	if len(o.exp) != len(d.exp) {
		return nil, fmt.Errorf("monomial: Multiply called with mismatched arity %d != %d", len(d.exp), len(o.exp))
	}
	out := make([]int32, len(d.exp))
	for i := range d.exp {
		sum := int64(d.exp[i]) + int64(o.exp[i])
		if sum < denseSafeMin || sum > denseSafeMax {
			return nil, fmt.Errorf("%w: component %d sums to %d", ErrOverflow, i, sum)
		}
		out[i] = int32(sum)
	}
	return Dense{exp: out}, nil
}

func (d Dense) MergeInto(target symbol.Set, positions []int) Key {
	out := make([]int32, target.Size())
	for i, p := range positions {
		out[p] = d.exp[i]
	}
	return Dense{exp: out}
}

var _ Key = Dense{}
