package series

import (
	"errors"
	"fmt"

	"github.com/bluescarni/piranha-go/coeff"
	"github.com/bluescarni/piranha-go/monomial"
	"github.com/bluescarni/piranha-go/symbol"
	"github.com/bluescarni/piranha-go/term"
)

// ErrIncompatibleMonomial is returned when a caller hands a monomial that
// does not fit the series' symbol set (spec.md §7: "Incompatible symbol
// sets").
var ErrIncompatibleMonomial = errors.New("series: monomial incompatible with the series' symbol set")

// Series is a sparse polynomial: a symbol set paired with a term table
// mapping monomials of that arity to coefficients of ring C.
type Series[K monomial.Key, C any] struct {
	symbols symbol.Set
	ring    coeff.Ring[C]
	table   *term.Table[K, C]
}

// New returns an empty series over symbols, using ring for coefficient
// arithmetic.
func New[K monomial.Key, C any](symbols symbol.Set, ring coeff.Ring[C]) *Series[K, C] {
	return &Series[K, C]{symbols: symbols, ring: ring, table: term.New[K, C]()}
}

// FromTerm returns a single-term series. key must be compatible with
// symbols (monomial.Key.Compatible); the zero coefficient yields an empty
// series, matching the convention that a zero term is simply absent.
func FromTerm[K monomial.Key, C any](symbols symbol.Set, ring coeff.Ring[C], key K, coef C) (*Series[K, C], error) {
	s := New[K, C](symbols, ring)
	if ring.IsZero(coef) {
		return s, nil
	}
	if !key.Compatible(symbols) {
		return nil, fmt.Errorf("%w", ErrIncompatibleMonomial)
	}
	if _, err := s.table.Insert(key, coef); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Series[K, C]) Symbols() symbol.Set       { return s.symbols }
func (s *Series[K, C]) Ring() coeff.Ring[C]       { return s.ring }
func (s *Series[K, C]) Size() int                 { return s.table.Size() }
func (s *Series[K, C]) Table() *term.Table[K, C]  { return s.table }

// Range calls fn for every (monomial, coefficient) pair, in the table's
// iteration order (spec.md §6: "iteration over (monomial, coefficient)
// pairs").
func (s *Series[K, C]) Range(fn func(key K, coef C) bool) {
	s.table.Range(fn)
}

// clone makes an independent copy of s, optionally negating every
// coefficient as it is copied (used to fold the "-" of a subtraction into
// the base-table copy when the subtracted operand has more terms, spec.md
// §4.4 step 2 generalised to cover whichever operand is cheaper to copy).
func (s *Series[K, C]) clone(negate bool) *Series[K, C] {
	out := New[K, C](s.symbols, s.ring)
	s.table.Range(func(k K, c C) bool {
		if negate {
			c = s.ring.Neg(c)
		}
		out.table.UniqueInsert(out.table.EnsureBucket(k), k, c)
		return true
	})
	out.table.UpdateSize(s.table.Size())
	return out
}

// lift returns s unchanged if it already lives on merged, or otherwise a
// freshly built series with every monomial mapped via
// monomial.Key.MergeInto using pos.
func lift[K monomial.Key, C any](s *Series[K, C], merged symbol.Set, pos []int) *Series[K, C] {
	if s.symbols.Equal(merged) {
		return s
	}
	out := New[K, C](merged, s.ring)
	s.table.Range(func(k K, c C) bool {
		nk := k.MergeInto(merged, pos).(K)
		if _, err := out.table.Insert(nk, c); err != nil {
			panic(fmt.Sprintf("series: lift failed: %v", err))
		}
		return true
	})
	return out
}

// combine implements spec.md §4.4 step 2 for both Add (sign=+1) and Sub
// (sign=-1): lift both operands onto the merged symbol set, copy whichever
// has more terms as the base (negated in the copy if that base happens to
// be b and sign is -1, folding the subtraction's negation into the copy
// pass), then merge the other operand's terms in with hit/miss-zero-drop
// semantics.
func combine[K monomial.Key, C any](a, b *Series[K, C], sign int) (*Series[K, C], error) {
	merged, posA, posB := symbol.Merge(a.symbols, b.symbols)
	la := lift(a, merged, posA)
	lb := lift(b, merged, posB)

	var base *Series[K, C]
	var other *Series[K, C]
	var otherSign int
	if la.Size() >= lb.Size() {
		base = la.clone(false)
		other = lb
		otherSign = sign
	} else {
		base = lb.clone(sign < 0)
		other = la
		otherSign = 1
	}

	var mergeErr error
	other.table.Range(func(k K, c C) bool {
		if otherSign < 0 {
			c = base.ring.Neg(c)
		}
		if existing, ok := base.table.Get(k); ok {
			sum := base.ring.Add(existing, c)
			if base.ring.IsZero(sum) {
				base.table.Delete(k)
			} else {
				base.table.SetCoeff(k, sum)
			}
			return true
		}
		if base.ring.IsZero(c) {
			return true
		}
		if _, err := base.table.Insert(k, c); err != nil {
			mergeErr = err
			return false
		}
		return true
	})
	if mergeErr != nil {
		return nil, mergeErr
	}
	return base, nil
}

// Add returns a + b.
func Add[K monomial.Key, C any](a, b *Series[K, C]) (*Series[K, C], error) {
	return combine(a, b, 1)
}

// Sub returns a - b.
func Sub[K monomial.Key, C any](a, b *Series[K, C]) (*Series[K, C], error) {
	return combine(a, b, -1)
}

// AddAssign sets s to s + other.
func (s *Series[K, C]) AddAssign(other *Series[K, C]) error {
	r, err := Add(s, other)
	if err != nil {
		return err
	}
	*s = *r
	return nil
}

// SubAssign sets s to s - other.
func (s *Series[K, C]) SubAssign(other *Series[K, C]) error {
	r, err := Sub(s, other)
	if err != nil {
		return err
	}
	*s = *r
	return nil
}
