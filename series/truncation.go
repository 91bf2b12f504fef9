package series

import (
	"sync/atomic"

	"github.com/bluescarni/piranha-go/monomial"
	"github.com/bluescarni/piranha-go/symbol"
)

// truncation holds a process-wide auto-truncation policy: multiplication
// drops any product term whose participating total degree exceeds degree.
// names, when non-empty, restricts which symbols contribute to that degree
// (spec.md §6: "optionally restricted to a named subset of symbols").
type truncation struct {
	degree int64
	names  []string
}

var truncationState atomic.Pointer[truncation]

// SetTruncateDegree installs a process-wide degree truncation policy over
// every symbol. Multiplication built through series.Mul will use it to
// construct the multiplier's skip functor (spec.md §4.5.6).
func SetTruncateDegree(degree int64) {
	truncationState.Store(&truncation{degree: degree})
}

// SetTruncateDegreeFor installs a truncation policy restricted to the
// total degree contributed by names only.
func SetTruncateDegreeFor(degree int64, names []string) {
	truncationState.Store(&truncation{degree: degree, names: append([]string(nil), names...)})
}

// ClearTruncateDegree removes any active truncation policy.
func ClearTruncateDegree() {
	truncationState.Store(nil)
}

// currentTruncation returns the active policy, or nil if none is set.
func currentTruncation() *truncation {
	return truncationState.Load()
}

// positionsIn resolves t.names to positions within s, or nil (meaning "all
// positions") if no restriction is configured.
func (t *truncation) positionsIn(s symbol.Set) []int {
	if t == nil || len(t.names) == 0 {
		return nil
	}
	pos := make([]int, 0, len(t.names))
	for _, name := range t.names {
		if i, ok := s.Index(name); ok {
			pos = append(pos, i)
		}
	}
	return pos
}

// degreeOf sums the exponents of k at the given positions, or across every
// component of k when positions is nil.
func degreeOf(k monomial.Key, positions []int) int64 {
	if positions == nil {
		var d int64
		for i := 0; i < k.Arity(); i++ {
			d += k.Exponent(i)
		}
		return d
	}
	var d int64
	for _, i := range positions {
		d += k.Exponent(i)
	}
	return d
}
