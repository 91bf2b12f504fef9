package series

import (
	"github.com/bluescarni/piranha-go/monomial"
	"github.com/bluescarni/piranha-go/multiplier"
	"github.com/bluescarni/piranha-go/symbol"
)

// Mul returns a * b, delegating to the base multiplier (spec.md §4.4 step
// 3) after lifting both operands onto their merged symbol set. If a
// process-wide truncation policy is active (SetTruncateDegree /
// SetTruncateDegreeFor), its degree functor is threaded through as a
// multiplier.WithTruncation option.
func Mul[K monomial.Key, C any](a, b *Series[K, C]) (*Series[K, C], error) {
	merged, posA, posB := symbol.Merge(a.symbols, b.symbols)
	la := lift(a, merged, posA)
	lb := lift(b, merged, posB)

	var opts []multiplier.Option[K]
	if pol := currentTruncation(); pol != nil {
		positions := pol.positionsIn(merged)
		opts = append(opts, multiplier.WithTruncation(func(k K) int64 {
			return degreeOf(k, positions)
		}, pol.degree))
	}

	resultTable, err := multiplier.Mul[K, C](la.table, lb.table, la.ring, opts...)
	if err != nil {
		return nil, err
	}
	return &Series[K, C]{symbols: merged, ring: la.ring, table: resultTable}, nil
}
