package multiplier

import (
	"errors"

	"github.com/bluescarni/piranha-go/internal/xmath"
	"github.com/bluescarni/piranha-go/monomial"
	"github.com/bluescarni/piranha-go/term"
)

// ErrEstimatorOverflow is returned by estimateSize if its running counter
// would overflow (spec.md §4.5.2: "Overflow in the running counter is a
// hard error"); unreachable in practice, since the per-trial cap already
// bounds the counter well below any overflow threshold.
var ErrEstimatorOverflow = errors.New("multiplier: estimator counter overflow")

const (
	estimatorTrials     = 10
	estimatorMultiplier = 2
	estimatorSeed       = 0x9E3779B97F4A7C15
)

// prngState is a 64-bit linear congruential generator (multiply by a prime,
// add one) with an xorshift applied to each output: an adequate,
// deterministic, seedable shuffle source for a sampler whose only
// requirement is reproducibility, not cryptographic strength.
type prngState struct{ s uint64 }

const mixPrime = 2971215073

func (p *prngState) next() uint64 {
	p.s = p.s*mixPrime + 1
	x := p.s
	x ^= x >> 29
	return x
}

func (p *prngState) shuffle(idx []int) {
	for i := len(idx) - 1; i > 0; i-- {
		j := int(p.next() % uint64(i+1))
		idx[i], idx[j] = idx[j], idx[i]
	}
}

// estimateSize reproduces estimate_final_series_size from
// original_source/src/base_series_multiplier.hpp: ten trials of randomly
// pairing up indices into v1/v2 and multiplying them term by term into a
// scratch table, stopping a trial the moment a duplicate monomial is
// produced (the birthday-paradox signal), capped at k_max per trial. The
// squared, rescaled mean of the per-trial counts estimates the output size.
//
// result arity is taken to be 1 (scalar coefficient product); the
// composite multi-output-term case spec.md §4.5.2 allows for has no
// instance among the coefficient types this module supports.
func estimateSize[K monomial.Key, C any](v1, v2 []K, skip func(i, j int) bool) (int, error) {
	size1, size2 := len(v1), len(v2)
	if size1 == 0 || size2 == 0 {
		return 0, nil
	}

	idx1 := make([]int, size1)
	for i := range idx1 {
		idx1[i] = i
	}
	idx2 := make([]int, size2)
	for i := range idx2 {
		idx2[i] = i
	}

	maxM := int(xmath.SqrtFloorProduct(int64(size1), int64(size2), estimatorMultiplier))
	rng := &prngState{s: estimatorSeed}

	var total int64
	for trial := 0; trial < estimatorTrials; trial++ {
		rng.shuffle(idx1)
		rng.shuffle(idx2)

		scratch := term.New[K, struct{}]()
		count := 0
		i1, i2 := 0, 0
		for count < maxM {
			if i1 == size1 {
				i1 = 0
				if size2 > 1 {
					last := idx2[size2-1]
					copy(idx2[1:], idx2[:size2-1])
					idx2[0] = last
				}
				i2 = 0
			}
			if i2 == size2 {
				i2 = 0
			}
			a, b := v1[idx1[i1]], v2[idx2[i2]]
			if skip != nil && skip(idx1[i1], idx2[i2]) {
				i1++
				i2++
				continue
			}
			prod, err := a.Multiply(b)
			if err != nil {
				return 0, err
			}
			before := scratch.EntryCount()
			if _, err := scratch.Insert(prod.(K), struct{}{}); err != nil {
				return 0, err
			}
			if scratch.EntryCount() == before {
				// duplicate monomial: birthday-paradox signal, stop the trial.
				break
			}
			count++
			i1++
			i2++
		}
		newTotal := total + int64(count)
		if newTotal < total {
			return 0, ErrEstimatorOverflow
		}
		total = newTotal
	}

	mean := total / estimatorTrials
	return int(mean * mean * estimatorMultiplier), nil
}
