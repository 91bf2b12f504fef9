package multiplier

import "github.com/bluescarni/piranha-go/monomial"

type config[K monomial.Key] struct {
	truncate  bool
	degree    func(K) int64
	maxDegree int64
}

// Option configures an optional truncation hook on a single call to Mul.
type Option[K monomial.Key] func(*config[K])

// WithTruncation installs the degree-based skip functor of spec.md §4.5.6:
// degree reports the participating total degree of a monomial, and the
// product of any pair whose degrees sum past maxDegree is skipped. Mul
// pre-sorts its copy of the second operand by degree and precomputes both
// degree vectors so the resulting skip predicate is monotone in j, exactly
// as spec.md §4.5.6 requires.
func WithTruncation[K monomial.Key](degree func(K) int64, maxDegree int64) Option[K] {
	return func(c *config[K]) {
		c.truncate = true
		c.degree = degree
		c.maxDegree = maxDegree
	}
}
