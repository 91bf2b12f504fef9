package multiplier

import (
	"context"
	"math/big"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/bluescarni/piranha-go/coeff"
	"github.com/bluescarni/piranha-go/internal/xmath"
	"github.com/bluescarni/piranha-go/monomial"
	"github.com/bluescarni/piranha-go/term"
	"github.com/bluescarni/piranha-go/tuning"
)

// Mul implements spec.md §4.5 end to end: preparation (with the rational
// rescale fast-path), output-size estimation, parallel cache-blocked
// multiplication into disjoint partial tables, and deterministic
// finalisation. a and b must already share a symbol set and arity; Mul has
// no notion of symbol sets at all, that lift happens one layer up in
// package series.
func Mul[K monomial.Key, C any](a, b *term.Table[K, C], ring coeff.Ring[C], opts ...Option[K]) (*term.Table[K, C], error) {
	var cfg config[K]
	for _, o := range opts {
		o(&cfg)
	}

	// 4.5.1: the larger operand goes first.
	if a.Size() < b.Size() {
		a, b = b, a
	}
	size1, size2 := a.Size(), b.Size()
	if size1 == 0 || size2 == 0 {
		return term.New[K, C](), nil
	}

	v1, cf1 := snapshot(a)
	v2, cf2 := snapshot(b)

	lcm, err := rescaleRational(ring, cf1, cf2)
	if err != nil {
		return nil, err
	}

	var skip func(i, j int) bool
	if cfg.truncate {
		skip = buildTruncationSkip(cfg, v1, v2, cf2)
	}

	estimate, err := estimateSize[K, C](v1, v2, skip)
	if err != nil {
		return nil, err
	}

	partials, err := multiplyParallel(v1, cf1, v2, cf2, ring, skip, estimate)
	if err != nil {
		return nil, err
	}

	result := partials[0]
	for _, p := range partials[1:] {
		if err := mergeInto(result, p, ring); err != nil {
			return nil, err
		}
	}

	if lcm != nil {
		if err := rescaleBack(result, ring, lcm, tuning.ThreadCount()); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func snapshot[K monomial.Key, C any](t *term.Table[K, C]) ([]K, []C) {
	v := make([]K, 0, t.Size())
	c := make([]C, 0, t.Size())
	t.Range(func(k K, coef C) bool {
		v = append(v, k)
		c = append(c, coef)
		return true
	})
	return v, c
}

// rescaleRational implements the rational coefficient fast-path of
// spec.md §4.5.1, grounded on
// original_source/src/base_series_multiplier.hpp's
// base_series_multiplier_impl specialisation for mp_rational coefficients:
// compute a single L = lcm of every denominator across both operands, then
// rewrite every coefficient as (L/den_i)*num_i over denominator 1. Returns
// nil if C is not a rational coefficient type.
func rescaleRational[C any](ring coeff.Ring[C], cf1, cf2 []C) (*big.Int, error) {
	rat, ok := ring.(coeff.Rational[C])
	if !ok {
		return nil, nil
	}
	lcm := big.NewInt(1)
	for _, c := range cf1 {
		_, den := rat.NumDen(c)
		lcm = xmath.LCM(lcm, den)
	}
	for _, c := range cf2 {
		_, den := rat.NumDen(c)
		lcm = xmath.LCM(lcm, den)
	}
	var rescaleErr error
	rescale := func(cs []C) {
		for i, c := range cs {
			num, den := rat.NumDen(c)
			scaled := new(big.Int).Div(lcm, den)
			scaled.Mul(scaled, num)
			v, err := rat.FromNumDen(scaled, big.NewInt(1))
			if err != nil {
				rescaleErr = err
				return
			}
			cs[i] = v
		}
	}
	rescale(cf1)
	if rescaleErr == nil {
		rescale(cf2)
	}
	if rescaleErr != nil {
		return nil, rescaleErr
	}
	return lcm, nil
}

// buildTruncationSkip implements spec.md §4.5.6: pre-sort v2 (and its
// parallel coefficient slice) by participating degree, precompute both
// degree vectors, and return the resulting monotone-in-j skip predicate.
func buildTruncationSkip[K monomial.Key, C any](cfg config[K], v1, v2 []K, cf2 []C) func(i, j int) bool {
	d1 := make([]int64, len(v1))
	for i, k := range v1 {
		d1[i] = cfg.degree(k)
	}

	type row struct {
		key K
		cf  C
		deg int64
	}
	rows := make([]row, len(v2))
	for j := range v2 {
		rows[j] = row{key: v2[j], cf: cf2[j], deg: cfg.degree(v2[j])}
	}
	sort.Slice(rows, func(x, y int) bool { return rows[x].deg < rows[y].deg })
	d2 := make([]int64, len(v2))
	for j, r := range rows {
		v2[j] = r.key
		cf2[j] = r.cf
		d2[j] = r.deg
	}

	maxDegree := cfg.maxDegree
	return func(i, j int) bool { return d1[i]+d2[j] > maxDegree }
}

// multiplyParallel implements spec.md §4.5.4: partition [0,size1) into P
// contiguous slices (one per worker), each multiplied against the whole of
// v2 into a private, pre-reserved partial table, via an errgroup whose
// shared context is the cancellation flag the first failing worker trips.
func multiplyParallel[K monomial.Key, C any](v1 []K, cf1 []C, v2 []K, cf2 []C, ring coeff.Ring[C], skip func(i, j int) bool, estimate int) ([]*term.Table[K, C], error) {
	size1, size2 := len(v1), len(v2)
	bsize := tuning.BlockSize()

	p := tuning.ThreadCount()
	if p < 1 {
		p = 1
	}
	totalWork := int64(size1) * int64(size2)
	if p > 1 && totalWork/int64(p) < tuning.MinWorkPerThread() {
		p = 1
	}
	if p > size1 {
		p = size1
	}

	chunk := (size1 + p - 1) / p
	partials := make([]*term.Table[K, C], p)

	g, ctx := errgroup.WithContext(context.Background())
	for w := 0; w < p; w++ {
		start := w * chunk
		end := start + chunk
		if end > size1 {
			end = size1
		}
		if start >= end {
			partials[w] = term.New[K, C]()
			continue
		}
		w, start, end := w, start, end
		g.Go(func() error {
			pt := term.New[K, C]()
			pt.Reserve(estimate / p)
			mf := func(i, j int) error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				prod, err := v1[i].Multiply(v2[j])
				if err != nil {
					return err
				}
				pk := prod.(K)
				b := pt.EnsureBucket(pk)
				if idx, ok := pt.Find(b, pk); ok {
					sum := ring.MulAdd(pt.CoeffAt(idx), cf1[i], cf2[j])
					if ring.IsZero(sum) {
						pt.Delete(pk)
					} else {
						pt.SetCoeffAt(idx, sum)
					}
					return nil
				}
				pt.UniqueInsert(b, pk, ring.Mul(cf1[i], cf2[j]))
				pt.UpdateSize(pt.Size() + 1)
				return nil
			}
			if err := blockedMultiply(mf, start, end, 0, size2, bsize, skip); err != nil {
				return err
			}
			partials[w] = pt
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return partials, nil
}

// mergeInto implements the deterministic merge of spec.md §4.5.4/§4.5.5:
// applying the same hit/miss-with-zero-drop logic series addition uses,
// folding src's terms into dst in src's own iteration order.
func mergeInto[K monomial.Key, C any](dst, src *term.Table[K, C], ring coeff.Ring[C]) error {
	var mergeErr error
	src.Range(func(k K, c C) bool {
		if existing, ok := dst.Get(k); ok {
			sum := ring.Add(existing, c)
			if ring.IsZero(sum) {
				dst.Delete(k)
			} else {
				dst.SetCoeff(k, sum)
			}
			return true
		}
		if _, err := dst.Insert(k, c); err != nil {
			mergeErr = err
			return false
		}
		return true
	})
	return mergeErr
}

// rescaleBack divides every coefficient's numerator by lcm*lcm (both
// operands were scaled by the same L in rescaleRational, so their product
// carries a factor of L^2) via an errgroup over disjoint chunks of the
// result table when threads > 1, per spec.md §4.5.5.
func rescaleBack[K monomial.Key, C any](t *term.Table[K, C], ring coeff.Ring[C], lcm *big.Int, threads int) error {
	rat, ok := ring.(coeff.Rational[C])
	if !ok {
		return nil
	}
	n := t.EntryCount()
	if n == 0 {
		return nil
	}
	divisor := new(big.Int).Mul(lcm, lcm)

	if threads < 1 {
		threads = 1
	}
	if threads > n {
		threads = n
	}
	chunk := (n + threads - 1) / threads

	var g errgroup.Group
	for w := 0; w < threads; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		s, e := start, end
		g.Go(func() error {
			for i := s; i < e; i++ {
				num, _ := rat.NumDen(t.CoeffAt(i))
				v, err := rat.FromNumDen(num, divisor)
				if err != nil {
					return err
				}
				t.SetCoeffAt(i, v)
			}
			return nil
		})
	}
	return g.Wait()
}
