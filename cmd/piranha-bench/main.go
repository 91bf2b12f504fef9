// Command piranha-bench reproduces the end-to-end scenarios named in
// spec.md §8 (Fateman, Pearce, Gastineau, AuDi, cancellation stress, and
// the empty-operand case) against the library's own types, and reports
// the resulting term count against the documented expected value. It is
// a demonstration driver, not part of the core contract: the library
// itself has no CLI or wire protocol.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/big"
	"os"
	"time"

	"github.com/bluescarni/piranha-go/coeff"
	"github.com/bluescarni/piranha-go/monomial"
	"github.com/bluescarni/piranha-go/series"
	"github.com/bluescarni/piranha-go/symbol"
	"github.com/bluescarni/piranha-go/tuning"
)

type poly = *series.Series[monomial.Dense, *big.Int]

var ring = coeff.BigInt{}

type scenario struct {
	name     string
	expected int
	run      func() (int, error)
}

func main() {
	var (
		name    = flag.String("scenario", "all", "scenario to run (fateman1, fateman2, pearce1, gastineau4, audi, cancel, empty, all)")
		threads = flag.Int("threads", 0, "override the multiplier thread count (0 leaves the tuning default)")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *threads > 0 {
		tuning.SetThreadCount(*threads)
		log.Info("overrode thread count", "threads", *threads)
	}

	scenarios := map[string]scenario{
		"fateman1":  {"Fateman-1", 135751, fateman(20)},
		"fateman2":  {"Fateman-2", 635376, fateman(30)},
		"pearce1":   {"Pearce-1", 5821335, pearce(12)},
		"gastineau4": {"Gastineau-4", 95033335, gastineau4(20)},
		"audi":      {"AuDi (truncated)", 122464, audi(10, 10)},
		"cancel":    {"Cancellation stress", 5786, cancellationStress},
		"empty":     {"Empty-operand", 0, emptyOperand},
	}

	selected := []string{*name}
	if *name == "all" {
		selected = []string{"fateman1", "fateman2", "pearce1", "gastineau4", "audi", "cancel", "empty"}
	}

	failures := 0
	for _, key := range selected {
		sc, ok := scenarios[key]
		if !ok {
			log.Error("unknown scenario", "scenario", key)
			failures++
			continue
		}
		start := time.Now()
		got, err := sc.run()
		elapsed := time.Since(start)
		if err != nil {
			log.Error("scenario failed", "scenario", sc.name, "error", err)
			failures++
			continue
		}
		ok2 := got == sc.expected
		log.Info("scenario complete",
			"scenario", sc.name,
			"terms", got,
			"expected", sc.expected,
			"match", ok2,
			"elapsed", elapsed)
		if !ok2 {
			failures++
		}
	}

	if failures > 0 {
		fmt.Fprintf(os.Stderr, "%d scenario(s) did not match their expected term count\n", failures)
		os.Exit(1)
	}
}

// fateman builds f = (1 + x + y + z + t)^n and returns a scenario computing
// |f * (f + 1)|.
func fateman(n int) func() (int, error) {
	return func() (int, error) {
		syms := symbol.New("x", "y", "z", "t")
		base, err := linear(syms, 1, map[string]int64{"x": 1, "y": 1, "z": 1, "t": 1})
		if err != nil {
			return 0, err
		}
		f, err := power(base, n)
		if err != nil {
			return 0, err
		}
		fPlusOne, err := series.Add(f, constant(syms, 1))
		if err != nil {
			return 0, err
		}
		product, err := series.Mul(f, fPlusOne)
		if err != nil {
			return 0, err
		}
		return product.Size(), nil
	}
}

// pearce builds a scenario computing |f * g| for the Pearce-1 shape of
// spec.md §8, raised to the n-th power; n=12 reproduces the named scenario
// itself, smaller n gives a reduced-scale variant cheap enough to benchmark.
func pearce(n int) func() (int, error) {
	return func() (int, error) {
		syms := symbol.New("x", "y", "z", "t", "u")
		fBase, err := exponentedSum(syms, 1, []weightedVar{
			{"x", 1, 1}, {"y", 1, 1}, {"z", 2, 2}, {"t", 3, 3}, {"u", 5, 5},
		})
		if err != nil {
			return 0, err
		}
		gBase, err := exponentedSum(syms, 1, []weightedVar{
			{"u", 1, 1}, {"t", 1, 1}, {"z", 2, 2}, {"y", 3, 3}, {"x", 5, 5},
		})
		if err != nil {
			return 0, err
		}
		f, err := power(fBase, n)
		if err != nil {
			return 0, err
		}
		g, err := power(gBase, n)
		if err != nil {
			return 0, err
		}
		product, err := series.Mul(f, g)
		if err != nil {
			return 0, err
		}
		return product.Size(), nil
	}
}

// gastineau4 mirrors pearce's shape under x<->u, y<->t; n=20 reproduces the
// named Gastineau-4 scenario.
func gastineau4(n int) func() (int, error) {
	return func() (int, error) {
		syms := symbol.New("x", "y", "z", "t", "u")
		fBase, err := exponentedSum(syms, 1, []weightedVar{
			{"x", 1, 1}, {"y", 1, 1}, {"z", 2, 2}, {"t", 3, 3}, {"u", 5, 5},
		})
		if err != nil {
			return 0, err
		}
		gBase, err := exponentedSum(syms, 1, []weightedVar{
			{"u", 1, 1}, {"t", 1, 1}, {"z", 2, 2}, {"y", 3, 3}, {"x", 5, 5},
		})
		if err != nil {
			return 0, err
		}
		f, err := power(fBase, n)
		if err != nil {
			return 0, err
		}
		g, err := power(gBase, n)
		if err != nil {
			return 0, err
		}
		product, err := series.Mul(f, g)
		if err != nil {
			return 0, err
		}
		return product.Size(), nil
	}
}

// audi builds the AuDi scenario of spec.md §8 over numVars variables, f and g
// raised to the n-th power and truncated to total degree n; numVars=10, n=10
// reproduces the named scenario.
func audi(numVars, n int) func() (int, error) {
	return func() (int, error) {
		names := make([]string, numVars)
		for i := range names {
			names[i] = fmt.Sprintf("x%d", i+1)
		}
		syms := symbol.New(names...)

		fWeights := map[string]int64{}
		gWeights := map[string]int64{}
		for _, name := range names {
			fWeights[name] = 1
			gWeights[name] = -1
		}
		fBase, err := linear(syms, 1, fWeights)
		if err != nil {
			return 0, err
		}
		gBase, err := linear(syms, 1, gWeights)
		if err != nil {
			return 0, err
		}
		f, err := power(fBase, n)
		if err != nil {
			return 0, err
		}
		g, err := power(gBase, n)
		if err != nil {
			return 0, err
		}

		series.SetTruncateDegree(int64(n))
		defer series.ClearTruncateDegree()

		product, err := series.Mul(f, g)
		if err != nil {
			return 0, err
		}
		return product.Size(), nil
	}
}

func cancellationStress() (int, error) {
	syms := symbol.New("x", "y", "z", "t")
	f, err := linear(syms, 1, map[string]int64{"x": 1, "y": 1, "z": 1, "t": 1})
	if err != nil {
		return 0, err
	}
	f, err = power(f, 20)
	if err != nil {
		return 0, err
	}
	h, err := linear(syms, 1, map[string]int64{"x": -1, "y": 1, "z": 1, "t": 1})
	if err != nil {
		return 0, err
	}
	h, err = power(h, 10)
	if err != nil {
		return 0, err
	}
	product, err := series.Mul(f, h)
	if err != nil {
		return 0, err
	}
	return product.Size(), nil
}

func emptyOperand() (int, error) {
	syms := symbol.New("x", "y", "z", "t")
	f, err := linear(syms, 1, map[string]int64{"x": 1, "y": 1, "z": 1, "t": 1})
	if err != nil {
		return 0, err
	}
	zero := series.New[monomial.Dense, *big.Int](syms, ring)
	product, err := series.Mul(f, zero)
	if err != nil {
		return 0, err
	}
	if product.Size() != 0 {
		return product.Size(), errors.New("piranha-bench: empty-operand product is not empty")
	}
	if !product.Symbols().Equal(syms) {
		return product.Size(), errors.New("piranha-bench: empty-operand product has the wrong symbol set")
	}
	return product.Size(), nil
}

// weightedVar names one term of a exponentedSum: variable name, the power
// it is raised to, and the integer coefficient multiplying it.
type weightedVar struct {
	name  string
	exp   int64
	coeff int64
}

// exponentedSum builds constant + Σ coeff_i * name_i^exp_i.
func exponentedSum(syms symbol.Set, constantTerm int64, vars []weightedVar) (poly, error) {
	s := series.New[monomial.Dense, *big.Int](syms, ring)
	if constantTerm != 0 {
		key := monomial.NewDenseUnit(syms.Size())
		if _, err := s.Table().Insert(key, big.NewInt(constantTerm)); err != nil {
			return nil, err
		}
	}
	for _, v := range vars {
		exps := make([]int64, syms.Size())
		pos, ok := syms.Index(v.name)
		if !ok {
			return nil, fmt.Errorf("piranha-bench: unknown symbol %q", v.name)
		}
		exps[pos] = v.exp
		key, err := monomial.NewDense(exps)
		if err != nil {
			return nil, err
		}
		if _, err := s.Table().Insert(key, big.NewInt(v.coeff)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// linear builds constant + Σ weights[name] * name, one degree-1 term per
// named variable with a nonzero weight.
func linear(syms symbol.Set, constantTerm int64, weights map[string]int64) (poly, error) {
	vars := make([]weightedVar, 0, len(weights))
	for _, name := range syms.Names() {
		w, ok := weights[name]
		if !ok || w == 0 {
			continue
		}
		vars = append(vars, weightedVar{name: name, exp: 1, coeff: w})
	}
	return exponentedSum(syms, constantTerm, vars)
}

// constant builds the single-term series c (a degree-0 monomial).
func constant(syms symbol.Set, c int64) poly {
	s := series.New[monomial.Dense, *big.Int](syms, ring)
	key := monomial.NewDenseUnit(syms.Size())
	s.Table().Insert(key, big.NewInt(c))
	return s
}

// power raises base to the n-th power by repeated squaring, needing
// O(log n) multiplications instead of the naive loop's n-1 (5 instead of 19
// for n=20) — material at the exponents these scenarios use (12 to 30).
func power(base poly, n int) (poly, error) {
	if n < 0 {
		return nil, errors.New("piranha-bench: negative exponent")
	}
	if n == 0 {
		return constant(base.Symbols(), 1), nil
	}
	var result poly
	cur := base
	for n > 0 {
		if n&1 == 1 {
			var err error
			if result == nil {
				result = cur
			} else {
				result, err = series.Mul(result, cur)
				if err != nil {
					return nil, err
				}
			}
		}
		n >>= 1
		if n > 0 {
			var err error
			cur, err = series.Mul(cur, cur)
			if err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}
