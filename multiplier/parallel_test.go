package multiplier

import (
	"math/big"
	"testing"

	"github.com/bluescarni/piranha-go/coeff"
	"github.com/bluescarni/piranha-go/monomial"
	"github.com/bluescarni/piranha-go/term"
	"github.com/bluescarni/piranha-go/tuning"
)

// TestMulParallelMatchesSequential forces multiplyParallel's worker-
// partitioned path (thread count above one, no minimum-work floor) and
// checks the result term for term against a single-threaded run, exercising
// the cross-worker mergeInto accumulation path that a thread count of one
// never touches.
func TestMulParallelMatchesSequential(t *testing.T) {
	defer tuning.Reset()

	const n = 40
	aTerms := make(map[monomial.Dense]int64, n)
	bTerms := make(map[monomial.Dense]int64, n)
	for i := int64(0); i < n; i++ {
		aTerms[dk(t, i)] = i + 1
		bTerms[dk(t, i)] = n - i
	}

	run := func(threads int) *term.Table[monomial.Dense, *big.Int] {
		tuning.SetThreadCount(threads)
		tuning.SetMinWorkPerThread(0)
		result, err := Mul[monomial.Dense, *big.Int](tableOf(t, aTerms), tableOf(t, bTerms), coeff.BigInt{})
		if err != nil {
			t.Fatalf("Mul (threads=%d): %v", threads, err)
		}
		return result
	}

	seq := run(1)
	par := run(8)

	if seq.Size() != par.Size() {
		t.Fatalf("Size() sequential=%d parallel=%d, want equal", seq.Size(), par.Size())
	}
	seq.Range(func(k monomial.Dense, c *big.Int) bool {
		v, ok := par.Get(k)
		if !ok || v.Cmp(c) != 0 {
			t.Fatalf("coeff mismatch at %v: sequential=%v parallel=%v", k, c, v)
		}
		return true
	})
}
