package series

import (
	"math/big"
	"testing"

	"github.com/bluescarni/piranha-go/coeff"
	"github.com/bluescarni/piranha-go/monomial"
	"github.com/bluescarni/piranha-go/symbol"
)

func dkey(t *testing.T, exps ...int64) monomial.Dense {
	t.Helper()
	d, err := monomial.NewDense(exps)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	return d
}

func bi(v int64) *big.Int { return big.NewInt(v) }

type kv struct {
	k monomial.Dense
	v int64
}

func build(t *testing.T, s symbol.Set, terms []kv) *Series[monomial.Dense, *big.Int] {
	t.Helper()
	out := New[monomial.Dense, *big.Int](s, coeff.BigInt{})
	for _, e := range terms {
		if _, err := out.Table().Insert(e.k, bi(e.v)); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	return out
}

func TestAddSameSymbolSet(t *testing.T) {
	s := symbol.New("x", "y")
	a := build(t, s, []kv{{dkey(t, 1, 0), 3}, {dkey(t, 0, 1), 2}})
	b := build(t, s, []kv{{dkey(t, 1, 0), 5}, {dkey(t, 2, 0), 7}})

	sum, err := Add(a, b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if sum.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", sum.Size())
	}
	if v, ok := sum.Table().Get(dkey(t, 1, 0)); !ok || v.Cmp(bi(8)) != 0 {
		t.Fatalf("coeff of x = %v, want 8", v)
	}
	if v, ok := sum.Table().Get(dkey(t, 0, 1)); !ok || v.Cmp(bi(2)) != 0 {
		t.Fatalf("coeff of y = %v, want 2", v)
	}
	if v, ok := sum.Table().Get(dkey(t, 2, 0)); !ok || v.Cmp(bi(7)) != 0 {
		t.Fatalf("coeff of x^2 = %v, want 7", v)
	}
}

func TestSubDropsZeroResult(t *testing.T) {
	s := symbol.New("x")
	a := build(t, s, []kv{{dkey(t, 1), 5}})
	b := build(t, s, []kv{{dkey(t, 1), 5}})

	diff, err := Sub(a, b)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	if diff.Size() != 0 {
		t.Fatalf("Size() = %d, want 0", diff.Size())
	}
}

func TestSubAntisymmetric(t *testing.T) {
	s := symbol.New("x")
	a := build(t, s, []kv{{dkey(t, 1), 3}})
	b := build(t, s, []kv{{dkey(t, 1), 7}, {dkey(t, 2), 1}})

	// b has more terms than a, exercising the base-is-b negated-copy path.
	diff, err := Sub(a, b)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	if v, ok := diff.Table().Get(dkey(t, 1)); !ok || v.Cmp(bi(-4)) != 0 {
		t.Fatalf("coeff of x = %v, want -4", v)
	}
	if v, ok := diff.Table().Get(dkey(t, 2)); !ok || v.Cmp(bi(-1)) != 0 {
		t.Fatalf("coeff of x^2 = %v, want -1", v)
	}
}

func TestAddLiftsMismatchedSymbolSets(t *testing.T) {
	sx := symbol.New("x")
	sxy := symbol.New("x", "y")
	a := build(t, sx, []kv{{dkey(t, 1), 1}})
	b := build(t, sxy, []kv{{dkey(t, 0, 1), 1}})

	sum, err := Add(a, b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !sum.Symbols().Equal(sxy) {
		t.Fatalf("Symbols() = %v, want %v", sum.Symbols(), sxy)
	}
	if sum.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", sum.Size())
	}
	v, ok := sum.Table().Get(dkey(t, 1, 0))
	if !ok || v.Cmp(bi(1)) != 0 {
		t.Fatalf("coeff of x = %v, want 1", v)
	}
}

func TestFromTermZeroCoefficientIsEmpty(t *testing.T) {
	s := symbol.New("x")
	out, err := FromTerm[monomial.Dense, *big.Int](s, coeff.BigInt{}, dkey(t, 1), bi(0))
	if err != nil {
		t.Fatalf("FromTerm: %v", err)
	}
	if out.Size() != 0 {
		t.Fatalf("Size() = %d, want 0", out.Size())
	}
}

func TestFromTermIncompatibleMonomial(t *testing.T) {
	s := symbol.New("x", "y")
	if _, err := FromTerm[monomial.Dense, *big.Int](s, coeff.BigInt{}, dkey(t, 1), bi(5)); err == nil {
		t.Fatalf("expected ErrIncompatibleMonomial")
	}
}

func TestAddAssign(t *testing.T) {
	s := symbol.New("x")
	a := build(t, s, []kv{{dkey(t, 1), 1}})
	b := build(t, s, []kv{{dkey(t, 1), 2}})
	if err := a.AddAssign(b); err != nil {
		t.Fatalf("AddAssign: %v", err)
	}
	if v, ok := a.Table().Get(dkey(t, 1)); !ok || v.Cmp(bi(3)) != 0 {
		t.Fatalf("coeff of x = %v, want 3", v)
	}
}
