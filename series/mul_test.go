package series

import (
	"testing"

	"github.com/bluescarni/piranha-go/monomial"
	"github.com/bluescarni/piranha-go/symbol"
)

func TestMulDelegatesToMultiplier(t *testing.T) {
	s := symbol.New("x")
	a := build(t, s, []kv{{dkey(t, 1), 1}, {dkey(t, 0), 1}})
	b := build(t, s, []kv{{dkey(t, 1), 1}, {dkey(t, 0), -1}})

	prod, err := Mul(a, b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	if v, ok := prod.Table().Get(dkey(t, 2)); !ok || v.Cmp(bi(1)) != 0 {
		t.Fatalf("coeff of x^2 = %v, want 1", v)
	}
	if v, ok := prod.Table().Get(dkey(t, 0)); !ok || v.Cmp(bi(-1)) != 0 {
		t.Fatalf("coeff of 1 = %v, want -1", v)
	}
}

func TestMulLiftsMismatchedSymbolSets(t *testing.T) {
	sx := symbol.New("x")
	sy := symbol.New("y")
	a := build(t, sx, []kv{{dkey(t, 1), 2}})
	b := build(t, sy, []kv{{dkey(t, 1), 3}})

	prod, err := Mul(a, b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	if !prod.Symbols().Equal(symbol.New("x", "y")) {
		t.Fatalf("Symbols() = %v, want (x, y)", prod.Symbols())
	}
	if v, ok := prod.Table().Get(dkey(t, 1, 1)); !ok || v.Cmp(bi(6)) != 0 {
		t.Fatalf("coeff of x*y = %v, want 6", v)
	}
}

func TestMulTruncationPolicy(t *testing.T) {
	defer ClearTruncateDegree()
	SetTruncateDegree(2)

	s := symbol.New("x")
	a := build(t, s, []kv{{dkey(t, 2), 1}, {dkey(t, 1), 1}})
	b := build(t, s, []kv{{dkey(t, 2), 1}, {dkey(t, 1), 1}})

	prod, err := Mul(a, b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	if _, ok := prod.Table().Get(dkey(t, 4)); ok {
		t.Fatalf("degree-4 term should have been truncated away")
	}
	if v, ok := prod.Table().Get(dkey(t, 2)); !ok || v.Cmp(bi(1)) != 0 {
		t.Fatalf("coeff of x^2 = %v, want 1", v)
	}
}
