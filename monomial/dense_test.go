package monomial

import (
	"math"
	"testing"

	"github.com/bluescarni/piranha-go/symbol"
)

func TestDenseArityAndExponent(t *testing.T) {
	d, err := NewDense([]int64{1, -2, 3})
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	if d.Arity() != 3 {
		t.Fatalf("Arity() = %d, want 3", d.Arity())
	}
	want := []int64{1, -2, 3}
	for i, w := range want {
		if got := d.Exponent(i); got != w {
			t.Fatalf("Exponent(%d) = %d, want %d", i, got, w)
		}
	}
}

func TestDenseNewDenseOverflow(t *testing.T) {
	if _, err := NewDense([]int64{int64(math.MaxInt32)}); err == nil {
		t.Fatalf("expected overflow error for out-of-range exponent")
	}
}

func TestDenseEqual(t *testing.T) {
	a, _ := NewDense([]int64{1, 2})
	b, _ := NewDense([]int64{1, 2})
	c, _ := NewDense([]int64{1, 3})
	if !a.Equal(b) {
		t.Fatalf("a should equal b")
	}
	if a.Equal(c) {
		t.Fatalf("a should not equal c")
	}
	if a.Equal(Packed{}) {
		t.Fatalf("a should not equal a monomial of a different concrete type")
	}
}

func TestDenseHashConsistentWithEqual(t *testing.T) {
	a, _ := NewDense([]int64{5, -5, 0})
	b, _ := NewDense([]int64{5, -5, 0})
	if a.Hash() != b.Hash() {
		t.Fatalf("equal monomials must hash equal")
	}
}

func TestDenseCompatible(t *testing.T) {
	d := NewDenseUnit(2)
	s := symbol.New("x", "y")
	if !d.Compatible(s) {
		t.Fatalf("expected compatible")
	}
	if d.Compatible(symbol.New("x", "y", "z")) {
		t.Fatalf("expected incompatible with mismatched arity")
	}
}

func TestDenseMultiply(t *testing.T) {
	a, _ := NewDense([]int64{1, 2})
	b, _ := NewDense([]int64{3, -1})
	prod, err := a.Multiply(b)
	if err != nil {
		t.Fatalf("Multiply: %v", err)
	}
	p := prod.(Dense)
	if p.Exponent(0) != 4 || p.Exponent(1) != 1 {
		t.Fatalf("Multiply = %v, want [4, 1]", []int64{p.Exponent(0), p.Exponent(1)})
	}
}

func TestDenseMultiplyArityMismatch(t *testing.T) {
	a := NewDenseUnit(2)
	b := NewDenseUnit(3)
	if _, err := a.Multiply(b); err == nil {
		t.Fatalf("expected arity mismatch error")
	}
}

func TestDenseMultiplyOverflow(t *testing.T) {
	a, _ := NewDense([]int64{denseSafeMax})
	b, _ := NewDense([]int64{1})
	if _, err := a.Multiply(b); err == nil {
		t.Fatalf("expected overflow error")
	}
}

func TestDenseMergeInto(t *testing.T) {
	d, _ := NewDense([]int64{7, 9})
	target := symbol.New("a", "b", "c")
	merged := d.MergeInto(target, []int{0, 2}).(Dense)
	if merged.Exponent(0) != 7 || merged.Exponent(1) != 0 || merged.Exponent(2) != 9 {
		t.Fatalf("MergeInto = %v, want [7, 0, 9]", []int64{merged.Exponent(0), merged.Exponent(1), merged.Exponent(2)})
	}
}

func TestDenseIsUnitary(t *testing.T) {
	if !IsUnitary(NewDenseUnit(3)) {
		t.Fatalf("all-zero monomial should be unitary")
	}
	d, _ := NewDense([]int64{0, 1, 0})
	if IsUnitary(d) {
		t.Fatalf("monomial with a nonzero component should not be unitary")
	}
}
