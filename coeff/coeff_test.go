package coeff

import (
	"errors"
	"math/big"
	"testing"
)

func TestBigIntRing(t *testing.T) {
	var r BigInt
	a := big.NewInt(3)
	b := big.NewInt(4)
	if got := r.Add(a, b); got.Cmp(big.NewInt(7)) != 0 {
		t.Fatalf("Add = %v, want 7", got)
	}
	if got := r.Mul(a, b); got.Cmp(big.NewInt(12)) != 0 {
		t.Fatalf("Mul = %v, want 12", got)
	}
	if got := r.MulAdd(big.NewInt(1), a, b); got.Cmp(big.NewInt(13)) != 0 {
		t.Fatalf("MulAdd = %v, want 13", got)
	}
	if !r.IsZero(r.Zero()) {
		t.Fatalf("Zero() should be zero")
	}
	if !r.IsZero(r.Sub(a, a)) {
		t.Fatalf("a - a should be zero")
	}
}

func TestBigRatRational(t *testing.T) {
	var r BigRat
	a := big.NewRat(1, 2)
	b := big.NewRat(1, 3)
	sum := r.Add(a, b)
	if sum.Cmp(big.NewRat(5, 6)) != 0 {
		t.Fatalf("Add = %v, want 5/6", sum)
	}
	num, den := r.NumDen(big.NewRat(3, 4))
	if num.Cmp(big.NewInt(3)) != 0 || den.Cmp(big.NewInt(4)) != 0 {
		t.Fatalf("NumDen = (%v, %v), want (3, 4)", num, den)
	}
	rebuilt, err := r.FromNumDen(big.NewInt(6), big.NewInt(8))
	if err != nil {
		t.Fatalf("FromNumDen(6,8) returned an error: %v", err)
	}
	if rebuilt.Cmp(big.NewRat(3, 4)) != 0 {
		t.Fatalf("FromNumDen(6,8) = %v, want 3/4", rebuilt)
	}
}

func TestBigRatFromNumDenZeroDenominator(t *testing.T) {
	var r BigRat
	if _, err := r.FromNumDen(big.NewInt(1), big.NewInt(0)); !errors.Is(err, ErrZeroDivision) {
		t.Fatalf("FromNumDen(1,0) error = %v, want ErrZeroDivision", err)
	}
}

func TestNilCoefficientsTreatedAsZero(t *testing.T) {
	var r BigInt
	if !r.IsZero(nil) {
		t.Fatalf("nil *big.Int should be treated as zero")
	}
	if got := r.Add(nil, big.NewInt(5)); got.Cmp(big.NewInt(5)) != 0 {
		t.Fatalf("Add(nil, 5) = %v, want 5", got)
	}
}
