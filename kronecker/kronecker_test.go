package kronecker

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestArityZero(t *testing.T) {
	code, err := Encode(nil)
	if err != nil || code != 0 {
		t.Fatalf("Encode(nil) = (%d, %v), want (0, nil)", code, err)
	}
	v, err := Decode(0, 0)
	if err != nil || len(v) != 0 {
		t.Fatalf("Decode(0, 0) = (%v, %v), want ([], nil)", v, err)
	}
	if _, err := Decode(1, 0); !errors.Is(err, ErrOverflow) {
		t.Fatalf("Decode(1, 0) should overflow, got %v", err)
	}
}

func TestRoundTripSmallArities(t *testing.T) {
	for n := 1; n <= 8; n++ {
		lim, ok := LimitsFor(n)
		if !ok {
			t.Fatalf("LimitsFor(%d) not found", n)
		}
		rng := rand.New(rand.NewPCG(uint64(n), 42))
		for trial := 0; trial < 200; trial++ {
			e := make([]int64, n)
			for i := range e {
				e[i] = lim.L + int64(rng.Uint64N(uint64(lim.U-lim.L)+1))
			}
			code, err := Encode(e)
			if err != nil {
				t.Fatalf("Encode(%v) failed: %v", e, err)
			}
			if code < lim.HMin || code > lim.HMax {
				t.Fatalf("code %d outside [%d, %d]", code, lim.HMin, lim.HMax)
			}
			got, err := Decode(code, n)
			if err != nil {
				t.Fatalf("Decode(%d, %d) failed: %v", code, n, err)
			}
			for i := range e {
				if got[i] != e[i] {
					t.Fatalf("round-trip mismatch at %d: got %v want %v", i, got, e)
				}
			}
		}
	}
}

func TestEncodeOverflow(t *testing.T) {
	lim, _ := LimitsFor(2)
	_, err := Encode([]int64{lim.U + 1, 0})
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}

func TestDecodeOverflow(t *testing.T) {
	lim, _ := LimitsFor(2)
	_, err := Decode(lim.HMax+1, 2)
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}

func TestArityExceedsMax(t *testing.T) {
	n := MaxArity() + 1
	if _, err := Encode(make([]int64, n)); !errors.Is(err, ErrArity) {
		t.Fatalf("expected ErrArity, got %v", err)
	}
}

func TestMaxArityIsPositive(t *testing.T) {
	if MaxArity() < 10 {
		t.Fatalf("MaxArity() = %d, suspiciously small for int64 codes", MaxArity())
	}
}

func TestInRange(t *testing.T) {
	lim, _ := LimitsFor(3)
	if !InRange(lim.HMin, 3) || !InRange(lim.HMax, 3) {
		t.Fatalf("boundary codes should be in range")
	}
	if InRange(lim.HMax+1, 3) {
		t.Fatalf("HMax+1 should not be in range")
	}
}
