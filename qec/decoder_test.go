package qec

import (
	"errors"
	"testing"
)

func TestLookupDecodeNeutralizesSingleErrors(t *testing.T) {
	code := NewThreeQubitBitFlip()
	seen := map[[2]byte]bool{}
	for i := 0; i < 3; i++ {
		e := make([]byte, 3)
		e[i] = 1
		syn, corr, err := LookupDecode(code, e)
		if err != nil {
			t.Fatal(err)
		}
		if corr[i] != 1 {
			t.Fatalf("correction %v does not flip qubit %d", corr, i)
		}
		seen[[2]byte{syn[0], syn[1]}] = true
		shot, err := code.RunShot(e)
		if err != nil {
			t.Fatal(err)
		}
		for j, b := range shot.Residual {
			if b != 0 {
				t.Fatalf("residual %v not neutralized at %d", shot.Residual, j)
			}
		}
		if shot.Decoded != 0 {
			t.Fatalf("decoded = %d, want 0", shot.Decoded)
		}
	}
	if len(seen) != 3 {
		t.Fatalf("single-qubit errors produced %d distinct syndromes, want 3", len(seen))
	}
}

func TestLookupDecodeMiddleQubit(t *testing.T) {
	code := NewThreeQubitBitFlip()
	syn, corr, err := LookupDecode(code, []byte{0, 1, 0})
	if err != nil {
		t.Fatal(err)
	}
	if syn[0] != 1 || syn[1] != 1 {
		t.Fatalf("syndrome = %v, want [1 1]", syn)
	}
	if corr[0] != 0 || corr[1] != 1 || corr[2] != 0 {
		t.Fatalf("correction = %v, want [0 1 0]", corr)
	}
}

// Two-qubit errors alias to the complementary single-qubit correction and
// end up decoded wrong. That degeneracy is intentional; it is what makes
// the code help below threshold and hurt above it.
func TestLookupDecodeTwoQubitAliasing(t *testing.T) {
	code := NewThreeQubitBitFlip()
	doubles := [][]byte{{1, 1, 0}, {1, 0, 1}, {0, 1, 1}}
	for _, e := range doubles {
		shot, err := code.RunShot(e)
		if err != nil {
			t.Fatal(err)
		}
		if DecodeMajority(shot.Correction) != 0 {
			t.Fatalf("error %v: correction %v is not single-qubit", e, shot.Correction)
		}
		if shot.Decoded != 1 {
			t.Fatalf("error %v: decoded = %d, want the designed failure 1", e, shot.Decoded)
		}
	}
}

func TestLookupDecodeNoError(t *testing.T) {
	code := NewThreeQubitBitFlip()
	shot, err := code.RunShot([]byte{0, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	if shot.Decoded != 0 {
		t.Fatalf("decoded = %d, want 0", shot.Decoded)
	}
	for _, b := range shot.Correction {
		if b != 0 {
			t.Fatalf("correction %v applied without a syndrome", shot.Correction)
		}
	}
}

func TestLookupDecodeShapeMismatch(t *testing.T) {
	code := NewThreeQubitBitFlip()
	_, _, err := LookupDecode(code, []byte{1, 0, 0, 0})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("want ErrShapeMismatch, got %v", err)
	}
}
