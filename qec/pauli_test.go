package qec

import (
	"errors"
	"math/rand"
	"testing"
)

func TestCommutesScenarios(t *testing.T) {
	cases := []struct {
		p, q string
		want bool
	}{
		{"XYZ", "XYZ", true},
		{"XII", "ZII", false},
		{"III", "XYZ", true},
		{"XXI", "ZZI", true},  // two anticommuting pairs cancel
		{"XIZ", "ZIX", true},  // anticommute at 0 and 2
		{"YII", "ZII", false}, // Y vs Z anticommutes
		{"YII", "YII", true},
		{"XZ", "ZX", true},
		{"X", "Y", false},
	}
	for _, tc := range cases {
		got, err := Commutes(tc.p, tc.q)
		if err != nil {
			t.Fatalf("Commutes(%q,%q): %v", tc.p, tc.q, err)
		}
		if got != tc.want {
			t.Errorf("Commutes(%q,%q) = %v, want %v", tc.p, tc.q, got, tc.want)
		}
	}
}

func randomPauli(rng *rand.Rand, n int) string {
	const alphabet = "IXYZ"
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}

func TestCommutesSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		p := randomPauli(rng, 3)
		q := randomPauli(rng, 3)
		pq, err := Commutes(p, q)
		if err != nil {
			t.Fatal(err)
		}
		qp, err := Commutes(q, p)
		if err != nil {
			t.Fatal(err)
		}
		if pq != qp {
			t.Fatalf("symmetry violated for %q, %q: %v vs %v", p, q, pq, qp)
		}
	}
}

func TestCommutesReflexive(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		p := randomPauli(rng, 1+rng.Intn(6))
		got, err := Commutes(p, p)
		if err != nil {
			t.Fatal(err)
		}
		if !got {
			t.Fatalf("Commutes(%q,%q) = false, want true", p, p)
		}
	}
}

func TestCommutesLengthMismatch(t *testing.T) {
	_, err := Commutes("XY", "XYZ")
	if !errors.Is(err, ErrPauliLength) {
		t.Fatalf("want ErrPauliLength, got %v", err)
	}
}

func TestCommutesInvalidSymbol(t *testing.T) {
	_, err := Commutes("XQZ", "III")
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("want ErrInvalidParameter, got %v", err)
	}
}

func TestSyndromeFromPauli(t *testing.T) {
	syn, err := SyndromeFromPauli("XII", []string{"ZZI", "IZZ"})
	if err != nil {
		t.Fatal(err)
	}
	if len(syn) != 2 || syn[0] != 1 || syn[1] != 0 {
		t.Fatalf("syndrome = %v, want [1 0]", syn)
	}
}

func TestSyndromeFromPauliAllSingleX(t *testing.T) {
	gens := []string{"ZZI", "IZZ"}
	want := map[string][2]byte{
		"XII": {1, 0},
		"IXI": {1, 1},
		"IIX": {0, 1},
	}
	for e, w := range want {
		syn, err := SyndromeFromPauli(e, gens)
		if err != nil {
			t.Fatal(err)
		}
		if syn[0] != w[0] || syn[1] != w[1] {
			t.Errorf("syndrome(%q) = %v, want %v", e, syn, w)
		}
	}
}

func TestSyndromeFromPauliLengthMismatch(t *testing.T) {
	_, err := SyndromeFromPauli("XI", []string{"ZZI"})
	if !errors.Is(err, ErrPauliLength) {
		t.Fatalf("want ErrPauliLength, got %v", err)
	}
}
