// Package qec implements a small stabilizer error-correction engine: Pauli
// commutation algebra, a GF(2) parity-check model for the 3-qubit bit-flip
// and phase-flip codes, the canonical syndrome lookup decoder, a binary
// symmetric channel, and Monte-Carlo logical-error-rate estimators.
package qec

import "fmt"

// anticommutes reports whether two single-qubit Pauli symbols anticommute.
// Positions where either symbol is I, or both are equal, always commute;
// the three distinct non-identity pairs (X,Z), (X,Y), (Y,Z) anticommute.
func anticommutes(a, b byte) bool {
	return a != 'I' && b != 'I' && a != b
}

func validPauli(c byte) bool {
	switch c {
	case 'I', 'X', 'Y', 'Z':
		return true
	}
	return false
}

// Commutes reports whether two equal-length Pauli strings commute: true iff
// the number of anticommuting per-qubit pairs is even. A length mismatch is
// ErrPauliLength, never a silent pad or truncate.
func Commutes(p, q string) (bool, error) {
	if len(p) != len(q) {
		return false, fmt.Errorf("%w (got %d vs %d)", ErrPauliLength, len(p), len(q))
	}
	anti := 0
	for i := 0; i < len(p); i++ {
		if !validPauli(p[i]) || !validPauli(q[i]) {
			return false, fmt.Errorf("%w: pauli symbol at position %d (want I, X, Y or Z)", ErrInvalidParameter, i)
		}
		if anticommutes(p[i], q[i]) {
			anti++
		}
	}
	return anti%2 == 0, nil
}

// SyndromeFromPauli predicts the measurement outcome of each stabilizer
// generator against an error operator: bit i is 0 (+1 eigenvalue) if the
// error commutes with generators[i], else 1 (-1). On a same-axis subalgebra
// this agrees with the linear ParityCheck syndrome.
func SyndromeFromPauli(e string, generators []string) ([]byte, error) {
	syn := make([]byte, len(generators))
	for i, g := range generators {
		c, err := Commutes(e, g)
		if err != nil {
			return nil, fmt.Errorf("generator %d: %w", i, err)
		}
		if !c {
			syn[i] = 1
		}
	}
	return syn, nil
}
