package qec

import "fmt"

// ParityCheck is a binary parity-check matrix over GF(2). Rows are
// stabilizer checks, columns are physical qubits. The matrix is fixed at
// construction and never mutated.
type ParityCheck struct {
	rows [][]byte
	cols int
}

// NewParityCheck copies and validates a 0/1 matrix.
func NewParityCheck(rows [][]byte) (ParityCheck, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return ParityCheck{}, fmt.Errorf("%w: empty parity-check matrix", ErrInvalidParameter)
	}
	cols := len(rows[0])
	cp := make([][]byte, len(rows))
	for i, r := range rows {
		if len(r) != cols {
			return ParityCheck{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShapeMismatch, i, len(r), cols)
		}
		cp[i] = make([]byte, cols)
		for j, v := range r {
			if v > 1 {
				return ParityCheck{}, fmt.Errorf("%w: matrix entry (%d,%d)=%d is not a bit", ErrInvalidParameter, i, j, v)
			}
			cp[i][j] = v
		}
	}
	return ParityCheck{rows: cp, cols: cols}, nil
}

// Checks returns the number of parity checks (rows).
func (pc ParityCheck) Checks() int { return len(pc.rows) }

// Qubits returns the number of physical qubits (columns).
func (pc ParityCheck) Qubits() int { return pc.cols }

// Syndrome computes S·e mod 2 for a binary error vector e.
func (pc ParityCheck) Syndrome(e []byte) ([]byte, error) {
	if len(e) != pc.cols {
		return nil, fmt.Errorf("%w: error vector length %d, want %d", ErrShapeMismatch, len(e), pc.cols)
	}
	syn := make([]byte, len(pc.rows))
	for i, row := range pc.rows {
		var acc byte
		for j, v := range row {
			acc ^= v & e[j] & 1
		}
		syn[i] = acc
	}
	return syn, nil
}

// ThreeQubitBitFlip is the 3-qubit bit-flip code viewed classically.
// Logical states are 000 and 111; the checks are the Z1Z2 and Z2Z3
// parities, rows (1,1,0) and (0,1,1). The same parity structure serves the
// phase-flip code after the H-sandwich basis change.
type ThreeQubitBitFlip struct {
	checks ParityCheck
}

// NewThreeQubitBitFlip builds the code with its fixed 2x3 parity check.
func NewThreeQubitBitFlip() ThreeQubitBitFlip {
	pc, err := NewParityCheck([][]byte{
		{1, 1, 0},
		{0, 1, 1},
	})
	if err != nil {
		panic(err) // fixed matrix, cannot fail
	}
	return ThreeQubitBitFlip{checks: pc}
}

// Distance is the minimum weight of an undetectable logical operator.
func (ThreeQubitBitFlip) Distance() int { return 3 }

// Checks exposes the code's parity-check matrix.
func (c ThreeQubitBitFlip) Checks() ParityCheck { return c.checks }

// Syndrome computes the two check parities of a binary error vector.
func (c ThreeQubitBitFlip) Syndrome(e []byte) ([]byte, error) {
	return c.checks.Syndrome(e)
}

// DecodeMajority returns the majority vote over word: 1 iff more than half
// the entries are set. With logical 0 encoded, a result of 1 marks a
// logical flip. It doubles as the post-correction read-out for the 3-qubit
// codes.
func (ThreeQubitBitFlip) DecodeMajority(word []byte) byte {
	return DecodeMajority(word)
}

// DecodeMajority is the repetition-code decision rule: 1 iff the weight of
// word exceeds half its length.
func DecodeMajority(word []byte) byte {
	w := 0
	for _, b := range word {
		if b != 0 {
			w++
		}
	}
	if 2*w > len(word) {
		return 1
	}
	return 0
}
