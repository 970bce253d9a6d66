package qec

import "fmt"

// bitflipLUT maps a 2-bit syndrome to the unique single-qubit correction
// producing it: the maximum-likelihood choice when single-qubit errors
// dominate. Two-qubit errors alias to the complementary single-qubit
// correction and decode to the wrong value; that degeneracy is what caps
// the distance-3 code at weight-1 errors and shapes its failure curve.
// The table is read-only package data, built once.
var bitflipLUT = map[[2]byte][3]byte{
	{0, 0}: {0, 0, 0}, // +1,+1: no error
	{1, 0}: {1, 0, 0}, // -1,+1: flip qubit 1
	{1, 1}: {0, 1, 0}, // -1,-1: flip qubit 2
	{0, 1}: {0, 0, 1}, // +1,-1: flip qubit 3
}

// LookupDecode computes the syndrome of e under the 3-qubit code and
// returns it together with the table correction. The same table serves the
// phase-flip reading; only the caller's meaning of a set bit changes.
func LookupDecode(code ThreeQubitBitFlip, e []byte) (syndrome, correction []byte, err error) {
	syn, err := code.Syndrome(e)
	if err != nil {
		return nil, nil, err
	}
	corr, ok := bitflipLUT[[2]byte{syn[0], syn[1]}]
	if !ok {
		// A valid 2x3 parity check can only emit the four syndromes above;
		// reaching this is an internal invariant violation.
		panic(fmt.Sprintf("qec: syndrome %v outside lookup table", syn))
	}
	out := make([]byte, len(corr))
	copy(out, corr[:])
	return syn, out, nil
}
