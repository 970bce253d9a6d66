package qec

import "errors"

// Sentinel errors for the package. Callers match them with errors.Is; the
// returned errors carry the offending values via fmt.Errorf("%w: ...").
var (
	// ErrInvalidParameter covers probabilities outside [0,1], non-positive
	// qubit counts and non-positive trial counts.
	ErrInvalidParameter = errors.New("qec: invalid parameter")

	// ErrShapeMismatch is returned when an error vector's length does not
	// match a code's qubit count.
	ErrShapeMismatch = errors.New("qec: shape mismatch")

	// ErrPauliLength is returned when two Pauli strings (or a string
	// against a generator list) have different lengths. The core never
	// pads or truncates; recovering by normalization is a caller policy.
	ErrPauliLength = errors.New("qec: pauli strings must have equal length")
)
