package qec

import "math/rand"

// ShotResult is the full detail of one error-correction round on the
// 3-qubit code: the injected error, its syndrome, the looked-up
// correction, the post-correction residual and the majority read-out.
type ShotResult struct {
	Error      []byte
	Syndrome   []byte
	Correction []byte
	Residual   []byte
	Decoded    byte
}

// RunShot pushes a given binary error vector through syndrome extraction,
// lookup correction and majority read-out.
func (c ThreeQubitBitFlip) RunShot(e []byte) (ShotResult, error) {
	syn, corr, err := LookupDecode(c, e)
	if err != nil {
		return ShotResult{}, err
	}
	residual := make([]byte, len(e))
	for i := range e {
		residual[i] = (e[i] ^ corr[i]) & 1
	}
	injected := make([]byte, len(e))
	copy(injected, e)
	return ShotResult{
		Error:      injected,
		Syndrome:   syn,
		Correction: corr,
		Residual:   residual,
		Decoded:    DecodeMajority(residual),
	}, nil
}

// SampleShot draws one error from the binary symmetric channel and runs a
// full round on it.
func (c ThreeQubitBitFlip) SampleShot(p float64, rng *rand.Rand) (ShotResult, error) {
	e, err := FlipMask(c.checks.Qubits(), p, rng)
	if err != nil {
		return ShotResult{}, err
	}
	return c.RunShot(e)
}
