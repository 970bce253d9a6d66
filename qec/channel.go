package qec

import (
	"fmt"
	"math/rand"
	"time"
)

// flipBit implements the u<p Bernoulli decision. The endpoints short-circuit
// without consuming a draw so p=0 and p=1 are exact.
func flipBit(p float64, rng *rand.Rand) byte {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	if rng.Float64() < p {
		return 1
	}
	return 0
}

func newDefaultRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func checkProbability(p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%w: flip probability %v outside [0,1]", ErrInvalidParameter, p)
	}
	return nil
}

// FlipMask draws a length-n flip mask from a binary symmetric channel with
// flip probability p: each entry is independently 1 with probability p.
// A nil rng falls back to a time-seeded source; pass a seeded *rand.Rand
// for reproducible results.
func FlipMask(n int, p float64, rng *rand.Rand) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: qubit count %d", ErrInvalidParameter, n)
	}
	if err := checkProbability(p); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = newDefaultRand()
	}
	mask := make([]byte, n)
	for i := range mask {
		mask[i] = flipBit(p, rng)
	}
	return mask, nil
}

// FlipMasks draws k independent length-n masks in one batch. The rows share
// a single backing array so large trial counts stay one allocation.
func FlipMasks(k, n int, p float64, rng *rand.Rand) ([][]byte, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: batch size %d", ErrInvalidParameter, k)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: qubit count %d", ErrInvalidParameter, n)
	}
	if err := checkProbability(p); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = newDefaultRand()
	}
	flat := make([]byte, k*n)
	for i := range flat {
		flat[i] = flipBit(p, rng)
	}
	out := make([][]byte, k)
	for i := range out {
		out[i] = flat[i*n : (i+1)*n : (i+1)*n]
	}
	return out, nil
}
