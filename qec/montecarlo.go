package qec

import (
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

func checkTrials(trials int) error {
	if trials <= 0 {
		return fmt.Errorf("%w: trial count %d", ErrInvalidParameter, trials)
	}
	return nil
}

// repetitionFailures counts majority-vote failures over trials batch-sampled
// flip masks. Sampling all trials*n bits in one shot keeps the hot loop
// allocation-free without changing the per-trial statistics.
func repetitionFailures(n int, p float64, trials int, rng *rand.Rand) (int, error) {
	masks, err := FlipMasks(trials, n, p, rng)
	if err != nil {
		return 0, err
	}
	failures := 0
	for _, m := range masks {
		if DecodeMajority(m) == 1 {
			failures++
		}
	}
	return failures, nil
}

// RepetitionMCError estimates the logical error rate of the length-n
// repetition code under a binary symmetric channel: logical 0 is sent, each
// trial draws a flip mask and decodes by majority vote. The result is the
// empirical failure fraction, in [0,1]; with p=0 it is exactly 0. A nil rng
// uses a time-seeded source.
func RepetitionMCError(n int, p float64, trials int, rng *rand.Rand) (float64, error) {
	if err := checkTrials(trials); err != nil {
		return 0, err
	}
	failures, err := repetitionFailures(n, p, trials, rng)
	if err != nil {
		return 0, err
	}
	return float64(failures) / float64(trials), nil
}

// RepetitionMCErrorParallel splits trials across independently seeded
// batches evaluated concurrently and combines them by count-weighted
// averaging, so the estimator stays unbiased. Batch i uses seed+i, which
// makes the result reproducible for a fixed (trials, batches, seed).
func RepetitionMCErrorParallel(n int, p float64, trials, batches int, seed int64) (float64, error) {
	if err := checkTrials(trials); err != nil {
		return 0, err
	}
	if batches <= 0 {
		return 0, fmt.Errorf("%w: batch count %d", ErrInvalidParameter, batches)
	}
	if batches > trials {
		batches = trials
	}
	per := trials / batches
	rem := trials % batches

	failures := make([]int, batches)
	counts := make([]int, batches)
	var g errgroup.Group
	for i := 0; i < batches; i++ {
		ct := per
		if i < rem {
			ct++
		}
		counts[i] = ct
		i := i
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed + int64(i)))
			f, err := repetitionFailures(n, p, ct, rng)
			if err != nil {
				return err
			}
			failures[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	total, fails := 0, 0
	for i := range counts {
		total += counts[i]
		fails += failures[i]
	}
	return float64(fails) / float64(total), nil
}

// threeQubitMCError is the shared pipeline behind the bit-flip and
// phase-flip estimators: sample a 3-bit mask, extract the syndrome, apply
// the lookup correction and majority-decode the residual.
func threeQubitMCError(p float64, trials int, rng *rand.Rand) (float64, error) {
	if err := checkTrials(trials); err != nil {
		return 0, err
	}
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	if rng == nil {
		rng = newDefaultRand()
	}
	code := NewThreeQubitBitFlip()
	failures := 0
	for t := 0; t < trials; t++ {
		shot, err := code.SampleShot(p, rng)
		if err != nil {
			return 0, err
		}
		if shot.Decoded == 1 {
			failures++
		}
	}
	return float64(failures) / float64(trials), nil
}

// BitFlipMCError estimates the logical error rate of the 3-qubit bit-flip
// code with the canonical lookup decoder: a trial fails when the corrected
// word majority-decodes to 1.
func BitFlipMCError(p float64, trials int, rng *rand.Rand) (float64, error) {
	return threeQubitMCError(p, trials, rng)
}

// PhaseFlipMCError is the phase-flip reading of the same pipeline. The mask
// marks Z errors instead of X errors and a trial fails when two or more Z
// survive the correction, which is numerically the same majority condition,
// so the bit-flip implementation is reused rather than duplicated.
func PhaseFlipMCError(p float64, trials int, rng *rand.Rand) (float64, error) {
	return threeQubitMCError(p, trials, rng)
}
