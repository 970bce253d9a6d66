package qec

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/combin"
)

// RepetitionExactError is the closed-form logical error rate of the
// length-n repetition code: the binomial tail P[X > n/2] for X ~ Bin(n,p).
// Monte-Carlo estimates converge to this value as trials grow.
func RepetitionExactError(n int, p float64) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: code length %d", ErrInvalidParameter, n)
	}
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	sum := 0.0
	for k := n/2 + 1; k <= n; k++ {
		sum += combin.GeneralizedBinomial(float64(n), float64(k)) *
			math.Pow(p, float64(k)) * math.Pow(1-p, float64(n-k))
	}
	// Guard against float accumulation creeping past 1.
	return math.Min(sum, 1), nil
}

// CurvePoint is one (n, rate) sample of a repetition-code sweep.
type CurvePoint struct {
	N    int     `json:"n"`
	Rate float64 `json:"rate"`
}

// RepetitionCurve estimates the logical error rate for each code length in
// ns at a fixed physical error probability, reusing one random source so a
// seeded sweep is reproducible end to end.
func RepetitionCurve(ns []int, p float64, trials int, rng *rand.Rand) ([]CurvePoint, error) {
	if rng == nil {
		rng = newDefaultRand()
	}
	out := make([]CurvePoint, 0, len(ns))
	for _, n := range ns {
		rate, err := RepetitionMCError(n, p, trials, rng)
		if err != nil {
			return nil, fmt.Errorf("n=%d: %w", n, err)
		}
		out = append(out, CurvePoint{N: n, Rate: rate})
	}
	return out, nil
}
