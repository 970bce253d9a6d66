package qec

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepetitionExactErrorKnownValues(t *testing.T) {
	// n=3: 3 p^2 (1-p) + p^3
	got, err := RepetitionExactError(3, 0.1)
	require.NoError(t, err)
	require.InDelta(t, 0.028, got, 1e-12)

	got, err = RepetitionExactError(3, 0.5)
	require.NoError(t, err)
	require.InDelta(t, 0.5, got, 1e-12)

	// n=1 is an uncoded qubit
	got, err = RepetitionExactError(1, 0.37)
	require.NoError(t, err)
	require.InDelta(t, 0.37, got, 1e-12)
}

func TestRepetitionExactErrorEndpoints(t *testing.T) {
	for _, n := range []int{1, 3, 5, 9} {
		zero, err := RepetitionExactError(n, 0)
		require.NoError(t, err)
		require.Equal(t, 0.0, zero)

		one, err := RepetitionExactError(n, 1)
		require.NoError(t, err)
		require.InDelta(t, 1.0, one, 1e-12)
	}
}

// Below threshold (p < 1/2) longer repetition codes must help.
func TestRepetitionExactErrorMonotoneInN(t *testing.T) {
	prev := 1.0
	for _, n := range []int{1, 3, 5, 7, 9} {
		rate, err := RepetitionExactError(n, 0.1)
		require.NoError(t, err)
		require.Less(t, rate, prev, "n=%d should improve on the previous length", n)
		prev = rate
	}
}

func TestRepetitionExactErrorInvalid(t *testing.T) {
	_, err := RepetitionExactError(0, 0.1)
	require.True(t, errors.Is(err, ErrInvalidParameter))
	_, err = RepetitionExactError(3, -0.2)
	require.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestRepetitionCurve(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	curve, err := RepetitionCurve([]int{1, 3, 5}, 0.1, 2000, rng)
	require.NoError(t, err)
	require.Len(t, curve, 3)
	for i, n := range []int{1, 3, 5} {
		require.Equal(t, n, curve[i].N)
		require.GreaterOrEqual(t, curve[i].Rate, 0.0)
		require.LessOrEqual(t, curve[i].Rate, 1.0)
	}
}

func TestRepetitionCurvePropagatesErrors(t *testing.T) {
	_, err := RepetitionCurve([]int{3, -1}, 0.1, 100, rand.New(rand.NewSource(1)))
	require.True(t, errors.Is(err, ErrInvalidParameter))
}
