package qec

import "fmt"

// State is the caller-owned bag of page state a challenge check inspects.
// The core never writes to it.
type State map[string]any

// CheckFunc inspects state and returns pass/fail with feedback text.
type CheckFunc func(State) (bool, string)

// Challenge is a UI-free exercise: a prompt shown to the learner, a check
// over the current state, and an optional hint.
type Challenge struct {
	Prompt string
	Check  CheckFunc
	Hint   string
}

// CheckThreshold passes when the recorded rate under rateKey is at or
// below target.
func CheckThreshold(target float64, rateKey string) CheckFunc {
	return func(s State) (bool, string) {
		rate, ok := s[rateKey].(float64)
		if !ok {
			return false, "Run the estimator first, then try again."
		}
		return rate <= target, fmt.Sprintf("Your rate = %.4f (target <= %.4f).", rate, target)
	}
}

// CheckSmallestNBelow passes when the current "n" in state equals the
// minimal code length on the recorded sweep curve whose rate is at or
// below target.
func CheckSmallestNBelow(target float64, curveKey string) CheckFunc {
	return func(s State) (bool, string) {
		curve, ok := s[curveKey].([]CurvePoint)
		if !ok || len(curve) == 0 {
			return false, "Run a quick sweep first to generate the curve."
		}
		nMin, found := 0, false
		for _, pt := range curve {
			if pt.Rate <= target && (!found || pt.N < nMin) {
				nMin = pt.N
				found = true
			}
		}
		if !found {
			return false, "No n in the sweep achieves that target at the current p."
		}
		n, _ := s["n"].(int)
		return n == nMin, fmt.Sprintf("Smallest n achieving <= %.3f is n=%d. You have n=%d.", target, nMin, n)
	}
}
