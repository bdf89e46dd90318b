package euclid

import "strconv"

// Step is the (dividend, divisor) pair at one iteration of the algorithm.
type Step struct {
	Dividend int
	Divisor  int
}

// Result holds the computed GCD plus every recorded step, first to last.
//
// The first step is always the original (a, b) ordering, and the last step
// always has Divisor == 0.
type Result struct {
	GCD   int
	Steps []Step
}

// Depth returns the number of recorded steps.
func (r Result) Depth() int { return len(r.Steps) }

// StepOutOfRangeError is returned by TryKthStep when k falls outside
// [1, Depth].
type StepOutOfRangeError struct {
	K     int
	Depth int
}

// Error implements the error interface.
func (e StepOutOfRangeError) Error() string {
	// Example: euclid: step 7 out of range (depth 4)
	return "euclid: step " + strconv.Itoa(e.K) +
		" out of range (depth " + strconv.Itoa(e.Depth) + ")"
}

// Compute runs the Euclidean algorithm on (a, b) and records each
// (dividend, divisor) pair along the way.
//
// The pair is recorded before any reduction, so the first step keeps the
// caller's ordering even when a < b (the swap lands in the next step).
// The terminal (gcd, 0) step is recorded too, which makes Depth always >= 1:
// Compute(a, 0) records the single step (a, 0) and returns GCD a.
//
// Inputs are assumed non-negative.
func Compute(a, b int) Result {
	steps := make([]Step, 0, 8)
	for {
		steps = append(steps, Step{Dividend: a, Divisor: b})
		if b == 0 {
			break
		}
		if a < b {
			a, b = b, a
		} else {
			a, b = b, a%b
		}
	}
	return Result{GCD: a, Steps: steps}
}

// KthStep returns the k-th recorded step, counting from 1.
//
// ok is false when k <= 0 or k exceeds Depth; that is the normal, expected
// outcome for an out-of-range index, not a failure.
func (r Result) KthStep(k int) (Step, bool) {
	if k <= 0 || k > len(r.Steps) {
		return Step{}, false
	}
	return r.Steps[k-1], true
}

// TryKthStep returns the k-th recorded step, counting from 1.
//
// It returns StepOutOfRangeError when k falls outside [1, Depth], so callers
// that want error plumbing instead of an ok flag can use errors.As on the
// result.
func (r Result) TryKthStep(k int) (Step, error) {
	step, ok := r.KthStep(k)
	if !ok {
		return Step{}, StepOutOfRangeError{K: k, Depth: len(r.Steps)}
	}
	return step, nil
}
