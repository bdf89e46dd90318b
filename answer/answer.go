// Package answer is the driver that turns one homework input into a signed
// submission: compute the GCD steps, select the k-th step, format the
// response string, and sign it.
package answer

import (
	"github.com/sghaida/euclid/digest"
	"github.com/sghaida/euclid/euclid"
)

// Answer bundles everything the submission needs for one (a, b, k) input.
type Answer struct {
	GCD   int
	Depth int

	// Step is the k-th recorded step; meaningful only when HasStep is true.
	Step    euclid.Step
	HasStep bool

	Response string
	Digest   string
}

// Solve composes the pipeline: Compute -> KthStep -> FormatResponse ->
// digest.Sum. It adds no branching of its own beyond what the stages already
// perform.
func Solve(a, b, k int, creds digest.Credentials) Answer {
	res := euclid.Compute(a, b)
	step, ok := res.KthStep(k)
	response := euclid.FormatResponse(res.GCD, res.Depth(), step, ok)

	return Answer{
		GCD:      res.GCD,
		Depth:    res.Depth(),
		Step:     step,
		HasStep:  ok,
		Response: response,
		Digest:   digest.Sum(creds, response),
	}
}
