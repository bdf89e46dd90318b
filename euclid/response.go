package euclid

import "strconv"

// NoneToken is the literal emitted in place of the step fields when the
// selected step is absent.
const NoneToken = "None"

// FormatResponse renders the canonical response string.
//
// With a step present the format is "gcd,depth,a,b"; without one it is
// "gcd,depth,None". Fields are comma-separated with no escaping, since every
// field is an integer or the literal None token.
func FormatResponse(gcd, depth int, step Step, present bool) string {
	s := strconv.Itoa(gcd) + "," + strconv.Itoa(depth) + ","
	if !present {
		return s + NoneToken
	}
	return s + strconv.Itoa(step.Dividend) + "," + strconv.Itoa(step.Divisor)
}

// Response selects the k-th step and formats the response string in one go.
func (r Result) Response(k int) string {
	step, ok := r.KthStep(k)
	return FormatResponse(r.GCD, r.Depth(), step, ok)
}
