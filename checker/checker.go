// Package checker replays the fixed verification suite for the GCD pipeline.
//
// Each case runs the full compute/select/format path and compares the
// produced response string against the expected one. A failing case prints a
// diagnostic and the run continues, so one bad case never hides the rest.
// The digest stage is deliberately not exercised here; it depends on the
// submitter's secret key.
package checker

import (
	"fmt"
	"io"

	"github.com/sghaida/euclid/euclid"
)

// Case is one fixed verification input with its expected response string.
type Case struct {
	A    int
	B    int
	K    int
	Want string
}

// DefaultCases returns the fixed 20-case suite.
func DefaultCases() []Case {
	return []Case{
		{48, 18, 3, "6,4,12,6"},
		{56, 98, 2, "14,5,98,56"},
		{101, 103, 1, "1,5,101,103"},
		{123456, 789012, 4, "12,13,48276,26904"},
		{540, 150, 2, "30,5,150,90"},
		{1000000, 500000, 3, "500000,2,None"},
		{987654, 123456, 5, "6,3,None"},
		{42, 56, 1, "14,4,42,56"},
		{144, 89, 2, "1,11,89,55"},
		{999999, 333333, 2, "333333,2,333333,0"},
		{250, 1000, 3, "250,3,250,0"},
		{77, 121, 1, "11,6,77,121"},
		{36, 60, 2, "12,5,60,36"},
		{84, 36, 3, "12,3,12,0"},
		{700, 1050, 4, "350,4,350,0"},
		{27, 81, 2, "27,3,81,27"},
		{600, 750, 2, "150,4,750,600"},
		{48, 180, 3, "12,5,48,36"},
		{1024, 2048, 2, "1024,3,2048,1024"},
		{12345, 54321, 5, "3,7,2463,15"},
	}
}

// Run replays every case in order, writing one "passed" line per passing
// case and a multi-line diagnostic per failing one. It returns the number of
// failures; it never stops early.
func Run(w io.Writer, cases []Case) int {
	failed := 0
	for i, c := range cases {
		got := euclid.Compute(c.A, c.B).Response(c.K)
		if got == c.Want {
			fmt.Fprintf(w, "Test case %d passed.\n", i+1)
			continue
		}

		failed++
		fmt.Fprintf(w, "Test case %d failed:\n", i+1)
		fmt.Fprintf(w, "  input: a=%d, b=%d, k=%d\n", c.A, c.B, c.K)
		fmt.Fprintf(w, "  expected: %s\n", c.Want)
		fmt.Fprintf(w, "  actual:   %s\n", got)
	}
	return failed
}
