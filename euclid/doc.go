// Package euclid implements the computation core of the answer kit.
//
// It covers three stages, each a pure function:
//
//   - Compute: run the Euclidean algorithm on (a, b) and record the
//     (dividend, divisor) pair at every iteration, terminal step included.
//   - KthStep / TryKthStep: 1-based lookup into the recorded steps, with an
//     explicit absence result for out-of-range indexes.
//   - FormatResponse: render the canonical "gcd,depth,a,b" (or
//     "gcd,depth,None") response string.
//
// Inputs are assumed non-negative; behavior for negative values is
// deliberately left out of the contract.
package euclid
