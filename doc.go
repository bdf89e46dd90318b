// Package euclid is a small answer kit for the Euclidean-algorithm GCD
// homework: compute the GCD of two numbers while recording every
// (dividend, divisor) step, pick the k-th step, render the canonical
// response string, and sign it with a SHA-256 digest for submission.
//
// The repository is organized as a handful of small, explicit packages:
//
//   - euclid: the pure computation core (stepper, step selector, response
//     formatter). No I/O, no state.
//   - digest: deterministic SHA-256 signing of a response string with the
//     caller's credentials.
//   - answer: the driver that composes euclid + digest into one call.
//   - checker: the fixed 20-case verification suite with pass/fail output.
//   - config: YAML/env credential loading for the CLI.
//   - log: structured logging setup used by the CLI.
//   - cmd/euclid: the command-line entry point (solve, check).
//
// The goal is to keep every stage a plain function with explicit inputs and
// outputs, wired together only in the driver and the composition root in
// cmd/euclid.
//
// Start with the euclid package; the rest is plumbing around it.
package euclid
