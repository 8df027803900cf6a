// Package verify is the heart of the pathproof harness: it checks a
// many-to-many shortest-path implementation against a trusted
// single-source reference.
//
// Components:
//
//   - Oracle     — wraps the reference Dijkstra per graph and answers
//     ground-truth weight/path queries for any (source, target) pair.
//   - Validator  — compares a manypaths.Result against the Oracle or
//     against literal expected values, reporting the first discrepancy.
//   - SampleVertices — draws k distinct vertices uniformly at random.
//   - Runner     — composes graph construction, sampling, the algorithm
//     under test and validation into named scenarios.
//
// Failure policy: a single mismatched pair fails the whole scenario; all
// failures surface immediately as ErrMismatch-wrapped errors naming the
// offending pair with both the expected and the actual value. Nothing is
// retried or downgraded.
package verify

import "errors"

// Tolerance is the maximum absolute difference between two finite weights
// for them to be considered equal. Unreachable is compared as a status
// (+Inf on both sides), never numerically.
const Tolerance = 1e-9

// DefaultSeed seeds the Runner's random stream when none is supplied.
const DefaultSeed int64 = 17

// Sentinel errors for the verify package.
var (
	// ErrMismatch indicates the algorithm under test disagrees with the
	// reference oracle or with a literal expectation.
	ErrMismatch = errors.New("verify: result disagrees with reference")

	// ErrBadSampleSize indicates a sample size outside [0, |vertices|].
	ErrBadSampleSize = errors.New("verify: sample size out of range")

	// ErrNeedRandSource indicates a nil *rand.Rand was passed to a
	// stochastic operation.
	ErrNeedRandSource = errors.New("verify: rng is required")

	// ErrNilFactory indicates a Runner was constructed without an algorithm
	// factory.
	ErrNilFactory = errors.New("verify: algorithm factory is nil")

	// ErrScenarioFailed wraps any scenario-level failure (unexpected errors
	// from the algorithm under test, missing rejections, mismatches).
	ErrScenarioFailed = errors.New("verify: scenario failed")
)
