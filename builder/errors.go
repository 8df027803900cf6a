// Package builder constructs the graphs the verification harness runs on:
// two hand-authored fixtures and a seeded random connected multigraph
// generator.
//
// Architecture: every topology is a Constructor closure applied by the
// single BuildGraph orchestrator. Configuration flows through functional
// options into an immutable builderConfig; there is no global state, and
// identical inputs plus an identical seed always produce identical graphs.
package builder

import "errors"

// Sentinel errors for the builder package. Branch with errors.Is; context
// is attached at call sites via %w wrapping.
var (
	// ErrTooFewVertices indicates a vertex-count parameter below the minimum
	// for the requested constructor.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrTooFewEdges indicates an edge-count parameter below numVertices-1,
	// the floor required by the connectivity-repair step.
	ErrTooFewEdges = errors.New("builder: too few edges")

	// ErrNeedRandSource indicates a stochastic constructor was invoked
	// without a non-nil *rand.Rand (set WithSeed or WithRand).
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrUnsupportedGraphMode indicates the target graph's mode flags are
	// incompatible with the invoked constructor (e.g. RandomConnected on an
	// undirected or non-multigraph instance).
	ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

	// ErrConstructFailed indicates BuildGraph was given an unusable
	// constructor (nil) or a constructor could not complete.
	ErrConstructFailed = errors.New("builder: construction failed")
)
