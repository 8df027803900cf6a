package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors. It is passed by
// value, so constructors cannot mutate the caller's configuration.
type builderConfig struct {
	// vertexFn maps a zero-based index to a vertex ID (deterministic).
	vertexFn VertexIDFn
	// rng drives stochastic choices; nil means "no randomness available".
	rng *rand.Rand
	// weightFn produces edge weights for weighted graphs.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later options override earlier ones).
//
// Defaults:
//   - vertexFn: SequentialIDFn (0,1,2,...)
//   - rng:      nil (stochastic constructors reject this explicitly)
//   - weightFn: UnitIntervalWeightFn (uniform [0,1) draws)
//
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		vertexFn: SequentialIDFn,
		rng:      nil,
		weightFn: UnitIntervalWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// VertexIDFn generates a vertex identifier from its zero-based index.
// Implementations must be pure: the same idx always yields the same ID.
type VertexIDFn func(idx int) int64

// SequentialIDFn is the default vertex supplier: index i becomes vertex i.
func SequentialIDFn(idx int) int64 {
	return int64(idx)
}

// OffsetIDFn returns a supplier shifted by base: index i becomes base+i.
// Useful when fixtures and generated graphs must not share vertex IDs.
func OffsetIDFn(base int64) VertexIDFn {
	return func(idx int) int64 {
		return base + int64(idx)
	}
}
