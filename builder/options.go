package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
// Option constructors validate eagerly and panic on programmer error;
// constructors themselves only ever return errors.
type BuilderOption func(*builderConfig)

// WithVertexIDFn sets the deterministic vertex ID supplier.
// Panics on nil.
func WithVertexIDFn(fn VertexIDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithVertexIDFn(nil)")
	}

	return func(c *builderConfig) {
		c.vertexFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors. Use this
// to share one sequentially consumed random stream across generation,
// weighting and sampling. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a fresh *rand.Rand with the given seed. Prefer this in
// tests to lock stochastic outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. The function must
// be deterministic with respect to the RNG state it receives.
// Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
