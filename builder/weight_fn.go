package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the fallback weight used by stochastic weight
// policies when no RNG is available.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// UnitIntervalWeightFn draws uniformly from [0, 1), the weight model used
// by the randomized verification scenarios. Falls back to
// DefaultEdgeWeight when rng is nil.
func UnitIntervalWeightFn(rng *rand.Rand) float64 {
	if rng == nil {
		return DefaultEdgeWeight
	}

	return rng.Float64()
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("builder: ConstantWeightFn(%g): value must be >= 0", value))
	}

	return func(*rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly from [lo, hi).
// Panics if lo < 0 or hi < lo. Falls back to DefaultEdgeWeight when rng is
// nil.
func UniformWeightFn(lo, hi float64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("builder: UniformWeightFn(%g, %g): require 0 <= lo <= hi", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if hi == lo {
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}
