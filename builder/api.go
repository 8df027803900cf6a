package builder

import (
	"fmt"

	"github.com/katalvlaran/pathproof/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors must validate parameters early, return only
// sentinel-wrapped errors, honor the core mode flags without silently
// degrading, and stay deterministic for a fixed config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with the graph options gopts,
// resolves the builder configuration from bopts, and applies all
// constructors in order. The first constructor error aborts the build and
// is returned wrapped; no partial cleanup is attempted.
//
// Complexity: O(len(bopts)) resolution plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// BuildSimpleWeighted is a thin helper producing the undirected simple
// weighted fixture over vertices 1..9 with the mode flags it requires.
func BuildSimpleWeighted() (*core.Graph, error) {
	return BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		nil,
		SimpleWeighted(),
	)
}

// BuildRingMultigraph is a thin helper producing the directed ring
// multigraph fixture over vertices 1..6 with the mode flags it requires.
func BuildRingMultigraph() (*core.Graph, error) {
	return BuildGraph(
		[]core.GraphOption{core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges()},
		nil,
		RingMultigraph(),
	)
}

// BuildRandomConnected is a thin helper producing a connected random
// directed multigraph with n vertices and at least m edges, using the
// provided builder options (a seeded RNG is required).
func BuildRandomConnected(n, m int, bopts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(
		[]core.GraphOption{core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges()},
		bopts,
		RandomConnected(n, m),
	)
}
