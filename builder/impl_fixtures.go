package builder

import (
	"fmt"

	"github.com/katalvlaran/pathproof/core"
)

// fixtureEdge is one literal edge of a hand-authored fixture.
type fixtureEdge struct {
	from, to int64
	weight   float64
}

// simpleWeightedEdges is the undirected simple fixture over vertices 1..9.
// The weights are chosen so that every tested shortest path has a unique
// minimum: scenario expectations compare vertex sequences exactly, so the
// topology must leave no room for tie-breaking.
var simpleWeightedEdges = []fixtureEdge{
	{1, 2, 3}, {1, 4, 1},
	{2, 3, 3}, {2, 5, 1},
	{3, 6, 1},
	{4, 5, 1}, {4, 7, 1},
	{5, 6, 1}, {5, 8, 1},
	{6, 9, 1},
	{7, 8, 3}, {8, 9, 3},
}

// ringMultigraphEdges is the directed ring fixture over vertices 1..6:
// between each consecutive ring pair there are two parallel edges of
// distinct weights in each direction. A correct algorithm must select the
// lighter parallel edge; the chain-repair step of the random generator
// never produces parallel edges, so only this fixture exercises that case.
var ringMultigraphEdges = []fixtureEdge{
	{1, 2, 1}, {1, 2, 2}, {2, 1, 3}, {2, 1, 4},
	{2, 3, 8}, {2, 3, 7}, {3, 2, 6}, {3, 2, 5},
	{3, 4, 9}, {3, 4, 10}, {4, 3, 11}, {4, 3, 12},
	{4, 5, 16}, {4, 5, 15}, {5, 4, 14}, {5, 4, 13},
	{5, 6, 17}, {5, 6, 18}, {6, 5, 19}, {6, 5, 20},
	{6, 1, 24}, {6, 1, 23}, {1, 6, 22}, {1, 6, 21},
}

// SimpleWeighted returns a Constructor emitting the undirected simple
// weighted fixture. Requires an undirected, weighted target graph.
// Deterministic; consumes no randomness.
func SimpleWeighted() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if g.Directed() || !g.Weighted() {
			return fmt.Errorf("SimpleWeighted: need an undirected weighted graph: %w", ErrUnsupportedGraphMode)
		}

		return emitFixture("SimpleWeighted", g, simpleWeightedEdges)
	}
}

// RingMultigraph returns a Constructor emitting the directed ring
// multigraph fixture. Requires a directed, weighted multigraph.
// Deterministic; consumes no randomness.
func RingMultigraph() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if !g.Directed() || !g.Weighted() || !g.Multigraph() {
			return fmt.Errorf("RingMultigraph: need a directed weighted multigraph: %w", ErrUnsupportedGraphMode)
		}

		return emitFixture("RingMultigraph", g, ringMultigraphEdges)
	}
}

// emitFixture adds the literal edge list to g in declaration order.
func emitFixture(method string, g *core.Graph, edges []fixtureEdge) error {
	for _, e := range edges {
		if _, err := g.AddEdge(e.from, e.to, e.weight); err != nil {
			return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, e.from, e.to, e.weight, err)
		}
	}

	return nil
}
