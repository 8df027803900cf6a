// impl_random_connected.go — RandomConnected(n, m): G(n,M) random edges,
// chain connectivity repair, then uniform edge weights.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices), m >= n-1 (else ErrTooFewEdges).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Target graph must be a directed weighted multigraph
//     (else ErrUnsupportedGraphMode).
//   - Emits exactly (m - n + 1) + 2*(n-1) edges: m is a floor, not an
//     exact edge count. Downstream degree parameters are sized around this
//     formula, so the overshoot is deliberate and stable.
//   - Every vertex reaches every other vertex: the repair step threads a
//     chain of paired forward/backward edges through all vertices. This is
//     a deliberate simplification that forces strong connectivity through
//     one chain, not a general connectivity-repair algorithm.
//   - Weights are assigned only after all edges exist, uniformly via
//     cfg.weightFn in edge insertion order, so the topology is fixed
//     before any weight is drawn and the RNG stream stays reproducible.
//
// Determinism: for a fixed seed, options and call order the generated
// graph is identical across runs.
package builder

import (
	"fmt"

	"github.com/katalvlaran/pathproof/core"
)

const (
	methodRandomConnected      = "RandomConnected"
	minRandomConnectedVertices = 1
)

// RandomConnected returns a Constructor sampling a strongly connected
// random directed multigraph with n vertices and at least m edges.
//
// Phase 1 draws m-n+1 edges from the G(n,M) model: ordered vertex pairs
// chosen uniformly with repetition, self-loops excluded. Phase 2 adds the
// connectivity-repair chain. Phase 3 assigns weights.
// Complexity: O(n + m) expected time.
func RandomConnected(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomConnectedVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomConnected, n, minRandomConnectedVertices, ErrTooFewVertices)
		}
		if m < n-1 {
			return fmt.Errorf("%s: m=%d < n-1=%d: %w", methodRandomConnected, m, n-1, ErrTooFewEdges)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}
		if !g.Directed() || !g.Weighted() || !g.Multigraph() {
			return fmt.Errorf("%s: need a directed weighted multigraph: %w",
				methodRandomConnected, ErrUnsupportedGraphMode)
		}

		// Vertices in supplier order (index 0..n-1).
		ids := make([]int64, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.vertexFn(i)
			g.AddVertex(ids[i])
		}

		// Phase 1: m-n+1 uniform ordered pairs, repetition allowed.
		// With n == 1 no admissible pair exists (self-loops are excluded),
		// so the graph degenerates to a single isolated vertex.
		if n > 1 {
			for drawn := 0; drawn < m-n+1; drawn++ {
				u := ids[cfg.rng.Intn(n)]
				v := ids[cfg.rng.Intn(n)]
				for u == v {
					// Redraw the whole pair to stay uniform over ordered pairs.
					u = ids[cfg.rng.Intn(n)]
					v = ids[cfg.rng.Intn(n)]
				}
				if _, err := g.AddEdge(u, v, 0); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodRandomConnected, u, v, err)
				}
			}
		}

		// Phase 2: connectivity repair. Both directions between each
		// consecutive vertex pair make the whole graph strongly connected
		// through the chain, regardless of the random edges above.
		for i := 0; i+1 < n; i++ {
			if _, err := g.AddEdge(ids[i], ids[i+1], 0); err != nil {
				return fmt.Errorf("%s: repair AddEdge(%d→%d): %w", methodRandomConnected, ids[i], ids[i+1], err)
			}
			if _, err := g.AddEdge(ids[i+1], ids[i], 0); err != nil {
				return fmt.Errorf("%s: repair AddEdge(%d→%d): %w", methodRandomConnected, ids[i+1], ids[i], err)
			}
		}

		// Phase 3: weights for every edge — random and repair alike — in
		// insertion order.
		for _, e := range g.Edges() {
			if err := g.SetEdgeWeight(e.ID, cfg.weightFn(cfg.rng)); err != nil {
				return fmt.Errorf("%s: SetEdgeWeight(%d): %w", methodRandomConnected, e.ID, err)
			}
		}

		return nil
	}
}
