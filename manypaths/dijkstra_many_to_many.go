package manypaths

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathproof/core"
	"github.com/katalvlaran/pathproof/dijkstra"
)

// DijkstraManyToMany is the baseline Computer: one single-source Dijkstra
// run per source vertex, with per-target path reconstruction.
//
// It exists so the harness ships with a known-good algorithm under test;
// it makes no attempt at the bucket/contraction optimizations real
// many-to-many implementations use.
type DijkstraManyToMany struct {
	g *core.Graph
}

// NewDijkstraManyToMany binds the baseline computer to g. The graph is
// consumed read-only.
func NewDijkstraManyToMany(g *core.Graph) *DijkstraManyToMany {
	return &DijkstraManyToMany{g: g}
}

// DefaultFactory injects DijkstraManyToMany as the algorithm under test.
var DefaultFactory Factory = func(g *core.Graph) Computer {
	return NewDijkstraManyToMany(g)
}

// ManyToManyPaths computes shortest weights and paths for every pair in
// sources × targets.
//
// Nil sources or targets are rejected with ErrNilSources / ErrNilTargets
// before any traversal. Empty slices are valid: no single-source run is
// performed and the Result answers no pairs.
//
// Complexity: O(|sources| * (V + E) log V) time.
func (d *DijkstraManyToMany) ManyToManyPaths(sources, targets []int64) (*Result, error) {
	if sources == nil {
		return nil, ErrNilSources
	}
	if targets == nil {
		return nil, ErrNilTargets
	}
	if d.g == nil {
		return nil, ErrNilGraph
	}

	res := NewResult()
	for _, s := range sources {
		dist, prev, err := dijkstra.Dijkstra(d.g, dijkstra.Source(s), dijkstra.WithReturnPath())
		if err != nil {
			return nil, fmt.Errorf("manypaths: source %d: %w", s, err)
		}

		for _, t := range targets {
			w, ok := dist[t]
			if !ok || math.IsInf(w, 1) {
				res.Add(s, t, math.Inf(1), nil)

				continue
			}
			res.Add(s, t, w, dijkstra.BuildPath(prev, s, t))
		}
	}

	return res, nil
}
