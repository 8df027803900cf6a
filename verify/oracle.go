package verify

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathproof/core"
	"github.com/katalvlaran/pathproof/dijkstra"
)

// Oracle answers ground-truth shortest-path queries for one graph by
// delegating to the reference single-source Dijkstra.
//
// Construct one Oracle per graph; it may then be queried for any number of
// sources. It caches exactly one single-source tree and rebuilds it
// whenever a query names a new source, so grouping queries by source is
// cheap and interleaving sources is merely slower, never wrong.
//
// Oracle is not safe for concurrent use; the harness is sequential.
type Oracle struct {
	g      *core.Graph
	source int64
	ready  bool
	dist   map[int64]float64
	prev   map[int64]int64
}

// NewOracle binds an Oracle to g. The graph is consumed read-only.
func NewOracle(g *core.Graph) *Oracle {
	return &Oracle{g: g}
}

// Weight returns the shortest-path weight from source to target, +Inf when
// target is unreachable, and 0 when source == target.
func (o *Oracle) Weight(source, target int64) (float64, error) {
	if err := o.ensure(source); err != nil {
		return 0, err
	}

	w, ok := o.dist[target]
	if !ok {
		return math.Inf(1), nil
	}

	return w, nil
}

// Path returns the shortest vertex sequence from source to target
// inclusive, nil when unreachable, and [source] when source == target.
func (o *Oracle) Path(source, target int64) ([]int64, error) {
	if err := o.ensure(source); err != nil {
		return nil, err
	}

	if w, ok := o.dist[target]; !ok || math.IsInf(w, 1) {
		return nil, nil
	}

	return dijkstra.BuildPath(o.prev, source, target), nil
}

// ensure rebuilds the cached single-source tree when the queried source
// differs from the cached one.
func (o *Oracle) ensure(source int64) error {
	if o.ready && o.source == source {
		return nil
	}

	dist, prev, err := dijkstra.Dijkstra(o.g, dijkstra.Source(source), dijkstra.WithReturnPath())
	if err != nil {
		return fmt.Errorf("verify: oracle for source %d: %w", source, err)
	}

	o.source = source
	o.dist = dist
	o.prev = prev
	o.ready = true

	return nil
}
