package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/pathproof/core"
)

// Dijkstra computes shortest distances from the configured source vertex
// to all other vertices in the weighted graph g.
//
// Returns:
//
//   - dist: map from vertex to minimum distance; math.Inf(1) if unreachable.
//     Every vertex of g has an entry, so a map lookup never defaults to 0.
//   - prev: predecessor map if WithReturnPath was given (nil otherwise).
//     prev[v] == u means the shortest path to v arrives via u; vertices
//     without a predecessor (the source, unreachable vertices) are absent.
//   - err:  validation error, or ErrNegativeWeight if the pre-scan finds
//     a negative edge.
//
// Validation order: ErrNoSource, ErrNilGraph, ErrUnweightedGraph,
// ErrSourceNotFound, ErrNegativeWeight.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) (map[int64]float64, map[int64]int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.HasSource {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrSourceNotFound
	}

	// Pre-scan all edges to fail fast on negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int64]float64, g.VertexCount()),
		visited: make(map[int64]bool, g.VertexCount()),
	}
	if cfg.ReturnPath {
		r.prev = make(map[int64]int64, g.VertexCount())
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[int64]float64
	prev    map[int64]int64
	visited map[int64]bool
	pq      nodePQ
}

// init seeds distances with +Inf, pushes the source with distance 0.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.Inf(1)
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unvisited vertex and relaxes its
// outgoing edges, ignoring stale heap entries (lazy decrease-key).
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		r.visited[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the distance of every neighbor of u.
// Assumes dist[u] is final.
func (r *runner) relax(u int64) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	for _, e := range neighbors {
		// Directed edges are traversable only out of their From endpoint.
		if e.Directed && e.From != u {
			continue
		}
		// Undirected edges are stored once; walk to the far endpoint.
		v := e.To
		if !e.Directed && v == u {
			v = e.From
		}

		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, v, e.Weight)
		}

		newDist := r.dist[u] + e.Weight
		// Strictly-better only: equal-weight alternatives never displace an
		// established predecessor, keeping tie-breaks stable for a fixed
		// relaxation order.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// BuildPath reconstructs the vertex sequence source → target from a
// predecessor map produced by Dijkstra with WithReturnPath.
//
// Returns nil when target is unreachable from source, and the single-vertex
// sequence [source] when source == target.
// Complexity: O(len(path)).
func BuildPath(prev map[int64]int64, source, target int64) []int64 {
	if source == target {
		return []int64{source}
	}

	path := []int64{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
	}

	// Reverse in place: the walk above collected vertices target-first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int64
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, used with
// the lazy-decrease-key strategy: stale entries remain in the heap and are
// skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
