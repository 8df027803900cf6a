package core

import (
	"math"
	"sort"
)

// AddVertex inserts the vertex id into the graph. Adding an existing
// vertex is a no-op, so the call is idempotent.
// Complexity: O(1).
func (g *Graph) AddVertex(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[id] = struct{}{}
}

// HasVertex reports whether the vertex id exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in ascending order. The returned slice
// is owned by the caller; mutating it does not affect the graph.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int64, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// AddEdge inserts an edge from → to with the given weight and returns its
// insertion-ordered ID. Missing endpoints are added implicitly.
//
// Mode rules enforced here:
//   - self-loops require WithLoops (ErrLoopNotAllowed),
//   - a second edge between the same endpoints requires WithMultiEdges
//     (ErrMultiEdgeNotAllowed; for undirected graphs both orientations
//     count as the same endpoints),
//   - non-zero weights require WithWeighted, and NaN/±Inf weights are
//     always rejected (ErrBadWeight).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int64, weight float64) (uint64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.allowLoops {
		return 0, ErrLoopNotAllowed
	}
	if err := g.checkWeight(weight); err != nil {
		return 0, err
	}
	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return 0, ErrMultiEdgeNotAllowed
	}

	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}

	id := g.nextEdgeID
	g.nextEdgeID++
	g.edges[id] = &Edge{ID: id, From: from, To: to, Weight: weight, Directed: g.directed}

	g.link(from, to, id)
	if !g.directed && from != to {
		g.link(to, from, id)
	}

	return id, nil
}

// SetEdgeWeight overwrites the weight of the edge with the given ID.
// Used by generators that fix topology first and assign weights second.
// Complexity: O(1).
func (g *Graph) SetEdgeWeight(id uint64, weight float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	if err := g.checkWeight(weight); err != nil {
		return err
	}
	e.Weight = weight

	return nil
}

// HasEdge reports whether at least one edge exists from → to. For
// undirected graphs either orientation matches.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Neighbors returns copies of all edges incident to id, in insertion
// order. For directed graphs these are the outgoing edges; for undirected
// graphs every edge touching id appears once.
// Returns ErrVertexNotFound if id does not exist.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id int64) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var ids []uint64
	for _, bucket := range g.adjacency[id] {
		for eid := range bucket {
			ids = append(ids, eid)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*Edge, len(ids))
	for i, eid := range ids {
		cp := *g.edges[eid]
		out[i] = &cp
	}

	return out, nil
}

// Edges returns copies of all edges in insertion order. The copies give
// consumers a read-only view of the topology.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]uint64, 0, len(g.edges))
	for eid := range g.edges {
		ids = append(ids, eid)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*Edge, len(ids))
	for i, eid := range ids {
		cp := *g.edges[eid]
		out[i] = &cp
	}

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// checkWeight validates a weight against the graph mode.
// Callers must hold g.mu.
func (g *Graph) checkWeight(weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return ErrBadWeight
	}
	if !g.weighted && weight != 0 {
		return ErrBadWeight
	}

	return nil
}

// link records edge id in the adjacency bucket from → to.
// Callers must hold g.mu.
func (g *Graph) link(from, to int64, id uint64) {
	row, ok := g.adjacency[from]
	if !ok {
		row = make(map[int64]map[uint64]bool)
		g.adjacency[from] = row
	}
	bucket, ok := row[to]
	if !ok {
		bucket = make(map[uint64]bool)
		row[to] = bucket
	}
	bucket[id] = true
}
