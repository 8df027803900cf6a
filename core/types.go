// Package core defines the central Graph and Edge types used by the
// pathproof verification harness, plus the options that select graph mode
// (directed/undirected, weighted, multi-edges, self-loops).
//
// Vertices are opaque int64 identifiers; edges carry float64 weights.
// A Graph may be a multigraph: several edges between the same ordered
// vertex pair, each with an independent weight.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a weight incompatible with the graph mode:
	// a non-zero weight on an unweighted graph, or a NaN/±Inf weight.
	ErrBadWeight = errors.New("core: bad weight for graph mode")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when
	// multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents a weighted connection between two vertices.
//
// ID is a monotonically increasing number assigned at insertion time, so
// sorting edges by ID recovers insertion order. Directed records the
// graph's default directedness at the moment the edge was added.
type Edge struct {
	// ID uniquely identifies this edge within its Graph.
	ID uint64

	// From is the source vertex.
	From int64

	// To is the destination vertex.
	To int64

	// Weight is the cost of traversing the edge.
	Weight float64

	// Directed indicates the edge is one-way (true) or bidirectional (false).
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory graph data structure consumed by the harness.
//
// It supports directed vs. undirected mode, weighted vs. unweighted mode,
// parallel edges (multi-edges) and self-loops. A single RWMutex guards all
// state: the harness itself is sequential, the lock only keeps concurrent
// read-only consumers safe.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags, immutable after construction.
	directed   bool // directed edges
	weighted   bool // allow non-zero weights
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64                              // insertion-order edge ID generator
	vertices   map[int64]struct{}                  // vertex set
	edges      map[uint64]*Edge                    // edge ID → Edge
	adjacency  map[int64]map[int64]map[uint64]bool // from → to → edge IDs
}

// NewGraph creates an empty Graph with the given options.
// By default a Graph is undirected, unweighted, with no loops and no
// multi-edges.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[int64]struct{}),
		edges:     make(map[uint64]*Edge),
		adjacency: make(map[int64]map[int64]map[uint64]bool),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are directed by default.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Weighted reports whether non-zero edge weights are permitted.
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
