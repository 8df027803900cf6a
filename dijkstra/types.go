// Package dijkstra implements Dijkstra's shortest-path algorithm on
// weighted graphs with non-negative float64 edge weights.
//
// Within pathproof this package is the trusted reference: the verification
// harness treats its output as ground truth when judging a many-to-many
// implementation. It is deliberately a plain, well-understood textbook
// implementation — a min-heap with lazy decrease-key — rather than
// anything optimized.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Multigraphs are handled by relaxing every parallel edge individually,
// so the minimum-weight parallel edge always wins.
//
// Errors (sentinel):
//
//   - ErrNoSource         if no Source option was provided.
//   - ErrNilGraph         if the provided graph pointer is nil.
//   - ErrUnweightedGraph  if the graph does not support weights.
//   - ErrSourceNotFound   if the source vertex does not exist.
//   - ErrNegativeWeight   if a negative edge weight is detected.
package dijkstra

import "errors"

// Sentinel errors returned by Dijkstra.
var (
	// ErrNoSource indicates that no source vertex was configured.
	ErrNoSource = errors.New("dijkstra: no source vertex provided")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates the graph was not built with WithWeighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrSourceNotFound indicates the source vertex is absent from the graph.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures a single Dijkstra run.
//
// Source     — the starting vertex; must be set via the Source option.
// ReturnPath — if true, the predecessor map is returned for path
// reconstruction; otherwise it is nil.
type Options struct {
	Source     int64
	HasSource  bool
	ReturnPath bool
}

// Option is a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex. Because 0 is a legal vertex ID, the
// option also records that a source was explicitly provided.
func Source(v int64) Option {
	return func(o *Options) {
		o.Source = v
		o.HasSource = true
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns the Options baseline: no source, no predecessor
// map.
func DefaultOptions() Options {
	return Options{}
}
