// Package manypaths defines the capability boundary between the
// verification harness and a many-to-many shortest-path algorithm under
// test: the Computer interface, the Result object it must return, and the
// Factory strategy type used to inject concrete implementations.
//
// The package also ships DijkstraManyToMany, a baseline Computer built on
// repeated single-source runs, so the harness has an in-tree algorithm to
// exercise.
//
// Absent vs. empty input: a nil sources or targets slice is the "no value"
// sentinel and must be rejected with ErrNilSources / ErrNilTargets before
// any graph traversal. Empty non-nil slices are valid and yield a Result
// answering no pairs.
package manypaths

import (
	"errors"
	"math"

	"github.com/katalvlaran/pathproof/core"
)

// Sentinel errors for the many-to-many capability boundary.
var (
	// ErrNilSources indicates the sources slice was nil (absent, not empty).
	ErrNilSources = errors.New("manypaths: sources must not be nil")

	// ErrNilTargets indicates the targets slice was nil (absent, not empty).
	ErrNilTargets = errors.New("manypaths: targets must not be nil")

	// ErrNilGraph indicates a Computer was constructed over a nil graph.
	ErrNilGraph = errors.New("manypaths: graph is nil")
)

// Computer is the capability interface a many-to-many shortest-path
// algorithm must satisfy to be verifiable by this harness.
//
// Contract for the returned Result, for every (s, t) in sources × targets:
//
//   - Weight(s, t) is the shortest-path weight, +Inf when t is unreachable
//     from s, and exactly 0 when s == t;
//   - Path(s, t) is the shortest vertex sequence from s to t inclusive,
//     nil when unreachable, and the single-vertex sequence [s] when s == t.
//
// Behavior for pairs outside sources × targets is implementation-defined.
type Computer interface {
	ManyToManyPaths(sources, targets []int64) (*Result, error)
}

// Factory produces a Computer bound to a graph. Concrete algorithm
// implementations are injected into the harness as Factory values, not via
// embedding or inheritance.
type Factory func(g *core.Graph) Computer

// pair is an ordered (source, target) key.
type pair struct {
	source, target int64
}

// entry holds one pair's answer.
type entry struct {
	weight float64
	path   []int64
}

// Result maps ordered (source, target) pairs to shortest-path weights and
// vertex sequences. Lookups never panic: a pair with no stored entry reads
// as unreachable (+Inf weight, nil path).
type Result struct {
	entries map[pair]entry
}

// NewResult returns an empty Result ready for Add calls.
func NewResult() *Result {
	return &Result{entries: make(map[pair]entry)}
}

// Add records the answer for the ordered pair (source, target). For
// unreachable pairs store math.Inf(1) and a nil path.
func (r *Result) Add(source, target int64, weight float64, path []int64) {
	r.entries[pair{source, target}] = entry{weight: weight, path: path}
}

// Weight returns the stored shortest-path weight for (source, target), or
// +Inf when no entry exists.
func (r *Result) Weight(source, target int64) float64 {
	e, ok := r.entries[pair{source, target}]
	if !ok {
		return math.Inf(1)
	}

	return e.weight
}

// Path returns the stored vertex sequence for (source, target), or nil
// when the pair is unreachable or has no entry.
func (r *Result) Path(source, target int64) []int64 {
	return r.entries[pair{source, target}].path
}

// Len returns the number of stored pairs.
func (r *Result) Len() int {
	return len(r.entries)
}
