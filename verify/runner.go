package verify

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/pathproof/builder"
	"github.com/katalvlaran/pathproof/core"
	"github.com/katalvlaran/pathproof/manypaths"
)

// RandomSpec parameterizes one randomized verification sweep.
type RandomSpec struct {
	// Vertices is the vertex count of each generated graph.
	Vertices int
	// Degree scales the requested edge count: Degree*Vertices edges are
	// asked of the generator (which treats the request as a floor).
	Degree int
	// SetSizes lists (sourceCount, targetCount) configurations. One fresh
	// graph is generated per entry.
	SetSizes [][2]int
	// Iterations is the number of source/target resamplings per entry;
	// the graph is reused across them (generation is the expensive step,
	// resampling vertices is cheap).
	Iterations int
}

// SweepRow is one configuration row of a table-driven randomized sweep,
// carrying graph shape and sampled set sizes together.
type SweepRow struct {
	// Vertices and Degree shape the generated graph as in RandomSpec.
	Vertices int
	Degree   int
	// Sources and Targets are the sampled set sizes for this row.
	Sources int
	Targets int
}

// Runner composes graph construction, vertex sampling, the algorithm
// under test and validation into named verification scenarios.
//
// The algorithm under test is injected as a manypaths.Factory. All
// randomness flows from the Runner's single seeded RNG, consumed strictly
// sequentially (topology, then weights, then sampling), so a run is fully
// reproducible for a fixed seed.
type Runner struct {
	factory manypaths.Factory
	rng     *rand.Rand
}

// RunnerOption customizes a Runner at construction time.
type RunnerOption func(*Runner)

// WithSeed seeds the Runner's random stream (default DefaultSeed).
func WithSeed(seed int64) RunnerOption {
	return func(r *Runner) {
		r.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit random stream. Panics on nil.
func WithRand(rng *rand.Rand) RunnerOption {
	if rng == nil {
		panic("verify: WithRand(nil)")
	}

	return func(r *Runner) {
		r.rng = rng
	}
}

// NewRunner builds a Runner around the factory of the algorithm under
// test. Returns ErrNilFactory when factory is nil.
func NewRunner(factory manypaths.Factory, opts ...RunnerOption) (*Runner, error) {
	if factory == nil {
		return nil, ErrNilFactory
	}

	r := &Runner{
		factory: factory,
		rng:     rand.New(rand.NewSource(DefaultSeed)),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// EmptyInputs verifies that empty (non-nil) source and target sets on an
// empty graph complete without failure.
func (r *Runner) EmptyInputs() error {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())

	res, err := r.factory(g).ManyToManyPaths([]int64{}, []int64{})
	if err != nil {
		return fmt.Errorf("%w: EmptyInputs: unexpected error: %v", ErrScenarioFailed, err)
	}
	if res == nil {
		return fmt.Errorf("%w: EmptyInputs: nil result", ErrScenarioFailed)
	}

	return nil
}

// NilInputs verifies that an absent (nil) source or target set is rejected
// with the corresponding invalid-argument sentinel before any traversal.
func (r *Runner) NilInputs() error {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	comp := r.factory(g)

	if _, err := comp.ManyToManyPaths(nil, []int64{}); !errors.Is(err, manypaths.ErrNilSources) {
		return fmt.Errorf("%w: NilInputs: nil sources: got %v, want ErrNilSources", ErrScenarioFailed, err)
	}
	if _, err := comp.ManyToManyPaths([]int64{}, nil); !errors.Is(err, manypaths.ErrNilTargets) {
		return fmt.Errorf("%w: NilInputs: nil targets: got %v, want ErrNilTargets", ErrScenarioFailed, err)
	}

	return nil
}

// NoPath verifies the unreachable contract on a two-vertex edgeless graph:
// +Inf weight, absent path.
func (r *Runner) NoPath() error {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())
	g.AddVertex(1)
	g.AddVertex(2)

	res, err := r.factory(g).ManyToManyPaths([]int64{1}, []int64{2})
	if err != nil {
		return fmt.Errorf("%w: NoPath: %v", ErrScenarioFailed, err)
	}

	return NewValidator(g).Expect(res, 1, 2, math.Inf(1), nil)
}

// NoPathMultiSet extends NoPath with a third isolated vertex and a
// two-element target set.
func (r *Runner) NoPathMultiSet() error {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())
	g.AddVertex(1)
	g.AddVertex(2)
	g.AddVertex(3)

	res, err := r.factory(g).ManyToManyPaths([]int64{1}, []int64{2, 3})
	if err != nil {
		return fmt.Errorf("%w: NoPathMultiSet: %v", ErrScenarioFailed, err)
	}

	v := NewValidator(g)
	for _, target := range []int64{2, 3} {
		if err := v.Expect(res, 1, target, math.Inf(1), nil); err != nil {
			return err
		}
	}

	return nil
}

// expectation is one literal row of a fixed-expectation scenario table.
type expectation struct {
	source, target int64
	weight         float64
	path           []int64
}

// Expected tables for the simple fixture. The fixture's shortest paths are
// tie-free at every listed pair, so exact sequence comparison is sound.
var (
	simpleDisjointTable = []expectation{
		{4, 8, 2, []int64{4, 5, 8}},
		{4, 9, 3, []int64{4, 5, 6, 9}},
		{4, 6, 2, []int64{4, 5, 6}},
		{1, 8, 3, []int64{1, 4, 5, 8}},
		{1, 9, 4, []int64{1, 4, 5, 6, 9}},
		{1, 6, 3, []int64{1, 4, 5, 6}},
		{2, 8, 2, []int64{2, 5, 8}},
		{2, 9, 3, []int64{2, 5, 6, 9}},
		{2, 6, 2, []int64{2, 5, 6}},
	}

	// The overlap table runs sources == targets: self pairs must collapse
	// to zero-weight single-vertex paths, and the symmetric entries hold
	// because this particular fixture is undirected — symmetry is checked
	// only where the table spells it out, never assumed as a law.
	simpleOverlapTable = []expectation{
		{1, 1, 0, []int64{1}},
		{5, 5, 0, []int64{5}},
		{9, 9, 0, []int64{9}},
		{1, 5, 2, []int64{1, 4, 5}},
		{5, 1, 2, []int64{5, 4, 1}},
		{1, 9, 4, []int64{1, 4, 5, 6, 9}},
		{9, 1, 4, []int64{9, 6, 5, 4, 1}},
		{5, 9, 2, []int64{5, 6, 9}},
		{9, 5, 2, []int64{9, 6, 5}},
	}

	multiDisjointTable = []expectation{
		{1, 2, 1, []int64{1, 2}},
		{1, 5, 32, []int64{1, 2, 3, 4, 5}},
		{4, 2, 16, []int64{4, 3, 2}},
		{4, 5, 15, []int64{4, 5}},
	}

	multiOverlapTable = []expectation{
		{2, 2, 0, []int64{2}},
		{4, 4, 0, []int64{4}},
		{6, 6, 0, []int64{6}},
		{2, 4, 16, []int64{2, 3, 4}},
		{4, 2, 16, []int64{4, 3, 2}},
		{2, 6, 24, []int64{2, 1, 6}},
		{6, 2, 24, []int64{6, 1, 2}},
		{4, 6, 32, []int64{4, 5, 6}},
		{6, 4, 32, []int64{6, 5, 4}},
	}
)

// SimpleGraphTable runs the simple-fixture scenarios: disjoint source and
// target sets, then identical ones, each checked against literal
// expectations.
func (r *Runner) SimpleGraphTable() error {
	g, err := builder.BuildSimpleWeighted()
	if err != nil {
		return fmt.Errorf("%w: SimpleGraphTable: %v", ErrScenarioFailed, err)
	}

	if err := r.runTable(g, []int64{4, 1, 2}, []int64{8, 9, 6}, simpleDisjointTable); err != nil {
		return err
	}

	return r.runTable(g, []int64{1, 5, 9}, []int64{1, 5, 9}, simpleOverlapTable)
}

// MultigraphTable runs the ring-multigraph scenarios, exercising
// minimum-weight selection among parallel edges.
func (r *Runner) MultigraphTable() error {
	g, err := builder.BuildRingMultigraph()
	if err != nil {
		return fmt.Errorf("%w: MultigraphTable: %v", ErrScenarioFailed, err)
	}

	if err := r.runTable(g, []int64{1, 4}, []int64{2, 5}, multiDisjointTable); err != nil {
		return err
	}

	return r.runTable(g, []int64{2, 4, 6}, []int64{2, 4, 6}, multiOverlapTable)
}

// runTable invokes the algorithm under test on (sources, targets) and
// checks every literal expectation row.
func (r *Runner) runTable(g *core.Graph, sources, targets []int64, table []expectation) error {
	res, err := r.factory(g).ManyToManyPaths(sources, targets)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrScenarioFailed, err)
	}

	v := NewValidator(g)
	for _, row := range table {
		if err := v.Expect(res, row.source, row.target, row.weight, row.path); err != nil {
			return err
		}
	}

	return nil
}

// RandomSweep runs the randomized oracle-equivalence scenario.
//
// Per SetSizes entry one fresh connected random multigraph is generated;
// per iteration a fresh source and target set is sampled from it, the
// algorithm under test answers both sources × targets and sources ×
// sources, and every pair is validated against the oracle.
func (r *Runner) RandomSweep(spec RandomSpec) error {
	for _, sizes := range spec.SetSizes {
		g, err := builder.BuildRandomConnected(
			spec.Vertices, spec.Degree*spec.Vertices, builder.WithRand(r.rng))
		if err != nil {
			return fmt.Errorf("%w: RandomSweep: %v", ErrScenarioFailed, err)
		}

		comp := r.factory(g)
		v := NewValidator(g)
		for i := 0; i < spec.Iterations; i++ {
			sources, err := SampleVertices(g, sizes[0], r.rng)
			if err != nil {
				return fmt.Errorf("%w: RandomSweep: %v", ErrScenarioFailed, err)
			}
			targets, err := SampleVertices(g, sizes[1], r.rng)
			if err != nil {
				return fmt.Errorf("%w: RandomSweep: %v", ErrScenarioFailed, err)
			}

			res, err := comp.ManyToManyPaths(sources, targets)
			if err != nil {
				return fmt.Errorf("%w: RandomSweep: %v", ErrScenarioFailed, err)
			}
			if err := v.AgainstOracle(res, sources, targets); err != nil {
				return err
			}

			// Sources as targets exercises self pairs on every iteration.
			res, err = comp.ManyToManyPaths(sources, sources)
			if err != nil {
				return fmt.Errorf("%w: RandomSweep: %v", ErrScenarioFailed, err)
			}
			if err := v.AgainstOracle(res, sources, sources); err != nil {
				return err
			}
		}
	}

	return nil
}

// RandomSweepTable runs the randomized oracle-equivalence scenario once
// per row: one fresh graph is generated per row, and the source and
// target sets are resampled from it iterations times.
func (r *Runner) RandomSweepTable(rows []SweepRow, iterations int) error {
	for _, row := range rows {
		spec := RandomSpec{
			Vertices:   row.Vertices,
			Degree:     row.Degree,
			SetSizes:   [][2]int{{row.Sources, row.Targets}},
			Iterations: iterations,
		}
		if err := r.RandomSweep(spec); err != nil {
			return fmt.Errorf("row(V=%d,deg=%d,%dx%d): %w",
				row.Vertices, row.Degree, row.Sources, row.Targets, err)
		}
	}

	return nil
}

// RunAll executes every named scenario in a fixed order, then each random
// sweep. The first failure aborts the run: there is no partial success.
func (r *Runner) RunAll(specs ...RandomSpec) error {
	scenarios := []struct {
		name string
		fn   func() error
	}{
		{"EmptyInputs", r.EmptyInputs},
		{"NilInputs", r.NilInputs},
		{"NoPath", r.NoPath},
		{"NoPathMultiSet", r.NoPathMultiSet},
		{"SimpleGraphTable", r.SimpleGraphTable},
		{"MultigraphTable", r.MultigraphTable},
	}
	for _, s := range scenarios {
		if err := s.fn(); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}

	for _, spec := range specs {
		if err := r.RandomSweep(spec); err != nil {
			return fmt.Errorf("RandomSweep(V=%d,deg=%d): %w", spec.Vertices, spec.Degree, err)
		}
	}

	return nil
}
