package verify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathproof/core"
	"github.com/katalvlaran/pathproof/manypaths"
	"github.com/katalvlaran/pathproof/verify"
)

func newRunner(t *testing.T) *verify.Runner {
	t.Helper()
	r, err := verify.NewRunner(manypaths.DefaultFactory)
	require.NoError(t, err)

	return r
}

func TestNewRunner_NilFactory(t *testing.T) {
	_, err := verify.NewRunner(nil)
	assert.ErrorIs(t, err, verify.ErrNilFactory)
}

func TestRunner_FixedScenarios(t *testing.T) {
	r := newRunner(t)

	assert.NoError(t, r.EmptyInputs())
	assert.NoError(t, r.NilInputs())
	assert.NoError(t, r.NoPath())
	assert.NoError(t, r.NoPathMultiSet())
	assert.NoError(t, r.SimpleGraphTable())
	assert.NoError(t, r.MultigraphTable())
}

func TestRunner_RandomSweep_Baseline(t *testing.T) {
	r := newRunner(t)

	err := r.RandomSweep(verify.RandomSpec{
		Vertices:   100,
		Degree:     5,
		SetSizes:   [][2]int{{10, 15}, {20, 1}, {1, 20}},
		Iterations: 5,
	})
	assert.NoError(t, err)
}

func TestRunner_RandomSweep_LargeGraph(t *testing.T) {
	if testing.Short() {
		t.Skip("large randomized sweep")
	}
	r := newRunner(t)

	err := r.RandomSweep(verify.RandomSpec{
		Vertices:   1000,
		Degree:     10,
		SetSizes:   [][2]int{{50, 50}, {100, 3}},
		Iterations: 3,
	})
	assert.NoError(t, err)
}

// fullScaleRows builds the table for the full randomized sweep: one graph
// is generated per row, a hundred graphs at V=100 plus eight larger ones
// at V=1000 when not running in short mode.
func fullScaleRows(short bool) []verify.SweepRow {
	shapes := [][2]int{{10, 15}, {20, 1}, {1, 20}, {5, 5}}

	rows := make([]verify.SweepRow, 0, 108)
	for i := 0; i < 100; i++ {
		s := shapes[i%len(shapes)]
		rows = append(rows, verify.SweepRow{Vertices: 100, Degree: 5, Sources: s[0], Targets: s[1]})
	}
	if short {
		return rows
	}
	for i := 0; i < 8; i++ {
		s := shapes[i%len(shapes)]
		rows = append(rows, verify.SweepRow{Vertices: 1000, Degree: 10, Sources: 5 * s[0], Targets: 5 * s[1]})
	}

	return rows
}

func TestRunner_RandomSweepTable_FullScale(t *testing.T) {
	r := newRunner(t)

	assert.NoError(t, r.RandomSweepTable(fullScaleRows(testing.Short()), 2))
}

func TestRunner_RandomSweepTable_CatchesSkewedWeights(t *testing.T) {
	factory := func(g *core.Graph) manypaths.Computer {
		return skewedComputer{inner: manypaths.NewDijkstraManyToMany(g)}
	}
	r, err := verify.NewRunner(factory)
	require.NoError(t, err)

	rows := []verify.SweepRow{{Vertices: 50, Degree: 4, Sources: 5, Targets: 5}}
	err = r.RandomSweepTable(rows, 1)
	require.ErrorIs(t, err, verify.ErrMismatch)
	assert.Contains(t, err.Error(), "row(V=50,deg=4,5x5)")
}

func TestRunner_RunAll_Baseline(t *testing.T) {
	r := newRunner(t)

	err := r.RunAll(verify.RandomSpec{
		Vertices:   100,
		Degree:     5,
		SetSizes:   [][2]int{{10, 15}},
		Iterations: 3,
	})
	assert.NoError(t, err)
}

// skewedComputer wraps the baseline computer and inflates every finite
// weight, simulating a subtly wrong algorithm under test.
type skewedComputer struct {
	inner manypaths.Computer
}

func (c skewedComputer) ManyToManyPaths(sources, targets []int64) (*manypaths.Result, error) {
	res, err := c.inner.ManyToManyPaths(sources, targets)
	if err != nil {
		return nil, err
	}

	skewed := manypaths.NewResult()
	for _, s := range sources {
		for _, t := range targets {
			w := res.Weight(s, t)
			p := res.Path(s, t)
			if p != nil && s != t {
				w += 0.001
			}
			skewed.Add(s, t, w, p)
		}
	}

	return skewed, nil
}

func TestRunner_CatchesSkewedWeights(t *testing.T) {
	factory := func(g *core.Graph) manypaths.Computer {
		return skewedComputer{inner: manypaths.NewDijkstraManyToMany(g)}
	}
	r, err := verify.NewRunner(factory)
	require.NoError(t, err)

	err = r.RandomSweep(verify.RandomSpec{
		Vertices:   50,
		Degree:     4,
		SetSizes:   [][2]int{{5, 5}},
		Iterations: 1,
	})
	assert.ErrorIs(t, err, verify.ErrMismatch)

	// The fixture tables must flag the same skew.
	assert.ErrorIs(t, r.SimpleGraphTable(), verify.ErrMismatch)
}

// truncatingComputer drops the last vertex of every multi-hop path while
// keeping weights intact: only sequence comparison can catch it.
type truncatingComputer struct {
	inner manypaths.Computer
}

func (c truncatingComputer) ManyToManyPaths(sources, targets []int64) (*manypaths.Result, error) {
	res, err := c.inner.ManyToManyPaths(sources, targets)
	if err != nil {
		return nil, err
	}

	broken := manypaths.NewResult()
	for _, s := range sources {
		for _, t := range targets {
			p := res.Path(s, t)
			if len(p) > 2 {
				p = p[:len(p)-1]
			}
			broken.Add(s, t, res.Weight(s, t), p)
		}
	}

	return broken, nil
}

func TestRunner_CatchesTruncatedPaths(t *testing.T) {
	factory := func(g *core.Graph) manypaths.Computer {
		return truncatingComputer{inner: manypaths.NewDijkstraManyToMany(g)}
	}
	r, err := verify.NewRunner(factory)
	require.NoError(t, err)

	assert.ErrorIs(t, r.SimpleGraphTable(), verify.ErrMismatch)
}

func TestRunner_RejectionScenarioSpotsPermissiveComputer(t *testing.T) {
	// A computer that silently accepts nil sets must fail NilInputs.
	factory := func(g *core.Graph) manypaths.Computer {
		return permissiveComputer{g: g}
	}
	r, err := verify.NewRunner(factory)
	require.NoError(t, err)

	assert.ErrorIs(t, r.NilInputs(), verify.ErrScenarioFailed)
}

type permissiveComputer struct {
	g *core.Graph
}

func (c permissiveComputer) ManyToManyPaths(sources, targets []int64) (*manypaths.Result, error) {
	inner := manypaths.NewDijkstraManyToMany(c.g)
	if sources == nil {
		sources = []int64{}
	}
	if targets == nil {
		targets = []int64{}
	}

	return inner.ManyToManyPaths(sources, targets)
}
