package manypaths_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathproof/core"
	"github.com/katalvlaran/pathproof/manypaths"
)

func emptyDirectedGraph() *core.Graph {
	return core.NewGraph(core.WithDirected(true), core.WithWeighted())
}

func TestManyToManyPaths_EmptySetsOnEmptyGraph(t *testing.T) {
	// Both sets empty (non-nil) on an empty graph: must complete without
	// failure and answer no pairs.
	comp := manypaths.NewDijkstraManyToMany(emptyDirectedGraph())

	res, err := comp.ManyToManyPaths([]int64{}, []int64{})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Len())
}

func TestManyToManyPaths_NilSourcesRejected(t *testing.T) {
	comp := manypaths.NewDijkstraManyToMany(emptyDirectedGraph())

	_, err := comp.ManyToManyPaths(nil, []int64{})
	assert.ErrorIs(t, err, manypaths.ErrNilSources)
}

func TestManyToManyPaths_NilTargetsRejected(t *testing.T) {
	comp := manypaths.NewDijkstraManyToMany(emptyDirectedGraph())

	_, err := comp.ManyToManyPaths([]int64{}, nil)
	assert.ErrorIs(t, err, manypaths.ErrNilTargets)
}

func TestManyToManyPaths_NoPath(t *testing.T) {
	// Two isolated vertices: weight +Inf, no path.
	g := emptyDirectedGraph()
	g.AddVertex(1)
	g.AddVertex(2)

	res, err := manypaths.NewDijkstraManyToMany(g).ManyToManyPaths([]int64{1}, []int64{2})
	require.NoError(t, err)

	assert.True(t, math.IsInf(res.Weight(1, 2), 1))
	assert.Nil(t, res.Path(1, 2))
}

func TestManyToManyPaths_SelfPair(t *testing.T) {
	g := emptyDirectedGraph()
	g.AddVertex(3)

	res, err := manypaths.NewDijkstraManyToMany(g).ManyToManyPaths([]int64{3}, []int64{3})
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Weight(3, 3))
	assert.Equal(t, []int64{3}, res.Path(3, 3))
}

func TestManyToManyPaths_DirectedAsymmetry(t *testing.T) {
	// 1→2 exists, 2→1 does not: weight(1,2) finite, weight(2,1) infinite.
	g := emptyDirectedGraph()
	_, err := g.AddEdge(1, 2, 0.5)
	require.NoError(t, err)

	res, err := manypaths.NewDijkstraManyToMany(g).ManyToManyPaths([]int64{1, 2}, []int64{1, 2})
	require.NoError(t, err)

	assert.InDelta(t, 0.5, res.Weight(1, 2), 1e-9)
	assert.Equal(t, []int64{1, 2}, res.Path(1, 2))
	assert.True(t, math.IsInf(res.Weight(2, 1), 1))
	assert.Nil(t, res.Path(2, 1))
}

func TestManyToManyPaths_MultigraphMinimumEdge(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())
	for _, w := range []float64{2, 1} {
		_, err := g.AddEdge(1, 2, w)
		require.NoError(t, err)
	}

	res, err := manypaths.NewDijkstraManyToMany(g).ManyToManyPaths([]int64{1}, []int64{2})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, res.Weight(1, 2), 1e-9)
	assert.Equal(t, []int64{1, 2}, res.Path(1, 2))
}

func TestResult_UnknownPairReadsAsUnreachable(t *testing.T) {
	// Lookups must never panic, even for pairs never stored.
	res := manypaths.NewResult()

	assert.True(t, math.IsInf(res.Weight(7, 8), 1))
	assert.Nil(t, res.Path(7, 8))
}
