package verify_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathproof/builder"
	"github.com/katalvlaran/pathproof/core"
	"github.com/katalvlaran/pathproof/manypaths"
	"github.com/katalvlaran/pathproof/verify"
)

func TestOracle_AgreesWithFixtureTable(t *testing.T) {
	g, err := builder.BuildSimpleWeighted()
	require.NoError(t, err)
	o := verify.NewOracle(g)

	w, err := o.Weight(4, 8)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, w, verify.Tolerance)

	p, err := o.Path(4, 8)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 5, 8}, p)
}

func TestOracle_SelfPairAndUnreachable(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	g.AddVertex(1)
	g.AddVertex(2)
	o := verify.NewOracle(g)

	w, err := o.Weight(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, w)
	p, err := o.Path(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, p)

	w, err = o.Weight(1, 2)
	require.NoError(t, err)
	assert.True(t, math.IsInf(w, 1))
	p, err = o.Path(1, 2)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestOracle_SourceSwitchRebuildsState(t *testing.T) {
	// Interleaving sources must stay correct even though only one
	// single-source tree is cached at a time.
	g, err := builder.BuildRingMultigraph()
	require.NoError(t, err)
	o := verify.NewOracle(g)

	w12, err := o.Weight(1, 2)
	require.NoError(t, err)
	w45, err := o.Weight(4, 5)
	require.NoError(t, err)
	w12again, err := o.Weight(1, 2)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, w12, verify.Tolerance)
	assert.InDelta(t, 15.0, w45, verify.Tolerance)
	assert.Equal(t, w12, w12again)
}

func TestValidator_AcceptsCorrectResult(t *testing.T) {
	g, err := builder.BuildSimpleWeighted()
	require.NoError(t, err)

	sources, targets := []int64{4, 1, 2}, []int64{8, 9, 6}
	res, err := manypaths.NewDijkstraManyToMany(g).ManyToManyPaths(sources, targets)
	require.NoError(t, err)

	assert.NoError(t, verify.NewValidator(g).AgainstOracle(res, sources, targets))
}

func TestValidator_FlagsWrongWeight(t *testing.T) {
	g, err := builder.BuildSimpleWeighted()
	require.NoError(t, err)

	res := manypaths.NewResult()
	res.Add(4, 8, 2.5, []int64{4, 5, 8}) // true weight is 2.0

	err = verify.NewValidator(g).AgainstOracle(res, []int64{4}, []int64{8})
	require.ErrorIs(t, err, verify.ErrMismatch)
	assert.Contains(t, err.Error(), "weight(4,8)")
}

func TestValidator_FlagsWrongPathSequence(t *testing.T) {
	g, err := builder.BuildSimpleWeighted()
	require.NoError(t, err)

	// Correct weight, wrong route: sequence equality must catch it.
	res := manypaths.NewResult()
	res.Add(4, 8, 2.0, []int64{4, 7, 8})

	err = verify.NewValidator(g).AgainstOracle(res, []int64{4}, []int64{8})
	require.ErrorIs(t, err, verify.ErrMismatch)
	assert.Contains(t, err.Error(), "path(4,8)")
}

func TestValidator_FlagsFalseUnreachable(t *testing.T) {
	g, err := builder.BuildSimpleWeighted()
	require.NoError(t, err)

	// Reporting a reachable pair as unreachable is a status mismatch, not
	// a numeric one.
	res := manypaths.NewResult()
	res.Add(4, 8, math.Inf(1), nil)

	err = verify.NewValidator(g).AgainstOracle(res, []int64{4}, []int64{8})
	assert.ErrorIs(t, err, verify.ErrMismatch)
}

func TestValidator_ToleratesTinyWeightError(t *testing.T) {
	g, err := builder.BuildSimpleWeighted()
	require.NoError(t, err)

	res := manypaths.NewResult()
	res.Add(4, 8, 2.0+verify.Tolerance/2, []int64{4, 5, 8})

	assert.NoError(t, verify.NewValidator(g).AgainstOracle(res, []int64{4}, []int64{8}))
}

func TestValidator_ExpectLiteralUnreachable(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	g.AddVertex(1)
	g.AddVertex(2)

	res := manypaths.NewResult()
	res.Add(1, 2, math.Inf(1), nil)

	v := verify.NewValidator(g)
	assert.NoError(t, v.Expect(res, 1, 2, math.Inf(1), nil))
	assert.ErrorIs(t, v.Expect(res, 1, 2, 3.0, []int64{1, 2}), verify.ErrMismatch)
}
