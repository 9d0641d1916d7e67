// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsalab/builder"
	"github.com/katalvlaran/dsalab/core"
	"github.com/katalvlaran/dsalab/prim_kruskal"
	"github.com/katalvlaran/dsalab/toposort"
)

func build(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, cons...)
	require.NoError(t, err)

	return g
}

func TestSizes(t *testing.T) {
	cases := []struct {
		name         string
		con          builder.Constructor
		nodes, edges int
	}{
		{"path", builder.Path(5), 5, 4},
		{"cycle", builder.Cycle(5), 5, 5},
		{"star", builder.Star(6), 6, 5},
		{"wheel", builder.Wheel(6), 6, 10},
		{"complete", builder.Complete(5), 5, 10},
		{"grid", builder.Grid(3, 4), 12, 17},
		{"random p=1", builder.RandomSparse(5, 1), 5, 10},
		{"random p=0", builder.RandomSparse(5, 0), 5, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := build(t, c.con)
			assert.Equal(t, c.nodes, g.NodeCount())
			assert.Equal(t, c.edges, g.EdgeCount())
		})
	}
}

func TestTooSmall(t *testing.T) {
	for _, con := range []builder.Constructor{
		builder.Path(1), builder.Cycle(2), builder.Star(1), builder.Wheel(3),
		builder.Complete(0), builder.Grid(0, 3), builder.RandomSparse(0, 0.5),
	} {
		_, err := builder.BuildGraph(nil, nil, con)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	}
}

func TestValidation(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.RandomSparse(4, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(4, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithWeightRange(1, 5)}, builder.Path(3))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	assert.Panics(t, func() { builder.WithWeightRange(5, 1) })
}

func TestComposeYieldsDisjointBlocks(t *testing.T) {
	g := build(t, builder.Path(3), builder.Cycle(3))
	assert.Equal(t, 6, g.NodeCount())
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(4, 6))
	assert.False(t, g.HasEdge(3, 4))

	_, _, err := prim_kruskal.Kruskal(g)
	require.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

func TestGridLayout(t *testing.T) {
	g := build(t, builder.Grid(2, 3))
	// 1 2 3
	// 4 5 6
	for _, e := range [][2]core.NodeID{{1, 2}, {2, 3}, {4, 5}, {5, 6}, {1, 4}, {2, 5}, {3, 6}} {
		assert.True(t, g.HasEdge(e[0], e[1]), "%v", e)
	}
	assert.False(t, g.HasEdge(3, 4))
}

func TestSeedDeterminism(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightRange(1, 9)}
	a, err := builder.BuildGraph(nil, opts, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)

	opts = []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightRange(1, 9)}
	b, err := builder.BuildGraph(nil, opts, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)

	assert.Equal(t, a.Edges(), b.Edges())
	for _, e := range a.Edges() {
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.LessOrEqual(t, e.Weight, int64(9))
	}
}

func TestRandomSparse_DirectedUsesOrderedPairs(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)},
		nil,
		builder.RandomSparse(4, 1),
	)
	require.NoError(t, err)
	assert.Equal(t, 12, g.EdgeCount())

	_, err = toposort.Kahn(g)
	require.ErrorIs(t, err, toposort.ErrCycleDetected)
}

func TestByName(t *testing.T) {
	for _, tc := range []struct {
		kind  string
		args  []string
		nodes int
	}{
		{"path", []string{"4"}, 4},
		{"Grid", []string{"2", "2"}, 4},
		{"random", []string{"5", "1"}, 5},
	} {
		con, err := builder.ByName(tc.kind, tc.args)
		require.NoError(t, err)
		g := build(t, con)
		assert.Equal(t, tc.nodes, g.NodeCount())
	}

	_, err := builder.ByName("hypercube", []string{"3"})
	require.ErrorIs(t, err, builder.ErrUnknownTopology)
	_, err = builder.ByName("grid", []string{"3"})
	require.ErrorIs(t, err, builder.ErrUnknownTopology)
	_, err = builder.ByName("path", []string{"x"})
	require.Error(t, err)
}

func TestApply_CapacityError(t *testing.T) {
	g := core.NewGraph(core.WithMaxNodes(3))
	err := builder.Apply(g, nil, builder.Path(5))
	require.ErrorIs(t, err, core.ErrCapacityExceeded)
	assert.Equal(t, 3, g.NodeCount())
}
