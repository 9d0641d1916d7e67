// SPDX-License-Identifier: MIT
package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsalab/core"
	"github.com/katalvlaran/dsalab/dfs"
)

// buildChain creates a directed chain 1→2→…→n.
func buildChain(n int) *core.Graph {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddNodes(n)
	for i := 1; i < n; i++ {
		_ = g.AddEdge(core.NodeID(i), core.NodeID(i+1), 1)
	}

	return g
}

// buildBinaryTree creates a complete directed binary tree with 2^depth-1 nodes,
// node i pointing at 2i and 2i+1.
func buildBinaryTree(depth int) *core.Graph {
	g := core.NewGraph(core.WithDirected(true))
	n := (1 << depth) - 1
	_, _ = g.AddNodes(n)
	for i := 2; i <= n; i++ {
		_ = g.AddEdge(core.NodeID(i/2), core.NodeID(i), 1)
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, 1)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	res, err := dfs.DFS(core.NewGraph(), 1)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_BinaryTreeOrders(t *testing.T) {
	res, err := dfs.DFS(buildBinaryTree(3), 1)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2, 4, 5, 3, 6, 7}, res.Preorder)
	assert.Equal(t, []core.NodeID{4, 5, 2, 6, 7, 3, 1}, res.Order)
	assert.Equal(t, 2, res.Depth[7])
	assert.Equal(t, core.NodeID(3), res.Parent[6])
	_, hasParent := res.Parent[1]
	assert.False(t, hasParent)
}

func TestDFS_MaxDepthAndForest(t *testing.T) {
	res, err := dfs.DFS(buildChain(5), 1, dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2, 3}, res.Preorder)
	assert.False(t, res.Visited(4))

	res, err = dfs.DFS(buildChain(5), 3)
	require.NoError(t, err)
	assert.Len(t, res.Order, 3)

	res, err = dfs.DFS(buildChain(5), 3, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{3, 4, 5, 1, 2}, res.Preorder)
}

func TestDFS_HooksAndCancel(t *testing.T) {
	var exits []core.NodeID
	_, err := dfs.DFS(buildChain(3), 1, dfs.WithOnExit(func(id core.NodeID) error {
		exits = append(exits, id)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{3, 2, 1}, exits)

	boom := errors.New("boom")
	_, err = dfs.DFS(buildChain(3), 1, dfs.WithOnVisit(func(id core.NodeID) error {
		if id == 2 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS(buildChain(3), 1, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
