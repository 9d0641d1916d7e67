// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsalab/matrix"
)

func TestGrid_SparseStore(t *testing.T) {
	g, err := matrix.NewGrid[float64](2, 3)
	require.NoError(t, err)

	require.NoError(t, g.Set(0, 1, 21.5))
	require.NoError(t, g.Set(1, 0, -9999)) // a real reading, not a marker
	assert.Equal(t, 2, g.Len())

	v, ok, err := g.Get(1, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, -9999.0, v)

	_, ok, err = g.Get(1, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = g.Get(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, g.Set(0, 3, 1), matrix.ErrOutOfRange)

	var rows []string
	for _, cell := range g.RowMajor() {
		rows = append(rows, cell.String())
	}
	assert.Equal(t, []string{"-", "21.5", "-", "-9999", "-", "-"}, rows)

	var cols []matrix.Pos
	for p, cell := range g.ColumnMajor() {
		if cell.IsSome() {
			cols = append(cols, p)
		}
	}
	assert.Equal(t, []matrix.Pos{{Row: 1, Col: 0}, {Row: 0, Col: 1}}, cols)

	removed, err := g.Delete(0, 1)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, _ = g.Delete(0, 1)
	assert.False(t, removed)

	var present []matrix.Pos
	for p := range g.Present() {
		present = append(present, p)
	}
	assert.Equal(t, []matrix.Pos{{Row: 1, Col: 0}}, present)
}

func TestGrid_EarlyStop(t *testing.T) {
	g, _ := matrix.NewGrid[int](10, 10)
	n := 0
	for range g.RowMajor() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}
