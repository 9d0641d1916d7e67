// SPDX-License-Identifier: MIT

package matrix

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/katalvlaran/dsalab/optional"
)

// Pos addresses one Grid cell.
type Pos struct {
	Row, Col int
}

// Grid is a bounded rows×cols table that stores only populated cells.
// Unpopulated cells read as absent; there is no placeholder value.
type Grid[T any] struct {
	rows, cols int
	cells      map[Pos]T
}

// NewGrid returns an empty rows×cols grid.
func NewGrid[T any](rows, cols int) (*Grid[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewGrid(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Grid[T]{rows: rows, cols: cols, cells: make(map[Pos]T)}, nil
}

// Rows returns the row bound.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the column bound.
func (g *Grid[T]) Cols() int { return g.cols }

// Len returns the number of populated cells.
func (g *Grid[T]) Len() int { return len(g.cells) }

func (g *Grid[T]) check(op string, r, c int) error {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		return fmt.Errorf("Grid.%s(%d,%d): %w", op, r, c, ErrOutOfRange)
	}

	return nil
}

// Set populates (r, c) with v, replacing any previous value.
func (g *Grid[T]) Set(r, c int, v T) error {
	if err := g.check("Set", r, c); err != nil {
		return err
	}
	g.cells[Pos{r, c}] = v

	return nil
}

// Get returns the value at (r, c); ok is false for an unpopulated cell.
func (g *Grid[T]) Get(r, c int) (T, bool, error) {
	var zero T
	if err := g.check("Get", r, c); err != nil {
		return zero, false, err
	}
	v, ok := g.cells[Pos{r, c}]

	return v, ok, nil
}

// Delete unpopulates (r, c). It reports whether a value was removed.
func (g *Grid[T]) Delete(r, c int) (bool, error) {
	if err := g.check("Delete", r, c); err != nil {
		return false, err
	}
	_, ok := g.cells[Pos{r, c}]
	delete(g.cells, Pos{r, c})

	return ok, nil
}

// RowMajor visits every cell row by row, populated or not.
func (g *Grid[T]) RowMajor() iter.Seq2[Pos, optional.Value[T]] {
	return func(yield func(Pos, optional.Value[T]) bool) {
		for r := 0; r < g.rows; r++ {
			for c := 0; c < g.cols; c++ {
				v, ok := g.cells[Pos{r, c}]
				if !yield(Pos{r, c}, optional.Of(v, ok)) {
					return
				}
			}
		}
	}
}

// ColumnMajor visits every cell column by column, populated or not.
func (g *Grid[T]) ColumnMajor() iter.Seq2[Pos, optional.Value[T]] {
	return func(yield func(Pos, optional.Value[T]) bool) {
		for c := 0; c < g.cols; c++ {
			for r := 0; r < g.rows; r++ {
				v, ok := g.cells[Pos{r, c}]
				if !yield(Pos{r, c}, optional.Of(v, ok)) {
					return
				}
			}
		}
	}
}

// Present visits populated cells only, in row-major order.
// Complexity: O(k log k) for k populated cells.
func (g *Grid[T]) Present() iter.Seq2[Pos, T] {
	return func(yield func(Pos, T) bool) {
		keys := slices.SortedFunc(maps.Keys(g.cells), func(a, b Pos) int {
			return cmp.Or(cmp.Compare(a.Row, b.Row), cmp.Compare(a.Col, b.Col))
		})
		for _, p := range keys {
			if !yield(p, g.cells[p]) {
				return
			}
		}
	}
}
