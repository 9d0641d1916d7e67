// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dsalab/core"
)

// Cell is one entry of a Dense matrix: Value is meaningful only when OK is true.
// An absent cell means "no edge" or "no path"; there is no infinity constant.
type Cell struct {
	Value int64
	OK    bool
}

// String renders the value, or "-" for an absent cell.
func (c Cell) String() string {
	if !c.OK {
		return "-"
	}

	return fmt.Sprint(c.Value)
}

// Dense is a row-major matrix of optional int64 values, stored in a flat slice.
// Indices are 0-based; Distance offers 1-based access by core.NodeID.
type Dense struct {
	r, c int
	data []Cell
}

// NewDense creates an r×c Dense matrix with every cell absent.
// Zero dimensions are allowed (an empty graph has a 0×0 matrix).
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]Cell, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(op string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.%s(%d,%d): %w", op, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the cell at (row, col).
func (m *Dense) At(row, col int) (Cell, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return Cell{}, err
	}

	return m.data[idx], nil
}

// Set stores v at (row, col) and marks the cell present.
func (m *Dense) Set(row, col int, v int64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = Cell{Value: v, OK: true}

	return nil
}

// Clear marks the cell at (row, col) absent.
func (m *Dense) Clear(row, col int) error {
	idx, err := m.indexOf("Clear", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = Cell{}

	return nil
}

// Distance is At with 1-based node ids. ok is false for an absent cell or an
// id outside the matrix.
func (m *Dense) Distance(u, v core.NodeID) (int64, bool) {
	c, err := m.At(int(u)-1, int(v)-1)
	if err != nil {
		return 0, false
	}

	return c.Value, c.OK
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]Cell, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]Cell, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	return &Dense{r: m.r, c: m.c, data: append([]Cell(nil), m.data...)}
}

// String renders one bracketed row per line, absent cells as "-".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.data[i*m.c+j].String())
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// FromGraph seeds an n×n Dense from g's weight matrix: the diagonal is 0 and
// present, every direct edge holds its lightest weight, all else is absent.
// Row/column i corresponds to node i+1.
func FromGraph(g *core.Graph) (*Dense, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.NodeCount()
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for u := 1; u <= n; u++ {
		for v := 1; v <= n; v++ {
			if w, ok := g.Weight(core.NodeID(u), core.NodeID(v)); ok {
				m.data[(u-1)*n+(v-1)] = Cell{Value: w, OK: true}
			}
		}
	}

	return m, nil
}
