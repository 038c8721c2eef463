// Package matrix: core type, constructor and indexed access.
// Matrix is a row-major rectangular table of arbitrary cells,
// the unlabeled value store underneath frame.Frame.
package matrix

import (
	"fmt"
	"strings"
)

// Matrix is an immutable rectangular table of arbitrary cells.
// r is the number of rows, c the number of columns, and rows holds the
// cells in row order; len(rows) == r and len(rows[i]) == c for all i.
type Matrix struct {
	r, c int
	rows [][]any
}

// New builds a Matrix from the given rows.
// Stage 1 (Validate): every row must have the same length.
// Stage 2 (Normalize): zero-column input collapses to the empty matrix,
// so New([][]any{{}}) and New(nil) are the same 0×0 value.
// Stage 3 (Finalize): cells are copied row by row into fresh storage.
// Returns ErrRagged when row lengths differ.
// Complexity: O(r·c) time and memory.
func New(rows [][]any) (*Matrix, error) {
	// Empty input is the canonical empty matrix.
	if len(rows) == 0 {
		return &Matrix{}, nil
	}
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrRagged
		}
	}
	// A 0-wide table has no cells to label or address; collapse it.
	if width == 0 {
		return &Matrix{}, nil
	}
	return &Matrix{r: len(rows), c: width, rows: copyRows(rows)}, nil
}

// MustNew is New that panics on error; intended for literals in tests
// and examples where the shape is known valid by construction.
func MustNew(rows [][]any) *Matrix {
	m, err := New(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Dims returns (rows, columns). The column count derives from the
// first row's length and is 0 when there are no rows.
// Complexity: O(1).
func (m *Matrix) Dims() (rows, cols int) {
	return m.r, m.c
}

// At retrieves the cell at (row, col).
// Returns ErrOutOfRange when either index is outside the matrix.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (any, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return nil, fmt.Errorf("matrix: At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	return m.rows[row][col], nil
}

// Row returns a copy of row i in cell order.
// Returns ErrOutOfRange when i is outside the matrix.
// Complexity: O(c).
func (m *Matrix) Row(i int) ([]any, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("matrix: Row(%d): %w", i, ErrOutOfRange)
	}
	return copyRow(m.rows[i]), nil
}

// Column returns a copy of column j in row order.
// Returns ErrOutOfRange when j is outside the matrix.
// Complexity: O(r).
func (m *Matrix) Column(j int) ([]any, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("matrix: Column(%d): %w", j, ErrOutOfRange)
	}
	col := make([]any, m.r)
	for i, row := range m.rows {
		col[i] = row[j]
	}
	return col, nil
}

// Cells returns a copy of the full row structure in row order.
// The cell values themselves are shared.
// Complexity: O(r·c).
func (m *Matrix) Cells() [][]any {
	return copyRows(m.rows)
}

// ToList flattens a single-column matrix into a plain cell sequence.
// The empty matrix flattens to an empty sequence.
// Returns ErrNotColumn when the matrix has more than one column.
// Complexity: O(r).
func (m *Matrix) ToList() ([]any, error) {
	if m.r == 0 && m.c == 0 {
		return []any{}, nil
	}
	if m.c != 1 {
		return nil, fmt.Errorf("matrix: ToList on %dx%d: %w", m.r, m.c, ErrNotColumn)
	}
	return m.Column(0)
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r·c) for string construction.
func (m *Matrix) String() string {
	var b strings.Builder
	for _, row := range m.rows {
		b.WriteString("[")
		for j, cell := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", cell)
		}
		b.WriteString("]\n")
	}
	return b.String()
}

// copyRow returns a fresh slice sharing the row's cell values.
func copyRow(row []any) []any {
	out := make([]any, len(row))
	copy(out, row)
	return out
}

// copyRows deep-copies the row structure (cells themselves are shared).
func copyRows(rows [][]any) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		out[i] = copyRow(row)
	}
	return out
}

// fromRows wraps already-validated, already-owned storage.
// Internal constructor for operations that build fresh rectangular rows.
func fromRows(rows [][]any) *Matrix {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return &Matrix{}
	}
	return &Matrix{r: len(rows), c: len(rows[0]), rows: rows}
}
