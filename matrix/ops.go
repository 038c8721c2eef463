// SPDX-License-Identifier: MIT
// Package matrix: structural operations.
// Every operation in this file returns a NEW *Matrix; receivers are
// never mutated. Selection by explicit position lists preserves the
// requested order and silently drops out-of-range positions — the
// strict single-cell indexers live in matrix.go and return
// ErrOutOfRange instead.

package matrix

import (
	"fmt"
	"sort"
)

// Transpose returns the matrix with cell(i,j) moved to cell(j,i).
// Dimensions swap; Transpose is an involution, including for the
// empty matrix.
// Complexity: O(r·c) time and memory.
func (m *Matrix) Transpose() *Matrix {
	if m.r == 0 {
		return &Matrix{}
	}
	rows := make([][]any, m.c)
	for j := 0; j < m.c; j++ {
		rows[j] = make([]any, m.r)
		for i := 0; i < m.r; i++ {
			rows[j][i] = m.rows[i][j]
		}
	}
	return fromRows(rows)
}

// RemoveColumn deletes column pos from every row and also returns the
// removed column as a per-row sequence in original row order.
// Returns ErrOutOfRange when pos is outside the matrix.
// Complexity: O(r·c).
func (m *Matrix) RemoveColumn(pos int) (*Matrix, []any, error) {
	if pos < 0 || pos >= m.c {
		return nil, nil, fmt.Errorf("matrix: RemoveColumn(%d): %w", pos, ErrOutOfRange)
	}
	removed := make([]any, m.r)
	rows := make([][]any, m.r)
	for i, row := range m.rows {
		removed[i] = row[pos]
		next := make([]any, 0, m.c-1)
		next = append(next, row[:pos]...)
		next = append(next, row[pos+1:]...)
		rows[i] = next
	}
	return fromRows(rows), removed, nil
}

// AppendColumn appends values as a new trailing column.
// len(values) must equal the row count; ErrLengthMismatch otherwise.
// Complexity: O(r·c).
func (m *Matrix) AppendColumn(values []any) (*Matrix, error) {
	if len(values) != m.r {
		return nil, fmt.Errorf("matrix: AppendColumn with %d values on %d rows: %w",
			len(values), m.r, ErrLengthMismatch)
	}
	rows := make([][]any, m.r)
	for i, row := range m.rows {
		next := make([]any, 0, m.c+1)
		next = append(next, row...)
		next = append(next, values[i])
		rows[i] = next
	}
	return fromRows(rows), nil
}

// SortRows returns the rows reordered by the given whole-row predicate.
// The sort is stable: ties preserve original relative order.
// Complexity: O(r·log r) comparisons, O(r·c) memory.
func (m *Matrix) SortRows(less func(a, b []any) bool) *Matrix {
	rows := copyRows(m.rows)
	sort.SliceStable(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
	return fromRows(rows)
}

// Map applies fn to every cell, returning a matrix of the same shape.
// Complexity: O(r·c).
func (m *Matrix) Map(fn func(v any) any) *Matrix {
	rows := make([][]any, m.r)
	for i, row := range m.rows {
		next := make([]any, m.c)
		for j, cell := range row {
			next[j] = fn(cell)
		}
		rows[i] = next
	}
	return fromRows(rows)
}

// MapRows applies fn to each row, returning a matrix built from the
// results. fn receives a copy and must return a row of the original
// width; ErrLengthMismatch otherwise.
// Complexity: O(r·c) plus the cost of fn.
func (m *Matrix) MapRows(fn func(row []any) []any) (*Matrix, error) {
	rows := make([][]any, m.r)
	for i, row := range m.rows {
		next := fn(copyRow(row))
		if len(next) != m.c {
			return nil, fmt.Errorf("matrix: MapRows row %d returned %d cells, want %d: %w",
				i, len(next), m.c, ErrLengthMismatch)
		}
		rows[i] = next
	}
	return fromRows(rows), nil
}

// MapColumns applies fn to each column top-to-bottom, returning a
// matrix rebuilt from the transformed columns. fn receives a copy and
// must return a column of the original height; ErrLengthMismatch
// otherwise. Running state across a column (cumulative sums) lives in
// the caller's closure.
// Complexity: O(r·c) plus the cost of fn.
func (m *Matrix) MapColumns(fn func(col []any) []any) (*Matrix, error) {
	rows := copyRows(m.rows)
	for j := 0; j < m.c; j++ {
		col := make([]any, m.r)
		for i := range rows {
			col[i] = rows[i][j]
		}
		next := fn(col)
		if len(next) != m.r {
			return nil, fmt.Errorf("matrix: MapColumns column %d returned %d cells, want %d: %w",
				j, len(next), m.r, ErrLengthMismatch)
		}
		for i := range rows {
			rows[i][j] = next[i]
		}
	}
	return fromRows(rows), nil
}

// Rows selects whole rows by explicit position list.
// The result preserves the requested order; duplicates repeat the row
// and out-of-range positions are silently dropped.
// Complexity: O(len(positions)·c).
func (m *Matrix) Rows(positions []int) *Matrix {
	rows := make([][]any, 0, len(positions))
	for _, p := range positions {
		if p < 0 || p >= m.r {
			continue
		}
		rows = append(rows, copyRow(m.rows[p]))
	}
	return fromRows(rows)
}

// Columns selects whole columns by explicit position list.
// Same ordering and silent-drop semantics as Rows.
// Complexity: O(r·len(positions)).
func (m *Matrix) Columns(positions []int) *Matrix {
	keep := make([]int, 0, len(positions))
	for _, p := range positions {
		if p >= 0 && p < m.c {
			keep = append(keep, p)
		}
	}
	rows := make([][]any, m.r)
	for i, row := range m.rows {
		next := make([]any, len(keep))
		for k, p := range keep {
			next[k] = row[p]
		}
		rows[i] = next
	}
	return fromRows(rows)
}
