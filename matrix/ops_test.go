// Package matrix_test contains unit tests for the structural
// operations: transpose, column edits, sorting, transforms, selection.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tabular/matrix"
	"github.com/stretchr/testify/require"
)

// TestTransposeInvolution ensures Transpose∘Transpose is the identity,
// including for the empty matrix.
func TestTransposeInvolution(t *testing.T) {
	m := matrix.MustNew([][]any{{1, 2, 3}, {4, 5, 6}})
	tt := m.Transpose().Transpose()
	require.Equal(t, m.String(), tt.String()) // same cells, same shape

	r, c := m.Transpose().Dims()
	require.Equal(t, 3, r) // dimensions swap
	require.Equal(t, 2, c)

	empty := matrix.MustNew(nil)
	er, ec := empty.Transpose().Transpose().Dims()
	require.Zero(t, er)
	require.Zero(t, ec)
}

// TestTransposeCells verifies cell(i,j) lands at cell(j,i).
func TestTransposeCells(t *testing.T) {
	m := matrix.MustNew([][]any{{1, 2}, {3, 4}})
	tr := m.Transpose()
	v, err := tr.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 3, v) // original cell(1,0)
}

// TestRemoveColumn verifies deletion plus the returned column values.
func TestRemoveColumn(t *testing.T) {
	m := matrix.MustNew([][]any{{1, "a", true}, {2, "b", false}})

	rest, removed, err := m.RemoveColumn(1)
	require.NoError(t, err)
	require.Equal(t, []any{"a", "b"}, removed) // removed column in row order
	_, c := rest.Dims()
	require.Equal(t, 2, c)
	v, _ := rest.At(0, 1)
	require.Equal(t, true, v) // trailing column shifted left

	_, _, err = m.RemoveColumn(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestAppendColumn verifies the trailing-column append and its length check.
func TestAppendColumn(t *testing.T) {
	m := matrix.MustNew([][]any{{1}, {2}})

	wide, err := m.AppendColumn([]any{"x", "y"})
	require.NoError(t, err)
	v, _ := wide.At(1, 1)
	require.Equal(t, "y", v)

	_, err = m.AppendColumn([]any{"only one"})
	require.ErrorIs(t, err, matrix.ErrLengthMismatch)
}

// TestSortRowsStable checks ordering and tie stability.
func TestSortRowsStable(t *testing.T) {
	m := matrix.MustNew([][]any{
		{2, "first-two"},
		{1, "one"},
		{2, "second-two"},
	})
	sorted := m.SortRows(func(a, b []any) bool { return a[0].(int) < b[0].(int) })

	v, _ := sorted.At(0, 1)
	require.Equal(t, "one", v)
	v, _ = sorted.At(1, 1)
	require.Equal(t, "first-two", v) // ties keep original relative order
	v, _ = sorted.At(2, 1)
	require.Equal(t, "second-two", v)

	// Receiver untouched.
	v, _ = m.At(0, 1)
	require.Equal(t, "first-two", v)
}

// TestMap verifies the cell-wise transform.
func TestMap(t *testing.T) {
	m := matrix.MustNew([][]any{{1, 2}, {3, 4}})
	doubled := m.Map(func(v any) any { return v.(int) * 2 })
	require.Equal(t, "[2, 4]\n[6, 8]\n", doubled.String())
}

// TestMapRows verifies the row-wise transform and its width check.
func TestMapRows(t *testing.T) {
	m := matrix.MustNew([][]any{{1, 2}, {3, 4}})

	swapped, err := m.MapRows(func(row []any) []any { return []any{row[1], row[0]} })
	require.NoError(t, err)
	require.Equal(t, "[2, 1]\n[4, 3]\n", swapped.String())

	_, err = m.MapRows(func(row []any) []any { return row[:1] })
	require.ErrorIs(t, err, matrix.ErrLengthMismatch)
}

// TestMapColumns verifies the column-wise transform, including a
// running total carried in the caller's closure.
func TestMapColumns(t *testing.T) {
	m := matrix.MustNew([][]any{{1, 10}, {2, 20}, {3, 30}})

	summed, err := m.MapColumns(func(col []any) []any {
		total := 0
		out := make([]any, len(col))
		for i, v := range col {
			total += v.(int)
			out[i] = total
		}
		return out
	})
	require.NoError(t, err)
	require.Equal(t, "[1, 10]\n[3, 30]\n[6, 60]\n", summed.String())

	_, err = m.MapColumns(func(col []any) []any { return nil })
	require.ErrorIs(t, err, matrix.ErrLengthMismatch)
}

// TestRowsSelection checks requested order, duplicates and silent drops.
func TestRowsSelection(t *testing.T) {
	m := matrix.MustNew([][]any{{"r0"}, {"r1"}, {"r2"}})

	picked := m.Rows([]int{2, 0, 2, 7}) // 7 is out of range
	r, _ := picked.Dims()
	require.Equal(t, 3, r) // the bad position is dropped, not an error
	v, _ := picked.At(0, 0)
	require.Equal(t, "r2", v) // requested order, not native order
	v, _ = picked.At(1, 0)
	require.Equal(t, "r0", v)
	v, _ = picked.At(2, 0)
	require.Equal(t, "r2", v) // duplicate repeats the row
}

// TestColumnsSelection mirrors TestRowsSelection for columns.
func TestColumnsSelection(t *testing.T) {
	m := matrix.MustNew([][]any{{1, 2, 3}, {4, 5, 6}})

	picked := m.Columns([]int{2, 0, -1})
	_, c := picked.Dims()
	require.Equal(t, 2, c)
	v, _ := picked.At(1, 0)
	require.Equal(t, 6, v) // column 2 first, as requested
	v, _ = picked.At(1, 1)
	require.Equal(t, 4, v)
}
