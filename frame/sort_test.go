// Package frame_test contains unit tests for row ordering: both sort
// entry points, both directions, mixed-type comparison.
package frame_test

import (
	"testing"

	"github.com/katalvlaran/tabular/frame"
	"github.com/stretchr/testify/require"
)

// TestSortIndexBothDirections pins the direction convention:
// ascending=true means smallest label first.
func TestSortIndexBothDirections(t *testing.T) {
	f, err := frame.New(
		[][]any{{1}, {2}, {3}},
		frame.WithIndex("b", "c", "a"),
		frame.WithColumns("A"),
	)
	require.NoError(t, err)

	asc := f.SortIndex(true)
	require.Equal(t, []any{"a", "b", "c"}, asc.Index())
	require.Equal(t, [][]any{{3}, {1}, {2}}, asc.Values()) // rows follow labels

	desc := f.SortIndex(false)
	require.Equal(t, []any{"c", "b", "a"}, desc.Index())
	require.Equal(t, [][]any{{2}, {1}, {3}}, desc.Values())
}

// TestSortValuesBothDirections sorts by a named column's values.
func TestSortValuesBothDirections(t *testing.T) {
	f, err := frame.New(
		[][]any{{3, "c"}, {1, "a"}, {2, "b"}},
		frame.WithColumns("n", "s"),
		frame.WithIndex("x", "y", "z"),
	)
	require.NoError(t, err)

	asc, err := f.SortValues("n", true)
	require.NoError(t, err)
	require.Equal(t, [][]any{{1, "a"}, {2, "b"}, {3, "c"}}, asc.Values())
	require.Equal(t, []any{"y", "z", "x"}, asc.Index()) // labels travel with rows

	desc, err := f.SortValues("n", false)
	require.NoError(t, err)
	require.Equal(t, [][]any{{3, "c"}, {2, "b"}, {1, "a"}}, desc.Values())

	_, err = f.SortValues("missing", true)
	require.ErrorIs(t, err, frame.ErrLabelNotFound)
}

// TestSortStability verifies ties keep original relative order.
func TestSortStability(t *testing.T) {
	f, err := frame.New(
		[][]any{{1, "first"}, {1, "second"}, {0, "zero"}},
		frame.WithColumns("k", "tag"),
	)
	require.NoError(t, err)

	sorted, err := f.SortValues("k", true)
	require.NoError(t, err)
	require.Equal(t, [][]any{{0, "zero"}, {1, "first"}, {1, "second"}}, sorted.Values())
}

// TestCompare pins the mixed-type comparison rules.
func TestCompare(t *testing.T) {
	require.Equal(t, -1, frame.Compare(2, 10))       // numeric, not textual
	require.Equal(t, 1, frame.Compare("2", "10"))    // strings compare as text
	require.Equal(t, 0, frame.Compare(1.0, 1))       // cross-width numeric equality
	require.Equal(t, -1, frame.Compare(5, "a"))      // mixed falls back to text: "5" < "a"
}

// TestSortEmpty verifies sorting the empty frame is a no-op.
func TestSortEmpty(t *testing.T) {
	empty := frame.MustNew([][]any{{}})
	r, c := empty.SortIndex(true).Dims()
	require.Zero(t, r)
	require.Zero(t, c)
}
