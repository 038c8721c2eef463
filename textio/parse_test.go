// Package textio_test contains unit tests for the whitespace format.
package textio_test

import (
	"testing"

	"github.com/katalvlaran/tabular/frame"
	"github.com/katalvlaran/tabular/matrix"
	"github.com/katalvlaran/tabular/textio"
	"github.com/stretchr/testify/require"
)

// TestParse decodes a representative whitespace table with full
// inference of header, index and cells.
func TestParse(t *testing.T) {
	f, err := textio.Parse("A B\nx 1 2.5\ny true lflkj123f\n")
	require.NoError(t, err)

	require.Equal(t, []any{"A", "B"}, f.ColumnLabels())
	require.Equal(t, []any{"x", "y"}, f.Index()) // first token per line
	require.Equal(t, [][]any{
		{1, 2.5},
		{true, "lflkj123f"},
	}, f.Values())
}

// TestParseInfersLabels verifies that labels pass through inference too.
func TestParseInfersLabels(t *testing.T) {
	f, err := textio.Parse("10 20\n0 1 2\n")
	require.NoError(t, err)
	require.Equal(t, []any{10, 20}, f.ColumnLabels()) // numeric header labels
	require.Equal(t, []any{0}, f.Index())
}

// TestParseSkipsBlankLines verifies blank/whitespace-only lines vanish.
func TestParseSkipsBlankLines(t *testing.T) {
	f, err := textio.Parse("\nA\n\nx 1\n   \ny 2\n")
	require.NoError(t, err)
	r, _ := f.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, []any{"x", "y"}, f.Index())
}

// TestParseEmpty verifies empty text is the empty frame.
func TestParseEmpty(t *testing.T) {
	f, err := textio.Parse("  \n \n")
	require.NoError(t, err)
	r, c := f.Dims()
	require.Zero(t, r)
	require.Zero(t, c)
}

// TestParseErrors verifies construction errors surface unchanged.
func TestParseErrors(t *testing.T) {
	_, err := textio.Parse("A B\nx 1 2\ny 3\n") // ragged data rows
	require.ErrorIs(t, err, matrix.ErrRagged)

	_, err = textio.Parse("A B C\nx 1 2\n") // header wider than rows
	require.ErrorIs(t, err, frame.ErrColumnsLength)
}
