// Package infer_test contains unit tests for scalar inference,
// composite recursion and forced conversion.
package infer_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/tabular/infer"
	"github.com/stretchr/testify/require"
)

// TestInferScalars walks the priority ladder with the reference fixtures.
func TestInferScalars(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want any
	}{
		{"integer text", "10", 10},
		{"float text", "10.1", 10.1},
		{"bool text", "false", false},
		{"bool text trimmed", "  true ", true},
		{"date text", "2018-01-01", time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"opaque text", "lflkj123f", "lflkj123f"},
		{"int passthrough", 7, 7},
		{"float rounds to int", 2.6, 3}, // Int wins before Float sees it
		{"bool passthrough", true, true},
		{"negative integer text", "-42", -42},
		{"partial int is not int", "10x", "10x"},
		{"partial date is not date", "2018-01", "2018-01"},
		{"date with garbage is text", "2018-01-01T10:00", "2018-01-01T10:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, infer.Infer(tc.in))
		})
	}
}

// TestInferComposites verifies element-wise, structure-preserving
// recursion through slices and maps.
func TestInferComposites(t *testing.T) {
	in := []any{"1", "2.5", []any{"true", "x"}}
	want := []any{1, 2.5, []any{true, "x"}}
	require.Equal(t, want, infer.Infer(in))

	mIn := map[string]any{"a": "10", "b": "nope"}
	mWant := map[string]any{"a": 10, "b": "nope"}
	require.Equal(t, mWant, infer.Infer(mIn))
}

// TestAs verifies forced conversion with a single kind's parser.
func TestAs(t *testing.T) {
	v, err := infer.As("10", infer.Float) // skip the Int parser entirely
	require.NoError(t, err)
	require.Equal(t, 10.0, v)

	v, err = infer.As(3.2, infer.Int) // numeric rounds
	require.NoError(t, err)
	require.Equal(t, 3, v)

	v, err = infer.As(0.4, infer.Bool) // rounds to 0 ⇒ false
	require.NoError(t, err)
	require.Equal(t, false, v)

	v, err = infer.As(time.Date(2020, 2, 2, 0, 0, 0, 0, time.UTC), infer.String)
	require.NoError(t, err)
	require.Equal(t, "2020-02-02", v) // dates stringify in DateLayout
}

// TestAsRejects verifies that a rejecting parser surfaces ErrConversion
// and that composites fail on the first bad element.
func TestAsRejects(t *testing.T) {
	_, err := infer.As("not a number", infer.Int)
	require.ErrorIs(t, err, infer.ErrConversion)

	_, err = infer.As([]any{"1", "two"}, infer.Int)
	require.ErrorIs(t, err, infer.ErrConversion)

	_, err = infer.As("x", infer.Kind(99))
	require.ErrorIs(t, err, infer.ErrUnknownKind)
}

// TestKindString pins the Stringer forms used in error wraps.
func TestKindString(t *testing.T) {
	require.Equal(t, "Int", infer.Int.String())
	require.Equal(t, "Date", infer.Date.String())
	require.Equal(t, "Kind(99)", infer.Kind(99).String())
}
