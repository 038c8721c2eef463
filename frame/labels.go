// Package frame: label plumbing shared across selection and transforms.
// Matching is canonical textual equality: both sides are rendered to
// their printed form and compared as strings, so the numeric label 10
// and the query "10" are one and the same.
package frame

import (
	"fmt"
	"time"

	"github.com/katalvlaran/tabular/infer"
)

// canon renders a label or cell to its canonical text form.
// time.Time renders as its ISO-8601 calendar date so that inferred
// dates keep a stable printed identity.
func canon(v any) string {
	if t, ok := v.(time.Time); ok {
		return t.Format(infer.DateLayout)
	}
	return fmt.Sprint(v)
}

// firstMatch returns the position of the first reference label whose
// canonical form equals the query's, or -1 when nothing matches.
func firstMatch(ref []any, query any) int {
	q := canon(query)
	for i, label := range ref {
		if canon(label) == q {
			return i
		}
	}
	return -1
}

// labelMissErr wraps ErrLabelNotFound with the operation and label.
func labelMissErr(op string, label any) error {
	return fmt.Errorf("frame: %s(%v): %w", op, label, ErrLabelNotFound)
}

// defaultLabels returns the 0-based integer label sequence of length n.
func defaultLabels(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// copyLabels returns a fresh slice sharing the label values.
func copyLabels(labels []any) []any {
	out := make([]any, len(labels))
	copy(out, labels)
	return out
}

// pickLabels selects labels by position, skipping out-of-range entries
// with the same silent-drop policy as positional row selection.
func pickLabels(labels []any, positions []int) []any {
	out := make([]any, 0, len(positions))
	for _, p := range positions {
		if p >= 0 && p < len(labels) {
			out = append(out, labels[p])
		}
	}
	return out
}
