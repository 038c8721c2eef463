// SPDX-License-Identifier: MIT
// Package frame: the Frame type, construction invariants and the
// label-agnostic structural operations (transpose, rename, records).
package frame

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tabular/infer"
	"github.com/katalvlaran/tabular/matrix"
)

// Frame is an immutable labeled 2D table: a rectangular value matrix
// plus positionally aligned row labels (index) and column labels.
// Invariants: len(index) == row count and len(columns) == column count
// of values, always. A 0-row frame therefore has no column labels
// either — the matrix layer normalizes zero-width tables to 0×0.
type Frame struct {
	values  *matrix.Matrix
	index   []any
	columns []any
}

// New builds a Frame from raw rows.
// Stage 1 (Channel): values go through matrix.New, which rejects ragged
// input (matrix.ErrRagged) and normalizes the empty cases.
// Stage 2 (Label): explicit WithIndex/WithColumns labels are validated
// against the resulting dimensions (ErrIndexLength/ErrColumnsLength);
// omitted labels default to 0-based integer sequences, empty when the
// corresponding dimension is 0.
// Complexity: O(r·c).
func New(values [][]any, opts ...Option) (*Frame, error) {
	m, err := matrix.New(values)
	if err != nil {
		return nil, err
	}
	return fromMatrix(m, opts...)
}

// MustNew is New that panics on error; intended for literals in tests
// and examples where the shape is known valid by construction.
func MustNew(values [][]any, opts ...Option) *Frame {
	f, err := New(values, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// fromMatrix wraps an already-validated matrix with labels.
func fromMatrix(m *matrix.Matrix, opts ...Option) (*Frame, error) {
	r, c := m.Dims()
	o := gatherOptions(opts...)

	index := o.index
	if !o.hasIndex {
		index = defaultLabels(r)
	} else if len(index) != r {
		return nil, fmt.Errorf("frame: %d index labels for %d rows: %w", len(index), r, ErrIndexLength)
	}

	columns := o.columns
	if !o.hasColumns {
		columns = defaultLabels(c)
	} else if len(columns) != c {
		return nil, fmt.Errorf("frame: %d column labels for %d columns: %w", len(columns), c, ErrColumnsLength)
	}

	return &Frame{values: m, index: copyLabels(index), columns: copyLabels(columns)}, nil
}

// newUnchecked assembles a Frame from parts whose invariants the
// caller has already established. Internal use only.
func newUnchecked(m *matrix.Matrix, index, columns []any) *Frame {
	return &Frame{values: m, index: index, columns: columns}
}

// Dims returns (rows, columns) of the underlying value matrix.
// Complexity: O(1).
func (f *Frame) Dims() (rows, cols int) {
	return f.values.Dims()
}

// Index returns a copy of the row labels in positional order.
func (f *Frame) Index() []any {
	return copyLabels(f.index)
}

// ColumnLabels returns a copy of the column labels in positional order.
func (f *Frame) ColumnLabels() []any {
	return copyLabels(f.columns)
}

// Values returns a copy of the raw cell rows.
func (f *Frame) Values() [][]any {
	return f.values.Cells()
}

// Transpose returns the frame with values transposed and index ↔
// columns swapped. Transpose is an involution, including for the
// fully empty frame.
// Complexity: O(r·c).
func (f *Frame) Transpose() *Frame {
	return newUnchecked(f.values.Transpose(), copyLabels(f.columns), copyLabels(f.index))
}

// Rename replaces every column label that is a key in mapping; other
// labels and all values are untouched, order preserved. Keys match by
// canonical textual equality, like every other label comparison.
// Complexity: O(c·len(mapping)).
func (f *Frame) Rename(mapping map[any]any) *Frame {
	byCanon := make(map[string]any, len(mapping))
	for k, v := range mapping {
		byCanon[canon(k)] = v
	}
	columns := copyLabels(f.columns)
	for j, label := range columns {
		if next, ok := byCanon[canon(label)]; ok {
			columns[j] = next
		}
	}
	return newUnchecked(f.values, copyLabels(f.index), columns)
}

// Records exports one Record per row, pairing each column label with
// that row's value. Index labels are not included.
// Complexity: O(r·c).
func (f *Frame) Records() []Record {
	r, _ := f.values.Dims()
	out := make([]Record, r)
	for i := 0; i < r; i++ {
		out[i] = f.record(i)
	}
	return out
}

// record builds the annotated view of row i with detached storage.
func (f *Frame) record(i int) Record {
	row, err := f.values.Row(i)
	if err != nil {
		// Row positions come from our own loops; out of range here is a bug.
		panic(err)
	}
	return Record{labels: copyLabels(f.columns), values: row}
}

// InferTypes applies infer.Infer cell-wise and to every index and
// column label, returning the narrowed frame. This is the frame leg of
// infer's structural recursion.
// Complexity: O(r·c).
func (f *Frame) InferTypes() *Frame {
	inferAll := func(labels []any) []any {
		out := make([]any, len(labels))
		for i, l := range labels {
			out[i] = infer.Infer(l)
		}
		return out
	}
	return newUnchecked(f.values.Map(infer.Infer), inferAll(f.index), inferAll(f.columns))
}

// String implements fmt.Stringer: a header line of column labels, then
// one line per row led by its index label. Debugging aid, not a codec.
func (f *Frame) String() string {
	var b strings.Builder
	b.WriteString("*")
	for _, label := range f.columns {
		b.WriteString(" " + canon(label))
	}
	b.WriteString("\n")
	r, _ := f.values.Dims()
	for i := 0; i < r; i++ {
		b.WriteString(canon(f.index[i]))
		row, _ := f.values.Row(i)
		for _, cell := range row {
			b.WriteString(" " + canon(cell))
		}
		b.WriteString("\n")
	}
	return b.String()
}
