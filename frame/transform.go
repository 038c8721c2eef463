// SPDX-License-Identifier: MIT
// Package frame: the row-transform engine.
// Each transform offers two views of a row — annotated (Record) or
// positional ([]any) — as separate method families; conversion happens
// here at the boundary and the raw row is rebuilt from whatever the
// caller's function returns.
//
// Index policy (fixed contract):
//   - cardinality-preserving transforms (MapRecords, MapRows,
//     AppendColumn, AppendColumns) carry the original index through;
//   - cardinality-changing transforms (FlatMapRecords, FlatMapRows,
//     Filter, Reject and friends) re-default the index positionally.
package frame

import (
	"fmt"

	"github.com/katalvlaran/tabular/matrix"
)

// MapRecords transforms every row through fn, presented as a Record.
// The frame's value for each column is re-extracted from the returned
// record by label; a missing column is fatal (ErrColumnMissing). Extra
// labels in the returned record are ignored. Cardinality is unchanged,
// so the original index is preserved.
// Complexity: O(r·c²) from per-label extraction.
func (f *Frame) MapRecords(fn func(Record) Record) (*Frame, error) {
	r, _ := f.values.Dims()
	rows := make([][]any, r)
	for i := 0; i < r; i++ {
		out := fn(f.record(i))
		row, err := f.extractRow(out, i)
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}
	m, err := matrix.New(rows)
	if err != nil {
		return nil, err
	}
	return newUnchecked(m, copyLabels(f.index), copyLabels(f.columns)), nil
}

// MapRows transforms every row through fn, presented positionally.
// fn must return a row of the frame's width; ErrRowLength otherwise.
// The original index is preserved.
// Complexity: O(r·c).
func (f *Frame) MapRows(fn func([]any) []any) (*Frame, error) {
	r, c := f.values.Dims()
	rows := make([][]any, r)
	for i := 0; i < r; i++ {
		row, err := f.values.Row(i)
		if err != nil {
			return nil, err
		}
		next := fn(row)
		if len(next) != c {
			return nil, fmt.Errorf("frame: MapRows row %d returned %d cells, want %d: %w",
				i, len(next), c, ErrRowLength)
		}
		rows[i] = next
	}
	m, err := matrix.New(rows)
	if err != nil {
		return nil, err
	}
	return newUnchecked(m, copyLabels(f.index), copyLabels(f.columns)), nil
}

// FlatMapRecords transforms every row through fn, which may return
// zero or more records. Output cardinality may differ from the input,
// so the resulting index is re-defaulted positionally. Column
// extraction follows MapRecords semantics (ErrColumnMissing is fatal).
func (f *Frame) FlatMapRecords(fn func(Record) []Record) (*Frame, error) {
	r, _ := f.values.Dims()
	var rows [][]any
	for i := 0; i < r; i++ {
		for _, out := range fn(f.record(i)) {
			row, err := f.extractRow(out, i)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
	}
	return f.rebuildRows(rows)
}

// FlatMapRows is the positional FlatMapRecords: fn returns zero or
// more rows per input row, each of the frame's width (ErrRowLength
// otherwise). The resulting index is re-defaulted positionally.
func (f *Frame) FlatMapRows(fn func([]any) [][]any) (*Frame, error) {
	r, c := f.values.Dims()
	var rows [][]any
	for i := 0; i < r; i++ {
		row, err := f.values.Row(i)
		if err != nil {
			return nil, err
		}
		for _, next := range fn(row) {
			if len(next) != c {
				return nil, fmt.Errorf("frame: FlatMapRows row %d produced %d cells, want %d: %w",
					i, len(next), c, ErrRowLength)
			}
			rows = append(rows, next)
		}
	}
	return f.rebuildRows(rows)
}

// Filter keeps the rows whose Record satisfies pred. Columns are
// preserved; the resulting index is re-defaulted positionally.
func (f *Frame) Filter(pred func(Record) bool) *Frame {
	return f.filterPositions(func(i int) bool { return pred(f.record(i)) })
}

// Reject drops the rows whose Record satisfies pred; the complement of
// Filter.
func (f *Frame) Reject(pred func(Record) bool) *Frame {
	return f.Filter(func(rec Record) bool { return !pred(rec) })
}

// FilterRows is the positional Filter.
func (f *Frame) FilterRows(pred func([]any) bool) *Frame {
	return f.filterPositions(func(i int) bool {
		row, _ := f.values.Row(i)
		return pred(row)
	})
}

// RejectRows is the positional Reject.
func (f *Frame) RejectRows(pred func([]any) bool) *Frame {
	return f.FilterRows(func(row []any) bool { return !pred(row) })
}

// filterPositions keeps rows by per-position verdict and re-defaults
// the index; the shared core of the four filter entry points.
func (f *Frame) filterPositions(keep func(i int) bool) *Frame {
	r, _ := f.values.Dims()
	pos := make([]int, 0, r)
	for i := 0; i < r; i++ {
		if keep(i) {
			pos = append(pos, i)
		}
	}
	m := f.values.Rows(pos)
	mr, mc := m.Dims()
	columns := f.columns
	if mc == 0 {
		columns = nil
	}
	return newUnchecked(m, defaultLabels(mr), copyLabels(columns))
}

// AppendColumn appends one derived trailing column computed per row by
// fn over the annotated view. Row count and existing columns are
// untouched.
// Complexity: O(r·c).
func (f *Frame) AppendColumn(label any, fn func(Record) any) (*Frame, error) {
	return f.AppendColumns([]any{label}, func(rec Record) []any {
		return []any{fn(rec)}
	})
}

// AppendColumns appends several derived trailing columns at once: fn
// returns one value per new label (ErrRowLength otherwise).
// Complexity: O(r·(c+len(labels))).
func (f *Frame) AppendColumns(labels []any, fn func(Record) []any) (*Frame, error) {
	r, _ := f.values.Dims()
	if r == 0 {
		// Nothing to derive from; the empty frame stays empty.
		return newUnchecked(f.values, nil, nil), nil
	}
	derived := make([][]any, len(labels))
	for k := range derived {
		derived[k] = make([]any, r)
	}
	for i := 0; i < r; i++ {
		vals := fn(f.record(i))
		if len(vals) != len(labels) {
			return nil, fmt.Errorf("frame: AppendColumns row %d yielded %d values for %d labels: %w",
				i, len(vals), len(labels), ErrRowLength)
		}
		for k, v := range vals {
			derived[k][i] = v
		}
	}
	m := f.values
	for _, col := range derived {
		next, err := m.AppendColumn(col)
		if err != nil {
			return nil, err
		}
		m = next
	}
	columns := append(copyLabels(f.columns), labels...)
	return newUnchecked(m, copyLabels(f.index), columns), nil
}

// extractRow rebuilds a raw row from a caller-returned record by
// pulling each of the frame's columns out by label.
func (f *Frame) extractRow(rec Record, rowIdx int) ([]any, error) {
	row := make([]any, len(f.columns))
	for j, label := range f.columns {
		v, ok := rec.Get(label)
		if !ok {
			return nil, fmt.Errorf("frame: result for row %d is missing column %v: %w",
				rowIdx, label, ErrColumnMissing)
		}
		row[j] = v
	}
	return row, nil
}

// rebuildRows assembles a frame from produced rows: same columns (when
// any rows survive), positionally re-defaulted index.
func (f *Frame) rebuildRows(rows [][]any) (*Frame, error) {
	m, err := matrix.New(rows)
	if err != nil {
		return nil, err
	}
	r, c := m.Dims()
	columns := f.columns
	if c == 0 {
		columns = nil
	}
	return newUnchecked(m, defaultLabels(r), copyLabels(columns)), nil
}
