// SPDX-License-Identifier: MIT
// Package frame: the selection engine.
// Label selectors resolve against a reference label sequence (index or
// columns) into positions; positional selectors resolve against a
// length. Both families share the silent-drop policy: what cannot be
// resolved simply does not appear in the result. The strict,
// error-returning lookups are At, IAt and Column.
package frame

// Selector resolves a label specification into row/column positions
// against a reference label sequence. Build one with Labels or
// LabelRange.
type Selector interface {
	resolve(ref []any) []int
}

// PosSelector resolves a positional specification against a dimension
// length. Build one with Positions or Span.
type PosSelector interface {
	resolvePos(n int) []int
}

// labelList is an explicit label list: requested order, first match
// per label, unmatched labels silently dropped.
type labelList struct {
	labels []any
}

// Labels selects by explicit label list. The result preserves the
// REQUESTED order, not the reference order; a label matching several
// reference entries resolves to its first match; an unmatched label is
// silently dropped — no error.
func Labels(labels ...any) Selector {
	return labelList{labels: labels}
}

func (s labelList) resolve(ref []any) []int {
	out := make([]int, 0, len(s.labels))
	for _, label := range s.labels {
		if p := firstMatch(ref, label); p >= 0 {
			out = append(out, p)
		}
	}
	return out
}

// labelRange is an inclusive label range resolved by canonical textual
// equality on both bounds.
type labelRange struct {
	first, last any
}

// LabelRange selects the full inclusive positional span between the
// positions of first and last, tolerant of either bound being found
// first. When either bound matches nothing the range degrades silently
// to an empty selection.
func LabelRange(first, last any) Selector {
	return labelRange{first: first, last: last}
}

func (s labelRange) resolve(ref []any) []int {
	lo := firstMatch(ref, s.first)
	hi := firstMatch(ref, s.last)
	if lo < 0 || hi < 0 {
		return nil
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	out := make([]int, 0, hi-lo+1)
	for p := lo; p <= hi; p++ {
		out = append(out, p)
	}
	return out
}

// positionList is an explicit position list: repeats and reordering
// allowed, out-of-range positions silently dropped.
type positionList struct {
	positions []int
}

// Positions selects by explicit 0-based position list. Repeats and
// reordering are allowed; out-of-range positions are silently dropped.
func Positions(positions ...int) PosSelector {
	return positionList{positions: positions}
}

func (s positionList) resolvePos(n int) []int {
	out := make([]int, 0, len(s.positions))
	for _, p := range s.positions {
		if p >= 0 && p < n {
			out = append(out, p)
		}
	}
	return out
}

// span is a contiguous inclusive position range, clamped to bounds.
type span struct {
	lo, hi int
}

// Span selects the contiguous inclusive position range [lo, hi],
// clamped to the valid bounds of the dimension it is applied to.
func Span(lo, hi int) PosSelector {
	return span{lo: lo, hi: hi}
}

func (s span) resolvePos(n int) []int {
	lo, hi := s.lo, s.hi
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	if lo > hi {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for p := lo; p <= hi; p++ {
		out = append(out, p)
	}
	return out
}

// Rows selects whole rows by label. Requested order wins; unmatched
// labels drop silently; columns are untouched unless nothing survives,
// in which case the frame collapses entirely (0-row frames carry no
// column labels).
// Complexity: O(selected·(r+c)).
func (f *Frame) Rows(s Selector) *Frame {
	return f.withPickedRows(s.resolve(f.index))
}

// withPickedRows assembles the row-selection result, keeping the
// picked index labels and enforcing the empty-frame collapse.
func (f *Frame) withPickedRows(pos []int) *Frame {
	m := f.values.Rows(pos)
	if r, _ := m.Dims(); r == 0 {
		return newUnchecked(m, nil, nil)
	}
	return newUnchecked(m, pickLabels(f.index, pos), copyLabels(f.columns))
}

// Cols selects whole columns by label, mirroring Rows.
func (f *Frame) Cols(s Selector) *Frame {
	pos := s.resolve(f.columns)
	m := f.values.Columns(pos)
	index := f.index
	if _, c := m.Dims(); c == 0 {
		// Zero columns collapses the matrix; labels follow the invariant.
		return newUnchecked(m, nil, nil)
	}
	return newUnchecked(m, copyLabels(index), pickLabels(f.columns, pos))
}

// IRows selects whole rows by position.
func (f *Frame) IRows(s PosSelector) *Frame {
	r, _ := f.values.Dims()
	return f.withPickedRows(s.resolvePos(r))
}

// ICols selects whole columns by position.
func (f *Frame) ICols(s PosSelector) *Frame {
	_, c := f.values.Dims()
	pos := s.resolvePos(c)
	m := f.values.Columns(pos)
	if _, mc := m.Dims(); mc == 0 {
		return newUnchecked(m, nil, nil)
	}
	return newUnchecked(m, copyLabels(f.index), pickLabels(f.columns, pos))
}

// Loc composes label-based row and column selection, independently
// resolved. A nil selector keeps that axis whole.
func (f *Frame) Loc(rows, cols Selector) *Frame {
	out := f
	if rows != nil {
		out = out.Rows(rows)
	}
	if cols != nil {
		out = out.Cols(cols)
	}
	return out
}

// ILoc composes positional row and column selection, independently
// resolved. A nil selector keeps that axis whole.
func (f *Frame) ILoc(rows, cols PosSelector) *Frame {
	out := f
	if rows != nil {
		out = out.IRows(rows)
	}
	if cols != nil {
		out = out.ICols(cols)
	}
	return out
}

// At looks up the single cell addressed by an index label and a column
// label, each resolved by canonical first-match scan. An unmatched
// label is ErrLabelNotFound — here the miss IS an error, unlike the
// silent selectors.
// Complexity: O(r+c).
func (f *Frame) At(indexLabel, columnLabel any) (any, error) {
	i := firstMatch(f.index, indexLabel)
	if i < 0 {
		return nil, labelMissErr("At", indexLabel)
	}
	j := firstMatch(f.columns, columnLabel)
	if j < 0 {
		return nil, labelMissErr("At", columnLabel)
	}
	return f.values.At(i, j)
}

// IAt looks up a single cell by position; matrix.ErrOutOfRange when
// either position is invalid.
// Complexity: O(1).
func (f *Frame) IAt(row, col int) (any, error) {
	return f.values.At(row, col)
}

// Column extracts one column as a flat value sequence (not a Frame);
// ErrLabelNotFound when the label matches nothing.
// Complexity: O(r+c).
func (f *Frame) Column(label any) ([]any, error) {
	j := firstMatch(f.columns, label)
	if j < 0 {
		return nil, labelMissErr("Column", label)
	}
	return f.values.Column(j)
}
