// SPDX-License-Identifier: MIT
// Package frame: grouping, windowing and running totals.
package frame

import (
	"fmt"
)

// DefaultHeadRows is the conventional preview size for Head and Tail.
const DefaultHeadRows = 5

// GroupBy partitions the frame by the DISTINCT values of the named
// column, keyed by canonical text form. Groups are ordered by the
// FIRST OCCURRENCE of their key in the original row order; each
// sub-frame holds exactly the matching rows in original relative
// order and retains their original index labels.
// Returns ErrLabelNotFound when the column matches nothing.
// Complexity: O(r·c).
func (f *Frame) GroupBy(column any) ([]*Frame, error) {
	col, err := f.Column(column)
	if err != nil {
		return nil, err
	}
	var order []string
	groups := make(map[string][]int, len(col))
	for i, v := range col {
		key := canon(v)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}
	out := make([]*Frame, len(order))
	for g, key := range order {
		pos := groups[key]
		out[g] = newUnchecked(f.values.Rows(pos), pickLabels(f.index, pos), copyLabels(f.columns))
	}
	return out, nil
}

// Head returns the first n rows, retaining their index labels.
// A negative n takes from the END instead — the convention Tail is
// built on. When |n| is at least the row count the frame is returned
// unchanged.
// Complexity: O(n·c).
func (f *Frame) Head(n int) *Frame {
	r, _ := f.values.Dims()
	if n >= 0 {
		if n >= r {
			return f
		}
		return f.IRows(Span(0, n-1))
	}
	if -n >= r {
		return f
	}
	return f.IRows(Span(r+n, r-1))
}

// Tail returns the last n rows: Head with the negative-size convention.
func (f *Frame) Tail(n int) *Frame {
	return f.Head(-n)
}

// CumSum replaces each column with its running total top-to-bottom:
// row 0 is unchanged, row i adds row i's raw value to row i-1's
// cumulative value, independently per column. Index and columns are
// unchanged. Integer columns stay integer until a float joins the sum.
// A non-numeric cell reached by an addition is ErrNotNumeric.
// Complexity: O(r·c).
func (f *Frame) CumSum() (*Frame, error) {
	var sumErr error
	m, err := f.values.MapColumns(func(col []any) []any {
		out := make([]any, len(col))
		for i, v := range col {
			if i == 0 {
				out[0] = v
				continue
			}
			if sumErr != nil {
				out[i] = v
				continue
			}
			next, err := addCells(out[i-1], v)
			if err != nil {
				sumErr = err
				out[i] = v
				continue
			}
			out[i] = next
		}
		return out
	})
	if sumErr != nil {
		return nil, sumErr
	}
	if err != nil {
		return nil, err
	}
	return newUnchecked(m, copyLabels(f.index), copyLabels(f.columns)), nil
}

// addCells adds two cells numerically: int+int stays int, any float
// operand widens the result to float64.
func addCells(a, b any) (any, error) {
	ai, aInt := a.(int)
	bi, bInt := b.(int)
	if aInt && bInt {
		return ai + bi, nil
	}
	fa, aok := asNumber(a)
	if !aok {
		return nil, fmt.Errorf("frame: CumSum over %v (%T): %w", a, a, ErrNotNumeric)
	}
	fb, bok := asNumber(b)
	if !bok {
		return nil, fmt.Errorf("frame: CumSum over %v (%T): %w", b, b, ErrNotNumeric)
	}
	return fa + fb, nil
}
