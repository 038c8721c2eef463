// SPDX-License-Identifier: MIT
// Package frame: row ordering.
// Both sorts work the same way: the index label is paired with each
// row as a temporary leading column, the combined rows are stable-
// sorted with a whole-row comparator, and the label column is split
// back out afterwards.
//
// Direction convention (fixed deliberately, and tested both ways):
// ascending=true means smallest first under Compare — numeric order
// when both sides are numeric, canonical-text order otherwise.
package frame

import (
	"strings"

	"github.com/katalvlaran/tabular/matrix"
)

// Compare orders two cells: numerically when both sides are numeric
// (ints, uints, floats), by canonical text form otherwise. Returns
// -1, 0 or +1. ISO-formatted dates therefore sort chronologically
// through their text form.
func Compare(a, b any) int {
	fa, aok := asNumber(a)
	fb, bok := asNumber(b)
	if aok && bok {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(canon(a), canon(b))
}

// asNumber widens any built-in numeric to float64. Booleans, strings
// and dates are not numbers here.
func asNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}

// SortIndex reorders rows by comparing index labels.
// ascending=true puts the smallest label first. The sort is stable, so
// equal labels keep their original relative order.
// Complexity: O(r·log r) comparisons, O(r·c) memory.
func (f *Frame) SortIndex(ascending bool) *Frame {
	return f.sortCombined(0, ascending)
}

// SortValues reorders rows by comparing each row's value in the named
// column; ErrLabelNotFound when the column matches nothing.
// Complexity: O(r·log r) comparisons, O(r·c) memory.
func (f *Frame) SortValues(column any, ascending bool) (*Frame, error) {
	j := firstMatch(f.columns, column)
	if j < 0 {
		return nil, labelMissErr("SortValues", column)
	}
	return f.sortCombined(j+1, ascending), nil
}

// sortCombined pairs the index as a leading column, stable-sorts the
// combined rows on column key, then splits the label column back out.
func (f *Frame) sortCombined(key int, ascending bool) *Frame {
	r, _ := f.values.Dims()
	if r == 0 {
		return newUnchecked(f.values, nil, nil)
	}
	combined := make([][]any, r)
	for i := 0; i < r; i++ {
		row, _ := f.values.Row(i)
		combined[i] = append([]any{f.index[i]}, row...)
	}
	cm, err := matrix.New(combined)
	if err != nil {
		// Combined rows are rectangular by construction.
		panic(err)
	}
	sorted := cm.SortRows(func(a, b []any) bool {
		if ascending {
			return Compare(a[key], b[key]) < 0
		}
		return Compare(a[key], b[key]) > 0
	})
	stripped, index, err := sorted.RemoveColumn(0)
	if err != nil {
		panic(err)
	}
	return newUnchecked(stripped, index, copyLabels(f.columns))
}
