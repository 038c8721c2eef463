// Package matrix provides the raw, unlabeled table underneath a Frame:
// an immutable, rectangular, ordered sequence of rows of arbitrary cells.
//
// The matrix package provides:
//
//   - A strict constructor (New) that rejects ragged input and
//     normalizes the zero-column case to the canonical empty matrix.
//   - Structural operations: Transpose, RemoveColumn, AppendColumn,
//     stable SortRows, positional Rows/Columns selection.
//   - Shape-preserving transforms: Map (cell-wise), MapRows (row-wise),
//     MapColumns (column-wise, the backbone of cumulative sums).
//
// Every operation returns a new *Matrix; no method mutates its
// receiver. Cells are opaque `any` values and are shared, not copied —
// treat them as immutable scalars.
//
// All operations run in O(rows·columns) time or better, except
// SortRows which is O(rows·log rows) comparisons over whole rows.
//
// See the examples in this package and frame for usage patterns.
package matrix
