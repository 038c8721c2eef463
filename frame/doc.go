// Package frame provides the labeled Frame: a rectangular value matrix
// wrapped with an index (row labels) and columns (column labels), plus
// the selection and transform algebra built on top of it.
//
// 🚀 What is a Frame?
//
//	Frame = matrix.Matrix + index + columns, with two invariants:
//	  • len(index)   == row count of the values
//	  • len(columns) == column count of the values
//	Labels align positionally — index[i] labels row i, columns[j]
//	labels column j. Labels may repeat; lookups resolve to the FIRST
//	match in scan order, and matching is canonical textual equality,
//	so the numeric label 10 and the query "10" are the same label.
//
// ✨ Key surfaces:
//
//   - Construction: New with WithColumns/WithIndex options; omitted
//     labels default to 0-based integer sequences
//   - Selection: Rows/Cols (label selectors), IRows/ICols (positional),
//     Loc/ILoc composition, At/IAt single cells, Column extraction
//   - Transforms: MapRecords/MapRows, FlatMapRecords/FlatMapRows,
//     Filter/Reject, AppendColumn(s), SortIndex/SortValues, GroupBy,
//     Head/Tail, CumSum, InferTypes
//
// A Frame is a value type: every transform returns a new Frame, none
// mutate in place, and immutability makes concurrent reads lock-free.
//
// Lookup-miss policy is deliberately non-uniform and matches the
// operation: label lists and ranges degrade silently, At/Column return
// ErrLabelNotFound, and a column missing from a record returned to
// MapRecords is fatal (ErrColumnMissing).
package frame
