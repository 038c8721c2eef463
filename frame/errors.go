// SPDX-License-Identifier: MIT
// Package frame: sentinel error set.
// All operations MUST return these sentinels and tests MUST check them
// via errors.Is. Sentinels from the matrix package (ErrRagged,
// ErrOutOfRange, …) propagate through unchanged where the raw layer
// detects the problem first.

package frame

import "errors"

var (
	// ErrIndexLength is returned by New when WithIndex supplies a label
	// sequence whose length differs from the value matrix's row count.
	ErrIndexLength = errors.New("frame: index length does not match row count")

	// ErrColumnsLength is returned by New when WithColumns supplies a
	// label sequence whose length differs from the column count.
	ErrColumnsLength = errors.New("frame: columns length does not match column count")

	// ErrLabelNotFound is returned by At, Column, SortValues and GroupBy
	// when a label matches nothing in the reference sequence. List and
	// range selectors deliberately do NOT return it — they degrade
	// silently instead.
	ErrLabelNotFound = errors.New("frame: label not found")

	// ErrColumnMissing is returned by MapRecords/FlatMapRecords when a
	// record produced by the caller's function lacks one of the frame's
	// columns. This miss is fatal where selector misses are not.
	ErrColumnMissing = errors.New("frame: column missing from returned record")

	// ErrRowLength is returned by the positional transforms when a
	// caller's function returns a row or derived-value sequence of the
	// wrong length.
	ErrRowLength = errors.New("frame: row has wrong length")

	// ErrNotNumeric is returned by CumSum when a cell below row 0 cannot
	// participate in a numeric running total.
	ErrNotNumeric = errors.New("frame: value is not numeric")
)

// panicRecordShape is the stable message for NewRecord misuse;
// mismatched label/value lengths are a programmer error, not a data
// condition, so the constructor panics rather than returning an error.
const panicRecordShape = "frame: NewRecord: labels and values must have equal length"
