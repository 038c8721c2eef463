// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to
// allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers will
// still use errors.Is to match.

var (
	// ErrRagged is returned when the rows passed to New have unequal
	// lengths. The only legal irregularity is the zero-column case,
	// which New normalizes to the empty matrix.
	ErrRagged = errors.New("matrix: rows have unequal lengths")

	// ErrOutOfRange indicates that a row or column index is outside
	// valid bounds. Public indexers (At, Column, RemoveColumn) MUST
	// return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrLengthMismatch indicates that a supplied or produced sequence
	// has the wrong length for the matrix shape, e.g. AppendColumn with
	// len(values) != Rows(), or a MapRows/MapColumns callback returning
	// a slice of the wrong width.
	ErrLengthMismatch = errors.New("matrix: length mismatch")

	// ErrNotColumn signals that ToList was called on a matrix that is
	// not single-column.
	ErrNotColumn = errors.New("matrix: not a single-column matrix")
)
