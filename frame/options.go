// SPDX-License-Identifier: MIT
// Package frame: functional configuration for Frame construction.
// This file defines:
//   - Option (functional options with internal state),
//   - WithColumns / WithIndex constructors,
//   - gatherOptions helper (internal) that resolves them.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: validation happens in New, against the
//     actual matrix dimensions, not in the setters.
package frame

// Option mutates internal construction options. Safe to apply
// repeatedly; last-writer-wins.
type Option func(*options)

// options stores the effective configuration after applying Option
// setters. It is intentionally unexported; New accepts ...Option and
// resolves them via gatherOptions.
type options struct {
	columns    []any
	hasColumns bool
	index      []any
	hasIndex   bool
}

// WithColumns supplies explicit column labels.
// Length must equal the value matrix's column count; New returns
// ErrColumnsLength otherwise. Passing no labels pins an empty label
// set, which is only valid for the empty frame.
func WithColumns(labels ...any) Option {
	return func(o *options) {
		o.columns = labels
		o.hasColumns = true
	}
}

// WithIndex supplies explicit row labels.
// Length must equal the value matrix's row count; New returns
// ErrIndexLength otherwise.
func WithIndex(labels ...any) Option {
	return func(o *options) {
		o.index = labels
		o.hasIndex = true
	}
}

// gatherOptions applies user-provided setters on top of zero defaults.
func gatherOptions(user ...Option) options {
	var o options
	for _, set := range user {
		set(&o)
	}
	return o
}
