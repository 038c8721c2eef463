// SPDX-License-Identifier: MIT
// Package textio: functional configuration for the CSV codec.
// Defaults mirror encoding/csv: comma delimiter, header row present.
package textio

// DefaultComma is the field delimiter used unless WithComma overrides it.
const DefaultComma = ','

// panicCommaInvalid is the stable message for WithComma misuse.
const panicCommaInvalid = "textio: WithComma: delimiter must not be a quote, newline or NUL"

// Option mutates internal codec options. Safe to apply repeatedly;
// last-writer-wins.
type Option func(*options)

// options stores the effective codec configuration.
type options struct {
	comma  rune
	header bool
}

// WithComma sets the field delimiter for both reading and writing.
// Quote, newline and NUL delimiters are nonsensical and panic —
// programmer error, not a data condition.
func WithComma(c rune) Option {
	if c == '"' || c == '\n' || c == '\r' || c == 0 {
		panic(panicCommaInvalid)
	}
	return func(o *options) { o.comma = c }
}

// WithoutHeader disables the header row: writes emit data rows only,
// reads treat every record as data and leave columns to their 0-based
// defaults.
func WithoutHeader() Option {
	return func(o *options) { o.header = false }
}

// gatherOptions applies user setters on top of the documented defaults.
func gatherOptions(user ...Option) options {
	o := options{comma: DefaultComma, header: true}
	for _, set := range user {
		set(&o)
	}
	return o
}
