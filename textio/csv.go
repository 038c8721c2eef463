// SPDX-License-Identifier: MIT
// Package textio: CSV import/export on top of the encoding/csv
// primitive. Decode applies NO inference — cells stay verbatim text,
// in deliberate contrast with Parse.
package textio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/tabular/frame"
	"github.com/katalvlaran/tabular/infer"
)

// WriteCSV encodes f onto w: an optional header of column labels, then
// every data row, fields rendered to canonical text. The index is not
// written.
// Complexity: O(r·c).
func WriteCSV(w io.Writer, f *frame.Frame, opts ...Option) error {
	o := gatherOptions(opts...)
	cw := csv.NewWriter(w)
	cw.Comma = o.comma

	if o.header {
		if err := cw.Write(formatCells(f.ColumnLabels())); err != nil {
			return fmt.Errorf("textio: write header: %w", err)
		}
	}
	for _, row := range f.Values() {
		if err := cw.Write(formatCells(row)); err != nil {
			return fmt.Errorf("textio: write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("textio: flush: %w", err)
	}
	return nil
}

// ToCSV renders f as a CSV string.
func ToCSV(f *frame.Frame, opts ...Option) (string, error) {
	var b strings.Builder
	if err := WriteCSV(&b, f, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteCSVFile creates path and writes f to it. The handle is closed
// on every exit path; a close failure on an otherwise-successful write
// is still reported.
func WriteCSVFile(path string, f *frame.Frame, opts ...Option) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("textio: create %s: %w", path, err)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("textio: close %s: %w", path, cerr)
		}
	}()
	return WriteCSV(fh, f, opts...)
}

// ReadCSV decodes a CSV stream into a Frame.
// The first record becomes the column labels (unless WithoutHeader)
// and the remaining records become data rows VERBATIM — every cell is
// the decoded string, no inference. Empty input, or a header with no
// data rows, decodes to the empty frame.
// Complexity: O(input size).
func ReadCSV(r io.Reader, opts ...Option) (*frame.Frame, error) {
	o := gatherOptions(opts...)
	cr := csv.NewReader(r)
	cr.Comma = o.comma

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("textio: read csv: %w", err)
	}

	var columns []string
	if o.header && len(records) > 0 {
		columns, records = records[0], records[1:]
	}
	if len(records) == 0 {
		// No data rows means no columns either (frame invariant).
		return frame.New(nil)
	}

	rows := make([][]any, len(records))
	for i, rec := range records {
		row := make([]any, len(rec))
		for j, field := range rec {
			row[j] = field
		}
		rows[i] = row
	}
	if columns == nil {
		return frame.New(rows)
	}
	labels := make([]any, len(columns))
	for j, c := range columns {
		labels[j] = c
	}
	return frame.New(rows, frame.WithColumns(labels...))
}

// FromCSV decodes a CSV string into a Frame.
func FromCSV(s string, opts ...Option) (*frame.Frame, error) {
	return ReadCSV(strings.NewReader(s), opts...)
}

// ReadCSVFile opens path and decodes it. The handle is closed on every
// exit path.
func ReadCSVFile(path string, opts ...Option) (f *frame.Frame, err error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("textio: open %s: %w", path, err)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			f, err = nil, fmt.Errorf("textio: close %s: %w", path, cerr)
		}
	}()
	return ReadCSV(fh, opts...)
}

// formatCells renders labels or cells to their canonical text form.
// time.Time renders as its ISO-8601 calendar date, matching the form
// the Date kind parses.
func formatCells(cells []any) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		if t, ok := c.(time.Time); ok {
			out[i] = t.Format(infer.DateLayout)
			continue
		}
		out[i] = fmt.Sprint(c)
	}
	return out
}
