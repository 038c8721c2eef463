// Package textio imports and exports frames as delimited text.
//
// Two formats, two inference policies:
//
//   - Parse — the whitespace format. The first non-empty line is
//     whitespace-tokenized into column labels; every further line is a
//     row whose FIRST token is that row's index label. Every token —
//     header, index and cell alike — passes through infer.Infer.
//
//   - CSV — comma-delimited with standard field quoting, via the
//     encoding/csv primitive. The first record becomes the column
//     labels and the remaining records become data rows VERBATIM: no
//     inference is applied on decode, by contract. Export writes an
//     optional header then all data rows; the index is not written.
//
// File helpers (ReadCSVFile, WriteCSVFile) scope their handle with a
// deferred close that reports close errors on otherwise-successful
// paths. I/O failures propagate wrapped and unrecovered.
//
// ⚙️ Usage:
//
//	f, err := textio.Parse("A B\nx 1 2\ny 3 4\n")
//	csv, err := textio.ToCSV(f)
//	back, err := textio.FromCSV(csv)
package textio
