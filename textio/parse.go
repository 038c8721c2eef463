// SPDX-License-Identifier: MIT
// Package textio: the whitespace "parse" format.
package textio

import (
	"strings"

	"github.com/katalvlaran/tabular/frame"
	"github.com/katalvlaran/tabular/infer"
)

// Parse decodes the whitespace format into a Frame.
// Stage 1 (Split): the text is cut into non-empty lines.
// Stage 2 (Tokenize): line 1 becomes the column labels; each further
// line becomes a row whose first token is extracted as its index label.
// Stage 3 (Infer): every token — header, index and cell — goes through
// infer.Infer.
// Construction errors surface unchanged: ragged rows are
// matrix.ErrRagged, a header/row width mismatch is
// frame.ErrColumnsLength.
// Complexity: O(len(text)).
func Parse(text string) (*frame.Frame, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return frame.New(nil)
	}

	columns := inferTokens(strings.Fields(lines[0]))

	rows := make([][]any, 0, len(lines)-1)
	index := make([]any, 0, len(lines)-1)
	for _, line := range lines[1:] {
		tokens := strings.Fields(line)
		index = append(index, infer.Infer(tokens[0]))
		rows = append(rows, inferTokens(tokens[1:]))
	}

	return frame.New(rows,
		frame.WithColumns(columns...),
		frame.WithIndex(index...))
}

// inferTokens runs Infer over a token list.
func inferTokens(tokens []string) []any {
	out := make([]any, len(tokens))
	for i, tok := range tokens {
		out[i] = infer.Infer(tok)
	}
	return out
}
