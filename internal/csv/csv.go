// Package csv parses an in-memory, comma-delimited text blob into an ordered
// table of cleaned cells and answers read-only queries over it.
//
// The dialect is deliberately tiny: newline separates rows, comma separates
// fields, and there is no quoting, escaping, or delimiter configuration. Every
// field is cleaned down to its letters and digits, so "  Height (in) " and
// "Heightin" parse to the same cell. The whole document is materialized; this
// package is not meant for streaming arbitrarily large inputs.
//
// A Table is produced fresh on every Parse call and is never mutated
// afterwards, so callers can share one freely across queries.
package csv

import (
	"strings"
	"unicode"
)

// Table is the parsed document: rows in source line order, each row holding
// its line's cleaned fields in source order. Rows are not required to have
// equal length; a short row is only an error when a column query reaches it.
type Table [][]string

// Parse converts raw CSV text into a Table.
//
// A single trailing newline is dropped before splitting, matching the common
// "text file ends with \n" convention; any further trailing newlines yield
// degenerate rows with one empty cell. An empty line in the middle of the
// input likewise yields a one-empty-cell row rather than an error. Only an
// input with no content at all fails, and it fails with the coarse ErrParse —
// the parser does not report line or column positions.
func Parse(input string) (Table, error) {
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return nil, ErrParse
	}

	lines := strings.Split(input, "\n")
	table := make(Table, 0, len(lines))
	for _, line := range lines {
		fields := strings.Split(line, ",")
		row := make([]string, 0, len(fields))
		for _, field := range fields {
			row = append(row, Clean(field))
		}
		table = append(table, row)
	}
	return table, nil
}

// Clean strips every rune that is not a Unicode letter or digit, preserving
// the order of the survivors. Whitespace, quotes, and punctuation all vanish:
// `"Height (in)"` becomes "Heightin", "  41 " becomes "41". Cleaning an
// already-clean field returns it unchanged.
func Clean(field string) string {
	var b strings.Builder
	b.Grow(len(field))
	for _, r := range field {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
