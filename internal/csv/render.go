package csv

import (
	"fmt"
	"io"
)

// CellWidth is the fixed column width used by Render. Cells longer than this
// are not truncated; they push the rest of their row to the right.
const CellWidth = 15

// Render writes the table to w with each cell left-aligned in a fixed-width
// column, one output line per row. A zero-row table prints a placeholder
// message instead. Render performs no validation; it is presentation glue,
// not part of the query core.
func Render(w io.Writer, t Table) {
	if len(t) == 0 {
		fmt.Fprintln(w, "The CSV is empty!")
		return
	}

	for _, row := range t {
		for _, cell := range row {
			fmt.Fprintf(w, "%-*s ", CellWidth, cell)
		}
		fmt.Fprintln(w)
	}
}
