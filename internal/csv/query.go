package csv

import (
	"strconv"
	"strings"
)

// GetLine returns the row at the given 0-based index with its cells rejoined
// by ", ". Row 0 is whatever the first source line was — callers that treat
// it as a header must account for that themselves. A line index outside the
// table fails with an IndexError of kind LineIndex.
func GetLine(t Table, line int) (string, error) {
	if line < 0 || line >= len(t) {
		return "", &IndexError{Kind: LineIndex, Index: line}
	}
	return strings.Join(t[line], ", "), nil
}

// GetCol extracts the cell at the given 0-based column index from every row,
// in row order. The first row lacking that index aborts the whole extraction
// with an IndexError of kind ColumnIndex; no partial column is returned.
func GetCol(t Table, col int) ([]string, error) {
	if col < 0 {
		return nil, &IndexError{Kind: ColumnIndex, Index: col}
	}
	column := make([]string, 0, len(t))
	for _, row := range t {
		if col >= len(row) {
			return nil, &IndexError{Kind: ColumnIndex, Index: col}
		}
		column = append(column, row[col])
	}
	return column, nil
}

// SumCol sums the column at the given index as signed 32-bit integers.
//
// The first entry of the column is always skipped: by convention row 0 is the
// header and never participates in the sum. Each remaining cell must parse as
// a base-10 int32; the first one that does not aborts the operation with a
// NumericError naming the cell, and no partial sum is returned. A table with
// no data rows sums to 0. Addition wraps with two's-complement int32
// semantics; overflow is not detected.
func SumCol(t Table, col int) (int32, error) {
	column, err := GetCol(t, col)
	if err != nil {
		return 0, err
	}

	var sum int32
	for i, value := range column {
		if i == 0 {
			continue
		}
		n, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return 0, &NumericError{Value: value, Err: err}
		}
		sum += int32(n)
	}
	return sum, nil
}
