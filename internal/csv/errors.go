package csv

// errors.go defines the error taxonomy for parsing and querying.
//
// Three kinds exist:
//   - ErrParse: the input could not be split into rows at all
//   - IndexError: a requested line or column does not exist in the table
//   - NumericError: a cell expected to hold an int32 does not
//
// All of them are plain values suitable for errors.Is / errors.As; nothing in
// this package panics on malformed input.

import (
	"errors"
	"fmt"
)

// ErrParse reports that the raw input could not be parsed as CSV. It carries
// no positional detail: either the document splits into rows or it does not.
var ErrParse = errors.New("the CSV could not be parsed")

// IndexKind distinguishes which axis an out-of-range index refers to.
type IndexKind int

const (
	LineIndex IndexKind = iota
	ColumnIndex
)

func (k IndexKind) String() string {
	if k == ColumnIndex {
		return "column"
	}
	return "line"
}

// IndexError reports a line or column index that does not exist in the table.
type IndexError struct {
	Kind  IndexKind
	Index int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range", e.Kind, e.Index)
}

// NumericError reports a cell that failed to parse as a base-10 signed 32-bit
// integer during a column sum. Value holds the offending cell content.
type NumericError struct {
	Value string
	Err   error
}

func (e *NumericError) Error() string {
	return fmt.Sprintf("cell %q is not a valid integer", e.Value)
}

func (e *NumericError) Unwrap() error {
	return e.Err
}
