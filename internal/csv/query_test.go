package csv

import (
	"errors"
	"reflect"
	"testing"
)

func mustParse(t *testing.T, input string) Table {
	t.Helper()
	table, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return table
}

// ============================================================================
// GetLine Tests
// ============================================================================

func TestGetLine(t *testing.T) {
	table := mustParse(t, biostats)

	got, err := GetLine(table, 2)
	if err != nil {
		t.Fatalf("GetLine(2) error = %v", err)
	}
	if want := "Bert, M, 42, 68, 166"; got != want {
		t.Errorf("GetLine(2) = %q, want %q", got, want)
	}

	// Row 0 is returned like any other row; header handling is the
	// caller's convention.
	got, err = GetLine(table, 0)
	if err != nil {
		t.Fatalf("GetLine(0) error = %v", err)
	}
	if want := "Name, Sex, Age, Heightin, Weightlbs"; got != want {
		t.Errorf("GetLine(0) = %q, want %q", got, want)
	}
}

func TestGetLine_OutOfRange(t *testing.T) {
	table := mustParse(t, biostats)

	for _, line := range []int{len(table), 42, -1} {
		_, err := GetLine(table, line)
		var idxErr *IndexError
		if !errors.As(err, &idxErr) {
			t.Fatalf("GetLine(%d) error = %v, want IndexError", line, err)
		}
		if idxErr.Kind != LineIndex {
			t.Errorf("GetLine(%d) kind = %v, want LineIndex", line, idxErr.Kind)
		}
		if idxErr.Index != line {
			t.Errorf("GetLine(%d) index = %d, want %d", line, idxErr.Index, line)
		}
	}
}

// ============================================================================
// GetCol Tests
// ============================================================================

func TestGetCol(t *testing.T) {
	table := mustParse(t, biostats)

	got, err := GetCol(table, 0)
	if err != nil {
		t.Fatalf("GetCol(0) error = %v", err)
	}
	want := []string{
		"Name", "Alex", "Bert", "Carl", "Dave", "Elly", "Fran", "Gwen",
		"Hank", "Ivan", "Jake", "Kate", "Luke", "Myra", "Neil", "Omar",
		"Page", "Quin", "Ruth",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetCol(0) = %v, want %v", got, want)
	}

	// Positional consistency against direct indexing.
	for col := 0; col < 5; col++ {
		column, err := GetCol(table, col)
		if err != nil {
			t.Fatalf("GetCol(%d) error = %v", col, err)
		}
		if len(column) != len(table) {
			t.Fatalf("GetCol(%d) length = %d, want %d", col, len(column), len(table))
		}
		for i := range table {
			if column[i] != table[i][col] {
				t.Errorf("GetCol(%d)[%d] = %q, want %q", col, i, column[i], table[i][col])
			}
		}
	}
}

func TestGetCol_OutOfRange(t *testing.T) {
	table := mustParse(t, biostats)

	_, err := GetCol(table, 6)
	var idxErr *IndexError
	if !errors.As(err, &idxErr) {
		t.Fatalf("GetCol(6) error = %v, want IndexError", err)
	}
	if idxErr.Kind != ColumnIndex {
		t.Errorf("GetCol(6) kind = %v, want ColumnIndex", idxErr.Kind)
	}
}

func TestGetCol_RaggedRowFailsFast(t *testing.T) {
	table := Table{
		{"a", "b"},
		{"c"},
		{"d", "e"},
	}

	// Column 1 exists in rows 0 and 2 but not 1: the whole extraction
	// fails, never a partial or padded result.
	column, err := GetCol(table, 1)
	var idxErr *IndexError
	if !errors.As(err, &idxErr) {
		t.Fatalf("GetCol(1) error = %v, want IndexError", err)
	}
	if idxErr.Kind != ColumnIndex {
		t.Errorf("GetCol(1) kind = %v, want ColumnIndex", idxErr.Kind)
	}
	if column != nil {
		t.Errorf("GetCol(1) = %v, want nil on failure", column)
	}
}

// ============================================================================
// SumCol Tests
// ============================================================================

func TestSumCol(t *testing.T) {
	table := mustParse(t, biostats)

	tests := []struct {
		name string
		col  int
		want int32
	}{
		{name: "weights", col: 4, want: 2641},
		{name: "heights", col: 3, want: 1243},
		{name: "ages", col: 2, want: 624},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SumCol(table, tt.col)
			if err != nil {
				t.Fatalf("SumCol(%d) error = %v", tt.col, err)
			}
			if got != tt.want {
				t.Errorf("SumCol(%d) = %d, want %d", tt.col, got, tt.want)
			}
		})
	}
}

func TestSumCol_NonNumeric(t *testing.T) {
	table := mustParse(t, biostats)

	_, err := SumCol(table, 0)
	var numErr *NumericError
	if !errors.As(err, &numErr) {
		t.Fatalf("SumCol(0) error = %v, want NumericError", err)
	}
	// The header "Name" is skipped; "Alex" is the first offending value.
	if numErr.Value != "Alex" {
		t.Errorf("NumericError.Value = %q, want %q", numErr.Value, "Alex")
	}
}

func TestSumCol_OutOfRange(t *testing.T) {
	table := mustParse(t, biostats)

	_, err := SumCol(table, 6)
	var idxErr *IndexError
	if !errors.As(err, &idxErr) {
		t.Fatalf("SumCol(6) error = %v, want IndexError", err)
	}
	if idxErr.Kind != ColumnIndex {
		t.Errorf("SumCol(6) kind = %v, want ColumnIndex", idxErr.Kind)
	}
}

func TestSumCol_NoDataRows(t *testing.T) {
	// Header-only and empty tables both produce the empty sum.
	headerOnly := mustParse(t, "Name,Age")
	got, err := SumCol(headerOnly, 1)
	if err != nil {
		t.Fatalf("SumCol() error = %v", err)
	}
	if got != 0 {
		t.Errorf("header-only sum = %d, want 0", got)
	}

	got, err = SumCol(Table{}, 0)
	if err != nil {
		t.Fatalf("SumCol() error = %v", err)
	}
	if got != 0 {
		t.Errorf("empty table sum = %d, want 0", got)
	}
}

func TestSumCol_SignedValues(t *testing.T) {
	// Parsing strips the minus sign, but tables built directly may carry
	// signed values; the accumulator must handle them.
	table := Table{{"delta"}, {"-5"}, {"12"}, {"-7"}}
	got, err := SumCol(table, 0)
	if err != nil {
		t.Fatalf("SumCol() error = %v", err)
	}
	if got != 0 {
		t.Errorf("SumCol() = %d, want 0", got)
	}
}

func TestSumCol_Int32Range(t *testing.T) {
	table := Table{{"n"}, {"2147483648"}}
	_, err := SumCol(table, 0)
	var numErr *NumericError
	if !errors.As(err, &numErr) {
		t.Fatalf("SumCol() error = %v, want NumericError", err)
	}
	if numErr.Value != "2147483648" {
		t.Errorf("NumericError.Value = %q, want %q", numErr.Value, "2147483648")
	}
}
