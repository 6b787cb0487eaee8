package csv

import (
	"errors"
	"reflect"
	"testing"
)

// biostats mirrors the raw biometric reference file: quoted fields, uneven
// whitespace padding, punctuation in the header names, trailing newline.
const biostats = `"Name",     "Sex", "Age", "Height (in)", "Weight (lbs)"
"Alex",       "M",   41,       74,      170
"Bert",       "M",   42,       68,      166
"Carl",       "M",   32,       70,      155
"Dave",       "M",   39,       72,      167
"Elly",       "F",   30,       66,      124
"Fran",       "F",   33,       66,      115
"Gwen",       "F",   26,       64,      121
"Hank",       "M",   30,       71,      158
"Ivan",       "M",   53,       72,      175
"Jake",       "M",   32,       69,      143
"Kate",       "F",   47,       69,      139
"Luke",       "M",   34,       72,      163
"Myra",       "F",   23,       62,       98
"Neil",       "M",   36,       75,      160
"Omar",       "M",   38,       70,      145
"Page",       "F",   31,       67,      135
"Quin",       "M",   29,       71,      176
"Ruth",       "F",   28,       65,      131
`

// biostatsTable is the expected parse result of biostats.
var biostatsTable = Table{
	{"Name", "Sex", "Age", "Heightin", "Weightlbs"},
	{"Alex", "M", "41", "74", "170"},
	{"Bert", "M", "42", "68", "166"},
	{"Carl", "M", "32", "70", "155"},
	{"Dave", "M", "39", "72", "167"},
	{"Elly", "F", "30", "66", "124"},
	{"Fran", "F", "33", "66", "115"},
	{"Gwen", "F", "26", "64", "121"},
	{"Hank", "M", "30", "71", "158"},
	{"Ivan", "M", "53", "72", "175"},
	{"Jake", "M", "32", "69", "143"},
	{"Kate", "F", "47", "69", "139"},
	{"Luke", "M", "34", "72", "163"},
	{"Myra", "F", "23", "62", "98"},
	{"Neil", "M", "36", "75", "160"},
	{"Omar", "M", "38", "70", "145"},
	{"Page", "F", "31", "67", "135"},
	{"Quin", "M", "29", "71", "176"},
	{"Ruth", "F", "28", "65", "131"},
}

// ============================================================================
// Parse Tests
// ============================================================================

func TestParse_Biostats(t *testing.T) {
	got, err := Parse(biostats)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !reflect.DeepEqual(got, biostatsTable) {
		t.Errorf("Parse() = %v, want %v", got, biostatsTable)
	}
}

func TestParse_Shape(t *testing.T) {
	// R newline-separated lines with C comma-separated fields each must
	// produce exactly R rows of C cells.
	got, err := Parse("a,b,c\nd,e,f\ng,h,i")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("row count = %d, want 3", len(got))
	}
	for i, row := range got {
		if len(row) != 3 {
			t.Errorf("row %d has %d cells, want 3", i, len(row))
		}
	}
}

func TestParse_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n"} {
		_, err := Parse(input)
		if !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q) error = %v, want ErrParse", input, err)
		}
	}
}

func TestParse_TrailingNewline(t *testing.T) {
	// A single trailing newline is dropped; a second one survives as a
	// degenerate row with one empty cell.
	got, err := Parse("a,b\nc,d\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("single trailing newline: row count = %d, want 2", len(got))
	}

	got, err = Parse("a,b\nc,d\n\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := Table{{"a", "b"}, {"c", "d"}, {""}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("double trailing newline: Parse() = %v, want %v", got, want)
	}
}

func TestParse_EmptyLine(t *testing.T) {
	// An empty interior line is not an error; it yields one empty cell.
	got, err := Parse("a\n\nb")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := Table{{"a"}, {""}, {"b"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}

func TestParse_RaggedRows(t *testing.T) {
	// Rows keep whatever length their line implies; no padding, no error.
	got, err := Parse("a,b,c\nd\ne,f")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := Table{{"a", "b", "c"}, {"d"}, {"e", "f"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}

// ============================================================================
// Clean Tests
// ============================================================================

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already clean is unchanged", input: "Alex", want: "Alex"},
		{name: "digits unchanged", input: "41", want: "41"},
		{name: "surrounding whitespace stripped", input: "   41 ", want: "41"},
		{name: "interior whitespace stripped", input: "Height in", want: "Heightin"},
		{name: "quotes stripped", input: `"Alex"`, want: "Alex"},
		{name: "punctuation stripped", input: "Carl!", want: "Carl"},
		{name: "header artifacts stripped", input: `"Weight (lbs)"`, want: "Weightlbs"},
		{name: "sign is not alphanumeric", input: "-41", want: "41"},
		{name: "unicode letters survive", input: " café ", want: "café"},
		{name: "entirely non-alphanumeric cleans to empty", input: `?!,"-  `, want: ""},
		{name: "empty stays empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	for _, input := range []string{"Alex", "41", "Heightin", "café", ""} {
		once := Clean(input)
		if twice := Clean(once); twice != once {
			t.Errorf("Clean(Clean(%q)) = %q, want %q", input, twice, once)
		}
	}
}
