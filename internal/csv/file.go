package csv

import (
	"fmt"
	"os"
)

// Load reads the named file from disk into a string for parsing.
//
// This is the one place the package touches the filesystem; Parse and the
// query functions operate purely on in-memory data. I/O failures (missing
// file, permissions) are reported as wrapped os errors, distinct from
// ErrParse — a file that cannot be read is never handed to the parser.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read csv file: %w", err)
	}
	return string(data), nil
}
