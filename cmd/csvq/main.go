// Command csvq is the console reporter: it loads a fixed CSV file, prints
// the aligned table, then demonstrates the three query shapes against it.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"csvq/internal/config"
	"csvq/internal/core"
	"csvq/internal/csv"
	"csvq/internal/logging"

	"github.com/joho/godotenv"
)

// inputFile is the document this reporter reads. It is a constant by
// design; the HTTP server in cmd/server is the surface for arbitrary files.
const inputFile = "biostats1.csv"

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err == nil {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	content, err := csv.Load(inputFile)
	if err != nil {
		slog.Error("failed to read input file", "file", inputFile, "error", err)
		os.Exit(1)
	}

	table, err := csv.Parse(content)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", core.FormatUserError(err))
		os.Exit(1)
	}

	fmt.Println("Pretty CSV display:")
	csv.Render(os.Stdout, table)

	// Third line of the document
	lineNumber := 2
	if line, err := csv.GetLine(table, lineNumber); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", core.FormatUserError(err))
	} else {
		fmt.Printf("Line %d: %s\n", lineNumber, line)
	}

	// First column of the document
	colNumber := 0
	if column, err := csv.GetCol(table, colNumber); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", core.FormatUserError(err))
	} else {
		fmt.Printf("Column %d: %v\n", colNumber, column)
	}

	// Sum of the fifth column (weights), header excluded
	colToSum := 4
	if sum, err := csv.SumCol(table, colToSum); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", core.FormatUserError(err))
	} else {
		fmt.Printf("Sum of column %d: %d\n", colToSum, sum)
	}
}
