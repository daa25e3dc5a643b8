// Package input loads the list of S3 domains to check from a text file.
package input

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/s3reach/internal/address"
)

// Record is one non-blank, non-comment line of the input file.
// Err is set when the line could not be normalized; such records still
// flow through to the report as malformed rows.
type Record struct {
	LineNumber int
	Raw        string
	Address    address.Address
	Err        error
}

// LoadFile reads domains from path, one per line. Blank lines and lines
// starting with # are skipped. Line numbers are 1-based positions in the
// file, not positions among the surviving records.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rec := Record{LineNumber: lineNum, Raw: line}
		rec.Address, rec.Err = address.Normalize(line)
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}

	return records, nil
}
