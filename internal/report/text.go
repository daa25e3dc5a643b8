package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// TextReporter generates human-readable text reports
type TextReporter struct {
	writer io.Writer
}

// NewTextReporter creates a new text reporter
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{writer: w}
}

// Generate generates a text report
func (r *TextReporter) Generate(data Data) error {
	rule := strings.Repeat("=", 100)

	fmt.Fprintf(r.writer, "%s\n", rule)
	fmt.Fprintf(r.writer, "S3 Access Check Results (%d domains)\n", data.Summary.Total)
	fmt.Fprintf(r.writer, "%s\n", rule)

	for _, row := range data.Rows {
		status := color.RedString("✗ NOT ACCESSIBLE")
		if row.Accessible {
			status = color.GreenString("✓ ACCESSIBLE")
		}

		fmt.Fprintf(r.writer, "\nOriginal: %s\n", row.OriginalDomain)
		if row.URL != "" {
			fmt.Fprintf(r.writer, "S3 URL: %s\n", row.URL)
		}
		fmt.Fprintf(r.writer, "Status: %s\n", status)
		fmt.Fprintf(r.writer, "Type: %s\n", row.Type)
		fmt.Fprintf(r.writer, "Message: %s\n", row.Message)
		if row.Bucket != "" {
			fmt.Fprintf(r.writer, "Bucket: %s\n", row.Bucket)
		}
		if row.Key != "" {
			fmt.Fprintf(r.writer, "Key: %s\n", row.Key)
		}
	}

	fmt.Fprintf(r.writer, "\n%s\n", rule)
	fmt.Fprintf(r.writer, "Summary: %d/%d domains accessible\n", data.Summary.Accessible, data.Summary.Total)
	fmt.Fprintf(r.writer, "%s\n", rule)

	r.printAccessible(data.Rows)

	return nil
}

// printAccessible recaps the reachable domains at the end of the report.
func (r *TextReporter) printAccessible(rows []Row) {
	var accessible []Row
	for _, row := range rows {
		if row.Accessible {
			accessible = append(accessible, row)
		}
	}
	if len(accessible) == 0 {
		return
	}

	fmt.Fprintf(r.writer, "\n%s (%d):\n", color.GreenString("Accessible domains"), len(accessible))
	for _, row := range accessible {
		fmt.Fprintf(r.writer, "  - %s (%s)\n", row.OriginalDomain, row.URL)
	}
}
