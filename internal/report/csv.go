package report

import (
	"encoding/csv"
	"io"
	"strconv"
)

// csvHeader is the fixed export schema, one row per input line in
// original order.
var csvHeader = []string{"original_domain", "url", "accessible", "type", "message", "bucket", "key"}

// CSVReporter generates CSV exports
type CSVReporter struct {
	writer io.Writer
}

// NewCSVReporter creates a new CSV reporter
func NewCSVReporter(w io.Writer) *CSVReporter {
	return &CSVReporter{writer: w}
}

// Generate generates a CSV report
func (r *CSVReporter) Generate(data Data) error {
	w := csv.NewWriter(r.writer)

	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range data.Rows {
		record := []string{
			row.OriginalDomain,
			row.URL,
			strconv.FormatBool(row.Accessible),
			row.Type,
			row.Message,
			row.Bucket,
			row.Key,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
