package report

import (
	"bytes"
	"encoding/csv"
	"testing"
)

func TestCSVReporter_Generate(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCSVReporter(&buf).Generate(sampleData()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(rows))
	}

	header := []string{"original_domain", "url", "accessible", "type", "message", "bucket", "key"}
	for i, col := range header {
		if rows[0][i] != col {
			t.Fatalf("header column %d: expected %q, got %q", i, col, rows[0][i])
		}
	}

	if rows[1][0] != "open-bucket" || rows[1][2] != "true" || rows[1][3] != "bucket" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
	if rows[2][2] != "false" || rows[2][6] != "f.txt" {
		t.Fatalf("unexpected second row: %v", rows[2])
	}
	if rows[3][3] != "invalid" || rows[3][1] != "" {
		t.Fatalf("unexpected invalid row: %v", rows[3])
	}
}

func TestJSONReporter_Generate(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONReporter(&buf).Generate(sampleData()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"tool": "s3reach"`, `"accessible": 1`, `"original_domain": "open-bucket"`} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Fatalf("missing %s in JSON output:\n%s", want, out)
		}
	}
}
