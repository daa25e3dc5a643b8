package input

import (
	"os"
	"path/filepath"
	"testing"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "domains.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeInput(t, `# production buckets
my-bucket.s3.us-west-2.amazonaws.com/data.csv

s3://other-bucket
just-a-bucket
`)

	records, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	// Line numbers count file lines, including skipped ones.
	wantLines := []int{2, 4, 5}
	for i, rec := range records {
		if rec.LineNumber != wantLines[i] {
			t.Fatalf("record %d: expected line %d, got %d", i, wantLines[i], rec.LineNumber)
		}
		if rec.Err != nil {
			t.Fatalf("record %d: unexpected normalize error: %v", i, rec.Err)
		}
	}
	if records[0].Address.Bucket != "my-bucket" || records[0].Address.Key != "data.csv" {
		t.Fatalf("unexpected address: %+v", records[0].Address)
	}
}

func TestLoadFile_MalformedLineKept(t *testing.T) {
	path := writeInput(t, "https://\ngood-bucket\n")

	records, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Err == nil {
		t.Fatal("expected normalize error on first record")
	}
	if records[1].Err != nil {
		t.Fatalf("unexpected error on second record: %v", records[1].Err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
