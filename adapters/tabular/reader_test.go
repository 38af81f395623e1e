package tabular

import (
	"os"
	"path/filepath"
	"testing"

	"healthcharts/internal/errors"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp CSV: %v", err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeTempCSV(t, " Country ,Gender,Year\nFrance,Both sexes,2010\nJapan,,2011\n")

	tbl, err := NewDataReader(path).Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if len(tbl.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(tbl.Columns))
	}
	if tbl.Columns[0] != "Country" {
		t.Errorf("header should be whitespace-trimmed, got %q", tbl.Columns[0])
	}
	if tbl.NumRows() != 2 {
		t.Fatalf("expected 2 data rows, got %d", tbl.NumRows())
	}
	if got := tbl.Cell(tbl.Rows[0], "Country").AsString(); got != "France" {
		t.Errorf("cell = %q, want France", got)
	}
	if got := tbl.Cell(tbl.Rows[1], "Gender"); !got.IsMissing {
		t.Error("empty cell should read as missing")
	}
}

func TestLoadHeaderOnlyCSV(t *testing.T) {
	path := writeTempCSV(t, "country,gender,year\n")

	tbl, err := NewDataReader(path).Load()
	if err != nil {
		t.Fatalf("a header-only file should load, got: %v", err)
	}
	if tbl.NumRows() != 0 {
		t.Errorf("expected 0 data rows, got %d", tbl.NumRows())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewDataReader(filepath.Join(t.TempDir(), "absent.csv")).Load()
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if errors.GetCode(err) != errors.CodeLoadError {
		t.Errorf("expected LOAD_ERROR, got %s", errors.GetCode(err))
	}
}

func TestLoadMalformedCSV(t *testing.T) {
	path := writeTempCSV(t, "a,b\n\"unterminated\n")

	_, err := NewDataReader(path).Load()
	if errors.GetCode(err) != errors.CodeLoadError {
		t.Errorf("expected LOAD_ERROR for malformed input, got %v", err)
	}
}

func TestReaderDetectsFileType(t *testing.T) {
	if r := NewDataReader("data.xlsx"); r.fileType != "xlsx" {
		t.Errorf("xlsx extension should select the Excel reader, got %s", r.fileType)
	}
	if r := NewDataReader("data.csv"); r.fileType != "csv" {
		t.Errorf("csv extension should select the CSV reader, got %s", r.fileType)
	}
}
