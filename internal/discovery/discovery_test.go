package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
}

// TestScanCSV verifies CSV parsing: headers split from data rows, BOM
// stripped, CRLF handled, header cells trimmed
func TestScanCSV(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Customer/export.csv", "\xef\xbb\xbfid, name\r\n1,Alice\r\n2,Bob\r\n")

	files, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("Scan() found %d files, want 1", len(files))
	}

	f := files[0]
	if f.Path != "Customer/export.csv" {
		t.Errorf("Path = %q, want slash-separated relative path", f.Path)
	}
	if len(f.Headers) != 2 || f.Headers[0] != "id" || f.Headers[1] != "name" {
		t.Errorf("Headers = %v, want [id name]", f.Headers)
	}
	if len(f.Rows) != 2 || f.Rows[0][1] != "Alice" {
		t.Errorf("Rows = %v", f.Rows)
	}
}

// TestScanRaggedCSV verifies rows with differing cell counts survive
// parsing; the comparator handles the shape mismatch
func TestScanRaggedCSV(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "export.csv", "id,name,date\n1\n2,Bob\n")

	files, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(files[0].Rows) != 2 {
		t.Fatalf("Rows = %d, want 2", len(files[0].Rows))
	}
	if len(files[0].Rows[0]) != 1 || len(files[0].Rows[1]) != 2 {
		t.Errorf("ragged rows should be preserved, got %v", files[0].Rows)
	}
}

// TestScanIgnoresOtherFiles verifies only tabular extensions are collected
func TestScanIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", "not tabular")
	writeFile(t, dir, "export.csv", "id\n1\n")

	files, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(files) != 1 || files[0].Path != "export.csv" {
		t.Errorf("Scan() = %v, want only export.csv", files)
	}
}

// TestScanEmptyCSV verifies a zero-byte file yields empty headers and rows
// rather than an error; the comparator reports it as a header mismatch
func TestScanEmptyCSV(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "empty.csv", "")

	files, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("Scan() found %d files, want 1", len(files))
	}
	if len(files[0].Headers) != 0 || len(files[0].Rows) != 0 {
		t.Errorf("empty file should yield no headers or rows, got %+v", files[0])
	}
}

// TestScanSortedByPath verifies deterministic ordering
func TestScanSortedByPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.csv", "id\n1\n")
	writeFile(t, dir, "a.csv", "id\n1\n")

	files, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if files[0].Path != "a.csv" || files[1].Path != "b.csv" {
		t.Errorf("files not sorted by path: %v, %v", files[0].Path, files[1].Path)
	}
}

// TestScanXLSX verifies spreadsheet ingestion via the first sheet
func TestScanXLSX(t *testing.T) {
	dir := t.TempDir()

	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	if err := wb.SetSheetRow(sheet, "A1", &[]interface{}{"id", "name"}); err != nil {
		t.Fatalf("failed to write header row: %v", err)
	}
	if err := wb.SetSheetRow(sheet, "A2", &[]interface{}{"1", "Alice"}); err != nil {
		t.Fatalf("failed to write data row: %v", err)
	}
	if err := wb.SaveAs(filepath.Join(dir, "export.xlsx")); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}

	files, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("Scan() found %d files, want 1", len(files))
	}
	f := files[0]
	if len(f.Headers) != 2 || f.Headers[0] != "id" {
		t.Errorf("Headers = %v", f.Headers)
	}
	if len(f.Rows) != 1 || f.Rows[0][1] != "Alice" {
		t.Errorf("Rows = %v", f.Rows)
	}
}

// TestScanErrors verifies the directory preconditions
func TestScanErrors(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Scan() should fail for a missing directory")
	}

	dir := t.TempDir()
	writeFile(t, dir, "export.csv", "id\n1\n")
	if _, err := Scan(filepath.Join(dir, "export.csv")); err == nil {
		t.Error("Scan() should fail when given a file instead of a directory")
	}
}
