// Package discovery walks an export directory and parses the tabular files
// it finds into rows for the verification engine. It performs no
// verification itself; it only supplies the engine with discovered files.
package discovery

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yuzhangoscar/exportedFileVerifier/internal/verify"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Scan walks dir recursively and returns every CSV and XLSX file beneath
// it, parsed into a header row plus data rows and keyed by slash-separated
// relative path. Results are sorted by path for deterministic output.
func Scan(dir string) ([]verify.File, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	var files []verify.File
	err = filepath.Walk(dir, func(path string, fi os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if fi.IsDir() {
			return nil
		}

		var (
			headers []string
			rows    [][]string
			perr    error
		)
		switch strings.ToLower(filepath.Ext(path)) {
		case ".csv":
			headers, rows, perr = readCSV(path)
		case ".xlsx":
			headers, rows, perr = readXLSX(path)
		default:
			return nil
		}
		if perr != nil {
			return fmt.Errorf("failed to read %s: %w", path, perr)
		}

		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			return relErr
		}
		files = append(files, verify.File{
			Path:    filepath.ToSlash(rel),
			Headers: headers,
			Rows:    rows,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// readCSV parses a CSV export. The UTF-8 BOM that spreadsheet tools prepend
// is stripped, header cells are trimmed, and ragged rows are tolerated (the
// comparator treats short rows as missing values).
func readCSV(path string) ([]string, [][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}
	return headers, records[1:], nil
}

// readXLSX parses the first sheet of a spreadsheet export.
func readXLSX(path string) ([]string, [][]string, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, nil
	}
	records, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}
	return headers, records[1:], nil
}
