package verify

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yuzhangoscar/exportedFileVerifier/internal/catalog"
	"github.com/yuzhangoscar/exportedFileVerifier/internal/pattern"
	"github.com/yuzhangoscar/exportedFileVerifier/internal/placeholder"
)

// Compare validates one discovered file against its reference definition.
//
// Headers are checked first; any difference short-circuits to FAILED since
// cell comparison against misaligned columns would be meaningless. Rows the
// reference defines but the file lacks count as mismatches for every
// expected cell; extra discovered rows beyond the definition are ignored
// (the reference pins the contract, not the file's superset). A cell that
// classifies as a placeholder is recorded as such even when it would also
// fail its specification, and placeholders alone never fail the file.
func Compare(def catalog.Definition, file File) FileResult {
	result := FileResult{Path: file.Path, Status: StatusPassed}

	if detail := headerDiff(def.Headers, file.Headers); detail != "" {
		result.Status = StatusFailed
		result.HeaderDetail = detail
		return result
	}

	if def.RowCount > 0 && len(file.Rows) != def.RowCount {
		result.Status = StatusFailed
		result.RowCountDetail = fmt.Sprintf("expected %d data rows, got %d", def.RowCount, len(file.Rows))
	}
	if def.MinRows > 0 && len(file.Rows) < def.MinRows {
		result.Status = StatusFailed
		result.RowCountDetail = fmt.Sprintf("expected at least %d data rows, got %d", def.MinRows, len(file.Rows))
	}

	if def.AnyRows {
		// Freeform rows: no cell specifications to enforce, but pseudo-blank
		// values are still worth surfacing.
		scanPlaceholders(def.Headers, file.Rows, &result)
		return result
	}

	for i, specRow := range def.Rows {
		if i >= len(file.Rows) {
			result.Status = StatusFailed
			for j, spec := range specRow {
				result.Cells = append(result.Cells, CellResult{
					Row:      i + 1,
					Column:   j + 1,
					Header:   def.Headers[j],
					Outcome:  OutcomeMismatch,
					Expected: spec.String(),
					Actual:   "",
				})
			}
			continue
		}

		actualRow := file.Rows[i]
		for j, spec := range specRow {
			raw := ""
			if j < len(actualRow) {
				raw = actualRow[j]
			}
			compareCell(i, j, def.Headers[j], spec, raw, &result)
		}
		// Trailing cells beyond the expected column count are ignored, the
		// same way extra rows are.
	}

	return result
}

// compareCell evaluates one (row, column) position. Placeholder detection
// and pattern matching are independent signals; the placeholder verdict
// wins when both fire.
func compareCell(row, col int, header string, spec pattern.Spec, raw string, result *FileResult) {
	value := strings.TrimSpace(raw)

	if cat := placeholder.Classify(raw); cat != placeholder.None {
		result.Cells = append(result.Cells, CellResult{
			Row:      row + 1,
			Column:   col + 1,
			Header:   header,
			Outcome:  OutcomePlaceholder,
			Expected: spec.String(),
			Actual:   value,
			Category: cat,
		})
		return
	}

	if !spec.Matches(value) {
		result.Status = StatusFailed
		result.Cells = append(result.Cells, CellResult{
			Row:      row + 1,
			Column:   col + 1,
			Header:   header,
			Outcome:  OutcomeMismatch,
			Expected: spec.String(),
			Actual:   value,
		})
	}
}

// scanPlaceholders records pseudo-blank values across every discovered cell
// of a freeform-rows file.
func scanPlaceholders(headers []string, rows [][]string, result *FileResult) {
	for i, row := range rows {
		for j, raw := range row {
			cat := placeholder.Classify(raw)
			if cat == placeholder.None {
				continue
			}
			header := ""
			if j < len(headers) {
				header = headers[j]
			}
			result.Cells = append(result.Cells, CellResult{
				Row:      i + 1,
				Column:   j + 1,
				Header:   header,
				Outcome:  OutcomePlaceholder,
				Actual:   strings.TrimSpace(raw),
				Category: cat,
			})
		}
	}
}

// headerDiff compares header rows position-by-position and by count.
// Returns an empty string when they match, otherwise a detail naming the
// missing and extra columns, or a note that only the order differs.
func headerDiff(expected, actual []string) string {
	if slices.Equal(expected, actual) {
		return ""
	}

	expectedSet := make(map[string]bool, len(expected))
	for _, h := range expected {
		expectedSet[h] = true
	}
	actualSet := make(map[string]bool, len(actual))
	for _, h := range actual {
		actualSet[h] = true
	}

	var missing, extra []string
	for _, h := range expected {
		if !actualSet[h] {
			missing = append(missing, h)
		}
	}
	for _, h := range actual {
		if !expectedSet[h] {
			extra = append(extra, h)
		}
	}

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing columns: %s", strings.Join(missing, ", ")))
	}
	if len(extra) > 0 {
		parts = append(parts, fmt.Sprintf("extra columns: %s", strings.Join(extra, ", ")))
	}
	if len(parts) == 0 {
		parts = append(parts, "column order differs")
	}
	return strings.Join(parts, "; ")
}
