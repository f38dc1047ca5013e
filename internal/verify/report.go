// Package verify implements the comparison engine: it matches discovered
// files, rows and cells against the reference catalog and aggregates the
// findings into a structured report. It performs no file I/O and never
// renders anything; discovery and rendering are collaborators.
package verify

import (
	"time"

	"github.com/google/uuid"

	"github.com/yuzhangoscar/exportedFileVerifier/internal/placeholder"
)

// Status is the per-file verification outcome.
type Status string

const (
	// StatusPassed means headers, row counts and every checked cell matched.
	StatusPassed Status = "PASSED"
	// StatusFailed means a header, row-count or cell mismatch was found.
	StatusFailed Status = "FAILED"
	// StatusMissing means a catalogued file was not discovered.
	StatusMissing Status = "MISSING"
	// StatusUnexpected means a discovered file has no catalog entry.
	StatusUnexpected Status = "UNEXPECTED"
)

// CellOutcome distinguishes the two kinds of recorded cell findings.
// Matching cells are not recorded at all, to bound memory.
type CellOutcome string

const (
	// OutcomeMismatch means the cell did not satisfy its specification.
	OutcomeMismatch CellOutcome = "MISMATCH"
	// OutcomePlaceholder means the cell holds a pseudo-blank value.
	// Placeholder classification takes precedence over a mismatch verdict
	// because the placeholder explains why the value differs.
	OutcomePlaceholder CellOutcome = "PLACEHOLDER"
)

// File is one discovered export: its relative path plus parsed rows.
// It is produced by the discovery collaborator and owned by the engine for
// the duration of one run.
type File struct {
	Path    string
	Headers []string
	Rows    [][]string
}

// CellResult records one anomalous (row, column) position.
// Row and Column are 1-based data-row coordinates.
type CellResult struct {
	Row      int                  `yaml:"row"`
	Column   int                  `yaml:"column"`
	Header   string               `yaml:"header,omitempty"`
	Outcome  CellOutcome          `yaml:"outcome"`
	Expected string               `yaml:"expected,omitempty"`
	Actual   string               `yaml:"actual"`
	Category placeholder.Category `yaml:"-"`
}

// FileResult is the verification outcome for a single file.
// Immutable once returned by the comparator or engine.
type FileResult struct {
	Path           string       `yaml:"path"`
	Status         Status       `yaml:"status"`
	HeaderDetail   string       `yaml:"header_detail,omitempty"`
	RowCountDetail string       `yaml:"row_count_detail,omitempty"`
	Cells          []CellResult `yaml:"cells,omitempty"`
}

// Mismatches counts the recorded cell mismatches.
func (r *FileResult) Mismatches() int {
	n := 0
	for _, c := range r.Cells {
		if c.Outcome == OutcomeMismatch {
			n++
		}
	}
	return n
}

// Placeholders counts the recorded placeholder findings.
func (r *FileResult) Placeholders() int {
	n := 0
	for _, c := range r.Cells {
		if c.Outcome == OutcomePlaceholder {
			n++
		}
	}
	return n
}

// SummaryReport aggregates one verification run. Every catalogued path
// contributes exactly one FileResult (PASSED, FAILED or MISSING) and every
// uncatalogued discovered path exactly one UNEXPECTED FileResult.
type SummaryReport struct {
	RunID             string       `yaml:"run_id,omitempty"`
	StartedAt         time.Time    `yaml:"started_at,omitempty"`
	Expected          int          `yaml:"expected"`
	Passed            int          `yaml:"passed"`
	Failed            int          `yaml:"failed"`
	Missing           int          `yaml:"missing"`
	Unexpected        int          `yaml:"unexpected"`
	PlaceholderValues int          `yaml:"placeholder_values"`
	PlaceholderFiles  int          `yaml:"placeholder_files"`
	Files             []FileResult `yaml:"files"`
}

// Stamp assigns a run identifier and start time so exported reports are
// attributable. Kept out of Run so the comparison itself stays a pure
// function of its inputs.
func (s *SummaryReport) Stamp() {
	s.RunID = uuid.NewString()
	s.StartedAt = time.Now().UTC()
}

// Healthy reports whether the run found nothing wrong. Placeholder
// occurrences never fail individual files, but they count against overall
// health unless failOnPlaceholder is disabled.
func (s *SummaryReport) Healthy(failOnPlaceholder bool) bool {
	if s.Failed > 0 || s.Missing > 0 || s.Unexpected > 0 {
		return false
	}
	if failOnPlaceholder && s.PlaceholderValues > 0 {
		return false
	}
	return true
}
