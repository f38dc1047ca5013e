package verify

import (
	"github.com/yuzhangoscar/exportedFileVerifier/internal/catalog"
)

// Engine runs the reference catalog against a set of discovered files.
// The catalog is never mutated, so a single Engine is safe to reuse.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates an engine bound to its reference catalog.
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{catalog: cat}
}

// Run compares every discovered file against the catalog and aggregates a
// summary report. Each catalogued path yields exactly one PASSED, FAILED or
// MISSING result; each discovered path without a catalog entry yields
// exactly one UNEXPECTED result with no cell-level detail. The computation
// is single-pass and deterministic: identical inputs produce identical
// report contents.
func (e *Engine) Run(files []File) *SummaryReport {
	report := &SummaryReport{Expected: e.catalog.Len()}

	index := make(map[string]File, len(files))
	var discovered []string
	for _, f := range files {
		if _, seen := index[f.Path]; !seen {
			discovered = append(discovered, f.Path)
		}
		index[f.Path] = f
	}

	for _, path := range e.catalog.Paths() {
		def, _ := e.catalog.Lookup(path)
		file, ok := index[path]
		if !ok {
			report.Files = append(report.Files, FileResult{Path: path, Status: StatusMissing})
			report.Missing++
			continue
		}

		result := Compare(def, file)
		switch result.Status {
		case StatusPassed:
			report.Passed++
		case StatusFailed:
			report.Failed++
		}
		if n := result.Placeholders(); n > 0 {
			report.PlaceholderValues += n
			report.PlaceholderFiles++
		}
		report.Files = append(report.Files, result)
	}

	for _, path := range discovered {
		if _, ok := e.catalog.Lookup(path); ok {
			continue
		}
		report.Files = append(report.Files, FileResult{Path: path, Status: StatusUnexpected})
		report.Unexpected++
	}

	return report
}
