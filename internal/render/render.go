// Package render prints the verification summary to a terminal: aggregate
// counts, a per-file status table, and detail sections for cell mismatches
// and placeholder values. The engine's report is the only input; nothing
// here feeds back into verification.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/yuzhangoscar/exportedFileVerifier/internal/verify"
)

const rule = 100

// Renderer writes a human-readable summary of one verification run.
type Renderer struct {
	out io.Writer

	bold       *color.Color
	passCol    *color.Color
	failCol    *color.Color
	missingCol *color.Color
	unexpCol   *color.Color
	placehCol  *color.Color

	passBold   *color.Color
	failBold   *color.Color
	placehBold *color.Color
}

// New creates a Renderer writing to out. Color output follows the global
// color.NoColor setting, which the CLI sets from TTY detection and flags.
func New(out io.Writer) *Renderer {
	return &Renderer{
		out:        out,
		bold:       color.New(color.Bold),
		passCol:    color.New(color.FgGreen),
		failCol:    color.New(color.FgRed),
		missingCol: color.New(color.FgYellow),
		unexpCol:   color.New(color.FgCyan),
		placehCol:  color.New(color.FgMagenta),
		passBold:   color.New(color.FgGreen, color.Bold),
		failBold:   color.New(color.FgRed, color.Bold),
		placehBold: color.New(color.FgMagenta, color.Bold),
	}
}

// Summary renders the full report: counts, file table, detail sections and
// the final verdict banner.
func (r *Renderer) Summary(report *verify.SummaryReport) {
	fmt.Fprintln(r.out)
	r.bold.Fprintln(r.out, strings.Repeat("=", rule))
	r.bold.Fprintln(r.out, "  EXPORTED FILE VERIFICATION SUMMARY")
	r.bold.Fprintln(r.out, strings.Repeat("=", rule))
	fmt.Fprintln(r.out)

	fmt.Fprintf(r.out, "  Total expected files : %d\n", report.Expected)
	fmt.Fprintf(r.out, "  %s             : %d\n", r.passCol.Sprint("✓ Passed"), report.Passed)
	fmt.Fprintf(r.out, "  %s             : %d\n", r.failCol.Sprint("✗ Failed"), report.Failed)
	fmt.Fprintf(r.out, "  %s            : %d\n", r.missingCol.Sprint("⚠ Missing"), report.Missing)
	fmt.Fprintf(r.out, "  %s         : %d\n", r.unexpCol.Sprint("? Unexpected"), report.Unexpected)
	fmt.Fprintf(r.out, "  %s       : %d value(s) across %d file(s)\n",
		r.placehCol.Sprint("⊘ Placeholders"), report.PlaceholderValues, report.PlaceholderFiles)
	fmt.Fprintln(r.out)

	r.fileTable(report)
	r.cellIssues(report)
	r.placeholderIssues(report)
	r.verdict(report)
}

// fileTable prints one row per file, missing and failed files first.
func (r *Renderer) fileTable(report *verify.SummaryReport) {
	files := make([]verify.FileResult, len(report.Files))
	copy(files, report.Files)
	sort.SliceStable(files, func(i, j int) bool {
		return sortKey(files[i]) < sortKey(files[j])
	})

	width := 40
	for _, f := range files {
		if len(f.Path) > width {
			width = len(f.Path)
		}
	}

	r.bold.Fprintf(r.out, "  %-*s  %-12s  Details\n", width, "File", "Status")
	fmt.Fprintf(r.out, "  %s  %s  %s\n",
		strings.Repeat("─", width), strings.Repeat("─", 12), strings.Repeat("─", 40))

	for _, f := range files {
		fmt.Fprintf(r.out, "  %-*s  %-12s  %s\n", width, f.Path, r.status(f.Status), r.details(f))
	}
	fmt.Fprintln(r.out)
}

// sortKey orders results for the table: missing, then failed, then the
// rest, each group alphabetical.
func sortKey(f verify.FileResult) string {
	group := "2"
	switch f.Status {
	case verify.StatusMissing:
		group = "0"
	case verify.StatusFailed:
		group = "1"
	}
	return group + f.Path
}

func (r *Renderer) status(s verify.Status) string {
	switch s {
	case verify.StatusPassed:
		return r.passCol.Sprint(string(s))
	case verify.StatusFailed:
		return r.failCol.Sprint(string(s))
	case verify.StatusMissing:
		return r.missingCol.Sprint(string(s))
	case verify.StatusUnexpected:
		return r.unexpCol.Sprint(string(s))
	}
	return string(s)
}

func (r *Renderer) details(f verify.FileResult) string {
	var parts []string
	if f.HeaderDetail != "" {
		parts = append(parts, "headers: "+f.HeaderDetail)
	}
	if f.RowCountDetail != "" {
		parts = append(parts, f.RowCountDetail)
	}
	if n := f.Mismatches(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d cell issue(s)", n))
	}
	if n := f.Placeholders(); n > 0 {
		parts = append(parts, r.placehCol.Sprintf("%d placeholder(s)", n))
	}
	if f.Status == verify.StatusUnexpected {
		parts = append(parts, "file not in reference set")
	}
	return strings.Join(parts, "; ")
}

// cellIssues lists every recorded mismatch, grouped by file.
func (r *Renderer) cellIssues(report *verify.SummaryReport) {
	any := false
	for _, f := range report.Files {
		if f.Mismatches() > 0 {
			any = true
			break
		}
	}
	if !any {
		return
	}

	r.bold.Fprintln(r.out, strings.Repeat("─", rule))
	r.bold.Fprintln(r.out, "  CELL-LEVEL ISSUES")
	r.bold.Fprintln(r.out, strings.Repeat("─", rule))
	for _, f := range report.Files {
		if f.Mismatches() == 0 {
			continue
		}
		fmt.Fprintf(r.out, "\n  %s\n", r.bold.Sprint(f.Path))
		for _, c := range f.Cells {
			if c.Outcome != verify.OutcomeMismatch {
				continue
			}
			fmt.Fprintf(r.out, "    • Row %d, [%s]: expected %q but got %q\n",
				c.Row, columnLabel(c), c.Expected, truncate(c.Actual, 80))
		}
	}
	fmt.Fprintln(r.out)
}

// placeholderIssues lists every pseudo-blank value, grouped by file.
func (r *Renderer) placeholderIssues(report *verify.SummaryReport) {
	if report.PlaceholderValues == 0 {
		return
	}

	r.bold.Fprintln(r.out, strings.Repeat("─", rule))
	r.placehBold.Fprintln(r.out, "  PLACEHOLDER / PSEUDO-BLANK VALUES")
	r.bold.Fprintln(r.out, strings.Repeat("─", rule))
	fmt.Fprintln(r.out, "  Values that are not real data: serialization artifacts, whitespace")
	fmt.Fprintln(r.out, "  masquerading as blank, or programmatic nulls.")
	for _, f := range report.Files {
		if f.Placeholders() == 0 {
			continue
		}
		fmt.Fprintf(r.out, "\n  %s\n", r.bold.Sprint(f.Path))
		for _, c := range f.Cells {
			if c.Outcome != verify.OutcomePlaceholder {
				continue
			}
			fmt.Fprintf(r.out, "    ⊘ Row %d, [%s]: %q (%s)\n",
				c.Row, columnLabel(c), truncate(c.Actual, 60), c.Category.Description())
		}
	}
	fmt.Fprintln(r.out)
}

func (r *Renderer) verdict(report *verify.SummaryReport) {
	fmt.Fprintln(r.out, strings.Repeat("=", rule))
	if report.Healthy(true) {
		fmt.Fprintf(r.out, "  %s\n", r.passBold.Sprint("ALL CHECKS PASSED ✓"))
	} else {
		var parts []string
		if report.Failed > 0 || report.Missing > 0 || report.Unexpected > 0 {
			parts = append(parts, r.failBold.Sprint("STRUCTURAL/CONTENT CHECKS FAILED"))
		}
		if report.PlaceholderValues > 0 {
			parts = append(parts, r.placehBold.Sprintf(
				"%d PLACEHOLDER VALUE(S) DETECTED", report.PlaceholderValues))
		}
		fmt.Fprintf(r.out, "  %s\n", strings.Join(parts, " | "))
	}
	fmt.Fprintln(r.out, strings.Repeat("=", rule))
	fmt.Fprintln(r.out)
}

func columnLabel(c verify.CellResult) string {
	if c.Header != "" {
		return c.Header
	}
	return fmt.Sprintf("col %d", c.Column)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
