package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuzhangoscar/exportedFileVerifier/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Parse([]byte(`files:
  "a.csv":
    headers: ["id", "name"]
    rows:
      - ["INTEGER", "Alice"]
  "b.csv":
    headers: ["id"]
    rows:
      - ["INTEGER"]
`))
	require.NoError(t, err)
	return cat
}

func TestRunFullPartition(t *testing.T) {
	engine := NewEngine(testCatalog(t))

	files := []File{
		{Path: "a.csv", Headers: []string{"id", "name"}, Rows: [][]string{{"1", "Alice"}}},
		{Path: "z.csv", Headers: []string{"x"}, Rows: [][]string{{"1"}}},
	}
	report := engine.Run(files)

	assert.Equal(t, 2, report.Expected)
	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, 1, report.Missing)
	assert.Equal(t, 1, report.Unexpected)

	// Every catalogued path and every uncatalogued discovered path yields
	// exactly one result; the two sets are disjoint
	byPath := map[string]Status{}
	for _, f := range report.Files {
		_, dup := byPath[f.Path]
		require.False(t, dup, "path %s produced more than one result", f.Path)
		byPath[f.Path] = f.Status
	}
	assert.Equal(t, StatusPassed, byPath["a.csv"])
	assert.Equal(t, StatusMissing, byPath["b.csv"])
	assert.Equal(t, StatusUnexpected, byPath["z.csv"])
	assert.Len(t, report.Files, 3)
}

func TestRunMissingFile(t *testing.T) {
	engine := NewEngine(testCatalog(t))

	report := engine.Run(nil)

	assert.Equal(t, 2, report.Missing)
	assert.Equal(t, 0, report.Passed)
	for _, f := range report.Files {
		assert.Equal(t, StatusMissing, f.Status)
		assert.Empty(t, f.Cells)
	}
}

func TestRunUnexpectedFileHasNoCellDetail(t *testing.T) {
	engine := NewEngine(testCatalog(t))

	files := []File{
		{Path: "z.csv", Headers: []string{"x"}, Rows: [][]string{{"null"}}},
	}
	report := engine.Run(files)

	require.Equal(t, 1, report.Unexpected)
	for _, f := range report.Files {
		if f.Status == StatusUnexpected {
			assert.Empty(t, f.Cells)
			assert.Empty(t, f.HeaderDetail)
		}
	}
}

func TestRunPlaceholderTallies(t *testing.T) {
	engine := NewEngine(testCatalog(t))

	files := []File{
		{Path: "a.csv", Headers: []string{"id", "name"}, Rows: [][]string{{"[object Object]", "Alice"}}},
		{Path: "b.csv", Headers: []string{"id"}, Rows: [][]string{{"1"}}},
	}
	report := engine.Run(files)

	assert.Equal(t, 2, report.Passed, "placeholders alone do not fail a file")
	assert.Equal(t, 1, report.PlaceholderValues)
	assert.Equal(t, 1, report.PlaceholderFiles)
	assert.False(t, report.Healthy(true))
	assert.True(t, report.Healthy(false))
}

func TestRunIdempotent(t *testing.T) {
	engine := NewEngine(testCatalog(t))

	files := []File{
		{Path: "a.csv", Headers: []string{"id", "name"}, Rows: [][]string{{"x", "Bob"}}},
		{Path: "z.csv", Headers: []string{"x"}, Rows: [][]string{{"1"}}},
	}

	first := engine.Run(files)
	second := engine.Run(files)
	assert.Equal(t, first, second, "identical inputs must yield identical reports")
}

func TestRunDuplicatePathsCollapse(t *testing.T) {
	engine := NewEngine(testCatalog(t))

	// Two discovered entries for the same uncatalogued path still produce
	// exactly one UNEXPECTED result
	files := []File{
		{Path: "z.csv"},
		{Path: "z.csv"},
	}
	report := engine.Run(files)
	assert.Equal(t, 1, report.Unexpected)
}

func TestStamp(t *testing.T) {
	report := &SummaryReport{}
	report.Stamp()
	assert.NotEmpty(t, report.RunID)
	assert.False(t, report.StartedAt.IsZero())
}

func TestHealthy(t *testing.T) {
	tests := []struct {
		name              string
		report            SummaryReport
		failOnPlaceholder bool
		want              bool
	}{
		{"all clean", SummaryReport{Passed: 3}, true, true},
		{"failed file", SummaryReport{Failed: 1}, true, false},
		{"missing file", SummaryReport{Missing: 1}, true, false},
		{"unexpected file", SummaryReport{Unexpected: 1}, true, false},
		{"placeholders strict", SummaryReport{Passed: 3, PlaceholderValues: 2}, true, false},
		{"placeholders lenient", SummaryReport{Passed: 3, PlaceholderValues: 2}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.report.Healthy(tt.failOnPlaceholder))
		})
	}
}
