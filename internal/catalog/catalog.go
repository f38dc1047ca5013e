// Package catalog holds the reference definitions the verifier checks
// exported files against. The definitions are hand-authored YAML compiled
// into the binary; the catalog is built once at startup and read-only
// afterward, so it is safe to share across concurrent comparisons.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/yuzhangoscar/exportedFileVerifier/internal/pattern"
)

//go:embed reference.yaml
var referenceData []byte

// Definition pins the expected shape and content of one exported file.
type Definition struct {
	// Headers is the exact ordered header row the export must carry.
	Headers []string
	// Rows holds per-row cell specifications. Empty when AnyRows is set.
	Rows [][]pattern.Spec
	// AnyRows skips cell-level checks for files whose row content is
	// freeform; only headers and row-count bounds are validated.
	AnyRows bool
	// RowCount, when non-zero, requires exactly that many data rows.
	RowCount int
	// MinRows, when non-zero, requires at least that many data rows.
	MinRows int
}

// Catalog maps relative file paths to their reference definitions.
type Catalog struct {
	defs  map[string]Definition
	paths []string
}

type yamlDefinition struct {
	Headers  []string   `yaml:"headers"`
	Rows     [][]string `yaml:"rows"`
	AnyRows  bool       `yaml:"any_rows"`
	RowCount int        `yaml:"row_count"`
	MinRows  int        `yaml:"min_rows"`
}

type yamlCatalog struct {
	Files map[string]yamlDefinition `yaml:"files"`
}

// Load builds the catalog from the embedded reference data.
// A failure here is fatal to the caller: without a ground truth no
// meaningful report can be produced.
func Load() (*Catalog, error) {
	return Parse(referenceData)
}

// LoadFile builds the catalog from an external YAML file, overriding the
// embedded reference data.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference data: %w", err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// Parse validates raw reference YAML and builds an immutable catalog.
func Parse(data []byte) (*Catalog, error) {
	var raw yamlCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse reference data: %w", err)
	}
	if len(raw.Files) == 0 {
		return nil, errors.New("reference data defines no files")
	}

	defs := make(map[string]Definition, len(raw.Files))
	paths := make([]string, 0, len(raw.Files))
	for path, yd := range raw.Files {
		if path == "" {
			return nil, errors.New("reference data contains an entry with an empty path")
		}
		if len(yd.Headers) == 0 {
			return nil, fmt.Errorf("definition %q has no headers", path)
		}
		if !yd.AnyRows && len(yd.Rows) == 0 {
			return nil, fmt.Errorf("definition %q has neither rows nor any_rows", path)
		}
		if yd.AnyRows && len(yd.Rows) > 0 {
			return nil, fmt.Errorf("definition %q sets any_rows but also lists rows", path)
		}

		def := Definition{
			Headers:  yd.Headers,
			AnyRows:  yd.AnyRows,
			RowCount: yd.RowCount,
			MinRows:  yd.MinRows,
		}
		for i, row := range yd.Rows {
			if len(row) != len(yd.Headers) {
				return nil, fmt.Errorf("definition %q row %d has %d cells, want %d",
					path, i+1, len(row), len(yd.Headers))
			}
			specs := make([]pattern.Spec, len(row))
			for j, cell := range row {
				specs[j] = pattern.ParseSpec(cell)
			}
			def.Rows = append(def.Rows, specs)
		}
		defs[path] = def
		paths = append(paths, path)
	}
	sort.Strings(paths)

	return &Catalog{defs: defs, paths: paths}, nil
}

// Lookup returns the definition for a relative path, if one exists.
func (c *Catalog) Lookup(path string) (Definition, bool) {
	def, ok := c.defs[path]
	return def, ok
}

// Paths returns every catalogued relative path in sorted order.
func (c *Catalog) Paths() []string {
	return c.paths
}

// Len returns the number of catalogued files.
func (c *Catalog) Len() int {
	return len(c.defs)
}
