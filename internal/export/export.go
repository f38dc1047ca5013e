// Package export serializes summary reports to disk for downstream
// tooling (CI annotations, diffing runs by hand).
package export

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/yuzhangoscar/exportedFileVerifier/internal/filelock"
	"github.com/yuzhangoscar/exportedFileVerifier/internal/verify"
)

// Write serializes the report as YAML to path. The write happens under a
// file lock so concurrent verifier runs exporting to the same path cannot
// interleave.
func Write(path string, report *verify.SummaryReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}
	if err := filelock.LockAndWrite(path, data); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}
	return nil
}
