package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents verifier configuration options.
type Config struct {
	// ScanDir is the directory scanned when no argument is given
	ScanDir string `yaml:"scan_dir"`

	// CatalogPath optionally points at an external reference-data file,
	// overriding the embedded catalog
	CatalogPath string `yaml:"catalog_path"`

	// FailOnPlaceholder makes placeholder findings count against the
	// process exit status
	FailOnPlaceholder bool `yaml:"fail_on_placeholder"`

	// ExportPath, when set, writes the summary report to this file
	ExportPath string `yaml:"export_path"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// NoColor disables colored terminal output
	NoColor bool `yaml:"no_color"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		ScanDir:           "downloaded exported files",
		CatalogPath:       "",
		FailOnPlaceholder: true,
		ExportPath:        "",
		LogLevel:          "info",
		NoColor:           false,
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unmarshal over the defaults so absent keys keep their default values
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}
