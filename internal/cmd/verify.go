package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/yuzhangoscar/exportedFileVerifier/internal/catalog"
	"github.com/yuzhangoscar/exportedFileVerifier/internal/config"
	"github.com/yuzhangoscar/exportedFileVerifier/internal/discovery"
	"github.com/yuzhangoscar/exportedFileVerifier/internal/export"
	"github.com/yuzhangoscar/exportedFileVerifier/internal/logger"
	"github.com/yuzhangoscar/exportedFileVerifier/internal/render"
	"github.com/yuzhangoscar/exportedFileVerifier/internal/verify"
)

// verifyOptions carries flag values for the verify subcommand.
type verifyOptions struct {
	configPath        string
	catalogPath       string
	exportPath        string
	logLevel          string
	noColor           bool
	failOnPlaceholder bool
}

// NewVerifyCommand creates and returns the verify subcommand
func NewVerifyCommand() *cobra.Command {
	opts := &verifyOptions{}

	cmd := &cobra.Command{
		Use:   "verify [directory]",
		Short: "Verify a directory of exported files against the reference catalog",
		Long: `Scan a directory of exported files and compare each discovered file
against its reference definition:
  - File presence (missing and unexpected files)
  - Column headers (names, order and count)
  - Cell content (literal values and pattern tokens)
  - Placeholder values ([object Object], whitespace-only, null/undefined,
    spreadsheet errors)

The full report is always printed; the exit code reflects aggregate health.

Exit code: 0 if everything checks out, 1 if issues were found`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			return runVerify(cmd, dir, opts)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&opts.configPath, "config", ".exportverifier.yaml", "path to the config file")
	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "external reference data file (overrides the embedded catalog)")
	cmd.Flags().StringVar(&opts.exportPath, "export", "", "write the summary report to this YAML file")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "logging verbosity (trace, debug, info, warn, error)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVar(&opts.failOnPlaceholder, "fail-on-placeholder", true, "treat placeholder values as failures for the exit code")

	return cmd
}

// runVerify wires the collaborators around the verification engine:
// config, catalog, discovery in; render, export, exit status out.
func runVerify(cmd *cobra.Command, dir string, opts *verifyOptions) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg, opts)
	if dir == "" {
		dir = cfg.ScanDir
	}

	setupColor(cmd.OutOrStdout(), cfg.NoColor)
	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}
	log.Debugf("reference catalog loaded: %d file definitions", cat.Len())

	log.Infof("scanning %s", dir)
	files, err := discovery.Scan(dir)
	if err != nil {
		return err
	}
	log.Debugf("discovered %d tabular file(s)", len(files))

	report := verify.NewEngine(cat).Run(files)
	report.Stamp()

	render.New(cmd.OutOrStdout()).Summary(report)

	if cfg.ExportPath != "" {
		if err := export.Write(cfg.ExportPath, report); err != nil {
			return err
		}
		log.Infof("report exported to %s", cfg.ExportPath)
	}

	if !report.Healthy(cfg.FailOnPlaceholder) {
		return fmt.Errorf("verification found issues: %d failed, %d missing, %d unexpected, %d placeholder value(s)",
			report.Failed, report.Missing, report.Unexpected, report.PlaceholderValues)
	}
	return nil
}

// applyFlags overlays explicitly set flags onto the loaded config.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *verifyOptions) {
	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.CatalogPath = opts.catalogPath
	}
	if flags.Changed("export") {
		cfg.ExportPath = opts.exportPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("no-color") {
		cfg.NoColor = opts.noColor
	}
	if flags.Changed("fail-on-placeholder") {
		cfg.FailOnPlaceholder = opts.failOnPlaceholder
	}
}

// setupColor disables colored output when requested or when stdout is not
// a terminal (piped output, CI logs).
func setupColor(out io.Writer, noColor bool) {
	if noColor {
		color.NoColor = true
		return
	}
	if out == os.Stdout && !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

// loadCatalog returns the embedded catalog, or an external one when a
// reference data path is configured. Either way a malformed catalog is
// fatal: no meaningful report can be produced without a ground truth.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path != "" {
		return catalog.LoadFile(path)
	}
	return catalog.Load()
}
