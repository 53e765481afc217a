package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jflowers/scrutiny/internal/analyze"
	"github.com/jflowers/scrutiny/internal/config"
	"github.com/jflowers/scrutiny/internal/metrics"
	"github.com/jflowers/scrutiny/internal/report"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "scrutiny",
		Short: "Scrutiny — heuristic test code quality metrics",
		Long: `Scrutiny analyzes a Java test source file with lexical heuristics
(no compiler, no parser) and reports size, complexity, duplication,
code smell, convention, framework, and design pattern metrics plus
a composite 0-100 quality score.`,
		Version: version,
	}

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newSchemaCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// analyzeParams holds the parsed flags for the analyze command.
type analyzeParams struct {
	filePath    string
	format      string
	output      string
	configPath  string
	interactive bool
	stdout      io.Writer
	stderr      io.Writer
}

// runAnalyze is the extracted, testable body of the analyze command.
func runAnalyze(p analyzeParams) error {
	if p.format != "text" && p.format != "json" && p.format != "html" {
		return fmt.Errorf("invalid format %q: must be 'text', 'json', or 'html'", p.format)
	}

	cfg, err := config.Load(p.configPath)
	if err != nil {
		return err
	}

	logger.Info("analyzing file", "file", p.filePath)
	rpt, err := analyze.File(p.filePath, analyze.Options{
		Config: cfg,
		Stderr: p.stderr,
	})
	if err != nil {
		return err
	}

	logger.Info("analysis complete",
		"methods", len(rpt.Complexity.Cyclomatic),
		"tests", rpt.Test.TestMethodCount,
		"score", metrics.Score(rpt))

	if p.interactive {
		return runInteractiveReport(rpt)
	}

	out, cleanup, err := openOutput(p)
	if err != nil {
		return err
	}
	defer cleanup()

	switch p.format {
	case "json":
		return report.WriteJSON(out, rpt)
	case "html":
		return report.WriteHTML(out, rpt)
	default:
		return report.WriteText(out, rpt)
	}
}

// openOutput resolves the report destination. Text goes to stdout
// unless --output is set; json and html default to a file named
// after the input (<stem>_report.json / <stem>_report.html) when
// --output is "auto".
func openOutput(p analyzeParams) (io.Writer, func(), error) {
	path := p.output
	if path == "auto" {
		if p.format == "text" {
			path = ""
		} else {
			stem := strings.TrimSuffix(filepath.Base(p.filePath), filepath.Ext(p.filePath))
			path = stem + "_report." + p.format
		}
	}
	if path == "" || path == "-" {
		return p.stdout, func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating report file: %w", err)
	}
	logger.Info("writing report", "path", path)
	return f, func() { f.Close() }, nil
}

func newAnalyzeCmd() *cobra.Command {
	var (
		format      string
		output      string
		configPath  string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze a Java test file",
		Long: `Analyze a single Java test source file and report its quality
metrics. Any file content is accepted; malformed or truncated
source degrades to partial metrics instead of failing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(analyzeParams{
				filePath:    args[0],
				format:      format,
				output:      output,
				configPath:  configPath,
				interactive: interactive,
				stdout:      os.Stdout,
				stderr:      os.Stderr,
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "text",
		"output format: text, json, or html")
	cmd.Flags().StringVarP(&output, "output", "o", "auto",
		"report destination: a path, '-' for stdout, or 'auto' (<input>_report.<ext> for json/html)")
	cmd.Flags().StringVar(&configPath, "config", "",
		"path to a .scrutiny.yaml thresholds file")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"launch interactive TUI for browsing the report")

	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for the report output",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the
structure of scrutiny analyze --format=json output. Useful for
validating output or generating client types.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Schema)
			return err
		},
	}
}
