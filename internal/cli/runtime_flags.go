package cli

import (
	"github.com/example/pii-redact/internal/config"
	"github.com/spf13/cobra"
)

// runtimeFlagSet tracks shared redact/analyze flags before they are
// converted into config overrides.
type runtimeFlagSet struct {
	inputs      string
	inputsFile  string
	detectors   string
	outputDir   string
	formats     string
	trace       bool
	dryRun      bool
	summaryFile string
}

func bindRuntimeFlags(cmd *cobra.Command, flags *runtimeFlagSet) {
	cmd.Flags().StringVar(&flags.inputs, "inputs", "", "Comma-separated transcript paths; use - for stdin (overrides config)")
	cmd.Flags().StringVar(&flags.inputsFile, "inputs-file", "", "Path to a file with one transcript path per line")
	cmd.Flags().StringVar(&flags.detectors, "detectors", "", "Comma-separated detectors to run (email,phone,...); default all")
	cmd.Flags().StringVar(&flags.outputDir, "output-dir", "", "Directory for redacted artifacts")
	cmd.Flags().StringVar(&flags.formats, "formats", "", "Comma-separated artifact formats (text,json)")
	cmd.Flags().BoolVar(&flags.trace, "trace", true, "Include the reasoning trace in JSON reports")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Analyze and report counts without writing redacted artifacts")
	cmd.Flags().StringVar(&flags.summaryFile, "summary-file", "", "Optional summary JSON output path")
}

func (f runtimeFlagSet) toOverrides(cmd *cobra.Command) config.Overrides {
	ov := config.Overrides{}
	if cmd.Flags().Changed("inputs") {
		ov.Inputs = config.ParseList(f.inputs)
	}

	if cmd.Flags().Changed("inputs-file") {
		ov.InputsFile = f.inputsFile
	}

	if cmd.Flags().Changed("detectors") {
		ov.Detectors = config.ParseList(f.detectors)
	}

	if cmd.Flags().Changed("output-dir") {
		ov.OutputDir = f.outputDir
	}

	if cmd.Flags().Changed("formats") {
		ov.Formats = config.ParseList(f.formats)
	}

	if cmd.Flags().Changed("trace") {
		ov.Trace = &f.trace
	}

	if cmd.Flags().Changed("dry-run") {
		ov.DryRun = &f.dryRun
	}

	if cmd.Flags().Changed("summary-file") {
		ov.SummaryFile = f.summaryFile
	}

	return ov
}
