package cli

import (
	"reflect"
	"testing"

	"github.com/example/pii-redact/internal/config"
	"github.com/spf13/cobra"
)

func TestRuntimeFlagSetToOverrides(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*cobra.Command, *runtimeFlagSet)
		expected config.Overrides
	}{
		{
			name: "no flags changed returns empty overrides",
			setup: func(cmd *cobra.Command, flags *runtimeFlagSet) {
				// No flags set
			},
			expected: config.Overrides{},
		},
		{
			name: "inputs flag changed",
			setup: func(cmd *cobra.Command, flags *runtimeFlagSet) {
				flags.inputs = "a.txt,b.txt"
				cmd.Flags().Set("inputs", flags.inputs)
			},
			expected: config.Overrides{
				Inputs: []string{"a.txt", "b.txt"},
			},
		},
		{
			name: "inputs-file flag changed",
			setup: func(cmd *cobra.Command, flags *runtimeFlagSet) {
				flags.inputsFile = "/path/to/inputs.txt"
				cmd.Flags().Set("inputs-file", flags.inputsFile)
			},
			expected: config.Overrides{
				InputsFile: "/path/to/inputs.txt",
			},
		},
		{
			name: "detectors flag changed",
			setup: func(cmd *cobra.Command, flags *runtimeFlagSet) {
				flags.detectors = "email,phone,credit-card"
				cmd.Flags().Set("detectors", flags.detectors)
			},
			expected: config.Overrides{
				Detectors: []string{"email", "phone", "credit-card"},
			},
		},
		{
			name: "output-dir flag changed",
			setup: func(cmd *cobra.Command, flags *runtimeFlagSet) {
				flags.outputDir = "/custom/output"
				cmd.Flags().Set("output-dir", flags.outputDir)
			},
			expected: config.Overrides{
				OutputDir: "/custom/output",
			},
		},
		{
			name: "formats flag changed",
			setup: func(cmd *cobra.Command, flags *runtimeFlagSet) {
				flags.formats = "text,json"
				cmd.Flags().Set("formats", flags.formats)
			},
			expected: config.Overrides{
				Formats: []string{"text", "json"},
			},
		},
		{
			name: "trace flag changed to false",
			setup: func(cmd *cobra.Command, flags *runtimeFlagSet) {
				flags.trace = false
				cmd.Flags().Set("trace", "false")
			},
			expected: config.Overrides{
				Trace: boolPtr(false),
			},
		},
		{
			name: "dry-run flag changed to true",
			setup: func(cmd *cobra.Command, flags *runtimeFlagSet) {
				flags.dryRun = true
				cmd.Flags().Set("dry-run", "true")
			},
			expected: config.Overrides{
				DryRun: boolPtr(true),
			},
		},
		{
			name: "summary-file flag changed",
			setup: func(cmd *cobra.Command, flags *runtimeFlagSet) {
				flags.summaryFile = "/path/to/summary.json"
				cmd.Flags().Set("summary-file", flags.summaryFile)
			},
			expected: config.Overrides{
				SummaryFile: "/path/to/summary.json",
			},
		},
		{
			name: "multiple flags changed",
			setup: func(cmd *cobra.Command, flags *runtimeFlagSet) {
				flags.inputs = "call.txt"
				flags.detectors = "email"
				flags.outputDir = "/multi/output"
				flags.dryRun = true
				cmd.Flags().Set("inputs", flags.inputs)
				cmd.Flags().Set("detectors", flags.detectors)
				cmd.Flags().Set("output-dir", flags.outputDir)
				cmd.Flags().Set("dry-run", "true")
			},
			expected: config.Overrides{
				Inputs:    []string{"call.txt"},
				Detectors: []string{"email"},
				OutputDir: "/multi/output",
				DryRun:    boolPtr(true),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create a fresh command and flags for each test
			cmd := &cobra.Command{
				Use: "test",
			}
			flags := &runtimeFlagSet{}
			bindRuntimeFlags(cmd, flags)

			tt.setup(cmd, flags)

			result := flags.toOverrides(cmd)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("toOverrides() mismatch\nGot:      %+v\nExpected: %+v", result, tt.expected)
			}
		})
	}
}

func TestRuntimeFlagSetToOverridesUnchangedFlags(t *testing.T) {
	cmd := &cobra.Command{
		Use: "test",
	}
	flags := &runtimeFlagSet{
		inputs:      "default.txt",
		inputsFile:  "/default/inputs.txt",
		detectors:   "email",
		outputDir:   "/default/output",
		formats:     "json",
		dryRun:      false,
		summaryFile: "/default/summary.json",
	}
	bindRuntimeFlags(cmd, flags)

	// Flags carry values but were never explicitly changed, so no
	// overrides should be produced.
	result := flags.toOverrides(cmd)

	expected := config.Overrides{}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("toOverrides() should return empty overrides when no flags changed\nGot:      %+v\nExpected: %+v", result, expected)
	}
}

// Helper function to create a pointer to a bool value
func boolPtr(b bool) *bool {
	return &b
}
