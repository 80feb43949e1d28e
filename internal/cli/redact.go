package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/example/pii-redact/internal/config"
	"github.com/example/pii-redact/internal/detector"
	"github.com/example/pii-redact/internal/events"
	"github.com/example/pii-redact/internal/redactor"
	"github.com/spf13/cobra"
)

func newRedactCmd(loader *config.Loader) *cobra.Command {
	flags := &runtimeFlagSet{}

	cmd := &cobra.Command{
		Use:   "redact",
		Short: "Detect PII in transcripts and write redacted artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := flags.toOverrides(cmd)
			cfg, err := loader.Load(overrides)
			if err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := ensureOutputDir(cfg.OutputDir); err != nil {
				return err
			}

			engine, err := buildEngine(cfg.Detectors)
			if err != nil {
				return err
			}

			emitter := events.NewEmitter(cmd.OutOrStdout())
			if err := emitter.Emit(events.Event{Type: "redact-start", Message: "Starting redaction", Fields: map[string]interface{}{"inputs": len(cfg.Inputs), "dryRun": cfg.DryRun}}); err != nil {
				return err
			}

			timestamp := time.Now().UTC().Format("20060102_150405")
			var outputs []string
			totalRedacted := 0

			for _, input := range cfg.Inputs {
				text, err := readInput(cmd, input)
				if err != nil {
					return err
				}

				if cfg.DryRun {
					counts := engine.Analyze(text)
					if err := emitter.Emit(events.Event{Type: "input-analyzed", Fields: map[string]interface{}{"input": input, "counts": counts}}); err != nil {
						return err
					}
					continue
				}

				redacted, report := engine.Redact(text)
				if !cfg.Trace {
					report.Trace = nil
				}
				totalRedacted += report.TotalRedacted

				base := artifactBase(input)
				for _, format := range cfg.Formats {
					format = strings.ToLower(strings.TrimSpace(format))

					var outputPath string
					switch format {
					case "text":
						outputPath = filepath.Join(cfg.OutputDir, fmt.Sprintf("%s_%s_redacted.txt", base, timestamp))
						if err := os.WriteFile(outputPath, []byte(redacted), 0o644); err != nil {
							return err
						}
					case "json":
						outputPath = filepath.Join(cfg.OutputDir, fmt.Sprintf("%s_%s_report.json", base, timestamp))
						data, err := json.MarshalIndent(report, "", "  ")
						if err != nil {
							return err
						}
						if err := os.WriteFile(outputPath, append(data, '\n'), 0o644); err != nil {
							return err
						}
					default:
						continue
					}

					outputs = append(outputs, outputPath)
					if err := emitter.Emit(events.Event{Type: "artifact-written", Fields: map[string]interface{}{"path": outputPath, "format": format}}); err != nil {
						return err
					}
				}

				if err := emitter.Emit(events.Event{Type: "input-processed", Fields: map[string]interface{}{"input": input, "redacted": report.TotalRedacted}}); err != nil {
					return err
				}
			}

			if cfg.SummaryFile != "" {
				if err := writeSummary(cfg.SummaryFile, cfg, outputs, totalRedacted); err != nil {
					return err
				}
			}

			return emitter.Emit(events.Event{Type: "redact-finished", Message: "Redaction complete", Fields: map[string]interface{}{"artifacts": len(outputs), "redacted": totalRedacted}})
		},
	}

	bindRuntimeFlags(cmd, flags)

	return cmd
}

// buildEngine constructs the redaction engine, optionally restricted to
// a named subset of detectors.
func buildEngine(names []string) (*redactor.Engine, error) {
	if len(names) == 0 {
		return redactor.Default(), nil
	}

	dets, err := detector.DefaultRegistry.BuildDetectors(names)
	if err != nil {
		return nil, err
	}
	return redactor.New(dets), nil
}

func writeSummary(path string, cfg config.RuntimeConfig, artifacts []string, totalRedacted int) error {
	summary := map[string]interface{}{
		"generatedAt":   time.Now().UTC().Format(time.RFC3339),
		"inputs":        cfg.Inputs,
		"artifacts":     artifacts,
		"totalRedacted": totalRedacted,
		"dryRun":        cfg.DryRun,
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}

	if err := ensureOutputDir(filepath.Dir(path)); err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0o644)
}
