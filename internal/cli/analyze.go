package cli

import (
	"encoding/json"
	"fmt"

	"github.com/example/pii-redact/internal/config"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(loader *config.Loader) *cobra.Command {
	flags := &runtimeFlagSet{}
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Survey transcripts for PII without redacting",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := flags.toOverrides(cmd)
			cfg, err := loader.Load(overrides)
			if err != nil {
				return err
			}

			if len(cfg.Inputs) == 0 {
				cfg.Inputs = []string{"-"}
			}

			engine, err := buildEngine(cfg.Detectors)
			if err != nil {
				return err
			}

			styled := stdoutIsTTY() && !asJSON
			out := cmd.OutOrStdout()

			for _, input := range cfg.Inputs {
				text, err := readInput(cmd, input)
				if err != nil {
					return err
				}

				counts := engine.Analyze(text)
				if asJSON || !styled {
					payload := map[string]interface{}{"input": input, "counts": counts}
					data, err := json.Marshal(payload)
					if err != nil {
						return err
					}
					fmt.Fprintln(out, string(data))
					continue
				}

				fmt.Fprintln(out, titleStyle.Render(input))
				renderCounts(out, counts, true)
			}

			return nil
		},
	}

	bindRuntimeFlags(cmd, flags)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Force JSON output even on a terminal")

	return cmd
}
