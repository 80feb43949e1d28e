package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/example/pii-redact/internal/redactor"
	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a stored redaction report",
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputPath == "" {
				return errors.New("--input is required")
			}

			data, err := os.ReadFile(inputPath)
			if err != nil {
				return err
			}

			var report redactor.Report
			if err := json.Unmarshal(data, &report); err != nil {
				return fmt.Errorf("parse report %s: %w", inputPath, err)
			}

			renderReport(cmd.OutOrStdout(), report, stdoutIsTTY())
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to a JSON redaction report")
	if err := cmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}

	return cmd
}
