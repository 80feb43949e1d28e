package cli

import (
	"fmt"

	"github.com/example/pii-redact/internal/config"
	"github.com/spf13/cobra"
)

func newInitCmd(loader *config.Loader) *cobra.Command {
	flags := &runtimeFlagSet{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Validate the configuration and prepare the output directory",
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

			if _, err := buildEngine(cfg.Detectors); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration looks good. Artifacts will be stored in %s\n", cfg.OutputDir)
			return nil
		},
	}

	bindRuntimeFlags(cmd, flags)

	return cmd
}
