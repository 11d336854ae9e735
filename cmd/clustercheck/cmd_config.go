package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vertti/clustercheck/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long:  "Print the configuration after defaults, the configuration file and command-line overrides are applied.",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, path, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := config.Encode(cfg)
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	if path != "" {
		_, _ = fmt.Fprintf(out, "# loaded from %s\n", path)
	}
	_, _ = out.Write(data)
	return nil
}
