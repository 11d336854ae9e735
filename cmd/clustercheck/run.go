package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vertti/clustercheck/pkg/config"
	"github.com/vertti/clustercheck/pkg/healthcheck"
	"github.com/vertti/clustercheck/pkg/logging"
	"github.com/vertti/clustercheck/pkg/output"
)

// ErrUnhealthy is returned when at least one check failed.
// The returned error causes main to exit with code 1.
var ErrUnhealthy = errors.New("health check detected issues")

var (
	configPath string
	kubeconfig string
	kubeCtx    string
	noColor    bool
	logLevel   string
	logJSON    bool
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "configuration file (default: nearest "+config.FileName+")")
	flags.StringVar(&kubeconfig, "kubeconfig", "", "kubeconfig passed to kubectl and flux")
	flags.StringVar(&kubeCtx, "context", "", "kubeconfig context passed to kubectl and flux")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&logJSON, "log-json", false, "write logs as JSON")
}

// loadConfig reads the configuration and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, path, err := config.Load(configPath, wd)
	if err != nil {
		return nil, "", err
	}

	flags := cmd.Flags()
	if flags.Changed("kubeconfig") {
		cfg.Clients.Kubeconfig = kubeconfig
	}
	if flags.Changed("context") {
		cfg.Clients.Context = kubeCtx
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-json") {
		cfg.Log.JSON = logJSON
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func runHealthCheck(cmd *cobra.Command, _ []string) error {
	cfg, path, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logging.InitLogger(&cfg.Log, cmd.ErrOrStderr(), slog.String("run_id", uuid.NewString()))
	if path != "" {
		slog.Debug("configuration loaded", slog.String("path", path))
	}

	printer := output.New(cmd.OutOrStdout(), !noColor && output.ColorSupported())
	return runChecks(healthcheck.New(cfg, printer))
}

func runChecks(c *healthcheck.Checker) error {
	if !c.RunAll() {
		return ErrUnhealthy
	}
	return nil
}
