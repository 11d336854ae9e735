package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		// The report already explains an unhealthy run.
		if !errors.Is(err, ErrUnhealthy) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clustercheck",
	Short: "Health check for a GitOps-managed Kubernetes homelab",
	Long: "Clustercheck verifies cluster connectivity, Flux, infrastructure deployments, the database\n" +
		"cluster, the application, the monitoring stack, ingress hosts and node resource usage.\n" +
		"It exits 0 when every check passes and 1 otherwise. Warnings never change the exit code.",
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runHealthCheck,
}
