// Package cmd provides the costctl commands.
package cmd

import (
	"fmt"
	"os"
	"route-cost-service/internal/adapters/network"
	"route-cost-service/internal/config"
	"route-cost-service/internal/domain"
	"route-cost-service/internal/platform/logging"

	"github.com/spf13/cobra"
)

var (
	networkFile string
	databaseURL string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "costctl",
	Short: "Price orders against the logistics network offline",
	Long: `costctl computes route costs without running the HTTP server.

The network comes from --network-file, --database-url, or the compiled-in
tables when neither is given.

Examples:
  costctl quote '{"A": 1, "D": 2}'
  echo '{"G": 4}' | costctl quote -
  costctl network --network-file network.yaml`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVar(&networkFile, "network-file", "", "YAML network file")
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "Postgres URL holding the network tables")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(networkCmd)
}

func initLogging() {
	cfg := logging.DefaultConfig()
	cfg.Format = "console"
	cfg.Level = "warn"
	if verbose {
		cfg.Level = "debug"
	}
	if err := logging.Initialize(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

func loadNetwork(cmd *cobra.Command) (*domain.Network, error) {
	cfg := config.Config{
		NetworkSource: config.SourceBuiltin,
		NetworkFile:   networkFile,
		DatabaseURL:   databaseURL,
	}
	switch {
	case networkFile != "":
		cfg.NetworkSource = config.SourceFile
	case databaseURL != "":
		cfg.NetworkSource = config.SourcePostgres
	}
	return network.Load(cmd.Context(), cfg)
}
