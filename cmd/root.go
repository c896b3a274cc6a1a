package cmd

import (
	"fmt"
	"os"

	"github.com/irjudson/codalab-cli/internal"
	"github.com/irjudson/codalab-cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	homeDir    string
	configFile string
	cfg        config.Config
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cl",
	Short: "CodaLab command-line client",
	Long: `Command-line client for CodaLab worksheets and bundles.

The current worksheet is remembered per shell: every invocation from the same
terminal sees the worksheet last selected there, while other terminals keep
their own.

Quick Start:
  cl work <worksheet-uuid>              # Select a worksheet for this shell
  cl work                               # Show the current worksheet
  cl defaults dataset --path ./data     # Preview metadata for an upload`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(homeDir, configFile)
		if err != nil {
			return err
		}
		cfg = loaded
		cfg.Apply()
		if verbose {
			internal.SetVerbose(true)
		}
		internal.LogDebug("using home %s", cfg.Home)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "Client home directory (default $CODALAB_HOME or ~/.codalab)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default <home>/config.yaml)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
