// Package commands implements the CLI commands for blockgen.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmos91/blockgen/internal/logger"
	"github.com/marmos91/blockgen/pkg/config"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Global flags.
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "blockgen",
	Short: "Synthetic block injector for datanode storage",
	Long: `blockgen populates a datanode's storage directories with synthetic
block/metadata file pairs for test and benchmark setup.

It resolves the cluster's configured storage directories, validates their
on-disk layout version, and replicates a template block file and its
metadata file across a contiguous range of block IDs, split evenly across
all storage directories.

Use "blockgen [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/blockgen/config.yaml)")

	rootCmd.AddCommand(injectCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)

	// Hide the default completion command (we provide our own)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// GetConfigFile returns the config file path from the global flag.
func GetConfigFile() string {
	return cfgFile
}

// InitLogger initializes the structured logger from configuration.
func InitLogger(cfg *config.Config) error {
	loggerCfg := logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	if err := logger.Init(loggerCfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}
