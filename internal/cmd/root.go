package cmd

import (
	"github.com/spf13/cobra"

	"github.com/expressforge/cli/internal/config"
	"github.com/expressforge/cli/internal/output"
	"github.com/expressforge/cli/internal/version"
)

var (
	// Global flags
	flagConfig  string
	flagVerbose bool

	// loadedConfig holds the merged CLI configuration for the current run.
	loadedConfig *config.Config
)

// NewRootCmd creates the base command for the expressforge CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "expressforge",
		Short: "Express project scaffolding CLI",
		Long: `expressforge scaffolds Express applications in TypeScript or JavaScript.

Given a project name and a few choices it generates the directory tree,
boilerplate sources and config files, and can initialize git and install
dependencies for you.`,
		PersistentPreRunE: initializeGlobals,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to config file (env: EXPRESSFORGE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "increase output verbosity")

	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and config based on global flags.
func initializeGlobals(cmd *cobra.Command, _ []string) error {
	output.SetupLogging(flagVerbose)

	info := version.GetInfo()
	output.Debug("expressforge started", "version", info.Version)

	cfg, err := config.NewLoader().Load(flagConfig)
	if err != nil {
		return err
	}
	loadedConfig = cfg

	return nil
}
