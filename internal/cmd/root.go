// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/enhance/internal/config"
	"github.com/opmodel/enhance/internal/output"
)

// GlobalConfig holds CLI-wide configuration resolved during
// PersistentPreRunE. It is passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded config file with defaults applied.
	Config *config.Config

	// ConfigFlag is the raw --config value.
	ConfigFlag string

	// ConfigFile is the config file actually read, or "".
	ConfigFile string

	Verbose bool
}

// NewRootCmd creates the root command for the enhance CLI.
func NewRootCmd() *cobra.Command {
	cfg := &GlobalConfig{}
	var timestamps bool

	rootCmd := &cobra.Command{
		Use:   "enhance",
		Short: "Build-time bytecode enhancement",
		Long: `enhance resolves a project's dependencies to artifacts, assembles the
classpath and runs the class-transformation engine over the compiled classes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd, cfg, timestamps)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfg.ConfigFlag, "config", "", "Path to config file (env: ENHANCE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewEnhanceCmd(cfg))
	rootCmd.AddCommand(NewClasspathCmd(cfg))
	rootCmd.AddCommand(NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, cfg *GlobalConfig, timestamps bool) error {
	loader := config.NewLoader()
	loaded, err := loader.LoadWithDefaults(cfg.ConfigFlag)
	if err != nil {
		// Don't fail here - config init must work with a broken file
		output.Debug("config load error", "error", err)
		loaded = config.DefaultConfig()
	}
	cfg.Config = loaded
	cfg.ConfigFile = loader.ConfigFileUsed()

	logCfg := output.LogConfig{Verbose: cfg.Verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if err != nil {
		output.Warn("could not load config file; using defaults", "error", err)
	}
	output.Debug("initializing CLI", "config", cfg.ConfigFile, "verbose", cfg.Verbose)

	return nil
}
