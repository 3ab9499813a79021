package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opmodel/enhance/internal/config"
	oerrors "github.com/opmodel/enhance/internal/errors"
	"github.com/opmodel/enhance/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the enhance CLI configuration.

Writes ~/.enhance/config.yaml (or the --config path) with the default
repository, engine and classpath settings.

Examples:
  # Initialize configuration
  enhance config init

  # Overwrite existing configuration
  enhance config init --force`,
		RunE: func(c *cobra.Command, args []string) error {
			return runConfigInit(c, cfg, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return c
}

func runConfigInit(c *cobra.Command, cfg *GlobalConfig, force bool) error {
	path := ""
	if cfg != nil {
		path = cfg.ConfigFlag
	}
	if path == "" {
		var err error
		if path, err = config.GetConfigFile(); err != nil {
			return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
		}
	}
	path, err := config.ExpandPath(path)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
	}

	if _, err := os.Stat(path); err == nil && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	data, err := config.DefaultConfigYAML()
	if err != nil {
		return fmt.Errorf("rendering default configuration: %w", err)
	}

	// Secure permissions: 0700 directory, 0600 file
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return oerrors.NewPermissionError("could not create configuration directory", filepath.Dir(path), "")
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return oerrors.NewPermissionError("could not write configuration", path, "")
	}

	output.Debug("configuration written", "path", path)
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration initialized at "+path))
	return nil
}
