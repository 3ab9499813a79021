package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/enhance/internal/config"
	oerrors "github.com/opmodel/enhance/internal/errors"
)

func exitCode(err error) int {
	return oerrors.ExitCodeFromError(err)
}

func TestNewConfigInitCmd(t *testing.T) {
	c := NewConfigInitCmd(&GlobalConfig{})

	assert.Equal(t, "init", c.Use)
	assert.NotEmpty(t, c.Short)
	assert.NotEmpty(t, c.Long)
	assert.NotNil(t, c.Flags().Lookup("force"))
}

func TestConfigInit_CreatesFile(t *testing.T) {
	home := isolate(t)

	_, err := execute(t, "config", "init")
	require.NoError(t, err)

	path := filepath.Join(home, ".enhance", "config.yaml")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, config.DefaultJava, cfg.Engine.Java)
	assert.Equal(t, config.DefaultSeparator, cfg.Classpath.Separator)
}

func TestConfigInit_SecurePermissions(t *testing.T) {
	home := isolate(t)

	_, err := execute(t, "config", "init")
	require.NoError(t, err)

	dirInfo, err := os.Stat(filepath.Join(home, ".enhance"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())

	fileInfo, err := os.Stat(filepath.Join(home, ".enhance", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fileInfo.Mode().Perm())
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	isolate(t)

	_, err := execute(t, "config", "init")
	require.NoError(t, err)

	_, err = execute(t, "config", "init")
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
	assert.Equal(t, 2, exitCode(err))

	_, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigInit_CustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "enhance.yaml")

	_, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.FileExists(t, path)
}
