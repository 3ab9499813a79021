package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for configuration.
const envPrefix = "ENHANCE"

// EnvConfig names the config file override.
const EnvConfig = envPrefix + "_CONFIG"

// Loader handles loading and merging configuration from the config file and
// the environment. Every key can be set through ENHANCE_<SECTION>_<KEY>,
// e.g. ENHANCE_REPOSITORY_LOCAL or ENHANCE_ENGINE_JAVA.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Viper only unmarshals keys it knows about; registering every scalar key
	// lets environment-only values through.
	def := DefaultConfig()
	v.SetDefault("repository.local", def.Repository.Local)
	v.SetDefault("repository.offline", false)
	v.SetDefault("repository.verifyChecksums", def.Repository.VerifyChecksums)
	v.SetDefault("engine.java", def.Engine.Java)
	v.SetDefault("engine.mainClass", def.Engine.MainClass)
	v.SetDefault("engine.forwardErrors", def.Engine.ForwardErrors)
	v.SetDefault("classpath.separator", def.Classpath.Separator)
	for _, k := range []string{"classSource", "classDestination", "packages", "transformArgs", "classpath", "scope"} {
		v.SetDefault("enhance."+k, "")
	}

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, the default config file path is used. A missing
// file is not an error. Environment variables take precedence over file
// values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration and applies defaults.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}

	return cfg.WithDefaults(), nil
}

// ConfigFileUsed returns the config file viper read, or "" if none.
func (l *Loader) ConfigFileUsed() string {
	if _, err := os.Stat(l.v.ConfigFileUsed()); err != nil {
		return ""
	}
	return l.v.ConfigFileUsed()
}

// EnvName returns the environment variable bound to a config key.
func EnvName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
