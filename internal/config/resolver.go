package config

import (
	"fmt"
	"os"

	"github.com/opmodel/enhance/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value together with its origin.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveString resolves key using precedence:
// (1) flag, (2) ENHANCE_<KEY> env, (3) config file, (4) default.
//
// configValue is the loaded config value, which already has the env applied;
// the env variable is consulted only to report the source.
func ResolveString(key, flagValue, configValue, defaultValue string) ResolvedValue {
	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}
	envValue := os.Getenv(EnvName(key))

	switch {
	case flagValue != "":
		rv.Value, rv.Source = flagValue, SourceFlag
		if envValue != "" {
			rv.Shadowed[SourceEnv] = envValue
		} else if configValue != "" && configValue != defaultValue {
			rv.Shadowed[SourceConfig] = configValue
		}
	case envValue != "":
		rv.Value, rv.Source = envValue, SourceEnv
	case configValue != "" && configValue != defaultValue:
		rv.Value, rv.Source = configValue, SourceConfig
	default:
		rv.Value, rv.Source = defaultValue, SourceDefault
	}

	return rv
}

// ResolveAllOptions holds flag values and the loaded config.
type ResolveAllOptions struct {
	ConfigFlag          string
	LocalRepositoryFlag string
	RemoteFlags         []string
	OfflineFlag         bool

	ClassSourceFlag      string
	ClassDestinationFlag string
	PackagesFlag         string
	TransformArgsFlag    string
	ClasspathFlag        string
	ScopeFlag            string

	// Config is the loaded config; nil means defaults only.
	Config *Config
}

// ResolvedConfig holds the effective configuration of a run.
type ResolvedConfig struct {
	ConfigPath      ResolvedValue
	LocalRepository ResolvedValue
	Separator       ResolvedValue

	// Remotes is empty when offline.
	Remotes []RemoteRepository

	ClassSource      ResolvedValue
	ClassDestination ResolvedValue
	Packages         ResolvedValue
	TransformArgs    ResolvedValue
	Classpath        ResolvedValue
	Scope            ResolvedValue

	VerifyChecksums bool
	Engine          EngineConfig
}

// ResolveAll applies flag > env > config > default to every value.
// Paths beginning with ~ are expanded.
func ResolveAll(opts ResolveAllOptions) (*ResolvedConfig, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg = cfg.WithDefaults()

	defaultConfigPath := ""
	if p, err := DefaultPaths(); err == nil {
		defaultConfigPath = p.ConfigFile
	}
	configPath := ResolvedValue{Key: "config", Shadowed: make(map[ConfigSource]string)}
	switch {
	case opts.ConfigFlag != "":
		configPath.Value, configPath.Source = opts.ConfigFlag, SourceFlag
	case os.Getenv(EnvConfig) != "":
		configPath.Value, configPath.Source = os.Getenv(EnvConfig), SourceEnv
	default:
		configPath.Value, configPath.Source = defaultConfigPath, SourceDefault
	}

	rc := &ResolvedConfig{
		ConfigPath:      configPath,
		LocalRepository: ResolveString("repository.local", opts.LocalRepositoryFlag, cfg.Repository.Local, DefaultLocalRepository),
		Separator:       ResolveString("classpath.separator", "", cfg.Classpath.Separator, DefaultSeparator),

		ClassSource:      ResolveString("enhance.classSource", opts.ClassSourceFlag, cfg.Enhance.ClassSource, ""),
		ClassDestination: ResolveString("enhance.classDestination", opts.ClassDestinationFlag, cfg.Enhance.ClassDestination, ""),
		Packages:         ResolveString("enhance.packages", opts.PackagesFlag, cfg.Enhance.Packages, ""),
		TransformArgs:    ResolveString("enhance.transformArgs", opts.TransformArgsFlag, cfg.Enhance.TransformArgs, ""),
		Classpath:        ResolveString("enhance.classpath", opts.ClasspathFlag, cfg.Enhance.Classpath, ""),
		Scope:            ResolveString("enhance.scope", opts.ScopeFlag, cfg.Enhance.Scope, ""),

		VerifyChecksums: cfg.Repository.VerifyChecksums,
		Engine:          cfg.Engine,
	}

	local, err := ExpandPath(rc.LocalRepository.Value)
	if err != nil {
		return nil, err
	}
	rc.LocalRepository.Value = local

	switch {
	case opts.OfflineFlag || cfg.Repository.Offline:
		rc.Remotes = nil
	case len(opts.RemoteFlags) > 0:
		for i, url := range opts.RemoteFlags {
			rc.Remotes = append(rc.Remotes, RemoteRepository{ID: remoteFlagID(i), URL: url})
		}
	default:
		rc.Remotes = cfg.Repository.Remotes
	}

	agent := make([]string, 0, len(cfg.Engine.AgentClasspath))
	for _, p := range cfg.Engine.AgentClasspath {
		expanded, err := ExpandPath(p)
		if err != nil {
			return nil, err
		}
		agent = append(agent, expanded)
	}
	rc.Engine.AgentClasspath = agent

	return rc, nil
}

func remoteFlagID(i int) string {
	return fmt.Sprintf("remote-%d", i+1)
}

// Values returns every resolved scalar value, for logging.
func (rc *ResolvedConfig) Values() []ResolvedValue {
	return []ResolvedValue{
		rc.ConfigPath, rc.LocalRepository, rc.Separator,
		rc.ClassSource, rc.ClassDestination, rc.Packages,
		rc.TransformArgs, rc.Classpath, rc.Scope,
	}
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
