// Package config provides configuration loading and management.
package config

// RemoteRepository is a remote artifact repository.
type RemoteRepository struct {
	ID  string `mapstructure:"id" yaml:"id"`
	URL string `mapstructure:"url" yaml:"url"`
}

// RepositoryConfig contains artifact repository settings.
type RepositoryConfig struct {
	// Local is the local repository directory.
	// Env: ENHANCE_REPOSITORY_LOCAL, Default: ~/.m2/repository
	Local string `mapstructure:"local" yaml:"local"`

	// Remotes are tried in order when an artifact is not available locally.
	// Default: Maven Central.
	Remotes []RemoteRepository `mapstructure:"remotes" yaml:"remotes"`

	// Offline disables remote repositories.
	// Env: ENHANCE_REPOSITORY_OFFLINE
	Offline bool `mapstructure:"offline" yaml:"offline"`

	// VerifyChecksums checks downloads against published .sha1 files.
	// Default: true.
	VerifyChecksums bool `mapstructure:"verifyChecksums" yaml:"verifyChecksums"`
}

// EngineConfig describes how to launch the enhancement engine.
type EngineConfig struct {
	// Java is the JVM launcher. Env: ENHANCE_ENGINE_JAVA, Default: java
	Java string `mapstructure:"java" yaml:"java"`

	// JVMArgs are extra launcher arguments.
	JVMArgs []string `mapstructure:"jvmArgs" yaml:"jvmArgs,omitempty"`

	// AgentClasspath lists the engine jars.
	AgentClasspath []string `mapstructure:"agentClasspath" yaml:"agentClasspath"`

	// MainClass is the engine entry point.
	MainClass string `mapstructure:"mainClass" yaml:"mainClass"`

	// ForwardErrors sends engine error events to the log. Default: true.
	ForwardErrors bool `mapstructure:"forwardErrors" yaml:"forwardErrors"`
}

// ClasspathConfig contains classpath assembly settings.
type ClasspathConfig struct {
	// Separator between classpath entries. Default: ";"
	Separator string `mapstructure:"separator" yaml:"separator"`
}

// EnhanceConfig holds defaults for the enhance goal parameters.
// Flags take precedence.
type EnhanceConfig struct {
	ClassSource      string `mapstructure:"classSource" yaml:"classSource,omitempty"`
	ClassDestination string `mapstructure:"classDestination" yaml:"classDestination,omitempty"`
	Packages         string `mapstructure:"packages" yaml:"packages,omitempty"`
	TransformArgs    string `mapstructure:"transformArgs" yaml:"transformArgs,omitempty"`
	Classpath        string `mapstructure:"classpath" yaml:"classpath,omitempty"`
	Scope            string `mapstructure:"scope" yaml:"scope,omitempty"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the enhance CLI configuration.
// Loaded from ~/.enhance/config.yaml.
type Config struct {
	Repository RepositoryConfig `mapstructure:"repository" yaml:"repository"`
	Engine     EngineConfig     `mapstructure:"engine" yaml:"engine"`
	Classpath  ClasspathConfig  `mapstructure:"classpath" yaml:"classpath"`
	Enhance    EnhanceConfig    `mapstructure:"enhance" yaml:"enhance,omitempty"`
	Log        LogConfig        `mapstructure:"log" yaml:"log,omitempty"`
}

// Default values.
const (
	DefaultLocalRepository = "~/.m2/repository"
	DefaultCentralID       = "central"
	DefaultCentralURL      = "https://repo.maven.apache.org/maven2"
	DefaultJava            = "java"
	DefaultMainClass       = "io.ebean.enhance.ant.MainTransform"
	DefaultSeparator       = ";"
)

// DefaultConfig returns a Config with all default values populated.
// Used by `enhance config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Repository: RepositoryConfig{
			Local:           DefaultLocalRepository,
			Remotes:         []RemoteRepository{{ID: DefaultCentralID, URL: DefaultCentralURL}},
			VerifyChecksums: true,
		},
		Engine: EngineConfig{
			Java:           DefaultJava,
			AgentClasspath: []string{},
			MainClass:      DefaultMainClass,
			ForwardErrors:  true,
		},
		Classpath: ClasspathConfig{
			Separator: DefaultSeparator,
		},
	}
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
// An explicitly empty remotes list is kept.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()

	if out.Repository.Local == "" {
		out.Repository.Local = def.Repository.Local
	}
	if out.Repository.Remotes == nil {
		out.Repository.Remotes = def.Repository.Remotes
	}
	if out.Engine.Java == "" {
		out.Engine.Java = def.Engine.Java
	}
	if out.Engine.MainClass == "" {
		out.Engine.MainClass = def.Engine.MainClass
	}
	if out.Classpath.Separator == "" {
		out.Classpath.Separator = def.Classpath.Separator
	}
	return &out
}
