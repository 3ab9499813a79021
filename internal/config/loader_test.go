package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/enhance/internal/testutil"
)

const sampleConfig = `
repository:
  local: /data/m2
  remotes:
    - id: internal
      url: https://nexus.example.com/repository/maven-public
  verifyChecksums: false
engine:
  java: /opt/jdk/bin/java
  agentClasspath:
    - /opt/ebean/ebean-agent.jar
  mainClass: com.example.Enhance
  forwardErrors: false
classpath:
  separator: ":"
enhance:
  packages: com.acme.**
  transformArgs: debug=1
log:
  timestamps: false
`

func TestLoader_Load(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "config.yaml", sampleConfig)

	l := NewLoader()
	cfg, err := l.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/m2", cfg.Repository.Local)
	require.Len(t, cfg.Repository.Remotes, 1)
	assert.Equal(t, "internal", cfg.Repository.Remotes[0].ID)
	assert.False(t, cfg.Repository.VerifyChecksums)
	assert.Equal(t, "/opt/jdk/bin/java", cfg.Engine.Java)
	assert.Equal(t, []string{"/opt/ebean/ebean-agent.jar"}, cfg.Engine.AgentClasspath)
	assert.Equal(t, "com.example.Enhance", cfg.Engine.MainClass)
	assert.False(t, cfg.Engine.ForwardErrors)
	assert.Equal(t, ":", cfg.Classpath.Separator)
	assert.Equal(t, "com.acme.**", cfg.Enhance.Packages)
	require.NotNil(t, cfg.Log.Timestamps)
	assert.False(t, *cfg.Log.Timestamps)
	assert.Equal(t, path, l.ConfigFileUsed())
}

func TestLoader_MissingFileUsesDefaults(t *testing.T) {
	l := NewLoader()
	cfg, err := l.LoadWithDefaults(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultLocalRepository, cfg.Repository.Local)
	assert.Equal(t, DefaultJava, cfg.Engine.Java)
	assert.True(t, cfg.Engine.ForwardErrors)
	assert.True(t, cfg.Repository.VerifyChecksums)
	assert.Empty(t, l.ConfigFileUsed())
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "config.yaml", sampleConfig)
	t.Setenv("ENHANCE_REPOSITORY_LOCAL", "/env/m2")
	t.Setenv("ENHANCE_ENGINE_JAVA", "/env/java")
	t.Setenv("ENHANCE_ENHANCE_SCOPE", "test")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/env/m2", cfg.Repository.Local)
	assert.Equal(t, "/env/java", cfg.Engine.Java)
	assert.Equal(t, "test", cfg.Enhance.Scope, "env-only keys are unmarshaled")
}

func TestLoader_MalformedFile(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "config.yaml", "repository: [\n")

	_, err := NewLoader().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "ENHANCE_REPOSITORY_LOCAL", EnvName("repository.local"))
	assert.Equal(t, "ENHANCE_ENHANCE_CLASSSOURCE", EnvName("enhance.classSource"))
}
