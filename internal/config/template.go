package config

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

const templateHeader = `# enhance CLI configuration.
#
# Every key can be overridden with an ENHANCE_<SECTION>_<KEY> environment
# variable, e.g. ENHANCE_REPOSITORY_LOCAL or ENHANCE_ENGINE_JAVA.
# The enhance section holds defaults for the goal flags.

`

// DefaultConfigYAML renders DefaultConfig as a commented YAML document.
func DefaultConfigYAML() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(templateHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(DefaultConfig()); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
