package project

import (
	"fmt"

	"sigs.k8s.io/yaml"
)

// manifest is the YAML/JSON dependency manifest format:
//
//	dependencies:
//	  - groupId: io.ebean
//	    artifactId: ebean-api
//	    version: 15.8.0
//	    scope: compile
type manifest struct {
	GroupID      string       `json:"groupId,omitempty"`
	ArtifactID   string       `json:"artifactId,omitempty"`
	Version      string       `json:"version,omitempty"`
	Dependencies []Dependency `json:"dependencies"`
}

// ParseManifest reads a YAML or JSON dependency manifest.
func ParseManifest(data []byte) (*Project, error) {
	var m manifest
	if err := yaml.UnmarshalStrict(data, &m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}

	proj := &Project{
		GroupID:      m.GroupID,
		ArtifactID:   m.ArtifactID,
		Version:      m.Version,
		Dependencies: make([]Dependency, 0, len(m.Dependencies)),
	}
	for i, d := range m.Dependencies {
		if d.GroupID == "" || d.ArtifactID == "" || d.Version == "" {
			return nil, fmt.Errorf("dependency %d: groupId, artifactId and version are required", i)
		}
		proj.Dependencies = append(proj.Dependencies, d.withDefaults())
	}
	return proj, nil
}
