// Package project loads the declared dependency set of a build project.
//
// Two project models are supported: a Maven pom.xml and a YAML or JSON
// dependency manifest. Both produce the same ordered []Dependency; the order
// of declaration is preserved because it decides classpath order downstream.
package project

import "strings"

// Default values applied to dependencies that omit them.
const (
	DefaultType  = "jar"
	DefaultScope = "compile"

	// ScopeTest is the declared scope of test-only dependencies.
	ScopeTest = "test"
)

// Dependency is a single declared dependency.
// Identity is (GroupID, ArtifactID, Classifier, Version).
type Dependency struct {
	GroupID    string `json:"groupId"`
	ArtifactID string `json:"artifactId"`
	Version    string `json:"version"`
	Classifier string `json:"classifier,omitempty"`
	Type       string `json:"type,omitempty"`
	Scope      string `json:"scope,omitempty"`
}

// String returns groupId:artifactId:version[:classifier].
func (d Dependency) String() string {
	s := d.GroupID + ":" + d.ArtifactID + ":" + d.Version
	if d.Classifier != "" {
		s += ":" + d.Classifier
	}
	return s
}

// Coordinates returns the repository coordinates of the dependency.
func (d Dependency) Coordinates() Coordinates {
	ext := d.Type
	if ext == "" {
		ext = DefaultType
	}
	return Coordinates{
		GroupID:    d.GroupID,
		ArtifactID: d.ArtifactID,
		Version:    d.Version,
		Classifier: d.Classifier,
		Extension:  ext,
	}
}

// IsTestScoped reports whether the dependency is declared with scope "test".
func (d Dependency) IsTestScoped() bool {
	return strings.EqualFold(d.Scope, ScopeTest)
}

// withDefaults fills in Type and Scope when empty.
func (d Dependency) withDefaults() Dependency {
	if d.Type == "" {
		d.Type = DefaultType
	}
	if d.Scope == "" {
		d.Scope = DefaultScope
	}
	return d
}

// Coordinates identify a single artifact file in a repository.
type Coordinates struct {
	GroupID    string
	ArtifactID string
	Version    string
	Classifier string
	Extension  string
}

// String returns groupId:artifactId:extension[:classifier]:version.
func (c Coordinates) String() string {
	parts := []string{c.GroupID, c.ArtifactID, c.Extension}
	if c.Classifier != "" {
		parts = append(parts, c.Classifier)
	}
	parts = append(parts, c.Version)
	return strings.Join(parts, ":")
}

// Project is a loaded project model.
type Project struct {
	// Path is the file the model was loaded from.
	Path string

	GroupID    string
	ArtifactID string
	Version    string

	// Dependencies in declaration order.
	Dependencies []Dependency
}
