package repository

import (
	"path"
	"strings"

	"github.com/opmodel/enhance/internal/project"
)

// LayoutPath returns the slash-separated, repository-relative path of c.
func LayoutPath(c project.Coordinates) string {
	file := c.ArtifactID + "-" + c.Version
	if c.Classifier != "" {
		file += "-" + c.Classifier
	}
	file += "." + extension(c.Extension)

	return path.Join(strings.ReplaceAll(c.GroupID, ".", "/"), c.ArtifactID, c.Version, file)
}

// extension maps dependency types to file extensions.
func extension(typ string) string {
	switch typ {
	case "", "test-jar", "ejb", "ejb-client", "java-source", "javadoc", "maven-plugin":
		return "jar"
	default:
		return typ
	}
}
