// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile creates a file with the given content in the specified directory,
// creating parent directories as needed. name may contain slashes.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// Mkdir creates a directory (and parents) under dir and returns its path.
func Mkdir(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
	return path
}

// WriteArtifact places a jar for group:artifact:version in a repository
// directory using the Maven 2 layout and returns its path.
func WriteArtifact(t *testing.T, repo, group, artifact, version string) string {
	t.Helper()
	name := strings.ReplaceAll(group, ".", "/") + "/" + artifact + "/" + version + "/" +
		artifact + "-" + version + ".jar"
	return WriteFile(t, repo, name, "PK")
}
