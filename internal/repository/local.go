package repository

import (
	"context"
	"os"
	"path/filepath"

	"github.com/opmodel/enhance/internal/project"
)

// Local is a repository rooted at a directory, usually ~/.m2/repository.
type Local struct {
	root string
}

// NewLocal creates a Local repository rooted at root.
func NewLocal(root string) *Local {
	return &Local{root: root}
}

// Root returns the repository root directory.
func (l *Local) Root() string {
	return l.root
}

// PathOf returns the file path c would have in this repository.
func (l *Local) PathOf(c project.Coordinates) string {
	return filepath.Join(l.root, filepath.FromSlash(LayoutPath(c)))
}

// Resolve returns the absolute path of c if it exists as a regular file.
func (l *Local) Resolve(ctx context.Context, c project.Coordinates) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p, err := filepath.Abs(l.PathOf(c))
	if err != nil {
		return "", err
	}

	info, err := os.Stat(p)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &NotFoundError{Coordinates: c, Location: l.root}
		}
		return "", err
	}
	if info.IsDir() {
		return "", &NotFoundError{Coordinates: c, Location: l.root}
	}
	return p, nil
}
