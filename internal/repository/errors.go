package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/opmodel/enhance/internal/project"
)

// NotFoundError reports an artifact absent from a repository.
type NotFoundError struct {
	Coordinates project.Coordinates
	// Location is the repository directory or URL that was searched.
	Location string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("artifact %s not found in %s", e.Coordinates, e.Location)
}

// FetchError reports a failed download from a remote repository.
type FetchError struct {
	Coordinates project.Coordinates
	URL         string
	StatusCode  int
	Err         error
}

func (e *FetchError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("fetching %s from %s: %v", e.Coordinates, e.URL, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("fetching %s from %s: unexpected status %d", e.Coordinates, e.URL, e.StatusCode)
	default:
		return fmt.Sprintf("fetching %s from %s failed", e.Coordinates, e.URL)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ChecksumError reports a downloaded artifact whose SHA-1 does not match the
// repository's published checksum.
type ChecksumError struct {
	Expected string
	Actual   string
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("sha1 mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// UnresolvedError collects the failures of every repository tried by Chain.
type UnresolvedError struct {
	Coordinates project.Coordinates
	Causes      []error
}

func (e *UnresolvedError) Error() string {
	msgs := make([]string, len(e.Causes))
	for i, c := range e.Causes {
		msgs[i] = c.Error()
	}
	return fmt.Sprintf("could not resolve %s: %s", e.Coordinates, strings.Join(msgs, "; "))
}

func (e *UnresolvedError) Unwrap() []error {
	return e.Causes
}

// IsNotFound reports whether err means the artifact does not exist.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
