package repository

import (
	"bufio"
	"context"
	"crypto/sha1" //nolint:gosec // repository checksums are SHA-1
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/opmodel/enhance/internal/project"
)

// Remote is a repository served over HTTP(S).
type Remote struct {
	// ID names the repository in log output (e.g. "central").
	ID string

	// URL is the repository base URL.
	URL string

	// Client performs the requests. nil means http.DefaultClient.
	Client *http.Client

	// VerifyChecksums compares downloads against the published .sha1 file
	// when the repository has one.
	VerifyChecksums bool
}

// NewRemote creates a Remote with checksum verification enabled.
func NewRemote(id, url string) *Remote {
	return &Remote{
		ID:              id,
		URL:             strings.TrimSuffix(url, "/"),
		VerifyChecksums: true,
	}
}

// ArtifactURL returns the download URL of c.
func (r *Remote) ArtifactURL(c project.Coordinates) string {
	return strings.TrimSuffix(r.URL, "/") + "/" + LayoutPath(c)
}

// Fetch downloads c to dst. dst is written atomically: it either holds the
// complete, verified artifact or is left untouched.
func (r *Remote) Fetch(ctx context.Context, c project.Coordinates, dst string) error {
	url := r.ArtifactURL(c)

	body, status, err := r.get(ctx, url)
	if err != nil {
		return &FetchError{Coordinates: c, URL: url, Err: err}
	}
	defer body.Close()

	switch {
	case status == http.StatusNotFound:
		return &NotFoundError{Coordinates: c, Location: r.URL}
	case status < 200 || status > 299:
		return &FetchError{Coordinates: c, URL: url, StatusCode: status}
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return &FetchError{Coordinates: c, URL: url, Err: err}
	}
	tmp, err := os.CreateTemp(filepath.Dir(dst), filepath.Base(dst)+".*.part")
	if err != nil {
		return &FetchError{Coordinates: c, URL: url, Err: err}
	}
	defer os.Remove(tmp.Name())

	h := sha1.New() //nolint:gosec // repository checksums are SHA-1
	if _, err := io.Copy(io.MultiWriter(tmp, h), body); err != nil {
		tmp.Close()
		return &FetchError{Coordinates: c, URL: url, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &FetchError{Coordinates: c, URL: url, Err: err}
	}

	if r.VerifyChecksums {
		expected, err := r.checksum(ctx, url+".sha1")
		if err != nil {
			return &FetchError{Coordinates: c, URL: url + ".sha1", Err: err}
		}
		if actual := hex.EncodeToString(h.Sum(nil)); expected != "" && !strings.EqualFold(expected, actual) {
			return &FetchError{Coordinates: c, URL: url, Err: &ChecksumError{Expected: expected, Actual: actual}}
		}
	}

	if err := os.Rename(tmp.Name(), dst); err != nil {
		return &FetchError{Coordinates: c, URL: url, Err: err}
	}
	return nil
}

// checksum returns the published SHA-1 at url, or "" when there is none.
func (r *Remote) checksum(ctx context.Context, url string) (string, error) {
	body, status, err := r.get(ctx, url)
	if err != nil {
		return "", err
	}
	defer body.Close()

	if status == http.StatusNotFound {
		return "", nil
	}
	if status < 200 || status > 299 {
		return "", fmt.Errorf("unexpected status %d", status)
	}

	// The file is "<hex>" or "<hex>  <filename>".
	line, err := bufio.NewReader(io.LimitReader(body, 1024)).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], nil
}

func (r *Remote) get(ctx context.Context, url string) (io.ReadCloser, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, 0, err
	}
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	return resp.Body, resp.StatusCode, nil
}
