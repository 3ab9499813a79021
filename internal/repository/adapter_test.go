package repository

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/enhance/internal/project"
)

// fakeResolver resolves artifact ids from a map; missing ids fail.
type fakeResolver struct {
	paths map[string]string
	calls []string
}

func (f *fakeResolver) Resolve(_ context.Context, c project.Coordinates) (string, error) {
	f.calls = append(f.calls, c.ArtifactID)
	if p, ok := f.paths[c.ArtifactID]; ok {
		return p, nil
	}
	return "", &NotFoundError{Coordinates: c, Location: "/repo"}
}

func testLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{Level: log.DebugLevel})
}

func dep(id string) project.Dependency {
	return project.Dependency{GroupID: "g", ArtifactID: id, Version: "1", Type: "jar", Scope: "compile"}
}

func TestAdapter_ResolveAllToleratesFailures(t *testing.T) {
	var buf bytes.Buffer
	r := &fakeResolver{paths: map[string]string{
		"a": "/repo/a-1.jar",
		"b": "/repo/b-1.jar",
		"d": "/repo/d-1.jar",
	}}

	outcomes := NewAdapter(r, testLogger(&buf)).ResolveAll(context.Background(),
		[]project.Dependency{dep("a"), dep("b"), dep("c"), dep("d")})

	require.Len(t, outcomes, 4)
	assert.Equal(t, []string{"a", "b", "c", "d"}, r.calls, "every dependency is attempted exactly once, in order")
	assert.True(t, outcomes[0].OK())
	assert.False(t, outcomes[2].OK())
	assert.True(t, IsNotFound(outcomes[2].Err))

	assert.Equal(t, []string{"/repo/a-1.jar", "/repo/b-1.jar", "/repo/d-1.jar"}, Paths(Resolved(outcomes)))

	failed := Failed(outcomes)
	require.Len(t, failed, 1)
	assert.Equal(t, "c", failed[0].Dependency.ArtifactID)

	logs := buf.String()
	assert.Contains(t, logs, "resolved artifact")
	assert.Contains(t, logs, "/repo/a-1.jar")
	assert.Contains(t, logs, "artifact unresolved")
	assert.Contains(t, logs, "g:c:1")
}

func TestAdapter_RelativePathsBecomeAbsolute(t *testing.T) {
	r := &fakeResolver{paths: map[string]string{"a": "lib/a.jar"}}

	o := NewAdapter(r, testLogger(&bytes.Buffer{})).Resolve(context.Background(), dep("a"))
	require.True(t, o.OK())
	assert.True(t, len(o.Path) > len("lib/a.jar"))
	assert.Contains(t, o.Path, "lib/a.jar")
}

type errResolver struct{ err error }

func (e errResolver) Resolve(context.Context, project.Coordinates) (string, error) {
	return "", e.err
}

func TestAdapter_AnyResolverErrorIsRecovered(t *testing.T) {
	boom := errors.New("repository exploded")

	o := NewAdapter(errResolver{boom}, testLogger(&bytes.Buffer{})).Resolve(context.Background(), dep("x"))
	assert.False(t, o.OK())
	assert.Empty(t, o.Path)
	assert.ErrorIs(t, o.Err, boom)
}

func TestResolved_Empty(t *testing.T) {
	assert.Empty(t, Resolved(nil))
	assert.Empty(t, Failed(nil))
	assert.Empty(t, Paths(nil))
}
