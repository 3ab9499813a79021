package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/enhance/internal/testutil"
)

func TestChain_LocalHit(t *testing.T) {
	root := t.TempDir()
	want := testutil.WriteFile(t, root, LayoutPath(apiCoords), "jar")

	got, err := NewChain(NewLocal(root)).Resolve(context.Background(), apiCoords)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestChain_DownloadsIntoLocal(t *testing.T) {
	empty := repoServer(t, nil)
	full := repoServer(t, map[string]string{LayoutPath(apiCoords): "remote-jar"})
	local := NewLocal(t.TempDir())

	got, err := NewChain(local, NewRemote("empty", empty.URL), NewRemote("full", full.URL)).
		Resolve(context.Background(), apiCoords)
	require.NoError(t, err)
	assert.Equal(t, local.PathOf(apiCoords), got)
	assert.FileExists(t, got)

	// Second resolution is served locally.
	got2, err := NewChain(local).Resolve(context.Background(), apiCoords)
	require.NoError(t, err)
	assert.Equal(t, got, got2)
}

func TestChain_Unresolved(t *testing.T) {
	empty := repoServer(t, nil)

	_, err := NewChain(NewLocal(t.TempDir()), NewRemote("empty", empty.URL)).
		Resolve(context.Background(), apiCoords)
	require.Error(t, err)

	var ue *UnresolvedError
	require.True(t, errors.As(err, &ue))
	assert.Len(t, ue.Causes, 2, "local and remote failures should both be reported")
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "could not resolve io.ebean:ebean-api:jar:15.8.0")
}
