package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundtrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "token", "abc"))

	// A fresh store over the same file sees the value.
	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	v, ok, err := reopened.Get(ctx, "token")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "abc", v)
}

func TestFileStoreDelete(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "token", "abc"))
	require.NoError(t, s.Delete(ctx, "token"))
	_, ok, err := s.Get(ctx, "token")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting again is fine.
	require.NoError(t, s.Delete(ctx, "token"))
}

func TestFileStoreMissingFileStartsEmpty(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "nested", "dir", "state.json"))
	require.NoError(t, err)
	_, ok, err := s.Get(context.Background(), "token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{garbage"), 0o600))

	s, err := NewFileStore(path)
	require.NoError(t, err)
	_, ok, err := s.Get(context.Background(), "token")
	require.NoError(t, err)
	assert.False(t, ok)
}
