package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_SaveRemove(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocal(root)
	require.NoError(t, err)

	appID := uuid.New()
	path, err := store.Save(context.Background(), appID, "Transcript.PDF", strings.NewReader("content"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, appID.String()), filepath.Dir(path))
	assert.Equal(t, ".pdf", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	require.NoError(t, store.Remove(context.Background(), path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Remove(context.Background(), path), "removing twice is fine")
}

func TestLocal_RemoveOutsideRoot(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)
	assert.Error(t, store.Remove(context.Background(), "/etc/passwd"))
}
