package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveArtifact(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	relPath, err := store.SaveArtifact("Receipt_Agua_Perez_01_2025.pdf", []byte("%PDF-fake"), "receipts")
	require.NoError(t, err)

	expected := filepath.Join("receipts", time.Now().Format("2006/01"), "Receipt_Agua_Perez_01_2025.pdf")
	assert.Equal(t, expected, relPath)
	assert.True(t, store.Exists(relPath))

	data, err := os.ReadFile(store.GetFullPath(relPath))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(data))
}

func TestSaveArtifactOverwritesDeterministicName(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	first, err := store.SaveArtifact("Receipt_Luz_Gomez_02_2025.pdf", []byte("v1"), "receipts")
	require.NoError(t, err)
	second, err := store.SaveArtifact("Receipt_Luz_Gomez_02_2025.pdf", []byte("v2"), "receipts")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	data, err := os.ReadFile(store.GetFullPath(second))
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))
}

func TestSaveArtifactRejectsPathSeparators(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.SaveArtifact("../escape.pdf", []byte("x"), "receipts")
	assert.Error(t, err)

	_, err = store.SaveArtifact("", []byte("x"), "receipts")
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	relPath, err := store.SaveArtifact("tmp.pdf", []byte("x"), "receipts")
	require.NoError(t, err)

	require.NoError(t, store.Delete(relPath))
	assert.False(t, store.Exists(relPath))
}
