package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credentials.enc")
	store, err := NewFileStore(path, "test-password")
	require.NoError(t, err)
	return store, path
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, _ := newTestFileStore(t)

	require.NoError(t, store.Set("db", "s3cr3t"))

	value, err := store.Get("db")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", value)
}

func TestFileStoreUpsert(t *testing.T) {
	store, _ := newTestFileStore(t)

	require.NoError(t, store.Set("db", "first"))
	require.NoError(t, store.Set("db", "second"))

	value, err := store.Get("db")
	require.NoError(t, err)
	assert.Equal(t, "second", value)
}

func TestFileStoreGetMissing(t *testing.T) {
	store, _ := newTestFileStore(t)

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreDelete(t *testing.T) {
	store, _ := newTestFileStore(t)

	require.NoError(t, store.Set("db", "s3cr3t"))
	require.NoError(t, store.Delete("db"))

	_, err := store.Get("db")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreDeleteAbsent(t *testing.T) {
	store, _ := newTestFileStore(t)

	err := store.Delete("never-stored")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreListSorted(t *testing.T) {
	store, _ := newTestFileStore(t)

	require.NoError(t, store.Set("zebra", "1"))
	require.NoError(t, store.Set("apple", "2"))
	require.NoError(t, store.Set("mango", "3"))

	keys, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "mango", "zebra"}, keys)
}

func TestFileStoreCiphertextOpaque(t *testing.T) {
	store, path := newTestFileStore(t)

	secret := "hunter2-very-secret-value"
	require.NoError(t, store.Set("database-admin", secret))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), secret, "secret must not appear in plaintext on disk")
	assert.NotContains(t, string(data), "database-admin", "key names must not appear in plaintext on disk")
}

func TestFileStoreWrongPassword(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.enc")

	first, err := NewFileStore(path, "correct-password")
	require.NoError(t, err)
	require.NoError(t, first.Set("db", "s3cr3t"))

	second, err := NewFileStore(path, "wrong-password")
	require.NoError(t, err)

	_, err = second.Get("db")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.enc")

	first, err := NewFileStore(path, "test-password")
	require.NoError(t, err)
	require.NoError(t, first.Set("db", "s3cr3t"))

	second, err := NewFileStore(path, "test-password")
	require.NoError(t, err)

	value, err := second.Get("db")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", value)
}

func TestFileStoreFilePermissions(t *testing.T) {
	store, path := newTestFileStore(t)

	require.NoError(t, store.Set("db", "s3cr3t"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
