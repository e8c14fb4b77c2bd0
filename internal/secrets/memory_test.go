package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Set("db", "s3cr3t"))

	value, err := store.Get("db")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", value)
}

func TestMemoryStoreUpsert(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Set("db", "first"))
	require.NoError(t, store.Set("db", "second"))

	value, err := store.Get("db")
	require.NoError(t, err)
	assert.Equal(t, "second", value)

	keys, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"db"}, keys, "upsert must not duplicate the key")
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Set("db", "s3cr3t"))
	require.NoError(t, store.Delete("db"))

	_, err := store.Get("db")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDeleteAbsent(t *testing.T) {
	store := NewMemoryStore()

	err := store.Delete("never-stored")
	assert.ErrorIs(t, err, ErrNotFound, "deleting an absent key must not silently succeed")
}

func TestMemoryStoreListSorted(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Set("zebra", "1"))
	require.NoError(t, store.Set("apple", "2"))
	require.NoError(t, store.Set("mango", "3"))

	keys, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "mango", "zebra"}, keys)
}

func TestMemoryStoreListEmpty(t *testing.T) {
	store := NewMemoryStore()

	keys, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, keys)
}
