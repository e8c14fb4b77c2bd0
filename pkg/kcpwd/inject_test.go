package kcpwd

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcpwd/kcpwd/internal/secrets"
)

// countingStore wraps a Store and counts Get calls.
type countingStore struct {
	secrets.Store
	gets int
}

func (s *countingStore) Get(key string) (string, error) {
	s.gets++
	return s.Store.Get(key)
}

func newInjectKeychain() (*Keychain, *countingStore) {
	counting := &countingStore{Store: secrets.NewMemoryStore()}
	k := &Keychain{
		store: counting,
		copy:  func(string) error { return nil },
		diag:  io.Discard,
	}
	return k, counting
}

func TestRequirePasswordInjects(t *testing.T) {
	k, _ := newInjectKeychain()
	require.True(t, k.SetPassword("db", "s3cr3t"))

	var seen Args
	wrapped := RequirePassword("db", func(args Args) (string, error) {
		seen = args
		return "connected", nil
	}, WithKeychain(k))

	result, err := wrapped(Args{"host": "localhost"})
	require.NoError(t, err)
	assert.Equal(t, "connected", result)
	assert.Equal(t, "localhost", seen["host"], "other arguments pass through unchanged")
	assert.Equal(t, "s3cr3t", seen["password"])
}

func TestRequirePasswordExplicitArgumentWins(t *testing.T) {
	k, counting := newInjectKeychain()
	require.True(t, k.SetPassword("db", "s3cr3t"))

	var seen Args
	wrapped := RequirePassword("db", func(args Args) (string, error) {
		seen = args
		return "connected", nil
	}, WithKeychain(k))

	_, err := wrapped(Args{"host": "localhost", "password": "override"})
	require.NoError(t, err)
	assert.Equal(t, "override", seen["password"])
	assert.Zero(t, counting.gets, "store must not be consulted when the argument is explicit")
}

func TestRequirePasswordMissingSecret(t *testing.T) {
	k, _ := newInjectKeychain()

	invoked := false
	wrapped := RequirePassword("absent", func(args Args) (string, error) {
		invoked = true
		return "connected", nil
	}, WithKeychain(k))

	result, err := wrapped(Args{"host": "localhost"})

	var notFound *SecretNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "absent", notFound.Key)
	assert.Empty(t, result)
	assert.False(t, invoked, "wrapped function must not run without its secret")
}

func TestRequirePasswordCustomParam(t *testing.T) {
	k, _ := newInjectKeychain()
	require.True(t, k.SetPassword("api", "tok-123"))

	var seen Args
	wrapped := RequirePassword("api", func(args Args) (string, error) {
		seen = args
		return "ok", nil
	}, WithKeychain(k), WithParam("token"))

	_, err := wrapped(nil)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", seen["token"])
	assert.NotContains(t, seen, "password")
}

func TestRequirePasswordRotationVisible(t *testing.T) {
	k, _ := newInjectKeychain()
	require.True(t, k.SetPassword("db", "v1"))

	wrapped := RequirePassword("db", func(args Args) (string, error) {
		return args["password"].(string), nil
	}, WithKeychain(k))

	first, err := wrapped(nil)
	require.NoError(t, err)
	assert.Equal(t, "v1", first)

	require.True(t, k.SetPassword("db", "v2"))

	second, err := wrapped(nil)
	require.NoError(t, err)
	assert.Equal(t, "v2", second, "secret is fetched on every call, never memoized")
}

func TestRequirePasswordDoesNotMutateCallerArgs(t *testing.T) {
	k, _ := newInjectKeychain()
	require.True(t, k.SetPassword("db", "s3cr3t"))

	wrapped := RequirePassword("db", func(args Args) (string, error) {
		return "ok", nil
	}, WithKeychain(k))

	args := Args{"host": "localhost"}
	_, err := wrapped(args)
	require.NoError(t, err)
	assert.NotContains(t, args, "password")
	assert.Len(t, args, 1)
}

func TestRequirePasswordPropagatesResultAndError(t *testing.T) {
	k, _ := newInjectKeychain()
	require.True(t, k.SetPassword("db", "s3cr3t"))

	sentinel := errors.New("dial failed")
	wrapped := RequirePassword("db", func(args Args) (int, error) {
		return 42, sentinel
	}, WithKeychain(k))

	result, err := wrapped(nil)
	assert.Equal(t, 42, result)
	assert.ErrorIs(t, err, sentinel, "the wrapper adds no error translation of its own")
}

func TestSecretNotFoundErrorMessage(t *testing.T) {
	err := &SecretNotFoundError{Key: "db"}
	assert.Equal(t, `no password found for "db"`, err.Error())
}
