// Package kcpwd stores and retrieves named secrets using the operating
// system's credential store. Durable storage, encryption and access
// control are delegated entirely to the OS; this package is a thin facade
// with boolean/optional results for ergonomic use from scripts and
// programs.
//
//	kcpwd.SetPassword("my_db", "secret123")
//	password, ok := kcpwd.GetPassword("my_db", false)
//
// Typed errors exist inside the store layer; this boundary flattens them:
// a failed operation is false/absent, whatever the cause. The one
// exception is RequirePassword, which fails loudly when its secret is
// missing.
package kcpwd

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/kcpwd/kcpwd/internal/clipboard"
	"github.com/kcpwd/kcpwd/internal/secrets"
)

// ServiceName is the credential-store namespace holding kcpwd entries.
const ServiceName = secrets.DefaultService

// Keychain provides secret storage bound to one credential-store
// namespace. The zero value is not usable; obtain one via Open.
type Keychain struct {
	store secrets.Store
	copy  func(string) error
	diag  io.Writer
}

// Open binds a Keychain to the given namespace in the OS credential
// store. An empty service uses ServiceName.
func Open(service string) (*Keychain, error) {
	store, err := secrets.NewStore(service)
	if err != nil {
		return nil, err
	}
	return &Keychain{
		store: store,
		copy:  clipboard.Copy,
		diag:  os.Stderr,
	}, nil
}

// SetPassword stores value under key, overwriting any previous value.
// Returns false if the store rejected the write.
func (k *Keychain) SetPassword(key, value string) bool {
	return k.store.Set(key, value) == nil
}

// GetPassword retrieves the secret stored under key. The second result is
// false when no secret exists or the OS denied access. When
// copyToClipboard is true and the secret was found, it is also written to
// the system clipboard; a clipboard failure is reported on the diagnostic
// writer and does not affect the returned values.
func (k *Keychain) GetPassword(key string, copyToClipboard bool) (string, bool) {
	value, err := k.store.Get(key)
	if err != nil {
		return "", false
	}

	if copyToClipboard {
		if cerr := k.copy(value); cerr != nil {
			fmt.Fprintf(k.diag, "Warning: %v\n", cerr)
		}
	}

	return value, true
}

// DeletePassword removes the secret stored under key. Returns true only
// if a secret actually existed and was removed.
func (k *Keychain) DeletePassword(key string) bool {
	return k.store.Delete(key) == nil
}

// ListKeys returns all stored key names, sorted. Returns nil if the store
// could not be read.
func (k *Keychain) ListKeys() []string {
	keys, err := k.store.List()
	if err != nil {
		return nil
	}
	return keys
}

var (
	stdOnce sync.Once
	std     *Keychain
	stdErr  error
)

// defaultKeychain lazily opens the process-wide keychain under
// ServiceName. The handle is initialized once and never mutated.
func defaultKeychain() (*Keychain, error) {
	stdOnce.Do(func() {
		std, stdErr = Open(ServiceName)
	})
	return std, stdErr
}

// SetPassword stores value under key in the default kcpwd namespace.
func SetPassword(key, value string) bool {
	k, err := defaultKeychain()
	if err != nil {
		return false
	}
	return k.SetPassword(key, value)
}

// GetPassword retrieves the secret stored under key in the default kcpwd
// namespace, optionally copying it to the clipboard.
func GetPassword(key string, copyToClipboard bool) (string, bool) {
	k, err := defaultKeychain()
	if err != nil {
		return "", false
	}
	return k.GetPassword(key, copyToClipboard)
}

// DeletePassword removes the secret stored under key in the default kcpwd
// namespace.
func DeletePassword(key string) bool {
	k, err := defaultKeychain()
	if err != nil {
		return false
	}
	return k.DeletePassword(key)
}

// ListKeys returns all key names stored in the default kcpwd namespace.
func ListKeys() []string {
	k, err := defaultKeychain()
	if err != nil {
		return nil
	}
	return k.ListKeys()
}
