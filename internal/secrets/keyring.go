package secrets

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/99designs/keyring"
	"github.com/adrg/xdg"
)

// KeyringStore implements the Store interface using the OS keyring.
type KeyringStore struct {
	ring keyring.Keyring
}

// NewKeyringStore opens the OS keyring under the given service namespace.
// Returns an error if the keyring is unavailable on this platform.
func NewKeyringStore(service string) (*KeyringStore, error) {
	cfg := keyring.Config{
		ServiceName:              service,
		KeychainTrustApplication: true, // macOS: don't prompt every access
		FileDir:                  filepath.Join(xdg.DataHome, "kcpwd", "keyring"),
		FilePasswordFunc:         keyring.TerminalPrompt,
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open keyring: %v", ErrUnavailable, err)
	}

	return &KeyringStore{ring: ring}, nil
}

// Get retrieves a credential by key from the keyring.
func (s *KeyringStore) Get(key string) (string, error) {
	item, err := s.ring.Get(key)
	if err != nil {
		if err == keyring.ErrKeyNotFound {
			return "", ErrNotFound
		}
		return "", classify("get", err)
	}
	return string(item.Data), nil
}

// Set stores a credential in the keyring, overwriting any previous value.
func (s *KeyringStore) Set(key, value string) error {
	item := keyring.Item{
		Key:  key,
		Data: []byte(value),
	}
	if err := s.ring.Set(item); err != nil {
		return classify("set", err)
	}
	return nil
}

// Delete removes a credential from the keyring.
func (s *KeyringStore) Delete(key string) error {
	if err := s.ring.Remove(key); err != nil {
		if err == keyring.ErrKeyNotFound {
			return ErrNotFound
		}
		return classify("delete", err)
	}
	return nil
}

// List returns all credential keys stored under the namespace, sorted so
// the ordering is deterministic within a process run.
func (s *KeyringStore) List() ([]string, error) {
	keys, err := s.ring.Keys()
	if err != nil {
		return nil, classify("list", err)
	}
	sort.Strings(keys)
	return keys, nil
}

// classify maps a raw keyring error onto the store taxonomy. The keyring
// library reports prompt denials as plain errors, so match on the message.
func classify(op string, err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "denied") ||
		strings.Contains(msg, "cancel") ||
		strings.Contains(msg, "not authorized") {
		return fmt.Errorf("%w: keyring %s failed: %v", ErrAccessDenied, op, err)
	}
	return fmt.Errorf("%w: keyring %s failed: %v", ErrUnavailable, op, err)
}
