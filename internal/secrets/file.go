package secrets

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gofrs/flock"
)

// FileStore implements the Store interface using an AES-256-GCM encrypted
// file. This is a fallback for environments where the OS keyring is
// unavailable (WSL, headless, Docker). Read-modify-write cycles are
// serialized across processes with a flock lock file.
type FileStore struct {
	path string
	key  []byte
}

// NewFileStore creates a file-backed credential store at path.
// If password is empty, uses a machine-specific default (less secure,
// prints a one-time warning).
func NewFileStore(path, password string) (*FileStore, error) {
	var key []byte
	if password == "" {
		// Machine-specific default (less secure than a user password)
		hostname, _ := os.Hostname()
		username := os.Getenv("USER")
		if username == "" {
			username = os.Getenv("USERNAME") // Windows fallback
		}
		machineID := fmt.Sprintf("%s@%s", username, hostname)
		hash := sha256.Sum256([]byte(machineID))
		key = hash[:]
		warnOnce("WARNING: Using machine-specific encryption key. For better security, set a password via KCPWD_STORE_PASSWORD env var.")
	} else {
		// TODO: Replace sha256 key derivation with scrypt or argon2
		hash := sha256.Sum256([]byte(password))
		key = hash[:]
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("%w: failed to create credentials directory: %v", ErrUnavailable, err)
	}

	return &FileStore{
		path: path,
		key:  key,
	}, nil
}

// withLock runs fn while holding the cross-process lock for the
// credentials file. Mutations take the exclusive lock, reads the shared
// one.
func (s *FileStore) withLock(exclusive bool, fn func() error) error {
	lock := flock.New(s.path + ".lock")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var (
		locked bool
		err    error
	)
	if exclusive {
		locked, err = lock.TryLockContext(ctx, 100*time.Millisecond)
	} else {
		locked, err = lock.TryRLockContext(ctx, 100*time.Millisecond)
	}
	if err != nil {
		return fmt.Errorf("%w: failed to acquire lock: %v", ErrUnavailable, err)
	}
	if !locked {
		return fmt.Errorf("%w: failed to acquire lock: timeout", ErrUnavailable)
	}
	defer lock.Unlock()

	return fn()
}

// encrypt encrypts plaintext using AES-256-GCM with a random 12-byte
// nonce. The nonce is prepended to the ciphertext.
func (s *FileStore) encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// decrypt decrypts ciphertext produced by encrypt, extracting the nonce
// from the leading bytes.
func (s *FileStore) decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

// readStore decrypts and parses the credential file. Returns an empty map
// if the file doesn't exist yet.
func (s *FileStore) readStore() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("%w: failed to read credentials file: %v", ErrUnavailable, err)
	}

	if len(data) == 0 {
		return make(map[string]string), nil
	}

	plaintext, err := s.decrypt(data)
	if err != nil {
		// GCM authentication failure: wrong password or tampered file
		return nil, fmt.Errorf("%w: failed to decrypt credentials: %v", ErrAccessDenied, err)
	}

	var store map[string]string
	if err := json.Unmarshal(plaintext, &store); err != nil {
		return nil, fmt.Errorf("%w: failed to parse credentials: %v", ErrUnavailable, err)
	}

	return store, nil
}

// writeStore encrypts and writes the credential map to disk.
func (s *FileStore) writeStore(store map[string]string) error {
	plaintext, err := json.Marshal(store)
	if err != nil {
		return fmt.Errorf("%w: failed to serialize credentials: %v", ErrUnavailable, err)
	}

	ciphertext, err := s.encrypt(plaintext)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if err := os.WriteFile(s.path, ciphertext, 0600); err != nil {
		return fmt.Errorf("%w: failed to write credentials file: %v", ErrUnavailable, err)
	}

	return nil
}

// Get retrieves a credential by key from the encrypted file.
func (s *FileStore) Get(key string) (string, error) {
	var value string
	err := s.withLock(false, func() error {
		store, err := s.readStore()
		if err != nil {
			return err
		}
		v, ok := store[key]
		if !ok {
			return ErrNotFound
		}
		value = v
		return nil
	})
	return value, err
}

// Set stores a credential in the encrypted file, overwriting any previous
// value for the key.
func (s *FileStore) Set(key, value string) error {
	return s.withLock(true, func() error {
		store, err := s.readStore()
		if err != nil {
			return err
		}
		store[key] = value
		return s.writeStore(store)
	})
}

// Delete removes a credential from the encrypted file.
func (s *FileStore) Delete(key string) error {
	return s.withLock(true, func() error {
		store, err := s.readStore()
		if err != nil {
			return err
		}
		if _, ok := store[key]; !ok {
			return ErrNotFound
		}
		delete(store, key)
		return s.writeStore(store)
	})
}

// List returns all credential keys from the encrypted file, sorted.
func (s *FileStore) List() ([]string, error) {
	var keys []string
	err := s.withLock(false, func() error {
		store, err := s.readStore()
		if err != nil {
			return err
		}
		keys = make([]string, 0, len(store))
		for k := range store {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}
