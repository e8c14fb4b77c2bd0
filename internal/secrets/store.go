package secrets

import "errors"

// Store is the interface for credential storage. All backends share the
// same error contract: ErrNotFound for absent keys, ErrAccessDenied when
// the OS declines access, ErrUnavailable when the service cannot be used.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	List() ([]string, error)
}

var (
	// ErrNotFound is returned when a key is not found in the store.
	ErrNotFound = errors.New("key not found")

	// ErrAccessDenied is returned when the OS credential service refuses
	// access, typically because the user declined an authorization prompt.
	// A denial is terminal for that call and is never retried.
	ErrAccessDenied = errors.New("access denied")

	// ErrUnavailable is returned when the credential service cannot be
	// reached or the backing file cannot be used.
	ErrUnavailable = errors.New("credential service unavailable")
)

// DefaultService is the namespace grouping kcpwd entries in the OS
// credential store, keeping them apart from other applications' entries.
const DefaultService = "kcpwd"
