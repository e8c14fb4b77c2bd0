package kcpwd

import "fmt"

// Args carries named arguments for a callable wrapped by RequirePassword.
type Args map[string]any

// DefaultParam is the parameter RequirePassword binds when no other name
// is given via WithParam.
const DefaultParam = "password"

// SecretNotFoundError reports that no secret is stored under the key a
// wrapped callable requires. The wrapped function is never invoked in
// this case.
type SecretNotFoundError struct {
	Key string
}

func (e *SecretNotFoundError) Error() string {
	return fmt.Sprintf("no password found for %q", e.Key)
}

// InjectOption configures RequirePassword.
type InjectOption func(*injector)

type injector struct {
	param    string
	keychain *Keychain
}

// WithParam names the parameter that receives the secret.
func WithParam(name string) InjectOption {
	return func(in *injector) { in.param = name }
}

// WithKeychain fetches the secret from k instead of the default keychain.
func WithKeychain(k *Keychain) InjectOption {
	return func(in *injector) { in.keychain = k }
}

// RequirePassword wraps fn so the secret stored under key is bound into
// its password parameter at call time:
//
//	connect := kcpwd.RequirePassword("my_db", func(args kcpwd.Args) (*DB, error) {
//		return dial(args["host"].(string), args["password"].(string))
//	})
//	db, err := connect(kcpwd.Args{"host": "localhost"})
//
// A parameter the caller supplies explicitly always wins; the store is
// not consulted at all in that case. When the secret is absent the
// wrapper returns a *SecretNotFoundError without invoking fn. The secret
// is fetched fresh on every call, so a rotated password takes effect on
// the next invocation. The result and error of fn pass through unchanged.
func RequirePassword[T any](key string, fn func(Args) (T, error), opts ...InjectOption) func(Args) (T, error) {
	in := &injector{param: DefaultParam}
	for _, opt := range opts {
		opt(in)
	}

	return func(args Args) (T, error) {
		// Explicit argument wins over the stored secret
		if _, ok := args[in.param]; ok {
			return fn(args)
		}

		secret, found := in.getPassword(key)
		if !found {
			var zero T
			return zero, &SecretNotFoundError{Key: key}
		}

		// Never mutate the caller's map
		bound := make(Args, len(args)+1)
		for name, value := range args {
			bound[name] = value
		}
		bound[in.param] = secret

		return fn(bound)
	}
}

func (in *injector) getPassword(key string) (string, bool) {
	if in.keychain != nil {
		return in.keychain.GetPassword(key, false)
	}
	return GetPassword(key, false)
}
