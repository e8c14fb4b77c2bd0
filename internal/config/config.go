package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/yosuke-furukawa/json5/encoding/json5"

	"github.com/kcpwd/kcpwd/internal/secrets"
)

// Config holds the CLI configuration
type Config struct {
	// Service overrides the credential-store namespace (default "kcpwd").
	Service string `json:"service,omitempty"`
	// DefaultOutput sets the output format when --output is "auto".
	DefaultOutput string `json:"default_output,omitempty"`
	// Clipboard controls whether `get` copies to the clipboard: "on"/"off".
	Clipboard string `json:"clipboard,omitempty"`
}

// Load reads config from the XDG path, returns defaults if the file
// doesn't exist.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads config from an explicit path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json5.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Save writes the config to the XDG config path
func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

// SaveTo writes the config to an explicit path with secure permissions.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal as JSON; JSON is valid JSON5
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ServiceName returns the effective credential-store namespace.
func (c *Config) ServiceName() string {
	if c.Service != "" {
		return c.Service
	}
	return secrets.DefaultService
}

// CopyOnGet reports whether `get` should copy the secret to the clipboard
// by default. On unless explicitly turned off.
func (c *Config) CopyOnGet() bool {
	return c.Clipboard != "off"
}

// Get retrieves a config value by key name
func (c *Config) Get(key string) (string, error) {
	v := reflect.ValueOf(c).Elem()
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		if jsonKey(t.Field(i)) == key {
			return v.Field(i).String(), nil
		}
	}

	return "", fmt.Errorf("unknown config key: %s", key)
}

// Set sets a config value by key name. The caller saves.
func (c *Config) Set(key, value string) error {
	if err := validate(key, value); err != nil {
		return err
	}

	v := reflect.ValueOf(c).Elem()
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		if jsonKey(t.Field(i)) == key {
			v.Field(i).SetString(value)
			return nil
		}
	}

	return fmt.Errorf("unknown config key: %s", key)
}

// Unset resets a config value to its zero value. The caller saves.
func (c *Config) Unset(key string) error {
	v := reflect.ValueOf(c).Elem()
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		if jsonKey(t.Field(i)) == key {
			v.Field(i).SetString("")
			return nil
		}
	}

	return fmt.Errorf("unknown config key: %s", key)
}

// Keys returns the known config key names in declaration order.
func Keys() []string {
	t := reflect.TypeOf(Config{})
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		keys = append(keys, jsonKey(t.Field(i)))
	}
	return keys
}

func jsonKey(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	for i := 0; i < len(tag); i++ {
		if tag[i] == ',' {
			return tag[:i]
		}
	}
	return tag
}

func validate(key, value string) error {
	switch key {
	case "default_output":
		switch value {
		case "", "json", "plain", "rich", "auto":
			return nil
		}
		return fmt.Errorf("invalid default_output %q: must be json, plain, rich or auto", value)
	case "clipboard":
		switch value {
		case "", "on", "off":
			return nil
		}
		return fmt.Errorf("invalid clipboard %q: must be on or off", value)
	}
	return nil
}
