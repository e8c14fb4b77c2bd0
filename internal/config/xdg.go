package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// ConfigDir returns the XDG-compliant config directory for kcpwd
// Typically ~/.config/kcpwd/ on Linux
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "kcpwd")
}

// ConfigPath returns the full path to the config file
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json5")
}

// DataDir returns the XDG-compliant data directory for kcpwd
// Typically ~/.local/share/kcpwd/ on Linux (encrypted file fallback lives here)
func DataDir() string {
	return filepath.Join(xdg.DataHome, "kcpwd")
}
