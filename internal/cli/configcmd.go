package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/kcpwd/kcpwd/internal/config"
	"github.com/kcpwd/kcpwd/internal/output"
)

// ConfigCmd holds configuration subcommands
type ConfigCmd struct {
	Get   ConfigGetCmd   `cmd:"" help:"Get a configuration value"`
	Set   ConfigSetCmd   `cmd:"" help:"Set a configuration value"`
	Unset ConfigUnsetCmd `cmd:"" help:"Remove a configuration value"`
	List  ConfigListCmd  `cmd:"" name:"list" help:"List all configuration values"`
	Path  ConfigPathCmd  `cmd:"" help:"Show config file path"`
}

// ConfigGetCmd gets a single config value
type ConfigGetCmd struct {
	Key string `arg:"" help:"Configuration key"`
}

func (cmd *ConfigGetCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	value, err := cfg.Get(cmd.Key)
	if err != nil {
		return (&output.CLIError{
			Message:  err.Error(),
			ExitCode: output.ExitUsage,
		}).WithHint("Known keys: " + strings.Join(config.Keys(), ", "))
	}

	fmt.Fprintln(os.Stdout, value)
	return nil
}

// ConfigSetCmd sets a config value and saves
type ConfigSetCmd struct {
	Key   string `arg:"" help:"Configuration key"`
	Value string `arg:"" help:"Value to set"`
}

func (cmd *ConfigSetCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	if err := cfg.Set(cmd.Key, cmd.Value); err != nil {
		return (&output.CLIError{
			Message:  err.Error(),
			ExitCode: output.ExitUsage,
		}).WithHint("Known keys: " + strings.Join(config.Keys(), ", "))
	}

	if err := cfg.Save(); err != nil {
		return &output.CLIError{
			Message:  fmt.Sprintf("Failed to save config: %v", err),
			ExitCode: output.ExitGeneral,
		}
	}

	fmt.Fprintf(os.Stderr, "✓ %s = %s\n", cmd.Key, cmd.Value)
	return nil
}

// ConfigUnsetCmd clears a config value and saves
type ConfigUnsetCmd struct {
	Key string `arg:"" help:"Configuration key"`
}

func (cmd *ConfigUnsetCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	if err := cfg.Unset(cmd.Key); err != nil {
		return (&output.CLIError{
			Message:  err.Error(),
			ExitCode: output.ExitUsage,
		}).WithHint("Known keys: " + strings.Join(config.Keys(), ", "))
	}

	if err := cfg.Save(); err != nil {
		return &output.CLIError{
			Message:  fmt.Sprintf("Failed to save config: %v", err),
			ExitCode: output.ExitGeneral,
		}
	}

	fmt.Fprintf(os.Stderr, "✓ %s unset\n", cmd.Key)
	return nil
}

// ConfigListCmd lists all config values
type ConfigListCmd struct{}

// configRow is a single row in config list output
type configRow struct {
	Key   string
	Value string
}

func (cmd *ConfigListCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	rows := make([]configRow, 0, len(config.Keys()))
	for _, key := range config.Keys() {
		value, err := cfg.Get(key)
		if err != nil {
			continue
		}
		rows = append(rows, configRow{Key: key, Value: value})
	}

	return fp.Formatter.PrintList(rows, []output.Column{
		{Name: "Key", Key: "Key"},
		{Name: "Value", Key: "Value"},
	})
}

// ConfigPathCmd prints the config file location
type ConfigPathCmd struct{}

func (cmd *ConfigPathCmd) Run(fp *FormatterProvider) error {
	fmt.Fprintln(os.Stdout, config.ConfigPath())
	return nil
}
