package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/kcpwd/kcpwd/internal/clipboard"
	"github.com/kcpwd/kcpwd/internal/config"
	"github.com/kcpwd/kcpwd/internal/output"
	"github.com/kcpwd/kcpwd/internal/secrets"
)

// openStore opens the credential store for the configured namespace.
func openStore(cfg *config.Config) (secrets.Store, error) {
	store, err := secrets.NewStore(cfg.ServiceName())
	if err != nil {
		return nil, &output.CLIError{
			Message:  fmt.Sprintf("Failed to initialize secrets store: %v", err),
			ExitCode: output.ExitGeneral,
		}
	}
	return store, nil
}

// SetCmd implements the set command
type SetCmd struct {
	Key   string `arg:"" help:"Identifier for the password" predictor:"key"`
	Value string `arg:"" optional:"" help:"Password to store (prompted when omitted)"`
}

// Run executes the set command
func (cmd *SetCmd) Run(cfg *config.Config, fp *FormatterProvider, globals *Globals) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	value := cmd.Value
	if value == "" {
		value, err = promptSecret(fmt.Sprintf("Password for %q: ", cmd.Key), globals.NoInput)
		if err != nil {
			return &output.CLIError{
				Message:  fmt.Sprintf("Failed to read password: %v", err),
				ExitCode: output.ExitUsage,
			}
		}
		if value == "" {
			return &output.CLIError{
				Message:  "Empty password not stored",
				ExitCode: output.ExitUsage,
			}
		}
	}

	if err := store.Set(cmd.Key, value); err != nil {
		return &output.CLIError{
			Message:  fmt.Sprintf("Failed to store password for %q: %v", cmd.Key, err),
			ExitCode: output.ExitGeneral,
		}
	}

	if !globals.Quiet {
		fmt.Fprintf(os.Stderr, "✓ Password stored for %q\n", cmd.Key)
	}
	return nil
}

// GetCmd implements the get command
type GetCmd struct {
	Key         string `arg:"" help:"Identifier for the password" predictor:"key"`
	NoClipboard bool   `help:"Skip copying the password to the clipboard"`
}

// Run executes the get command. The secret goes to stdout; everything else
// goes to stderr so the output stays pipeable. Failure paths print nothing
// to stdout.
func (cmd *GetCmd) Run(cfg *config.Config, fp *FormatterProvider, globals *Globals) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	value, err := store.Get(cmd.Key)
	if err != nil {
		if errors.Is(err, secrets.ErrNotFound) {
			return &output.CLIError{
				Message:  fmt.Sprintf("No password found for %q", cmd.Key),
				ExitCode: output.ExitGeneral,
			}
		}
		return &output.CLIError{
			Message:  fmt.Sprintf("Failed to retrieve password for %q: %v", cmd.Key, err),
			ExitCode: output.ExitGeneral,
		}
	}

	fmt.Fprintln(os.Stdout, value)

	if !cmd.NoClipboard && cfg.CopyOnGet() {
		if cerr := clipboard.Copy(value); cerr != nil {
			// Best effort: the retrieval already succeeded
			if !globals.Quiet {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", cerr)
			}
		} else if !globals.Quiet {
			fmt.Fprintf(os.Stderr, "✓ Password for %q copied to clipboard\n", cmd.Key)
		}
	}

	return nil
}

// DeleteCmd implements the delete command
type DeleteCmd struct {
	Key   string `arg:"" help:"Identifier for the password to delete" predictor:"key"`
	Force bool   `help:"Skip confirmation" short:"f"`
}

// Run executes the delete command
func (cmd *DeleteCmd) Run(cfg *config.Config, fp *FormatterProvider, globals *Globals) error {
	if !cmd.Force && !globals.Force {
		if globals.NoInput {
			return (&output.CLIError{
				Message:  "Confirmation required to delete a password",
				ExitCode: output.ExitUsage,
			}).WithHint("Pass --force to delete without a prompt")
		}

		ok, err := confirm(fmt.Sprintf("Delete password for %q? [y/N]: ", cmd.Key))
		if err != nil {
			return &output.CLIError{
				Message:  fmt.Sprintf("Failed to read confirmation: %v", err),
				ExitCode: output.ExitGeneral,
			}
		}
		if !ok {
			fmt.Fprintln(os.Stderr, "Aborted")
			return nil
		}
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	if err := store.Delete(cmd.Key); err != nil {
		if errors.Is(err, secrets.ErrNotFound) {
			return &output.CLIError{
				Message:  fmt.Sprintf("No password found for %q", cmd.Key),
				ExitCode: output.ExitGeneral,
			}
		}
		return &output.CLIError{
			Message:  fmt.Sprintf("Failed to delete password for %q: %v", cmd.Key, err),
			ExitCode: output.ExitGeneral,
		}
	}

	if !globals.Quiet {
		fmt.Fprintf(os.Stderr, "✓ Password for %q deleted\n", cmd.Key)
	}
	return nil
}

// ListCmd implements the list command
type ListCmd struct{}

// keyRow is a single row in list output
type keyRow struct {
	Key string
}

// Run executes the list command. An empty store is success.
func (cmd *ListCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	keys, err := store.List()
	if err != nil {
		return &output.CLIError{
			Message:  fmt.Sprintf("Failed to list stored keys: %v", err),
			ExitCode: output.ExitGeneral,
		}
	}

	// Plain mode keeps the one-key-per-line contract for scripting
	if fp.Mode == "plain" {
		for _, k := range keys {
			fmt.Fprintln(os.Stdout, k)
		}
		return nil
	}

	rows := make([]keyRow, len(keys))
	for i, k := range keys {
		rows[i] = keyRow{Key: k}
	}

	return fp.Formatter.PrintList(rows, []output.Column{
		{Name: "Key", Key: "Key"},
	})
}
