package cli

import (
	"github.com/alecthomas/kong"
	"github.com/willabides/kongplete"

	"github.com/kcpwd/kcpwd/internal/config"
	"github.com/kcpwd/kcpwd/internal/output"
)

// FormatterProvider wraps the formatter interface for Kong binding
type FormatterProvider struct {
	Formatter output.Formatter
	Mode      string
}

// CLI is the root command structure
type CLI struct {
	Globals

	Set     SetCmd     `cmd:"" help:"Store a password for a key"`
	Get     GetCmd     `cmd:"" help:"Retrieve a password and copy it to the clipboard"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored password"`
	List    ListCmd    `cmd:"" help:"List all stored password keys"`
	Config  ConfigCmd  `cmd:"" help:"Configuration commands"`
	Version VersionCmd `cmd:"" help:"Show version information"`

	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
}

// BeforeApply hook runs before any command execution.
// It loads config, creates the formatter, and binds dependencies.
func (c *CLI) BeforeApply(ctx *kong.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	mode := c.ResolvedOutput(cfg.DefaultOutput)
	formatter := &FormatterProvider{
		Formatter: output.New(mode),
		Mode:      mode,
	}

	ctx.Bind(cfg)
	ctx.Bind(formatter)
	ctx.Bind(&c.Globals)

	return nil
}

// VersionCmd shows version information
type VersionCmd struct{}

func (cmd *VersionCmd) Run(ctx *kong.Context) error {
	version := ctx.Model.Vars()["version"]
	println("kcpwd version " + version)
	return nil
}
