package cli

import (
	"os"

	"golang.org/x/term"
)

// Globals holds global flags available to all commands
type Globals struct {
	Output  string `help:"Output format" default:"auto" enum:"json,plain,rich,auto" short:"o" env:"KCPWD_OUTPUT"`
	Quiet   bool   `help:"Suppress warnings and success chatter" short:"q" env:"KCPWD_QUIET"`
	NoInput bool   `help:"Disable interactive prompts (fail instead)" env:"KCPWD_NO_INPUT"`
	Force   bool   `help:"Skip confirmation prompts for destructive operations" env:"KCPWD_FORCE"`
}

// ResolvedOutput returns the effective output mode.
// "auto" falls back to the config default, then TTY detection:
// stdout is a TTY -> rich, else -> plain.
func (g *Globals) ResolvedOutput(configDefault string) string {
	if g.Output != "auto" {
		return g.Output
	}
	if configDefault != "" && configDefault != "auto" {
		return configDefault
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		return "rich"
	}

	return "plain"
}
