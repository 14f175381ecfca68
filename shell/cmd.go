package shell

import (
	"github.com/shellarg/shellarg/escape"
)

// Cmd quotes for the argv convention used by CreateProcess on Windows.
// This is the convention native argv parsers and PowerShell's native
// command invocation follow, not cmd.exe's caret-escaped batch syntax.
type Cmd struct {
	name string
}

func (c *Cmd) Name() string { return c.name }

func (c *Cmd) Quote(arg string) string { return escape.WindowsString(arg) }

func (c *Cmd) QuoteCommand(args []string) string { return quoteCommand(c, args) }
