package app

import (
	"github.com/alecthomas/kong"
	"github.com/willabides/kongplete"

	"github.com/shellarg/shellarg/ui"
)

type cliInterface interface {
	getDebug() bool
	getTrace() bool
	getQuiet() bool
	getLevel() ui.Level
}

// CLI structure.
type cli struct {
	VersionFlag kong.VersionFlag `help:"Show version." name:"version"`
	Debug       bool             `help:"Enable debug logging." short:"d"`
	Trace       bool             `help:"Enable trace logging." short:"t"`
	Quiet       bool             `help:"Disable logging except fatal errors." env:"SHELLARG_QUIET" short:"q"`
	Level       ui.Level         `help:"Set minimum log level (${enum})." env:"SHELLARG_LOG" default:"auto" enum:"auto,trace,debug,info,warn,error,fatal"`

	Quote   quoteCmd   `cmd:"" help:"Quote arguments so a shell reads each back as one literal word."`
	Split   splitCmd   `cmd:"" help:"Split a POSIX command line into its words."`
	Check   checkCmd   `cmd:"" help:"Check shell scripts for unquoted expansions."`
	Detect  detectCmd  `cmd:"" help:"Print the name of the current shell."`
	Version versionCmd `cmd:"" help:"Show version."`
	Noop    noopCmd    `cmd:"" help:"No-op, just exit." hidden:""`

	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions."`

	kong.Plugins
}

func (c *cli) getDebug() bool     { return c.Debug }
func (c *cli) getTrace() bool     { return c.Trace }
func (c *cli) getQuiet() bool     { return c.Quiet }
func (c *cli) getLevel() ui.Level { return ui.AutoLevel(c.Level) }
