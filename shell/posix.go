package shell

import (
	"github.com/shellarg/shellarg/escape"
)

// Posix quotes for Bourne-family shells.
type Posix struct {
	name string
}

func (p *Posix) Name() string { return p.name }

func (p *Posix) Quote(arg string) string { return escape.PosixString(arg) }

func (p *Posix) QuoteCommand(args []string) string { return quoteCommand(p, args) }
