package shell

import (
	"strings"

	"github.com/shellarg/shellarg/escape"
)

// Zsh quotes like the other POSIX shells, except that a word with a
// leading "=" is always quoted because zsh expands =cmd to $(which cmd).
// http://zsh.sourceforge.net/Doc/Release/Expansion.html#g_t_0060_003d_0027-expansion
type Zsh struct{}

func (z *Zsh) Name() string { return "zsh" }

func (z *Zsh) Quote(arg string) string {
	quoted := escape.PosixString(arg)
	if quoted == arg && strings.HasPrefix(arg, "=") {
		return "'" + arg + "'"
	}
	return quoted
}

func (z *Zsh) QuoteCommand(args []string) string { return quoteCommand(z, args) }
