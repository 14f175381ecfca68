package app

import (
	"fmt"
	"os"

	"github.com/kballard/go-shellquote"
	"github.com/pkg/errors"

	"github.com/shellarg/shellarg/ui"
)

type splitCmd struct {
	Null    bool   `short:"0" name:"null" help:"Delimit output words with NUL instead of newlines."`
	CmdLine string `arg:"" placeholder:"CMDLINE" help:"POSIX command line to split."`
}

func (s *splitCmd) Run(l *ui.UI) error {
	words, err := shellquote.Split(s.CmdLine)
	if err != nil {
		return errors.Wrap(err, "invalid command line")
	}
	l.Debugf("split into %d words", len(words))
	delim := byte('\n')
	if s.Null {
		delim = 0
	}
	for _, word := range words {
		fmt.Fprintf(os.Stdout, "%s%c", word, delim)
	}
	return nil
}
