package app

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/shellarg/shellarg/shell"
	"github.com/shellarg/shellarg/ui"
)

type quoteCmd struct {
	Shell string   `help:"Shell dialect to quote for (${enum})." default:"auto" enum:"auto,posix,sh,bash,dash,ksh,zsh,cmd" predictor:"shell"`
	Null  bool     `short:"0" name:"null" help:"Read NUL-delimited arguments from stdin when none are given."`
	Args  []string `arg:"" optional:"" placeholder:"ARG" help:"Arguments to quote."`
}

func (q *quoteCmd) Run(l *ui.UI) error {
	sh, err := dialect(q.Shell)
	if err != nil {
		return errors.WithStack(err)
	}
	l.Debugf("quoting for %s", sh.Name())

	args := q.Args
	if len(args) == 0 {
		args, err = readArgs(os.Stdin, q.Null)
		if err != nil {
			return errors.Wrap(err, "failed to read arguments from stdin")
		}
	}
	fmt.Println(sh.QuoteCommand(args))
	return nil
}

func dialect(name string) (shell.Shell, error) {
	if name == "auto" {
		return shell.Detect()
	}
	return shell.ByName(name)
}

// readArgs reads one argument per line, or per NUL byte when
// nullDelimited, from r. A trailing delimiter does not produce an empty
// final argument.
func readArgs(r io.Reader, nullDelimited bool) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	delim := byte('\n')
	if nullDelimited {
		delim = 0
	}
	data = bytes.TrimSuffix(data, []byte{delim})
	parts := bytes.Split(data, []byte{delim})
	args := make([]string, len(parts))
	for i, part := range parts {
		args[i] = string(part)
	}
	return args, nil
}
