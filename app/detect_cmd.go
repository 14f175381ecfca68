package app

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/shellarg/shellarg/shell"
	"github.com/shellarg/shellarg/ui"
)

type detectCmd struct{}

func (d *detectCmd) Run(l *ui.UI) error {
	sh, err := shell.Detect()
	if err != nil {
		return errors.WithStack(err)
	}
	fmt.Println(sh.Name())
	return nil
}
