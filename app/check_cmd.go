package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/colour"
	"github.com/pkg/errors"
	"mvdan.cc/sh/v3/syntax"

	"github.com/shellarg/shellarg/ui"
)

type checkCmd struct {
	Script []string `arg:"" placeholder:"SCRIPT" type:"existingfile" predictor:"script" help:"Bourne-compatible shell scripts to check."`
}

func (c *checkCmd) Help() string {
	return `
Reports command arguments that the shell will field-split or expand
rather than pass through as one literal word: unquoted parameter
expansions, unquoted command substitutions, and unquoted globs.
`
}

func (c *checkCmd) Run(l *ui.UI) error {
	parser := syntax.NewParser()
	var issues []issue
	for _, path := range c.Script {
		pissues, err := checkScript(parser, path)
		if err != nil {
			return errors.Wrapf(err, "failed to check %s", path)
		}
		issues = append(issues, pissues...)
	}

	pwd, err := os.Getwd()
	if err != nil {
		return errors.WithStack(err)
	}
	for _, issue := range issues {
		path, err := filepath.Rel(pwd, issue.path)
		if err != nil {
			path = issue.path
		}
		colour.Printf("^1%s:%s:^R %s\n", path, issue.pos, issue.message)
	}
	if len(issues) != 0 {
		return errors.Errorf("%d issues encountered", len(issues))
	}
	l.Debugf("no quoting issues in %d script(s)", len(c.Script))
	return nil
}

type issue struct {
	path    string
	pos     syntax.Pos
	message string
}

func checkScript(parser *syntax.Parser, path string) ([]issue, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer r.Close() // nolint: gosec
	file, err := parser.Parse(r, path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	var issues []issue
	syntax.Walk(file, func(node syntax.Node) bool {
		call, ok := node.(*syntax.CallExpr)
		if !ok {
			return true
		}
		for i, word := range call.Args {
			if i == 0 {
				// The command name itself.
				continue
			}
			if msg := unquotedHazard(word); msg != "" {
				issues = append(issues, issue{path, word.Pos(), msg})
			}
		}
		return true
	})
	return issues, nil
}

// unquotedHazard reports a bare expansion or glob in word. Quoted parts
// (single or double quoted, or ${x+"..."} style) do not appear as
// top-level word parts and are not flagged.
func unquotedHazard(word *syntax.Word) string {
	for _, part := range word.Parts {
		switch part := part.(type) {
		case *syntax.ParamExp:
			return fmt.Sprintf("unquoted parameter expansion $%s", part.Param.Value)
		case *syntax.CmdSubst:
			return "unquoted command substitution"
		case *syntax.Lit:
			if strings.ContainsAny(part.Value, "*?[") {
				return fmt.Sprintf("unquoted glob %q", part.Value)
			}
		}
	}
	return ""
}
