// Package shell maps shells to the quoting dialect their command lines
// need, and detects which shell the user is running.
package shell

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-ps"
	"github.com/pkg/errors"
	"github.com/willdonnelly/passwd"
)

// Shell quotes arguments for a particular family of shells.
type Shell interface {
	Name() string
	// Quote returns arg quoted such that the shell reads it back as a
	// single literal word.
	Quote(arg string) string
	// QuoteCommand quotes each argument and joins them with single
	// spaces, forming a command line.
	QuoteCommand(args []string) string
}

var shells = map[string]Shell{
	"sh":         &Posix{"sh"},
	"bash":       &Posix{"bash"},
	"dash":       &Posix{"dash"},
	"ksh":        &Posix{"ksh"},
	"posix":      &Posix{"posix"},
	"zsh":        &Zsh{},
	"cmd":        &Cmd{"cmd"},
	"powershell": &Cmd{"powershell"},
	"pwsh":       &Cmd{"pwsh"},
}

// ByName returns the quoting dialect registered for the given shell name.
func ByName(name string) (Shell, error) {
	name = strings.TrimSuffix(strings.ToLower(name), ".exe")
	shell, ok := shells[name]
	if !ok {
		return nil, errors.Errorf("unsupported shell %q", name)
	}
	return shell, nil
}

// Detect the user's shell.
func Detect() (Shell, error) {
	// First look for a shell in the parent processes.
	pid := os.Getppid()
	for {
		process, err := ps.FindProcess(pid)
		if err != nil || process == nil {
			break
		}
		name := filepath.Base(process.Executable())
		if shell, err := ByName(name); err == nil {
			return shell, nil
		}
		pid = process.PPid()
		if pid == 0 {
			break
		}
	}

	// Next, try to pull the shell from the user's password entry.
	u, err := user.Current()
	if err != nil {
		return nil, errors.Wrap(err, "could not retrieve current user")
	}
	pw, err := passwd.Parse()
	if err != nil {
		return nil, errors.Wrap(err, "couldn't locate/parse /etc/passwd database")
	}
	entry, ok := pw[u.Username]
	if !ok {
		return nil, errors.Errorf("/etc/passwd file entry for %q is missing", u.Username)
	}
	return ByName(filepath.Base(entry.Shell))
}

func quoteCommand(shell Shell, args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = shell.Quote(arg)
	}
	return strings.Join(quoted, " ")
}
