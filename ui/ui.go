// Package ui provides the terminal log formatter for shellarg.
//
// Results are written to stdout by commands themselves; the UI only
// renders leveled diagnostics on stderr, colourised when it is a TTY.
package ui

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
)

// UI writes leveled log output.
type UI struct {
	lock        sync.Mutex
	stderr      io.Writer
	stderrIsTTY bool
	minlevel    Level
	exit        func(int)
}

var _ Logger = &UI{}

// New creates a new UI.
func New(level Level, stderr io.Writer, stderrIsTTY bool) *UI {
	return &UI{
		stderr:      stderr,
		stderrIsTTY: stderrIsTTY,
		minlevel:    level,
		exit:        os.Exit,
	}
}

// NewForTesting returns a new UI that writes all output to the returned
// bytes.Buffer and never exits the process.
func NewForTesting() (*UI, *bytes.Buffer) {
	b := &bytes.Buffer{}
	ui := New(LevelTrace, b, false)
	ui.exit = func(int) {}
	return ui, b
}

// SetLevel sets the UI's minimum log level.
func (w *UI) SetLevel(level Level) {
	w.lock.Lock()
	defer w.lock.Unlock()
	w.minlevel = level
}

// WillLog returns true if "level" will be logged.
func (w *UI) WillLog(level Level) bool {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.minlevel.Visible(level)
}

// WriterAt returns a writer whose lines are logged at "level".
func (w *UI) WriterAt(level Level) io.Writer {
	return &logWriter{level: level, logf: w.logf}
}

// Tracef logs a message at trace level.
func (w *UI) Tracef(format string, args ...interface{}) {
	w.logf(LevelTrace, format, args...)
}

// Debugf logs a message at debug level.
func (w *UI) Debugf(format string, args ...interface{}) {
	w.logf(LevelDebug, format, args...)
}

// Infof logs a message at info level.
func (w *UI) Infof(format string, args ...interface{}) {
	w.logf(LevelInfo, format, args...)
}

// Warnf logs a message at warning level.
func (w *UI) Warnf(format string, args ...interface{}) {
	w.logf(LevelWarn, format, args...)
}

// Errorf logs a message at error level.
func (w *UI) Errorf(format string, args ...interface{}) {
	w.logf(LevelError, format, args...)
}

// Fatalf logs a fatal message and exits with a non-zero status.
func (w *UI) Fatalf(format string, args ...interface{}) {
	w.logf(LevelFatal, format, args...)
	w.exit(1)
}

func (w *UI) logf(level Level, format string, args ...interface{}) {
	w.lock.Lock()
	defer w.lock.Unlock()
	if !w.minlevel.Visible(level) {
		return
	}
	var msg string
	if w.stderrIsTTY {
		msg += "\033[1m" + levelColor[level]
		msg += level.String() + ": "
		msg += "\033[0m" + levelColor[level]
		msg += fmt.Sprintf(format, args...)
		msg += "\033[0m"
	} else {
		msg += level.String() + ": "
		msg += fmt.Sprintf(format, args...)
	}
	fmt.Fprintf(w.stderr, "%s\n", msg)
}
