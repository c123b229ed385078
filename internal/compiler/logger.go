package compiler

import (
	"fmt"
	"io"
	"os"
)

const logPrefix = "[lexgen] "

// Logger reports analysis decisions while a rule set is compiled. It is
// silent unless verbose mode was requested, so call sites may log
// unconditionally.
type Logger struct {
	enabled bool
	out     io.Writer
}

// NewLogger returns a logger writing to stderr when enabled.
func NewLogger(enabled bool) *Logger {
	return &Logger{enabled: enabled, out: os.Stderr}
}

// SetOutput redirects the logger, mainly so tests can silence or capture it.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Log writes one formatted line.
func (l *Logger) Log(format string, args ...interface{}) {
	if !l.enabled {
		return
	}
	fmt.Fprintf(l.out, logPrefix+format+"\n", args...)
}

// Section writes a header separating the phases of a compilation run.
func (l *Logger) Section(name string) {
	if !l.enabled {
		return
	}
	fmt.Fprintf(l.out, "\n%s=== %s ===\n", logPrefix, name)
}

// Enabled reports whether verbose mode is on.
func (l *Logger) Enabled() bool {
	return l.enabled
}
