// Package logtest implements support for testing Loggers.
package logtest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jacobpatterson1549/letter-board/log"
)

// DiscardLogger is a Logger that logs nothing.
var DiscardLogger log.Logger = discardLogger{}

// discardLogger is simpler than using the standard log.Logger with the io.Discard writer.
type discardLogger struct{}

// Printf implements the log.Logger interface
func (discardLogger) Printf(format string, v ...interface{}) {
	// NOOP
}

// Logger is a logger that writes each message on its own line of a buffer to be read later.
type Logger struct {
	buf bytes.Buffer
}

// Logger implements the log.Logger interface.
var _ log.Logger = new(Logger)

// Printf implements the log.Logger interface
func (l *Logger) Printf(format string, v ...interface{}) {
	fmt.Fprintf(&l.buf, format, v...)
	l.buf.WriteByte('\n')
}

// String returns the recorded messages.
func (l *Logger) String() string {
	return l.buf.String()
}

// Lines returns the recorded messages, one per line.
func (l *Logger) Lines() []string {
	s := strings.TrimSuffix(l.buf.String(), "\n")
	if len(s) == 0 {
		return nil
	}
	return strings.Split(s, "\n")
}

// Empty returns if nothing has been logged.
func (l *Logger) Empty() bool {
	return l.buf.Len() == 0
}
