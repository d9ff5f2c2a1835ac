// Package log provides the logging abstraction shared by the board components.
package log

// Logger records diagnostic messages that do not stop the board from working.
// Both the standard log.Logger and the page log in the browser implement it.
type Logger interface {
	// Printf writes the formatted string with values to the logger.
	// Arguments are handled in the manner of fmt.Printf.
	Printf(format string, v ...interface{})
}
