package cli

import "fmt"

// TermModeError is returned by (*Session).Run when the terminal can't be set
// up for line editing, or can't be restored afterwards.
type TermModeError struct {
	// Op is either "set up" or "restore".
	Op  string
	Err error
}

func (e *TermModeError) Error() string {
	return fmt.Sprintf("can't %s terminal: %v", e.Op, e.Err)
}

func (e *TermModeError) Unwrap() error { return e.Err }

// ReadError is returned by (*Session).Run when input can't be read.
type ReadError struct{ Err error }

func (e *ReadError) Error() string { return "can't read input: " + e.Err.Error() }

func (e *ReadError) Unwrap() error { return e.Err }

// FlushError is returned when output can't be written to the terminal.
type FlushError struct{ Err error }

func (e *FlushError) Error() string { return "can't write output: " + e.Err.Error() }

func (e *FlushError) Unwrap() error { return e.Err }

// UnrecognizedCommandError describes a line whose first word is not a
// registered keyword. It is shown to the user, and never returned by Run.
type UnrecognizedCommandError struct{ Name string }

func (e UnrecognizedCommandError) Error() string {
	return "unrecognized command: " + e.Name
}
