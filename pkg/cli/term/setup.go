// Package term sets up terminals for line editing.
package term

import "os"

// Setup sets up the terminal for line editing: input is delivered byte by
// byte as soon as it is typed, and the terminal does not echo it. It returns a
// function that restores the original terminal config.
//
// The restore function may be called more than once; calls after the first
// one do nothing.
func Setup(in, out *os.File) (func() error, error) {
	return setup(in, out)
}
