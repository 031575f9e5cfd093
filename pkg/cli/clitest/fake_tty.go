// Package clitest provides utilities for testing cli.Session and its users.
package clitest

import (
	"bytes"
	"errors"
	"io"

	"src.rell.sh/pkg/cli"
)

// ErrNotSetUp is returned by the ReadByte method of a fake TTY when it is
// called before Setup or after the restore function is called.
var ErrNotSetUp = errors.New("fake TTY is not set up")

// An implementation of the cli.TTY interface that is useful in tests.
type fakeTTY struct {
	input   []byte
	pending []byte
	output  bytes.Buffer

	setupErr, restoreErr, readErr, flushErr error

	setUp        bool
	setupCalls   int
	restoreCalls int
}

// NewFakeTTY creates a new fake TTY with the given pieces of input, and a
// handle for controlling it. When all the input has been read, ReadByte
// returns io.EOF unless a read error has been set.
func NewFakeTTY(input ...string) (cli.TTY, TTYCtrl) {
	tty := &fakeTTY{}
	for _, s := range input {
		tty.input = append(tty.input, s...)
	}
	return tty, TTYCtrl{tty}
}

func (t *fakeTTY) Setup() (func() error, error) {
	if t.setupErr != nil {
		return nil, t.setupErr
	}
	t.setupCalls++
	t.setUp = true
	return func() error {
		t.restoreCalls++
		t.setUp = false
		return t.restoreErr
	}, nil
}

func (t *fakeTTY) ReadByte() (byte, error) {
	if !t.setUp {
		return 0, ErrNotSetUp
	}
	if len(t.input) == 0 {
		if t.readErr != nil {
			return 0, t.readErr
		}
		return 0, io.EOF
	}
	b := t.input[0]
	t.input = t.input[1:]
	return b, nil
}

func (t *fakeTTY) Write(p []byte) (int, error) {
	t.pending = append(t.pending, p...)
	return len(p), nil
}

func (t *fakeTTY) Flush() error {
	if t.flushErr != nil {
		return t.flushErr
	}
	t.output.Write(t.pending)
	t.pending = nil
	return nil
}

// TTYCtrl is an interface for controlling a fake terminal.
type TTYCtrl struct{ *fakeTTY }

// Inject appends input to the fake terminal.
func (t TTYCtrl) Inject(input string) { t.input = append(t.input, input...) }

// SetSetupError causes Setup to fail with the given error.
func (t TTYCtrl) SetSetupError(err error) { t.setupErr = err }

// SetRestoreError causes the restore function to fail with the given error.
// The terminal is still considered restored.
func (t TTYCtrl) SetRestoreError(err error) { t.restoreErr = err }

// SetReadError causes ReadByte to fail with the given error once the input is
// exhausted.
func (t TTYCtrl) SetReadError(err error) { t.readErr = err }

// SetFlushError causes Flush to fail with the given error.
func (t TTYCtrl) SetFlushError(err error) { t.flushErr = err }

// Output returns all the output that has been flushed.
func (t TTYCtrl) Output() string { return t.output.String() }

// ResetOutput discards all the output that has been flushed.
func (t TTYCtrl) ResetOutput() { t.output.Reset() }

// IsSetUp returns whether the terminal is currently set up.
func (t TTYCtrl) IsSetUp() bool { return t.setUp }

// SetupCalls returns how many times Setup has succeeded.
func (t TTYCtrl) SetupCalls() int { return t.setupCalls }

// RestoreCalls returns how many times the restore function has been called.
func (t TTYCtrl) RestoreCalls() int { return t.restoreCalls }
