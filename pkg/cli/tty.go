package cli

import (
	"bufio"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"src.rell.sh/pkg/cli/term"
)

// TTY is the type the terminal dependency of a Session needs to satisfy.
type TTY interface {
	// Setup sets up the terminal for the Session: keystrokes are delivered
	// as soon as they are typed and are not echoed.
	//
	// This method returns a restore function that undoes the setup. The
	// restore function is safe to call more than once.
	//
	// This method should be called before any other method is called.
	Setup() (restore func() error, err error)

	// ReadByte blocks until one byte of input is available and returns it.
	ReadByte() (byte, error)

	// Write writes to the output of the terminal. Writes may be buffered
	// until Flush is called.
	io.Writer
	// Flush writes all buffered output to the terminal.
	Flush() error
}

// Signals that would terminate the process while the terminal is set up.
var fatalSignals = []os.Signal{
	os.Interrupt, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT}

type aTTY struct {
	in, out *os.File
	w       *bufio.Writer
}

// NewTTY returns a new TTY from input and output terminal files.
//
// While the terminal is set up, signals that would normally terminate the
// process are intercepted: the terminal is restored first, and then the
// signal is delivered again with its default behavior.
func NewTTY(in, out *os.File) TTY {
	return &aTTY{in, out, bufio.NewWriter(out)}
}

func (t *aTTY) Setup() (func() error, error) {
	restore, err := term.Setup(t.in, t.out)
	if err != nil {
		return nil, err
	}

	sigCh := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigCh, fatalSignals...)
	go func() {
		select {
		case sig := <-sigCh:
			restore()
			reraise(sig)
		case <-done:
		}
	}()

	var stopOnce sync.Once
	return func() error {
		stopOnce.Do(func() {
			signal.Stop(sigCh)
			close(done)
		})
		return restore()
	}, nil
}

func reraise(sig os.Signal) {
	signal.Reset(sig)
	p, err := os.FindProcess(os.Getpid())
	if err == nil {
		err = p.Signal(sig)
	}
	if err != nil {
		// The signal can't be delivered to ourselves, as is the case for
		// os.Interrupt on Windows.
		os.Exit(2)
	}
}

func (t *aTTY) ReadByte() (byte, error) {
	var b [1]byte
	n, err := t.in.Read(b[:])
	if err != nil {
		return 0, err
	}
	if n != 1 {
		return 0, io.ErrNoProgress
	}
	return b[0], nil
}

func (t *aTTY) Write(p []byte) (int, error) { return t.w.Write(p) }

func (t *aTTY) Flush() error { return t.w.Flush() }

type pipeTTY struct {
	r *bufio.Reader
	w *bufio.Writer
}

// NewPipeTTY returns a TTY that reads from and writes to arbitrary streams.
// Its Setup method does nothing. It is suitable when input does not come
// from a terminal, like when it is piped from another program.
func NewPipeTTY(in io.Reader, out io.Writer) TTY {
	return pipeTTY{bufio.NewReader(in), bufio.NewWriter(out)}
}

func (pipeTTY) Setup() (func() error, error) {
	return func() error { return nil }, nil
}

func (t pipeTTY) ReadByte() (byte, error) { return t.r.ReadByte() }

func (t pipeTTY) Write(p []byte) (int, error) { return t.w.Write(p) }

func (t pipeTTY) Flush() error { return t.w.Flush() }
