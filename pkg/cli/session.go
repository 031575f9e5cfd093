// Package cli implements an embeddable interactive line editor.
//
// A Session reads keystrokes from a terminal one byte at a time, redraws the
// line on every keystroke with its first word highlighted according to a
// keyword table, and calls the handler of the keyword when a line is
// completed.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"src.rell.sh/pkg/logutil"
	"src.rell.sh/pkg/ui"
)

var logger = logutil.GetLogger("[cli] ")

// SessionSpec specifies the configuration and initial state of a Session.
type SessionSpec struct {
	// TTY to use. If nil, a TTY using os.Stdin and os.Stdout is used.
	TTY TTY
	// Prompt shown before the line.
	Prompt string
	// Renderer called for every byte read. If nil, DefaultRender is used.
	Renderer Renderer
	// Colour used to highlight words that are not keywords. If zero, ui.Red
	// is used.
	ErrorColor ui.Color
}

// Session is an interactive line editing session.
//
// A Session is not safe for concurrent use. Independent Sessions share no
// state.
type Session struct {
	// The line being edited. It never contains a newline.
	Line string
	// Position of the cursor in Line. Since only appending is supported, it
	// is always len(Line).
	Pos int
	// The prompt. It can be changed by handlers.
	Prompt string
	// Whether Run should keep reading input. Handlers can set it to false,
	// or call Stop, to cause Run to return after the handler returns.
	Running bool
	// Colour used to highlight words that are not keywords.
	ErrorColor ui.Color

	id       string
	tty      TTY
	renderer Renderer
	keywords keywords
}

// New creates a Session on the standard input and output with the given
// prompt.
func New(prompt string) *Session {
	return NewSession(SessionSpec{Prompt: prompt})
}

// NewSession creates a new Session from the given specification.
func NewSession(spec SessionSpec) *Session {
	s := &Session{
		Prompt:     spec.Prompt,
		Running:    true,
		ErrorColor: spec.ErrorColor,
		id:         uuid.NewString(),
		tty:        spec.TTY,
		renderer:   spec.Renderer,
		keywords:   make(keywords),
	}
	if s.tty == nil {
		s.tty = NewTTY(os.Stdin, os.Stdout)
	}
	if s.renderer == nil {
		s.renderer = DefaultRender
	}
	if s.ErrorColor == ui.Default {
		s.ErrorColor = ui.Red
	}
	return s
}

// ID returns a string that identifies the session in logs.
func (s *Session) ID() string { return s.id }

// SetRenderer replaces the renderer. If r is nil, DefaultRender is used.
func (s *Session) SetRenderer(r Renderer) {
	if r == nil {
		r = DefaultRender
	}
	s.renderer = r
}

// Stop causes Run to return once the current handler returns.
func (s *Session) Stop() { s.Running = false }

// Out returns the writer for the terminal output. Output is flushed when the
// prompt is redrawn, or by calling Flush.
func (s *Session) Out() io.Writer { return s.tty }

// Flush flushes the terminal output.
func (s *Session) Flush() error {
	if err := s.tty.Flush(); err != nil {
		return &FlushError{err}
	}
	return nil
}

// Printf writes formatted output to the terminal.
func (s *Session) Printf(format string, args ...any) {
	fmt.Fprintf(s.tty, format, args...)
}

// Println writes output to the terminal, followed by a newline.
func (s *Session) Println(args ...any) {
	fmt.Fprintln(s.tty, args...)
}
