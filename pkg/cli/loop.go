package cli

import (
	"errors"
	"io"
	"strings"

	"src.rell.sh/pkg/errutil"
)

// Run sets up the terminal and runs the input loop, until a handler stops the
// session, a handler returns an error, or an I/O error occurs. The terminal
// is always restored before Run returns.
//
// The error returned by a handler is returned unchanged, unless the output
// written by the handler can't be flushed either. When input reaches
// EOF, Run returns nil. This method is not re-entrant.
func (s *Session) Run() (err error) {
	restore, err := s.tty.Setup()
	if err != nil {
		return &TermModeError{"set up", err}
	}
	defer func() {
		if restoreErr := restore(); restoreErr != nil {
			err = errutil.Multi(err, &TermModeError{"restore", restoreErr})
		}
	}()

	logger.Printf("session %s: started", s.id)
	defer logger.Printf("session %s: stopped", s.id)

	s.Running = true
	if err := s.showPrompt(); err != nil {
		return err
	}
	for s.Running {
		c, err := s.tty.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return &ReadError{err}
		}
		if err := s.renderer(s, c); err != nil {
			return err
		}
		if c == '\n' {
			if err := s.dispatch(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Resolves the first word of the line and calls the handler. The line is
// cleared and the prompt is redrawn unless the session is stopped.
func (s *Session) dispatch() error {
	if words := strings.Fields(s.Line); len(words) > 0 {
		name := words[0]
		if kw, ok := s.Lookup(name); ok {
			if err := s.call(kw); err != nil {
				logger.Printf("session %s: %q failed: %v", s.id, name, err)
				return err
			}
		} else {
			err := UnrecognizedCommandError{name}
			logger.Printf("session %s: %v", s.id, err)
			s.Println(s.ErrorColor.Apply(err.Error()))
		}
	}
	if !s.Running {
		return nil
	}
	s.Line = ""
	s.Pos = 0
	return s.showPrompt()
}

// Calls the handler of kw and flushes what it has written. Keywords without a
// handler only affect highlighting.
func (s *Session) call(kw Keyword) error {
	if kw.Handler == nil {
		return nil
	}
	logger.Printf("session %s: calling %q", s.id, kw.Name)
	err := kw.Handler(s)
	return errutil.Multi(err, s.Flush())
}

func (s *Session) showPrompt() error {
	s.Printf("%s ", s.Prompt)
	return s.Flush()
}
