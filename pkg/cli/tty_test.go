package cli_test

import (
	"errors"
	"strings"
	"testing"

	. "src.rell.sh/pkg/cli"
	"src.rell.sh/pkg/ui"
)

func TestNewPipeTTY(t *testing.T) {
	var out strings.Builder
	s := NewSession(SessionSpec{
		TTY:    NewPipeTTY(strings.NewReader("help\nexit\nhelp\n"), &out),
		Prompt: ">"})
	helps := 0
	s.Register("help", ui.Green, func(s *Session) error {
		helps++
		s.Println("some help")
		return nil
	}, "")
	s.Register("exit", ui.Yellow, func(s *Session) error {
		s.Stop()
		return nil
	}, "")

	if err := s.Run(); err != nil {
		t.Fatal("Run:", err)
	}
	if helps != 1 {
		t.Errorf("help called %d times, want 1", helps)
	}
	if !strings.Contains(out.String(), "\r> "+ui.Green.Apply("help")+"\nsome help\n> ") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestNewPipeTTY_HandlerOutputBeforeStop(t *testing.T) {
	errBye := errors.New("bye failed")
	for _, tc := range []struct {
		name    string
		handler Handler
		wantErr error
	}{
		{"stop", func(s *Session) error {
			s.Println("goodbye")
			s.Stop()
			return nil
		}, nil},
		{"fail", func(s *Session) error {
			s.Println("goodbye")
			return errBye
		}, errBye},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var out strings.Builder
			s := NewSession(SessionSpec{
				TTY:    NewPipeTTY(strings.NewReader("bye\n"), &out),
				Prompt: ">"})
			s.Register("bye", ui.Green, tc.handler, "")

			if err := s.Run(); err != tc.wantErr {
				t.Errorf("Run -> %v, want %v", err, tc.wantErr)
			}
			if !strings.HasSuffix(out.String(), "\ngoodbye\n") {
				t.Errorf("output %q does not end with handler output", out.String())
			}
		})
	}
}
