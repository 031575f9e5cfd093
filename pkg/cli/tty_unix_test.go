//go:build linux || solaris || darwin || dragonfly || freebsd || netbsd || openbsd

package cli_test

import (
	"io"
	"testing"

	"github.com/creack/pty"
	. "src.rell.sh/pkg/cli"
	"src.rell.sh/pkg/must"
	"src.rell.sh/pkg/sys/eunix"
	"src.rell.sh/pkg/ui"
)

func TestNewTTY_Run(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("pty.Open:", err)
	}
	defer ptmx.Close()
	defer tty.Close()
	go io.Copy(io.Discard, ptmx)
	fd := int(tty.Fd())
	before := must.OK1(eunix.TermiosForFd(fd))

	s := NewSession(SessionSpec{TTY: NewTTY(tty, tty), Prompt: ">"})
	var echoDuring, icanonDuring bool
	s.Register("exit", ui.Yellow, func(s *Session) error {
		term := must.OK1(eunix.TermiosForFd(fd))
		echoDuring, icanonDuring = term.Echo(), term.ICanon()
		s.Stop()
		return nil
	}, "")

	must.OK1(ptmx.Write([]byte("exit\n")))
	if err := s.Run(); err != nil {
		t.Fatal("Run:", err)
	}

	if echoDuring || icanonDuring {
		t.Errorf("in handler, ECHO=%v ICANON=%v, want both false", echoDuring, icanonDuring)
	}
	after := must.OK1(eunix.TermiosForFd(fd))
	if after.Echo() != before.Echo() || after.ICanon() != before.ICanon() {
		t.Errorf("after Run, ECHO=%v ICANON=%v, want %v %v",
			after.Echo(), after.ICanon(), before.Echo(), before.ICanon())
	}
}
