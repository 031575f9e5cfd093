//go:build linux || solaris || darwin || dragonfly || freebsd || netbsd || openbsd

package term

import (
	"os"
	"testing"

	"github.com/creack/pty"
	"src.rell.sh/pkg/must"
	"src.rell.sh/pkg/sys/eunix"
)

func TestSetup(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("pty.Open:", err)
	}
	defer ptmx.Close()
	defer tty.Close()
	fd := int(tty.Fd())

	before := must.OK1(eunix.TermiosForFd(fd))

	restore, err := Setup(tty, tty)
	if err != nil {
		t.Fatal("Setup:", err)
	}

	during := must.OK1(eunix.TermiosForFd(fd))
	if during.ICanon() || during.Echo() {
		t.Errorf("after Setup, ICANON=%v ECHO=%v, want both false",
			during.ICanon(), during.Echo())
	}

	if err := restore(); err != nil {
		t.Fatal("restore:", err)
	}
	after := must.OK1(eunix.TermiosForFd(fd))
	if after.ICanon() != before.ICanon() || after.Echo() != before.Echo() {
		t.Errorf("after restore, ICANON=%v ECHO=%v, want %v %v",
			after.ICanon(), after.Echo(), before.ICanon(), before.Echo())
	}

	// A second restore is a no-op, even if the terminal is gone.
	tty.Close()
	if err := restore(); err != nil {
		t.Errorf("second restore -> %v, want nil", err)
	}
}

func TestSetup_NotATerminal(t *testing.T) {
	r, w := must.Pipe()
	defer r.Close()
	defer w.Close()

	restore, err := Setup(r, os.Stdout)
	if err == nil {
		t.Errorf("Setup(pipe) -> nil error, want error")
		restore()
	}
}
