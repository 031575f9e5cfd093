package sys

import (
	"os"
	"testing"

	"github.com/creack/pty"
	"src.rell.sh/pkg/must"
)

func TestIsATTY(t *testing.T) {
	r, w := must.Pipe()
	defer r.Close()
	defer w.Close()

	if IsATTY(r.Fd()) {
		t.Errorf("IsATTY(pipe) -> true, want false")
	}

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("pty.Open:", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	if !IsATTY(tty.Fd()) {
		t.Errorf("IsATTY(pty) -> false, want true")
	}

	devNull := must.OK1(os.Open(os.DevNull))
	defer devNull.Close()
	if IsATTY(devNull.Fd()) {
		t.Errorf("IsATTY(%s) -> true, want false", os.DevNull)
	}
}
