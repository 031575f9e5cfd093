package prog_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"src.rell.sh/pkg/logutil"
	. "src.rell.sh/pkg/prog"
	"src.rell.sh/pkg/prog/progtest"
)

var (
	Test     = progtest.Test
	ThatRell = progtest.ThatRell
)

func TestCommonFlagHandling(t *testing.T) {
	Test(t, testProgram{},
		ThatRell("-bad-flag").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -bad-flag\nUsage:"),
		// -h is treated as a bad flag
		ThatRell("-h").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -h\nUsage:"),

		ThatRell("-help").
			WritesStdoutContaining("Usage: rell [flags]"),
	)
}

func TestLogFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log")
	t.Cleanup(func() { logutil.SetOutput(io.Discard) })
	Test(t, testProgram{},
		ThatRell("-log", path).DoesNothing(),
		ThatRell("-log", filepath.Join(path, "bad")).
			WritesStderrContaining("log/bad"),
	)
	if _, err := os.Stat(path); err != nil {
		t.Errorf("log file does not exist: %v", err)
	}
}

func TestFlagsPassed(t *testing.T) {
	var got Flags
	p := funcProgram(func(_ [3]*os.File, f *Flags, args []string) error {
		got = *f
		if len(args) != 1 || args[0] != "extra" {
			t.Errorf("got args %q", args)
		}
		return nil
	})
	Test(t, p, ThatRell("-prompt", "$", "-keywords", "kw.yaml", "-json", "extra"))

	if got.Prompt != "$" || got.Keywords != "kw.yaml" || !got.JSON {
		t.Errorf("got flags %+v", got)
	}
}

func TestNoSuitableSubprogram(t *testing.T) {
	Test(t, testProgram{notSuitable: true},
		ThatRell().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestComposite(t *testing.T) {
	Test(t,
		Composite(testProgram{notSuitable: true}, testProgram{writeOut: "program 2"}),
		ThatRell().WritesStdout("program 2"),
	)
}

func TestComposite_NoSuitableSubprogram(t *testing.T) {
	Test(t,
		Composite(testProgram{notSuitable: true}, testProgram{notSuitable: true}),
		ThatRell().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestComposite_PreferEarlierSubprogram(t *testing.T) {
	Test(t,
		Composite(
			testProgram{writeOut: "program 1"}, testProgram{writeOut: "program 2"}),
		ThatRell().WritesStdout("program 1"),
	)
}

func TestBadUsageError(t *testing.T) {
	Test(t,
		testProgram{returnErr: BadUsage("lorem ipsum")},
		ThatRell().ExitsWith(2).WritesStderrContaining("lorem ipsum\nUsage:"),
	)
}

func TestExitError(t *testing.T) {
	Test(t, testProgram{returnErr: Exit(3)},
		ThatRell().ExitsWith(3),
	)
}

func TestExitError_0(t *testing.T) {
	Test(t, testProgram{returnErr: Exit(0)},
		ThatRell().ExitsWith(0),
	)
}

func TestStdin(t *testing.T) {
	p := funcProgram(func(fds [3]*os.File, _ *Flags, _ []string) error {
		var sb strings.Builder
		buf := make([]byte, 64)
		for {
			n, err := fds[0].Read(buf)
			sb.Write(buf[:n])
			if err != nil {
				break
			}
		}
		fds[1].WriteString(strings.ToUpper(sb.String()))
		return nil
	})
	Test(t, p, ThatRell().WithStdin("hello\n").WritesStdout("HELLO\n"))
}

type testProgram struct {
	notSuitable bool
	writeOut    string
	returnErr   error
}

func (p testProgram) Run(fds [3]*os.File, _ *Flags, args []string) error {
	if p.notSuitable {
		return ErrNotSuitable
	}
	fds[1].WriteString(p.writeOut)
	return p.returnErr
}

type funcProgram func(fds [3]*os.File, f *Flags, args []string) error

func (p funcProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	return p(fds, f, args)
}
