// Package progtest provides a framework for testing subprograms.
//
// The entry point for the framework is the Test function, which accepts a
// *testing.T, the Program implementation under test, and any number of test
// cases.
//
// Test cases are constructed using the ThatRell function, followed by method
// calls that add additional information to it. Example:
//
//	Test(t, someProgram,
//		ThatRell("-version").WritesStdoutContaining("0.1"))
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"src.rell.sh/pkg/must"
	"src.rell.sh/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exitStatus int
	out, err   output
}

type output struct {
	content string
	partial bool
	checked bool
}

func (o output) String() string {
	if !o.checked {
		return "(not checked)"
	}
	if o.partial {
		return "text containing " + o.content
	}
	return o.content
}

func (o output) matches(s string) bool {
	if !o.checked {
		return true
	}
	if o.partial {
		return strings.Contains(s, o.content)
	}
	return s == o.content
}

// ThatRell returns a new Case with the specified CLI arguments.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "rell -bad-flag" exits with 2 reads:
//
//	ThatRell("-bad-flag").ExitsWith(2)
func ThatRell(args ...string) Case {
	return Case{
		args: append([]string{"rell"}, args...),
		want: result{out: output{checked: true}, err: output{checked: true}},
	}
}

// WithStdin returns an altered Case that provides the given input to stdin of
// the program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations, for example:
//
//	ThatRell("-log", "log").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit status.
func (c Case) ExitsWith(code int) Case {
	c.want.exitStatus = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.out = output{content: s, checked: true}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program
// run to write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.out = output{content: s, partial: true, checked: true}
	return c
}

// WritesAnyStdout returns an altered Case that does not check stdout.
func (c Case) WritesAnyStdout() Case {
	c.want.out = output{}
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.err = output{content: s, checked: true}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program
// run to write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.err = output{content: s, partial: true, checked: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			exit, stdout, stderr := Run(p, c.stdin, c.args...)
			if exit != c.want.exitStatus {
				t.Errorf("got exit status %v, want %v", exit, c.want.exitStatus)
			}
			if !c.want.out.matches(stdout) {
				t.Errorf("got stdout %q, want %s", stdout, c.want.out)
			}
			if !c.want.err.matches(stderr) {
				t.Errorf("got stderr %q, want %s", stderr, c.want.err)
			}
		})
	}
}

// Run runs a Program with the given stdin and arguments, and returns the exit
// status and the output written to stdout and stderr. The first element of
// args is the program name.
func Run(p prog.Program, stdin string, args ...string) (exit int, stdout, stderr string) {
	r0, w0 := must.Pipe()
	go func() {
		io.WriteString(w0, stdin)
		w0.Close()
	}()
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()
	outCh := readAllAsync(r1)
	errCh := readAllAsync(r2)

	exit = prog.Run([3]*os.File{r0, w1, w2}, args, p)
	r0.Close()
	w1.Close()
	w2.Close()
	return exit, <-outCh, <-errCh
}

func readAllAsync(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		ch <- string(must.OK1(io.ReadAll(r)))
		r.Close()
	}()
	return ch
}
