package clitest

import (
	"errors"
	"strings"
	"testing"

	"src.rell.sh/pkg/cli"
)

// Prompt is the prompt of sessions created by Test.
const Prompt = ">>"

// Case is a test case that can be used in Test.
//
// Test cases are constructed using the That function, followed by method
// calls that add additional information to it. For example, a test for the
// fact that typing an unknown word prints a diagnostic reads:
//
//	That("foo\n").PrintsContaining("unrecognized command: foo")
type Case struct {
	input  string
	setup  func(*cli.Session, TTYCtrl)
	verify func(*testing.T, *cli.Session, TTYCtrl)

	wantErrs    []error
	wantOutputs []string
	wantRunning *bool
}

// That returns a new Case with the given input. Multiple arguments are
// concatenated.
func That(input ...string) Case {
	return Case{input: strings.Join(input, "")}
}

// WithSetup returns an altered Case that calls f before the session is run.
func (c Case) WithSetup(f func(*cli.Session, TTYCtrl)) Case {
	c.setup = f
	return c
}

// Passes returns an altered Case that runs an additional verification
// function after the session is run.
func (c Case) Passes(f func(*testing.T, *cli.Session, TTYCtrl)) Case {
	c.verify = f
	return c
}

// PrintsContaining returns an altered Case that requires the output to
// contain all of the given strings.
func (c Case) PrintsContaining(ss ...string) Case {
	c.wantOutputs = append(c.wantOutputs, ss...)
	return c
}

// Fails returns an altered Case that requires Run to return an error for
// which errors.Is(err, want) is true. When called more than once, the error
// must satisfy all the requirements.
func (c Case) Fails(want error) Case {
	c.wantErrs = append(c.wantErrs, want)
	return c
}

// KeepsRunning returns an altered Case that requires the run flag of the
// session to be true after Run returns.
func (c Case) KeepsRunning() Case {
	b := true
	c.wantRunning = &b
	return c
}

// Stops returns an altered Case that requires the run flag of the session to
// be false after Run returns.
func (c Case) Stops() Case {
	b := false
	c.wantRunning = &b
	return c
}

// Test runs test cases. For each test case, a new Session is created on a
// fake TTY with the input of the test case, and passed to the setup function.
//
// Besides the requirements of each test case, Test checks that the terminal
// has been restored every time it was set up.
func Test(t *testing.T, setup func(*cli.Session), tests ...Case) {
	t.Helper()
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			t.Helper()
			tty, ctrl := NewFakeTTY(tc.input)
			s := cli.NewSession(cli.SessionSpec{TTY: tty, Prompt: Prompt})
			if setup != nil {
				setup(s)
			}
			if tc.setup != nil {
				tc.setup(s, ctrl)
			}

			err := s.Run()

			if len(tc.wantErrs) == 0 && err != nil {
				t.Errorf("Run -> %v, want nil", err)
			}
			for _, want := range tc.wantErrs {
				if !errors.Is(err, want) {
					t.Errorf("Run -> %v, want %v", err, want)
				}
			}
			output := ctrl.Output()
			for _, want := range tc.wantOutputs {
				if !strings.Contains(output, want) {
					t.Errorf("output %q does not contain %q", output, want)
				}
			}
			if tc.wantRunning != nil && s.Running != *tc.wantRunning {
				t.Errorf("Running = %v, want %v", s.Running, *tc.wantRunning)
			}
			if ctrl.IsSetUp() || ctrl.RestoreCalls() != ctrl.SetupCalls() {
				t.Errorf("terminal not restored: set up %d times, restored %d times",
					ctrl.SetupCalls(), ctrl.RestoreCalls())
			}
			if tc.verify != nil {
				tc.verify(t, s, ctrl)
			}
		})
	}
}
