// Package shell is the entry point for the interactive interface of rell.
package shell

import (
	"fmt"
	"os"

	"src.rell.sh/pkg/builtins"
	"src.rell.sh/pkg/cli"
	"src.rell.sh/pkg/kwtable"
	"src.rell.sh/pkg/logutil"
	"src.rell.sh/pkg/prog"
	"src.rell.sh/pkg/sys"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram.
type Program struct {
	// Actions available to keyword tables. If nil, builtins.Actions is used.
	Actions map[string]cli.Handler
}

// Run runs an interactive session on fds[0] and fds[1]. If fds[0] is a
// terminal, it is put into line-editing mode for the duration of the session.
func (p Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) > 0 {
		return prog.BadUsage("arguments are not supported")
	}

	table := kwtable.Default()
	if f.Keywords != "" {
		var err error
		table, err = kwtable.LoadFile(f.Keywords)
		if err != nil {
			return err
		}
	}
	actions := p.Actions
	if actions == nil {
		actions = builtins.Actions
	}

	s := cli.NewSession(cli.SessionSpec{TTY: newTTY(fds)})
	if err := table.Apply(s, actions); err != nil {
		return err
	}
	if f.Prompt != "" {
		s.Prompt = f.Prompt
	}

	if err := s.Run(); err != nil {
		fmt.Fprintf(fds[2], "REPL closed due to the following error:\n%v\n", err)
		return prog.Exit(2)
	}
	return nil
}

func newTTY(fds [3]*os.File) cli.TTY {
	if sys.IsATTY(fds[0].Fd()) {
		logger.Println("using terminal")
		return cli.NewTTY(fds[0], fds[1])
	}
	logger.Println("stdin is not a terminal")
	return cli.NewPipeTTY(fds[0], fds[1])
}
