// Rell is an interactive line editor that highlights the first word of every
// line according to a keyword table, and runs the action bound to the keyword
// when the line is completed.
package main

import (
	"os"

	"src.rell.sh/pkg/buildinfo"
	"src.rell.sh/pkg/prog"
	"src.rell.sh/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(&buildinfo.Program{}, &shell.Program{})))
}
