// A test program for embedding the cli package.
package main

import (
	"fmt"
	"strings"

	"src.rell.sh/pkg/cli"
	"src.rell.sh/pkg/ui"
)

func main() {
	s := cli.New("embed>")
	s.Register("upper", ui.Cyan, func(s *cli.Session) error {
		_, rest, _ := strings.Cut(strings.TrimSpace(s.Line), " ")
		s.Println(strings.ToUpper(rest))
		return nil
	}, "Print the arguments in upper case")
	s.Register("quit", ui.Yellow, func(s *cli.Session) error {
		s.Stop()
		return nil
	}, "Quit")

	err := s.Run()
	fmt.Println("line:", s.Line)
	if err != nil {
		fmt.Println("err", err)
	}
}
