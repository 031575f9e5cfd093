// Package builtins provides the handlers of the demo commands of rell.
//
// The handlers are exposed by action names, so that keyword tables can bind
// them to arbitrary keywords.
package builtins

import (
	"errors"
	"strings"

	"src.rell.sh/pkg/cli"
	"src.rell.sh/pkg/ui"
)

// ErrUnrecoverable is returned by the "fail" action.
var ErrUnrecoverable = errors.New("unrecoverable error")

// Actions maps action names to handlers.
var Actions = map[string]cli.Handler{
	"help":   Help,
	"exit":   Exit,
	"echo":   Echo,
	"fail":   Fail,
	"unimpl": Unimpl,
	"prompt": Prompt,
}

// Help lists all keywords of the session with their descriptions.
func Help(s *cli.Session) error {
	kws := s.Keywords()
	width := 0
	for _, kw := range kws {
		if len(kw.Name) > width {
			width = len(kw.Name)
		}
	}
	s.Println("Welcome to help!")
	for _, kw := range kws {
		pad := strings.Repeat(" ", width-len(kw.Name))
		s.Printf("  %s%s  %s\n", kw.Color.Apply(kw.Name), pad, kw.Description)
	}
	return nil
}

// Exit stops the session.
func Exit(s *cli.Session) error {
	s.Stop()
	return nil
}

// Echo prints the words of the line.
func Echo(s *cli.Session) error {
	s.Printf("Given arguments : %s\n", strings.Join(strings.Fields(s.Line), " "))
	return nil
}

// Fail prints a diagnostic and fails with ErrUnrecoverable.
func Fail(s *cli.Session) error {
	s.Printf("%s Terminating due to an unrecoverable error!\n",
		ui.Style{Foreground: ui.Red, Bold: true}.Apply("[Error]"))
	return ErrUnrecoverable
}

// Unimpl reports that the command is not implemented.
func Unimpl(s *cli.Session) error {
	s.Printf("%s not implemented yet!\n", ui.Bold(command(s)))
	return nil
}

// Prompt sets the prompt to the first argument.
func Prompt(s *cli.Session) error {
	words := strings.Fields(s.Line)
	if len(words) < 2 {
		s.Println(ui.Bold("Error"), "Enter a new sign to set as prompt!")
		return nil
	}
	s.Prompt = words[1]
	return nil
}

func command(s *cli.Session) string {
	if words := strings.Fields(s.Line); len(words) > 0 {
		return words[0]
	}
	return ""
}
