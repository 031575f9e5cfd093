// Package kwtable reads keyword tables from YAML files.
//
// A keyword table binds keywords to named actions, and sets the prompt and
// error colour of a session:
//
//	prompt: ">>"
//	error-color: red
//	keywords:
//	  - name: help
//	    color: green
//	    action: help
//	    description: Show help
package kwtable

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
	"src.rell.sh/pkg/cli"
	"src.rell.sh/pkg/logutil"
	"src.rell.sh/pkg/must"
	"src.rell.sh/pkg/ui"
)

var logger = logutil.GetLogger("[kwtable] ")

//go:embed default.yaml
var defaultTable []byte

// Table is a keyword table.
type Table struct {
	Prompt     string   `yaml:"prompt"`
	ErrorColor ui.Color `yaml:"error-color"`
	Keywords   []Entry  `yaml:"keywords"`
}

// Entry is a keyword in a Table.
type Entry struct {
	Name        string   `yaml:"name"`
	Color       ui.Color `yaml:"color"`
	Action      string   `yaml:"action"`
	Description string   `yaml:"description"`
}

// Default returns the built-in table.
func Default() *Table {
	return must.OK1(Load(bytes.NewReader(defaultTable)))
}

// LoadFile reads a table from a file.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Load reads a table from r. Unknown fields are rejected.
func Load(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var t Table
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return &t, nil
		}
		return nil, err
	}
	for i, e := range t.Keywords {
		if e.Name == "" {
			return nil, fmt.Errorf("keyword %d: missing name", i+1)
		}
		if strings.ContainsFunc(e.Name, unicode.IsSpace) {
			return nil, fmt.Errorf("keyword %q: name contains whitespace", e.Name)
		}
	}
	return &t, nil
}

// UnknownActionError is returned by Apply when an entry names an action that
// is not available.
type UnknownActionError struct {
	Keyword, Action string
}

func (e UnknownActionError) Error() string {
	return fmt.Sprintf("keyword %q: unknown action %q", e.Keyword, e.Action)
}

// Apply registers the keywords of the table on the session, with handlers
// looked up from actions by name. The prompt and error colour of the session
// are changed if they are set in the table.
//
// The session is not changed if any action can't be found.
func (t *Table) Apply(s *cli.Session, actions map[string]cli.Handler) error {
	handlers := make([]cli.Handler, len(t.Keywords))
	for i, e := range t.Keywords {
		h := actions[e.Action]
		if h == nil {
			return UnknownActionError{e.Name, e.Action}
		}
		handlers[i] = h
	}

	if t.Prompt != "" {
		s.Prompt = t.Prompt
	}
	if t.ErrorColor != ui.Default {
		s.ErrorColor = t.ErrorColor
	}
	for i, e := range t.Keywords {
		s.Register(e.Name, e.Color, handlers[i], e.Description)
	}
	logger.Printf("session %s: applied %d keywords", s.ID(), len(t.Keywords))
	return nil
}
