package cli

import (
	"sort"

	"src.rell.sh/pkg/ui"
)

// Handler is called when its keyword is the first word of a completed line.
// It can read s.Line, change s.Prompt and stop the session with s.Stop. A
// non-nil error terminates (*Session).Run, which returns the error.
type Handler func(s *Session) error

// Keyword is an entry in the keyword table of a Session.
type Keyword struct {
	Name        string
	Color       ui.Color
	Handler     Handler
	Description string
}

type keywords map[string]Keyword

// Register adds a keyword to the session. If the name is already
// registered, the old entry is replaced.
//
// The name should not contain whitespace; such keywords can never be matched.
// If h is nil, the keyword is highlighted but completing a line with it does
// nothing.
func (s *Session) Register(name string, color ui.Color, h Handler, description string) {
	s.keywords[name] = Keyword{name, color, h, description}
}

// Lookup finds the keyword with the exact name.
func (s *Session) Lookup(name string) (Keyword, bool) {
	kw, ok := s.keywords[name]
	return kw, ok
}

// Keywords returns all registered keywords, sorted by name.
func (s *Session) Keywords() []Keyword {
	kws := make([]Keyword, 0, len(s.keywords))
	for _, kw := range s.keywords {
		kws = append(kws, kw)
	}
	sort.Slice(kws, func(i, j int) bool { return kws[i].Name < kws[j].Name })
	return kws
}
