package cli

import (
	"strings"
	"unicode"
)

// Renderer is called by (*Session).Run with every byte read from the
// terminal. It is responsible for updating the line of the Session and
// redrawing it.
//
// When called with '\n', the renderer must leave s.Line unchanged; the line
// is then dispatched by Run.
type Renderer func(s *Session, c byte) error

// DefaultRender is the default Renderer. It appends the byte to the line and
// redraws the prompt and the line. The first word of the line is highlighted
// with the colour of its keyword, or the error colour of the session if it is
// not a keyword; the rest of the line is written as is.
//
// The line is drawn in full every time, but only its first word is ever
// highlighted.
func DefaultRender(s *Session, c byte) error {
	if c != '\n' {
		// Bytes are appended as is; a multi-byte character is complete once
		// all of its bytes have been read.
		s.Line += string([]byte{c})
		s.Pos = len(s.Line)
	}

	var sb strings.Builder
	sb.WriteString("\r")
	sb.WriteString(s.Prompt)
	sb.WriteString(" ")

	lead, word, tail := splitFirstWord(s.Line)
	sb.WriteString(lead)
	if word != "" {
		color := s.ErrorColor
		if kw, ok := s.Lookup(word); ok {
			color = kw.Color
		}
		sb.WriteString(color.Apply(word))
	}
	sb.WriteString(tail)

	if c == '\n' {
		sb.WriteString("\n")
	}

	if _, err := s.tty.Write([]byte(sb.String())); err != nil {
		return &FlushError{err}
	}
	return s.Flush()
}

// splitFirstWord splits line into the leading whitespace, the first word and
// the rest.
func splitFirstWord(line string) (lead, word, tail string) {
	start := strings.IndexFunc(line, isNotSpace)
	if start == -1 {
		return line, "", ""
	}
	end := strings.IndexFunc(line[start:], unicode.IsSpace)
	if end == -1 {
		return line[:start], line[start:], ""
	}
	end += start
	return line[:start], line[start:end], line[end:]
}

func isNotSpace(r rune) bool { return !unicode.IsSpace(r) }
