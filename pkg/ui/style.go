package ui

import "strings"

// Style specifies how a string shall be displayed.
type Style struct {
	Foreground Color
	Bold       bool
	Underlined bool
}

// SGR returns the SGR sequence for the style, without the leading "\033["
// and the trailing "m".
func (s Style) SGR() string {
	var sgr []string
	if s.Bold {
		sgr = append(sgr, "1")
	}
	if s.Underlined {
		sgr = append(sgr, "4")
	}
	if s.Foreground != Default {
		sgr = append(sgr, s.Foreground.fgSGR())
	}
	return strings.Join(sgr, ";")
}

// Apply renders text with VT-style escape sequences for the style. It returns
// text unchanged if it is empty or the style is the default style.
func (s Style) Apply(text string) string {
	sgr := s.SGR()
	if text == "" || sgr == "" {
		return text
	}
	return "\033[;" + sgr + "m" + text + "\033[m"
}

// Bold returns text in bold.
func Bold(text string) string { return Style{Bold: true}.Apply(text) }
