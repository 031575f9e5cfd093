package ui

import (
	"fmt"
	"strconv"
)

// Color is a colour from the 16-colour palette supported by virtually all
// terminal emulators. The zero value is the terminal's default colour.
type Color int

// Names of the colours. The bright variants are usually rendered as the bold
// or lighter version of their normal counterpart.
const (
	Default Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White

	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var colorNames = [...]string{
	Default: "default",
	Black:   "black",
	Red:     "red",
	Green:   "green",
	Yellow:  "yellow",
	Blue:    "blue",
	Magenta: "magenta",
	Cyan:    "cyan",
	White:   "white",

	BrightBlack:   "bright-black",
	BrightRed:     "bright-red",
	BrightGreen:   "bright-green",
	BrightYellow:  "bright-yellow",
	BrightBlue:    "bright-blue",
	BrightMagenta: "bright-magenta",
	BrightCyan:    "bright-cyan",
	BrightWhite:   "bright-white",
}

var colorByName = make(map[string]Color, len(colorNames))

func init() {
	for i, name := range colorNames {
		colorByName[name] = Color(i)
	}
}

func (c Color) valid() bool { return Default <= c && c <= BrightWhite }

// String returns the name of the colour, such as "red" or "bright-red".
func (c Color) String() string {
	if !c.valid() {
		return "color(" + strconv.Itoa(int(c)) + ")"
	}
	return colorNames[c]
}

// ParseColor parses a colour name, as returned by (Color).String.
func ParseColor(name string) (Color, error) {
	if c, ok := colorByName[name]; ok {
		return c, nil
	}
	return Default, fmt.Errorf("unknown color %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("invalid color %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It makes it possible to
// write colours by name in configuration files.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) fgSGR() string {
	switch {
	case c == Default || !c.valid():
		return "39"
	case c < BrightBlack:
		return strconv.Itoa(30 + int(c-Black))
	default:
		return strconv.Itoa(90 + int(c-BrightBlack))
	}
}

// Apply returns text with the colour applied to its foreground.
func (c Color) Apply(text string) string {
	return Style{Foreground: c}.Apply(text)
}
