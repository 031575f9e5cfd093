package ui

import (
	"testing"

	"gopkg.in/yaml.v3"
	"src.rell.sh/pkg/tt"
)

func TestColorApply(t *testing.T) {
	tt.Test(t, tt.Fn("Color.Apply", Color.Apply), tt.Table{
		tt.Args(Red, "foo").Rets("\033[;31mfoo\033[m"),
		tt.Args(White, "foo").Rets("\033[;37mfoo\033[m"),
		tt.Args(BrightRed, "foo").Rets("\033[;91mfoo\033[m"),
		tt.Args(BrightWhite, "foo").Rets("\033[;97mfoo\033[m"),
		// The default colour and empty strings are left alone.
		tt.Args(Default, "foo").Rets("foo"),
		tt.Args(Green, "").Rets(""),
	})
}

func TestStyleApply(t *testing.T) {
	tt.Test(t, tt.Fn("Style.Apply", Style.Apply), tt.Table{
		tt.Args(Style{Bold: true}, "x").Rets("\033[;1mx\033[m"),
		tt.Args(Style{Bold: true, Foreground: Blue}, "x").Rets("\033[;1;34mx\033[m"),
		tt.Args(Style{Underlined: true, Foreground: Cyan}, "x").Rets("\033[;4;36mx\033[m"),
	})
	if got := Bold("x"); got != "\033[;1mx\033[m" {
		t.Errorf("Bold(%q) -> %q", "x", got)
	}
}

var colorStringTests = []struct {
	color Color
	str   string
}{
	{Default, "default"},
	{Red, "red"},
	{BrightRed, "bright-red"},
	{BrightWhite, "bright-white"},
	{Color(100), "color(100)"},
}

func TestColorString(t *testing.T) {
	for _, test := range colorStringTests {
		s := test.color.String()
		if s != test.str {
			t.Errorf("%d.String() -> %q, want %q", int(test.color), s, test.str)
		}
	}
}

func TestParseColor(t *testing.T) {
	tt.Test(t, tt.Fn("ParseColor", ParseColor), tt.Table{
		tt.Args("green").Rets(Green, nil),
		tt.Args("bright-magenta").Rets(BrightMagenta, nil),
		tt.Args("purple").Rets(Default, tt.Any),
	})
	for i := Default; i <= BrightWhite; i++ {
		c, err := ParseColor(i.String())
		if c != i || err != nil {
			t.Errorf("ParseColor(%q) -> (%v, %v), want (%v, nil)", i.String(), c, err, i)
		}
	}
}

func TestColorYAML(t *testing.T) {
	var v struct {
		Color Color `yaml:"color"`
	}
	err := yaml.Unmarshal([]byte("color: bright-yellow\n"), &v)
	if err != nil || v.Color != BrightYellow {
		t.Errorf("got (%v, %v), want (%v, nil)", v.Color, err, BrightYellow)
	}

	err = yaml.Unmarshal([]byte("color: purple\n"), &v)
	if err == nil {
		t.Errorf("want error for unknown color")
	}

	out, err := yaml.Marshal(struct{ C Color }{Magenta})
	if err != nil || string(out) != "c: magenta\n" {
		t.Errorf("got (%q, %v), want (%q, nil)", out, err, "c: magenta\n")
	}

	_, err = Color(-1).MarshalText()
	if err == nil {
		t.Errorf("want error marshaling invalid color")
	}
}
