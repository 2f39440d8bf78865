package status

import (
	"github.com/fatih/color"
)

// Tone is the semantic state a piece of the footer is drawn in.
type Tone int

const (
	ToneSuccess Tone = iota
	ToneFailure
	ToneWarning
	ToneMuted

	toneCount
)

func (t Tone) String() string {
	switch t {
	case ToneSuccess:
		return "success"
	case ToneFailure:
		return "failure"
	case ToneWarning:
		return "warning"
	case ToneMuted:
		return "muted"
	default:
		return "unknown"
	}
}

// ToneFor picks the tone of the exit code label.
func ToneFor(exitCode int) Tone {
	if exitCode == 0 {
		return ToneSuccess
	}
	return ToneFailure
}

// Style is how one tone is drawn: Caret for the powerline glyph next to a
// label, Label for the label itself.
type Style struct {
	Caret *color.Color
	Label *color.Color
}

// Palette maps every tone to its style.
type Palette [toneCount]Style

// DefaultPalette returns the footer colors. Color output follows fatih/color:
// it is off when stdout is not a terminal or NO_COLOR is set.
func DefaultPalette() Palette {
	return Palette{
		ToneSuccess: {Caret: color.New(color.FgGreen), Label: color.New(color.BgGreen)},
		ToneFailure: {Caret: color.New(color.FgRed), Label: color.New(color.BgRed)},
		ToneWarning: {Caret: color.New(color.FgYellow), Label: color.New(color.BgYellow, color.FgBlack)},
		ToneMuted:   {Caret: color.New(color.FgHiBlack), Label: color.New(color.FgHiBlack)},
	}
}

// Style returns the style for t.
func (p Palette) Style(t Tone) Style {
	if t < 0 || t >= toneCount {
		return Style{}
	}
	return p[t]
}

func paint(c *color.Color, s string) string {
	if c == nil || s == "" {
		return s
	}
	return c.Sprint(s)
}
