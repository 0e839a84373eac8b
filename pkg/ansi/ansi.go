// Package ansi holds the fixed table of SGR (Select Graphic Rendition)
// codes the rest of the library is built on. The table is immutable for
// the process lifetime; every exported Code is valid by construction, so
// lookups never fail.
package ansi

import "strconv"

// Code is a single SGR parameter. The numeric value of each constant is
// the parameter byte emitted on the wire, so the constants double as the
// code table itself.
type Code int

// Text attributes.
const (
	Reset        Code = 0
	Bold         Code = 1
	Faint        Code = 2
	Italic       Code = 3
	Underline    Code = 4
	BlinkSlow    Code = 5
	BlinkRapid   Code = 6
	ReverseVideo Code = 7
	Concealed    Code = 8
	CrossedOut   Code = 9
)

// Foreground colors.
const (
	FgBlack   Code = 30
	FgRed     Code = 31
	FgGreen   Code = 32
	FgYellow  Code = 33
	FgBlue    Code = 34
	FgMagenta Code = 35
	FgCyan    Code = 36
	FgWhite   Code = 37

	FgHiBlack   Code = 90
	FgHiRed     Code = 91
	FgHiGreen   Code = 92
	FgHiYellow  Code = 93
	FgHiBlue    Code = 94
	FgHiMagenta Code = 95
	FgHiCyan    Code = 96
	FgHiWhite   Code = 97
)

// Background colors.
const (
	BgBlack   Code = 40
	BgRed     Code = 41
	BgGreen   Code = 42
	BgYellow  Code = 43
	BgBlue    Code = 44
	BgMagenta Code = 45
	BgCyan    Code = 46
	BgWhite   Code = 47

	BgHiBlack   Code = 100
	BgHiRed     Code = 101
	BgHiGreen   Code = 102
	BgHiYellow  Code = 103
	BgHiBlue    Code = 104
	BgHiMagenta Code = 105
	BgHiCyan    Code = 106
	BgHiWhite   Code = 107
)

// Sequence returns the complete escape sequence for the code: the CSI
// introducer, the numeric parameter and the SGR terminator, e.g.
// "\x1b[31m" for FgRed.
func (c Code) Sequence() string {
	return "\x1b[" + strconv.Itoa(int(c)) + "m"
}

// String implements fmt.Stringer and is identical to Sequence, so a Code
// can be interpolated directly into formatted output.
func (c Code) String() string {
	return c.Sequence()
}

var foregrounds = map[string]Code{
	"black":      FgBlack,
	"red":        FgRed,
	"green":      FgGreen,
	"yellow":     FgYellow,
	"blue":       FgBlue,
	"magenta":    FgMagenta,
	"cyan":       FgCyan,
	"white":      FgWhite,
	"hi-black":   FgHiBlack,
	"hi-red":     FgHiRed,
	"hi-green":   FgHiGreen,
	"hi-yellow":  FgHiYellow,
	"hi-blue":    FgHiBlue,
	"hi-magenta": FgHiMagenta,
	"hi-cyan":    FgHiCyan,
	"hi-white":   FgHiWhite,
}

var backgrounds = map[string]Code{
	"black":      BgBlack,
	"red":        BgRed,
	"green":      BgGreen,
	"yellow":     BgYellow,
	"blue":       BgBlue,
	"magenta":    BgMagenta,
	"cyan":       BgCyan,
	"white":      BgWhite,
	"hi-black":   BgHiBlack,
	"hi-red":     BgHiRed,
	"hi-green":   BgHiGreen,
	"hi-yellow":  BgHiYellow,
	"hi-blue":    BgHiBlue,
	"hi-magenta": BgHiMagenta,
	"hi-cyan":    BgHiCyan,
	"hi-white":   BgHiWhite,
}

var attributes = map[string]Code{
	"bold":        Bold,
	"faint":       Faint,
	"italic":      Italic,
	"underline":   Underline,
	"blink-slow":  BlinkSlow,
	"blink-rapid": BlinkRapid,
	"reverse":     ReverseVideo,
	"concealed":   Concealed,
	"crossed-out": CrossedOut,
}

// Foreground resolves a color name ("red", "hi-cyan", ...) to its
// foreground code.
func Foreground(name string) (Code, bool) {
	c, ok := foregrounds[name]
	return c, ok
}

// Background resolves a color name to its background code.
func Background(name string) (Code, bool) {
	c, ok := backgrounds[name]
	return c, ok
}

// Attribute resolves a text attribute name ("bold", "underline", ...) to
// its code.
func Attribute(name string) (Code, bool) {
	c, ok := attributes[name]
	return c, ok
}
