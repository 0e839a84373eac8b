// Package builder provides a chainable accumulator for composing styled
// terminal text out of SGR codes and literal text segments.
package builder

import (
	"io"
	"os"
	"strings"

	"github.com/StevenCyb/rcolors/pkg/ansi"
)

// Kind discriminates the two directive variants.
type Kind int

const (
	// KindStyle marks a directive carrying an SGR code.
	KindStyle Kind = iota
	// KindText marks a directive carrying literal text.
	KindText
)

// Directive is one atomic instruction in a builder's sequence: either
// "apply this style" or "emit this literal text". Code is meaningful only
// for KindStyle, Text only for KindText.
type Directive struct {
	Kind Kind
	Code ansi.Code
	Text string
}

// Builder accumulates an ordered, append-only sequence of directives and
// serializes it on demand. Chain methods mutate the builder in place and
// return the same instance for fluent composition.
//
// Rendering never clears the sequence; a builder rendered twice without
// appends in between produces the same string both times, and appending
// after a render extends the existing sequence. A Builder is not safe for
// concurrent use; confine each instance to a single goroutine.
//
//	b := builder.New()
//	b.FgRed().Text("error: ").Reset().Text("details")
//	s := b.Render()
type Builder struct {
	directives []Directive
	noColor    bool
	forceColor bool
}

// New returns an empty builder. Color output is suppressed when the
// NO_COLOR environment variable is present (its value is ignored); the
// builder performs no terminal capability probing of its own.
func New() *Builder {
	_, noColor := os.LookupEnv("NO_COLOR")
	return &Builder{noColor: noColor}
}

// Text appends a literal text directive. The string is carried verbatim,
// including empty strings and embedded escape-like bytes; the builder
// does not sanitize caller-supplied text.
func (b *Builder) Text(text string) *Builder {
	b.directives = append(b.directives, Directive{Kind: KindText, Text: text})
	return b
}

// Ansi appends an arbitrary style directive. This is the escape hatch the
// named chain methods below are built on.
func (b *Builder) Ansi(code ansi.Code) *Builder {
	b.directives = append(b.directives, Directive{Kind: KindStyle, Code: code})
	return b
}

// Reset appends the reset-all code. It closes out every style appended
// before it in the sequence; directives appended afterwards start a
// fresh, unstyled context. The serializer never injects a reset on its
// own, so closing styling is entirely the caller's responsibility.
func (b *Builder) Reset() *Builder { return b.Ansi(ansi.Reset) }

// Render serializes the sequence into one string in a single linear
// pass: style directives become full escape sequences, text directives
// are copied verbatim. Render is pure; it does not mutate or clear the
// sequence.
func (b *Builder) Render() string {
	suppress := b.noColor && !b.forceColor
	var out strings.Builder
	for _, d := range b.directives {
		switch d.Kind {
		case KindText:
			out.WriteString(d.Text)
		case KindStyle:
			if !suppress {
				out.WriteString(d.Code.Sequence())
			}
		}
	}
	return out.String()
}

// String implements fmt.Stringer by delegating to Render.
func (b *Builder) String() string { return b.Render() }

// WriteTo serializes the sequence and writes it to w, implementing
// io.WriterTo. Sink errors are returned unchanged and untried; the
// sequence is left intact either way.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.Render())
	return int64(n), err
}

// Print writes the rendered sequence to stdout.
func (b *Builder) Print() error {
	_, err := b.WriteTo(os.Stdout)
	return err
}

// Println writes the rendered sequence to stdout followed by a newline.
func (b *Builder) Println() error {
	_, err := io.WriteString(os.Stdout, b.Render()+"\n")
	return err
}

// Directives returns a copy of the raw sequence, useful for inspection
// and debugging.
func (b *Builder) Directives() []Directive {
	out := make([]Directive, len(b.directives))
	copy(out, b.directives)
	return out
}

// Len returns the number of directives appended so far.
func (b *Builder) Len() int { return len(b.directives) }

// DisableColor makes Render drop style directives and emit text only,
// regardless of environment.
func (b *Builder) DisableColor() *Builder {
	b.noColor = true
	b.forceColor = false
	return b
}

// ForceColor makes Render emit style directives even when NO_COLOR is
// set.
func (b *Builder) ForceColor() *Builder {
	b.forceColor = true
	return b
}

// Bold appends the bold attribute.
func (b *Builder) Bold() *Builder { return b.Ansi(ansi.Bold) }

// Faint appends the faint attribute.
func (b *Builder) Faint() *Builder { return b.Ansi(ansi.Faint) }

// Italic appends the italic attribute.
func (b *Builder) Italic() *Builder { return b.Ansi(ansi.Italic) }

// Underline appends the underline attribute.
func (b *Builder) Underline() *Builder { return b.Ansi(ansi.Underline) }

// BlinkSlow appends the slow blink attribute.
func (b *Builder) BlinkSlow() *Builder { return b.Ansi(ansi.BlinkSlow) }

// BlinkRapid appends the rapid blink attribute.
func (b *Builder) BlinkRapid() *Builder { return b.Ansi(ansi.BlinkRapid) }

// ReverseVideo appends the reverse video attribute, swapping foreground
// and background.
func (b *Builder) ReverseVideo() *Builder { return b.Ansi(ansi.ReverseVideo) }

// Concealed appends the concealed attribute.
func (b *Builder) Concealed() *Builder { return b.Ansi(ansi.Concealed) }

// CrossedOut appends the crossed-out attribute.
func (b *Builder) CrossedOut() *Builder { return b.Ansi(ansi.CrossedOut) }

// FgBlack sets the text color to black.
func (b *Builder) FgBlack() *Builder { return b.Ansi(ansi.FgBlack) }

// FgRed sets the text color to red.
func (b *Builder) FgRed() *Builder { return b.Ansi(ansi.FgRed) }

// FgGreen sets the text color to green.
func (b *Builder) FgGreen() *Builder { return b.Ansi(ansi.FgGreen) }

// FgYellow sets the text color to yellow.
func (b *Builder) FgYellow() *Builder { return b.Ansi(ansi.FgYellow) }

// FgBlue sets the text color to blue.
func (b *Builder) FgBlue() *Builder { return b.Ansi(ansi.FgBlue) }

// FgMagenta sets the text color to magenta.
func (b *Builder) FgMagenta() *Builder { return b.Ansi(ansi.FgMagenta) }

// FgCyan sets the text color to cyan.
func (b *Builder) FgCyan() *Builder { return b.Ansi(ansi.FgCyan) }

// FgWhite sets the text color to white.
func (b *Builder) FgWhite() *Builder { return b.Ansi(ansi.FgWhite) }

// FgHiBlack sets the text color to high-intensity black.
func (b *Builder) FgHiBlack() *Builder { return b.Ansi(ansi.FgHiBlack) }

// FgHiRed sets the text color to high-intensity red.
func (b *Builder) FgHiRed() *Builder { return b.Ansi(ansi.FgHiRed) }

// FgHiGreen sets the text color to high-intensity green.
func (b *Builder) FgHiGreen() *Builder { return b.Ansi(ansi.FgHiGreen) }

// FgHiYellow sets the text color to high-intensity yellow.
func (b *Builder) FgHiYellow() *Builder { return b.Ansi(ansi.FgHiYellow) }

// FgHiBlue sets the text color to high-intensity blue.
func (b *Builder) FgHiBlue() *Builder { return b.Ansi(ansi.FgHiBlue) }

// FgHiMagenta sets the text color to high-intensity magenta.
func (b *Builder) FgHiMagenta() *Builder { return b.Ansi(ansi.FgHiMagenta) }

// FgHiCyan sets the text color to high-intensity cyan.
func (b *Builder) FgHiCyan() *Builder { return b.Ansi(ansi.FgHiCyan) }

// FgHiWhite sets the text color to high-intensity white.
func (b *Builder) FgHiWhite() *Builder { return b.Ansi(ansi.FgHiWhite) }

// BgBlack sets the background color to black.
func (b *Builder) BgBlack() *Builder { return b.Ansi(ansi.BgBlack) }

// BgRed sets the background color to red.
func (b *Builder) BgRed() *Builder { return b.Ansi(ansi.BgRed) }

// BgGreen sets the background color to green.
func (b *Builder) BgGreen() *Builder { return b.Ansi(ansi.BgGreen) }

// BgYellow sets the background color to yellow.
func (b *Builder) BgYellow() *Builder { return b.Ansi(ansi.BgYellow) }

// BgBlue sets the background color to blue.
func (b *Builder) BgBlue() *Builder { return b.Ansi(ansi.BgBlue) }

// BgMagenta sets the background color to magenta.
func (b *Builder) BgMagenta() *Builder { return b.Ansi(ansi.BgMagenta) }

// BgCyan sets the background color to cyan.
func (b *Builder) BgCyan() *Builder { return b.Ansi(ansi.BgCyan) }

// BgWhite sets the background color to white.
func (b *Builder) BgWhite() *Builder { return b.Ansi(ansi.BgWhite) }

// BgHiBlack sets the background color to high-intensity black.
func (b *Builder) BgHiBlack() *Builder { return b.Ansi(ansi.BgHiBlack) }

// BgHiRed sets the background color to high-intensity red.
func (b *Builder) BgHiRed() *Builder { return b.Ansi(ansi.BgHiRed) }

// BgHiGreen sets the background color to high-intensity green.
func (b *Builder) BgHiGreen() *Builder { return b.Ansi(ansi.BgHiGreen) }

// BgHiYellow sets the background color to high-intensity yellow.
func (b *Builder) BgHiYellow() *Builder { return b.Ansi(ansi.BgHiYellow) }

// BgHiBlue sets the background color to high-intensity blue.
func (b *Builder) BgHiBlue() *Builder { return b.Ansi(ansi.BgHiBlue) }

// BgHiMagenta sets the background color to high-intensity magenta.
func (b *Builder) BgHiMagenta() *Builder { return b.Ansi(ansi.BgHiMagenta) }

// BgHiCyan sets the background color to high-intensity cyan.
func (b *Builder) BgHiCyan() *Builder { return b.Ansi(ansi.BgHiCyan) }

// BgHiWhite sets the background color to high-intensity white.
func (b *Builder) BgHiWhite() *Builder { return b.Ansi(ansi.BgHiWhite) }
