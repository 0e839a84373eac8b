// Package colors provides one-call shorthands over the builder: each
// function renders a single text segment wrapped in a color code and a
// trailing reset. Shorthands always emit escape codes; callers who need
// NO_COLOR handling should use the builder directly.
package colors

import (
	"io"
	"os"

	"github.com/StevenCyb/rcolors/pkg/ansi"
	"github.com/StevenCyb/rcolors/pkg/builder"
)

// Sprint renders text wrapped in the given code and a trailing reset.
func Sprint(code ansi.Code, text string) string {
	return builder.New().ForceColor().Ansi(code).Text(text).Reset().Render()
}

// Fprint writes the wrapped text to w, propagating any sink error
// unchanged.
func Fprint(w io.Writer, code ansi.Code, text string) error {
	_, err := io.WriteString(w, Sprint(code, text))
	return err
}

// Fprintln writes the wrapped text to w followed by a newline.
func Fprintln(w io.Writer, code ansi.Code, text string) error {
	_, err := io.WriteString(w, Sprint(code, text)+"\n")
	return err
}

// Print writes the wrapped text to stdout.
func Print(code ansi.Code, text string) error {
	return Fprint(os.Stdout, code, text)
}

// Println writes the wrapped text to stdout followed by a newline.
func Println(code ansi.Code, text string) error {
	return Fprintln(os.Stdout, code, text)
}

// Black returns text colored black.
func Black(text string) string { return Sprint(ansi.FgBlack, text) }

// PrintBlack prints text colored black.
func PrintBlack(text string) error { return Print(ansi.FgBlack, text) }

// PrintlnBlack prints text colored black, with a newline.
func PrintlnBlack(text string) error { return Println(ansi.FgBlack, text) }

// Red returns text colored red.
func Red(text string) string { return Sprint(ansi.FgRed, text) }

// PrintRed prints text colored red.
func PrintRed(text string) error { return Print(ansi.FgRed, text) }

// PrintlnRed prints text colored red, with a newline.
func PrintlnRed(text string) error { return Println(ansi.FgRed, text) }

// Green returns text colored green.
func Green(text string) string { return Sprint(ansi.FgGreen, text) }

// PrintGreen prints text colored green.
func PrintGreen(text string) error { return Print(ansi.FgGreen, text) }

// PrintlnGreen prints text colored green, with a newline.
func PrintlnGreen(text string) error { return Println(ansi.FgGreen, text) }

// Yellow returns text colored yellow.
func Yellow(text string) string { return Sprint(ansi.FgYellow, text) }

// PrintYellow prints text colored yellow.
func PrintYellow(text string) error { return Print(ansi.FgYellow, text) }

// PrintlnYellow prints text colored yellow, with a newline.
func PrintlnYellow(text string) error { return Println(ansi.FgYellow, text) }

// Blue returns text colored blue.
func Blue(text string) string { return Sprint(ansi.FgBlue, text) }

// PrintBlue prints text colored blue.
func PrintBlue(text string) error { return Print(ansi.FgBlue, text) }

// PrintlnBlue prints text colored blue, with a newline.
func PrintlnBlue(text string) error { return Println(ansi.FgBlue, text) }

// Magenta returns text colored magenta.
func Magenta(text string) string { return Sprint(ansi.FgMagenta, text) }

// PrintMagenta prints text colored magenta.
func PrintMagenta(text string) error { return Print(ansi.FgMagenta, text) }

// PrintlnMagenta prints text colored magenta, with a newline.
func PrintlnMagenta(text string) error { return Println(ansi.FgMagenta, text) }

// Cyan returns text colored cyan.
func Cyan(text string) string { return Sprint(ansi.FgCyan, text) }

// PrintCyan prints text colored cyan.
func PrintCyan(text string) error { return Print(ansi.FgCyan, text) }

// PrintlnCyan prints text colored cyan, with a newline.
func PrintlnCyan(text string) error { return Println(ansi.FgCyan, text) }

// White returns text colored white.
func White(text string) string { return Sprint(ansi.FgWhite, text) }

// PrintWhite prints text colored white.
func PrintWhite(text string) error { return Print(ansi.FgWhite, text) }

// PrintlnWhite prints text colored white, with a newline.
func PrintlnWhite(text string) error { return Println(ansi.FgWhite, text) }

// HiBlack returns text colored high-intensity black.
func HiBlack(text string) string { return Sprint(ansi.FgHiBlack, text) }

// PrintHiBlack prints text colored high-intensity black.
func PrintHiBlack(text string) error { return Print(ansi.FgHiBlack, text) }

// PrintlnHiBlack prints text colored high-intensity black, with a newline.
func PrintlnHiBlack(text string) error { return Println(ansi.FgHiBlack, text) }

// HiRed returns text colored high-intensity red.
func HiRed(text string) string { return Sprint(ansi.FgHiRed, text) }

// PrintHiRed prints text colored high-intensity red.
func PrintHiRed(text string) error { return Print(ansi.FgHiRed, text) }

// PrintlnHiRed prints text colored high-intensity red, with a newline.
func PrintlnHiRed(text string) error { return Println(ansi.FgHiRed, text) }

// HiGreen returns text colored high-intensity green.
func HiGreen(text string) string { return Sprint(ansi.FgHiGreen, text) }

// PrintHiGreen prints text colored high-intensity green.
func PrintHiGreen(text string) error { return Print(ansi.FgHiGreen, text) }

// PrintlnHiGreen prints text colored high-intensity green, with a newline.
func PrintlnHiGreen(text string) error { return Println(ansi.FgHiGreen, text) }

// HiYellow returns text colored high-intensity yellow.
func HiYellow(text string) string { return Sprint(ansi.FgHiYellow, text) }

// PrintHiYellow prints text colored high-intensity yellow.
func PrintHiYellow(text string) error { return Print(ansi.FgHiYellow, text) }

// PrintlnHiYellow prints text colored high-intensity yellow, with a newline.
func PrintlnHiYellow(text string) error { return Println(ansi.FgHiYellow, text) }

// HiBlue returns text colored high-intensity blue.
func HiBlue(text string) string { return Sprint(ansi.FgHiBlue, text) }

// PrintHiBlue prints text colored high-intensity blue.
func PrintHiBlue(text string) error { return Print(ansi.FgHiBlue, text) }

// PrintlnHiBlue prints text colored high-intensity blue, with a newline.
func PrintlnHiBlue(text string) error { return Println(ansi.FgHiBlue, text) }

// HiMagenta returns text colored high-intensity magenta.
func HiMagenta(text string) string { return Sprint(ansi.FgHiMagenta, text) }

// PrintHiMagenta prints text colored high-intensity magenta.
func PrintHiMagenta(text string) error { return Print(ansi.FgHiMagenta, text) }

// PrintlnHiMagenta prints text colored high-intensity magenta, with a
// newline.
func PrintlnHiMagenta(text string) error { return Println(ansi.FgHiMagenta, text) }

// HiCyan returns text colored high-intensity cyan.
func HiCyan(text string) string { return Sprint(ansi.FgHiCyan, text) }

// PrintHiCyan prints text colored high-intensity cyan.
func PrintHiCyan(text string) error { return Print(ansi.FgHiCyan, text) }

// PrintlnHiCyan prints text colored high-intensity cyan, with a newline.
func PrintlnHiCyan(text string) error { return Println(ansi.FgHiCyan, text) }

// HiWhite returns text colored high-intensity white.
func HiWhite(text string) string { return Sprint(ansi.FgHiWhite, text) }

// PrintHiWhite prints text colored high-intensity white.
func PrintHiWhite(text string) error { return Print(ansi.FgHiWhite, text) }

// PrintlnHiWhite prints text colored high-intensity white, with a newline.
func PrintlnHiWhite(text string) error { return Println(ansi.FgHiWhite, text) }
