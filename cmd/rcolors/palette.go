package main

import (
	"github.com/StevenCyb/rcolors/pkg/ansi"
	"github.com/StevenCyb/rcolors/pkg/builder"
	"github.com/StevenCyb/rcolors/pkg/logging"
	"github.com/spf13/cobra"
)

// paletteEntries is the display order for the palette command. The name
// maps in pkg/ansi are unordered, so the ordering lives here.
var paletteEntries = []struct {
	name string
	fg   ansi.Code
	bg   ansi.Code
}{
	{"black", ansi.FgBlack, ansi.BgBlack},
	{"red", ansi.FgRed, ansi.BgRed},
	{"green", ansi.FgGreen, ansi.BgGreen},
	{"yellow", ansi.FgYellow, ansi.BgYellow},
	{"blue", ansi.FgBlue, ansi.BgBlue},
	{"magenta", ansi.FgMagenta, ansi.BgMagenta},
	{"cyan", ansi.FgCyan, ansi.BgCyan},
	{"white", ansi.FgWhite, ansi.BgWhite},
	{"hi-black", ansi.FgHiBlack, ansi.BgHiBlack},
	{"hi-red", ansi.FgHiRed, ansi.BgHiRed},
	{"hi-green", ansi.FgHiGreen, ansi.BgHiGreen},
	{"hi-yellow", ansi.FgHiYellow, ansi.BgHiYellow},
	{"hi-blue", ansi.FgHiBlue, ansi.BgHiBlue},
	{"hi-magenta", ansi.FgHiMagenta, ansi.BgHiMagenta},
	{"hi-cyan", ansi.FgHiCyan, ansi.BgHiCyan},
	{"hi-white", ansi.FgHiWhite, ansi.BgHiWhite},
}

var paletteAttrs = []struct {
	name string
	code ansi.Code
}{
	{"bold", ansi.Bold},
	{"faint", ansi.Faint},
	{"italic", ansi.Italic},
	{"underline", ansi.Underline},
	{"blink-slow", ansi.BlinkSlow},
	{"blink-rapid", ansi.BlinkRapid},
	{"reverse", ansi.ReverseVideo},
	{"concealed", ansi.Concealed},
	{"crossed-out", ansi.CrossedOut},
}

func newPaletteCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Show every supported color and attribute",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.palette")

			b := builder.New()
			if noColor {
				b.DisableColor()
			}

			b.Text("Foreground / background colors:\n")
			for _, e := range paletteEntries {
				b.Text("  ")
				b.Ansi(e.fg).Text(e.name).Reset()
				b.Text("  ")
				b.Ansi(e.bg).Text(e.name).Reset()
				b.Text("\n")
			}

			b.Text("Attributes:\n")
			for _, a := range paletteAttrs {
				b.Text("  ")
				b.Ansi(a.code).Text(a.name).Reset()
				b.Text("\n")
			}

			logger.Debug().Int("directives", b.Len()).Msg("Rendering palette")

			_, err := b.WriteTo(cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Emit the palette without escape codes")

	return cmd
}
