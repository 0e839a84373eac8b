package main

import (
	"io"
	"strings"

	"github.com/StevenCyb/rcolors/pkg/ansi"
	"github.com/StevenCyb/rcolors/pkg/builder"
	"github.com/StevenCyb/rcolors/pkg/errors"
	"github.com/StevenCyb/rcolors/pkg/logging"
	"github.com/spf13/cobra"
)

func newPaintCmd() *cobra.Command {
	var (
		fgName    string
		bgName    string
		attrNames []string
		noColor   bool
		noNewline bool
	)

	cmd := &cobra.Command{
		Use:   "paint [text...]",
		Short: "Render styled text to stdout",
		Long: `Paint joins its arguments with spaces, wraps them in the requested
foreground, background and attribute codes, appends a reset and writes the
result to stdout.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.paint")

			b := builder.New()
			if noColor {
				b.DisableColor()
			}

			if fgName != "" {
				code, ok := ansi.Foreground(fgName)
				if !ok {
					return errors.Newf(errors.ErrUnknownColor, "unknown foreground color %q", fgName)
				}
				b.Ansi(code)
			}
			if bgName != "" {
				code, ok := ansi.Background(bgName)
				if !ok {
					return errors.Newf(errors.ErrUnknownColor, "unknown background color %q", bgName)
				}
				b.Ansi(code)
			}
			for _, name := range attrNames {
				code, ok := ansi.Attribute(name)
				if !ok {
					return errors.Newf(errors.ErrUnknownAttribute, "unknown attribute %q", name)
				}
				b.Ansi(code)
			}

			b.Text(strings.Join(args, " ")).Reset()

			logger.Debug().
				Str("fg", fgName).
				Str("bg", bgName).
				Strs("attrs", attrNames).
				Int("directives", b.Len()).
				Msg("Rendering painted text")

			out := cmd.OutOrStdout()
			if _, err := b.WriteTo(out); err != nil {
				return err
			}
			if !noNewline {
				if _, err := io.WriteString(out, "\n"); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fgName, "fg", "", "Foreground color name (red, hi-cyan, ...)")
	cmd.Flags().StringVar(&bgName, "bg", "", "Background color name")
	cmd.Flags().StringSliceVar(&attrNames, "attr", nil, "Text attributes (bold, italic, underline, ...)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Emit the text without escape codes")
	cmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, "Do not append a trailing newline")

	return cmd
}
