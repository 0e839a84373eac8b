package colors_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/StevenCyb/rcolors/pkg/ansi"
	"github.com/StevenCyb/rcolors/pkg/builder"
	"github.com/StevenCyb/rcolors/pkg/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failWriter struct {
	err error
}

func (w *failWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

func TestSprint(t *testing.T) {
	assert.Equal(t, "\x1b[31mhello\x1b[0m", colors.Sprint(ansi.FgRed, "hello"))
	assert.Equal(t, "\x1b[1mhello\x1b[0m", colors.Sprint(ansi.Bold, "hello"))
	assert.Equal(t, "\x1b[44m\x1b[0m", colors.Sprint(ansi.BgBlue, ""))
}

func TestSprintMatchesBuilder(t *testing.T) {
	for _, code := range []ansi.Code{ansi.FgRed, ansi.FgHiCyan, ansi.BgGreen, ansi.Underline} {
		want := builder.New().ForceColor().Ansi(code).Text("hello").Reset().Render()
		assert.Equal(t, want, colors.Sprint(code, "hello"))
	}
}

func TestShorthands(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		code ansi.Code
	}{
		{"black", colors.Black, ansi.FgBlack},
		{"red", colors.Red, ansi.FgRed},
		{"green", colors.Green, ansi.FgGreen},
		{"yellow", colors.Yellow, ansi.FgYellow},
		{"blue", colors.Blue, ansi.FgBlue},
		{"magenta", colors.Magenta, ansi.FgMagenta},
		{"cyan", colors.Cyan, ansi.FgCyan},
		{"white", colors.White, ansi.FgWhite},
		{"hi_black", colors.HiBlack, ansi.FgHiBlack},
		{"hi_red", colors.HiRed, ansi.FgHiRed},
		{"hi_green", colors.HiGreen, ansi.FgHiGreen},
		{"hi_yellow", colors.HiYellow, ansi.FgHiYellow},
		{"hi_blue", colors.HiBlue, ansi.FgHiBlue},
		{"hi_magenta", colors.HiMagenta, ansi.FgHiMagenta},
		{"hi_cyan", colors.HiCyan, ansi.FgHiCyan},
		{"hi_white", colors.HiWhite, ansi.FgHiWhite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.code.Sequence() + "hello" + ansi.Reset.Sequence()
			assert.Equal(t, want, tt.fn("hello"))
			assert.Equal(t, colors.Sprint(tt.code, "hello"), tt.fn("hello"))
		})
	}
}

func TestShorthandsIgnoreNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	// Shorthands mirror the original macros: they always colorize.
	assert.Equal(t, "\x1b[32mok\x1b[0m", colors.Green("ok"))
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, colors.Fprint(&buf, ansi.FgRed, "x"))
	assert.Equal(t, "\x1b[31mx\x1b[0m", buf.String())
}

func TestFprintln(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, colors.Fprintln(&buf, ansi.FgCyan, "x"))
	assert.Equal(t, "\x1b[36mx\x1b[0m\n", buf.String())
}

func TestFprintPropagatesSinkError(t *testing.T) {
	sinkErr := errors.New("sink closed")
	err := colors.Fprint(&failWriter{err: sinkErr}, ansi.FgRed, "x")
	assert.Equal(t, sinkErr, err)

	err = colors.Fprintln(&failWriter{err: sinkErr}, ansi.FgRed, "x")
	assert.Equal(t, sinkErr, err)
}
