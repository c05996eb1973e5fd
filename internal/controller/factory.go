package controller

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// NewUI picks the presentation for the command's output. Terminals get the
// styled TUI, anything else plain text. With colored unset (NO_COLOR) the
// TUI keeps its layout but drops every colour, the degree palette included.
func NewUI(cmd *cobra.Command, useTTY, colored bool) UI {
	if !useTTY {
		return NewSimpleUI(cmd)
	}

	tui := NewTUI(cmd.OutOrStdout())
	if !colored {
		tui.colored = false
		tui.renderer.SetColorProfile(termenv.Ascii)
	}

	return tui
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fd := file.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
