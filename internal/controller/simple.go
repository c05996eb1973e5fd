package controller

import (
	"fmt"

	m "github.com/mouse-blink/dailyscale/internal/model"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI with plain text written to the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Decorator always returns the plain decorator; piped output carries no colour.
func (s *SimpleUI) Decorator(_ bool) m.Decorator {
	return m.PlainDecorator
}

// DisplayFretBoard prints the board followed by the scale summary.
func (s *SimpleUI) DisplayFretBoard(sel m.Selection, board m.FretBoard) error {
	for _, line := range board.Lines {
		s.printf("%s\n", line)
	}

	for _, line := range summaryLines(sel, board.StartingFret, m.PlainDecorator) {
		s.printf("%s\n", line)
	}

	return nil
}

// DisplayPositions prints a heading naming the scale, every board separated
// by blank lines, then the notes of the scale.
func (s *SimpleUI) DisplayPositions(sel m.Selection, boards []m.FretBoard) error {
	s.printf("%s\n", positionsHeading(sel, m.PlainDecorator))

	for _, board := range boards {
		s.printf("\n")

		for _, line := range board.Lines {
			s.printf("%s\n", line)
		}
	}

	s.printf("\n%s\n", summaryLines(sel, sel.StartingFret, m.PlainDecorator)[1])

	return nil
}

// DisplayCatalog prints a table.
func (s *SimpleUI) DisplayCatalog(header []string, rows [][]string) error {
	s.printf("%s", renderTable(header, rows))

	return nil
}

// Browse falls back to printing the selected window; there is no terminal to interact with.
func (s *SimpleUI) Browse(sel m.Selection, render RenderFunc) error {
	return s.DisplayFretBoard(sel, render(sel.StartingFret))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
