package controller

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/dailyscale/internal/model"
)

// TUI implements UI with lipgloss styling and a Bubble Tea browser.
type TUI struct {
	output   io.Writer
	renderer *lipgloss.Renderer
	colored  bool
	runModel func(tea.Model) error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{
		output:   output,
		renderer: lipgloss.NewRenderer(output),
		colored:  true,
	}
	t.runModel = t.runProgram

	return t
}

// Decorator returns the degree palette when colored is set and colour was
// not disabled for the whole UI.
func (t *TUI) Decorator(colored bool) m.Decorator {
	if !colored || !t.colored {
		return m.PlainDecorator
	}

	return NewPalette(t.renderer)
}

// DisplayFretBoard prints the board followed by the scale summary.
func (t *TUI) DisplayFretBoard(sel m.Selection, board m.FretBoard) error {
	deco := t.Decorator(sel.Format.Colored)

	lines := make([]string, 0, len(board.Lines)+2)
	lines = append(lines, board.Lines...)
	lines = append(lines, summaryLines(sel, board.StartingFret, deco)...)

	_, err := fmt.Fprintln(t.output, strings.Join(lines, "\n"))

	return err
}

// DisplayPositions prints every window under a heading.
func (t *TUI) DisplayPositions(sel m.Selection, boards []m.FretBoard) error {
	deco := t.Decorator(sel.Format.Colored)
	headingStyle := t.renderer.NewStyle().Foreground(lipgloss.Color("8")).Bold(true)

	blocks := make([]string, 0, len(boards)+2)
	blocks = append(blocks, positionsHeading(sel, deco))

	for _, board := range boards {
		heading := headingStyle.Render(fmt.Sprintf("Frets %d-%d", board.StartingFret, board.StartingFret+m.FretSpan-1))
		blocks = append(blocks, heading+"\n"+strings.Join(board.Lines, "\n"))
	}

	blocks = append(blocks, summaryLines(sel, sel.StartingFret, deco)[1])

	_, err := fmt.Fprintln(t.output, strings.Join(blocks, "\n\n"))

	return err
}

// DisplayCatalog prints a table.
func (t *TUI) DisplayCatalog(header []string, rows [][]string) error {
	_, err := fmt.Fprint(t.output, renderTable(header, rows))

	return err
}

// Browse runs the interactive window browser until the user quits.
func (t *TUI) Browse(sel m.Selection, render RenderFunc) error {
	return t.runModel(newBrowseModel(sel, render, t.Decorator(sel.Format.Colored), t.renderer))
}

func (t *TUI) runProgram(model tea.Model) error {
	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	return nil
}
