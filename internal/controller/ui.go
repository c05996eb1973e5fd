// Package controller renders fretboards and catalogs for the terminal.
package controller

import (
	m "github.com/mouse-blink/dailyscale/internal/model"
)

// RenderFunc renders the window starting at the given fret for the current selection.
type RenderFunc func(startingFret int) m.FretBoard

// UI defines how results are presented.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// Decorator returns the label decorator to lay out boards with.
	Decorator(colored bool) m.Decorator
	DisplayFretBoard(sel m.Selection, board m.FretBoard) error
	DisplayPositions(sel m.Selection, boards []m.FretBoard) error
	DisplayCatalog(header []string, rows [][]string) error
	Browse(sel m.Selection, render RenderFunc) error
}
