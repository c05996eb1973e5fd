package controller

import (
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/dailyscale/internal/model"
)

// degreeColors maps scale degrees to ANSI colours. The root is green;
// degrees without an entry are left uncoloured.
var degreeColors = map[int]lipgloss.Color{
	0:  lipgloss.Color("2"),
	3:  lipgloss.Color("1"),
	4:  lipgloss.Color("1"),
	5:  lipgloss.Color("6"),
	6:  lipgloss.Color("0"),
	7:  lipgloss.Color("4"),
	9:  lipgloss.Color("5"),
	10: lipgloss.Color("3"),
	11: lipgloss.Color("3"),
}

// NewPalette returns a decorator colouring labels by scale degree with the
// given renderer. Colours are dropped when the renderer's output has no
// colour support.
func NewPalette(r *lipgloss.Renderer) m.Decorator {
	styles := make(map[int]lipgloss.Style, len(degreeColors))
	for degree, color := range degreeColors {
		styles[degree] = r.NewStyle().Foreground(color)
	}

	return func(label string, degree int) string {
		style, ok := styles[degree]
		if !ok {
			return label
		}

		return style.Render(label)
	}
}
