package controller

import (
	"bytes"
	"fmt"
	"strings"

	m "github.com/mouse-blink/dailyscale/internal/model"
	"github.com/olekukonko/tablewriter"
)

// summaryLines describes a selection below its fretboard.
func summaryLines(sel m.Selection, startingFret int, deco m.Decorator) []string {
	flat := sel.Format.Flat

	labels := make([]string, 0, len(sel.Notes))
	for _, sn := range sel.Notes {
		labels = append(labels, deco(sn.Note.Label(flat), sn.Degree))
	}

	return []string{
		fmt.Sprintf("Here's the scale of the day: %s %s starting at fret %d in %s tuning",
			deco(sel.Root.Label(flat), 0), sel.Scale, startingFret, sel.Tuning),
		"The notes in this scale are: " + strings.Join(labels, ", "),
	}
}

// positionsHeading names the scale and tuning shown by every window.
func positionsHeading(sel m.Selection, deco m.Decorator) string {
	return fmt.Sprintf("Every position of %s %s in %s tuning",
		deco(sel.Root.Label(sel.Format.Flat), 0), sel.Scale, sel.Tuning)
}

func renderTable(header []string, rows [][]string) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)
	table.Render()

	return buf.String()
}
