package controller

import (
	"bytes"
	"strings"
	"testing"

	m "github.com/mouse-blink/dailyscale/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSelection() m.Selection {
	return m.Selection{
		Tuning:       m.StandardE6,
		Root:         m.CSharp,
		Scale:        m.PentatonicMinor,
		StartingFret: 4,
		Notes: m.ResolvedScale{
			{Note: m.CSharp, Degree: 0},
			{Note: m.E, Degree: 3},
			{Note: m.FSharp, Degree: 5},
			{Note: m.GSharp, Degree: 7},
			{Note: m.B, Degree: 10},
		},
		Format: m.Format{Flat: true, Colored: true},
	}
}

func testBoard(start int) m.FretBoard {
	return m.FretBoard{StartingFret: start, Lines: []string{"|--|", "|==|", "| 4|"}}
}

func TestSimpleUI_DisplayFretBoard(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.DisplayFretBoard(testSelection(), testBoard(4)))

	want := "|--|\n|==|\n| 4|\n" +
		"Here's the scale of the day: Db Pentatonic Minor starting at fret 4 in Standard E (6 string) tuning\n" +
		"The notes in this scale are: Db, E, Gb, Ab, B\n"
	assert.Equal(t, want, buf.String())
}

func TestSimpleUI_DisplayPositions(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.DisplayPositions(testSelection(), []m.FretBoard{testBoard(0), testBoard(1)}))

	output := buf.String()
	assert.True(t, strings.HasPrefix(output, "Every position of Db Pentatonic Minor in Standard E (6 string) tuning\n\n|--|"), output)
	assert.Equal(t, 2, strings.Count(output, "|--|\n|==|\n| 4|\n"))
	assert.True(t, strings.HasSuffix(output, "\nThe notes in this scale are: Db, E, Gb, Ab, B\n"), output)
}

func TestSimpleUI_DisplayCatalog(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	err := ui.DisplayCatalog([]string{"Name", "Scale"}, [][]string{{"major", "Major"}, {"dorian", "Dorian"}})
	require.NoError(t, err)

	output := buf.String()
	for _, want := range []string{"NAME", "SCALE", "major", "Major", "dorian", "Dorian"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_BrowsePrintsSelectedWindow(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	var requested []int

	err := ui.Browse(testSelection(), func(start int) m.FretBoard {
		requested = append(requested, start)
		return testBoard(start)
	})
	require.NoError(t, err)

	assert.Equal(t, []int{4}, requested)
	assert.Contains(t, buf.String(), "starting at fret 4")
}

func TestSimpleUI_DecoratorIsPlain(t *testing.T) {
	ui := NewSimpleUI(&cobra.Command{})

	assert.Equal(t, "C#", ui.Decorator(true)("C#", 0))
}
