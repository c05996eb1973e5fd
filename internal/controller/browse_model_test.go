package controller

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/dailyscale/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBrowseModel(t *testing.T, start int) (browseModel, *[]int) {
	t.Helper()

	sel := testSelection()
	sel.StartingFret = start

	var rendered []int

	render := func(fret int) m.FretBoard {
		rendered = append(rendered, fret)
		return testBoard(fret)
	}

	return newBrowseModel(sel, render, m.PlainDecorator, lipgloss.NewRenderer(&bytes.Buffer{})), &rendered
}

func sendKey(t *testing.T, model browseModel, msg tea.KeyMsg) (browseModel, tea.Cmd) {
	t.Helper()

	updated, cmd := model.Update(msg)
	bm, ok := updated.(browseModel)
	require.True(t, ok)

	return bm, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestBrowseModel_Navigation(t *testing.T) {
	model, rendered := newTestBrowseModel(t, 4)
	assert.Nil(t, model.Init())

	model, _ = sendKey(t, model, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 5, model.start)

	model, _ = sendKey(t, model, runeKey('h'))
	model, _ = sendKey(t, model, runeKey('h'))
	assert.Equal(t, 3, model.start)

	model, _ = sendKey(t, model, runeKey('G'))
	assert.Equal(t, m.MaxStartingFret, model.start)

	model, _ = sendKey(t, model, runeKey('l'))
	assert.Equal(t, m.MaxStartingFret, model.start, "window stays on the neck")

	model, _ = sendKey(t, model, runeKey('g'))
	assert.Equal(t, 0, model.start)

	model, _ = sendKey(t, model, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, model.start)

	model, _ = sendKey(t, model, runeKey('r'))
	assert.Equal(t, 4, model.start)

	assert.Equal(t, []int{4, 5, 4, 3, m.MaxStartingFret, 0, 4}, *rendered)
	assert.Equal(t, 4, model.board.StartingFret)
}

func TestBrowseModel_Quit(t *testing.T) {
	model, _ := newTestBrowseModel(t, 0)

	_, cmd := sendKey(t, model, runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = sendKey(t, model, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
}

func TestBrowseModel_View(t *testing.T) {
	model, _ := newTestBrowseModel(t, 7)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model = updated.(browseModel)

	view := model.View()
	for _, want := range []string{
		"Db Pentatonic Minor in Standard E (6 string)",
		"|--|",
		"starting at fret 7",
		"quit",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\n%s", want, view)
		}
	}
}
