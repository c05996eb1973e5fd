package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/dailyscale/internal/model"
)

type browseKeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	First key.Binding
	Last  key.Binding
	Reset key.Binding
	Quit  key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.First, k.Last, k.Reset, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Prev:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "lower")),
		Next:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "higher")),
		First: key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "nut")),
		Last:  key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "body")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "today")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// browseModel steps the fret window of a selection along the neck.
type browseModel struct {
	sel    m.Selection
	render RenderFunc
	deco   m.Decorator
	start  int
	board  m.FretBoard
	keys   browseKeyMap
	help   help.Model

	titleStyle lipgloss.Style
	boardStyle lipgloss.Style
}

func newBrowseModel(sel m.Selection, render RenderFunc, deco m.Decorator, r *lipgloss.Renderer) browseModel {
	titleStyle := r.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	return browseModel{
		sel:        sel,
		render:     render,
		deco:       deco,
		start:      sel.StartingFret,
		board:      render(sel.StartingFret),
		keys:       newBrowseKeyMap(),
		help:       help.New(),
		titleStyle: titleStyle,
		boardStyle: r.NewStyle().Padding(1, 2),
	}
}

func (b browseModel) Init() tea.Cmd {
	return nil
}

func (b browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keys.Quit):
			return b, tea.Quit
		case key.Matches(msg, b.keys.Prev):
			b = b.moveTo(b.start - 1)
		case key.Matches(msg, b.keys.Next):
			b = b.moveTo(b.start + 1)
		case key.Matches(msg, b.keys.First):
			b = b.moveTo(0)
		case key.Matches(msg, b.keys.Last):
			b = b.moveTo(m.MaxStartingFret)
		case key.Matches(msg, b.keys.Reset):
			b = b.moveTo(b.sel.StartingFret)
		}
	}

	return b, nil
}

// moveTo clamps fret to the neck and re-renders when the window moves.
func (b browseModel) moveTo(fret int) browseModel {
	fret = max(0, min(fret, m.MaxStartingFret))
	if fret == b.start {
		return b
	}

	b.start = fret
	b.board = b.render(fret)

	return b
}

func (b browseModel) View() string {
	title := b.titleStyle.Render(fmt.Sprintf("%s %s in %s",
		b.sel.Root.Label(b.sel.Format.Flat), b.sel.Scale, b.sel.Tuning))
	board := b.boardStyle.Render(strings.Join(b.board.Lines, "\n"))
	summary := strings.Join(summaryLines(b.sel, b.start, b.deco), "\n")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		board,
		summary,
		"",
		b.help.View(b.keys),
	) + "\n"
}
