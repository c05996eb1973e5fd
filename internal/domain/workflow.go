package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mouse-blink/dailyscale/internal/controller"
	m "github.com/mouse-blink/dailyscale/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CatalogKind names a catalog that can be listed.
type CatalogKind string

// Available catalogs.
const (
	CatalogScales  CatalogKind = "scales"
	CatalogTunings CatalogKind = "tunings"
	CatalogNotes   CatalogKind = "notes"
)

// TodayArgs holds the arguments for showing a single window.
type TodayArgs struct {
	SelectArgs
}

// PositionsArgs holds the arguments for showing every window of a scale.
type PositionsArgs struct {
	SelectArgs
	Threads int
}

// ListArgs holds the arguments for listing a catalog.
type ListArgs struct {
	Kind CatalogKind
}

// Workflow defines the operations exposed on the command line.
type Workflow interface {
	Today(args TodayArgs) error
	Positions(args PositionsArgs) error
	Browse(args TodayArgs) error
	List(args ListArgs) error
}

type workflow struct {
	selector Selector
	ui       controller.UI
}

// NewWorkflow creates a new Workflow.
func NewWorkflow(selector Selector, ui controller.UI) Workflow {
	return &workflow{
		selector: selector,
		ui:       ui,
	}
}

// Today renders the selected window.
func (w *workflow) Today(args TodayArgs) error {
	sel, err := w.selector.Select(args.SelectArgs)
	if err != nil {
		return err
	}

	board := Render(sel.Tuning, sel.StartingFret, sel.Notes, w.renderOptions(sel))

	return w.ui.DisplayFretBoard(sel, board)
}

// Positions renders every window of the selected scale, from the nut to
// the body, using up to args.Threads workers.
func (w *workflow) Positions(args PositionsArgs) error {
	sel, err := w.selector.Select(args.SelectArgs)
	if err != nil {
		return err
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	opts := w.renderOptions(sel)
	boards := make([]m.FretBoard, m.MaxStartingFret+1)

	var g errgroup.Group
	g.SetLimit(threads)

	for fret := range boards {
		g.Go(func() error {
			boards[fret] = Render(sel.Tuning, fret, sel.Notes, opts)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("render positions: %w", err)
	}

	zap.L().Debug("rendered positions", zap.Int("count", len(boards)), zap.Int("threads", threads))

	return w.ui.DisplayPositions(sel, boards)
}

// Browse hands the selection to the interactive browser.
func (w *workflow) Browse(args TodayArgs) error {
	sel, err := w.selector.Select(args.SelectArgs)
	if err != nil {
		return err
	}

	opts := w.renderOptions(sel)

	return w.ui.Browse(sel, func(startingFret int) m.FretBoard {
		return Render(sel.Tuning, startingFret, sel.Notes, opts)
	})
}

// List shows one of the catalogs as a table.
func (w *workflow) List(args ListArgs) error {
	header, rows, err := catalogRows(args.Kind)
	if err != nil {
		return err
	}

	return w.ui.DisplayCatalog(header, rows)
}

func (w *workflow) renderOptions(sel m.Selection) RenderOptions {
	return RenderOptions{
		Flat:     sel.Format.Flat,
		Decorate: w.ui.Decorator(sel.Format.Colored),
	}
}

func catalogRows(kind CatalogKind) ([]string, [][]string, error) {
	switch kind {
	case CatalogScales:
		rows := make([][]string, 0, len(m.Scales()))
		for _, scale := range m.Scales() {
			rows = append(rows, []string{scale.Name(), scale.String(), joinInts(scale.Steps())})
		}

		return []string{"Name", "Scale", "Steps"}, rows, nil
	case CatalogTunings:
		rows := make([][]string, 0, len(m.Tunings()))
		for _, tuning := range m.Tunings() {
			labels := make([]string, 0, len(tuning.Notes()))
			for _, note := range tuning.Notes() {
				labels = append(labels, note.String())
			}

			rows = append(rows, []string{tuning.Name(), tuning.String(), strings.Join(labels, " ")})
		}

		return []string{"Name", "Tuning", "Strings"}, rows, nil
	case CatalogNotes:
		rows := make([][]string, 0, len(m.Accidentals()))
		for _, acc := range m.Accidentals() {
			rows = append(rows, []string{acc.Name(), acc.String(), acc.Note().String()})
		}

		return []string{"Name", "Spelling", "Note"}, rows, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown catalog %q", ErrInvalidArgument, kind)
	}
}

func joinInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.Itoa(v))
	}

	return strings.Join(parts, " ")
}
