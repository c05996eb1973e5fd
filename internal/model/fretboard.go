package model

// Fret window limits.
const (
	// MaxFret is the highest fret on the instrument.
	MaxFret = 24
	// FretSpan is the number of frets shown in one diagram.
	FretSpan = 5
	// MaxStartingFret is the highest starting fret that keeps the window on the neck.
	MaxStartingFret = MaxFret - FretSpan
)

// Decorator wraps an already laid out note label, typically with colour
// codes chosen by the note's scale degree.
type Decorator func(label string, degree int) string

// PlainDecorator returns labels unchanged.
func PlainDecorator(label string, _ int) string {
	return label
}

// Format holds the display preferences for a selection.
type Format struct {
	Flat    bool
	Colored bool
}

// Selection is the scale picked for a run.
type Selection struct {
	Tuning       Tuning
	Root         Note
	Scale        Scale
	StartingFret int
	Notes        ResolvedScale
	Format       Format
}

// FretBoard is a rendered diagram: one line per string, highest pitched
// string first, followed by the fret number line.
type FretBoard struct {
	StartingFret int
	Lines        []string
}

// Strings returns the string lines without the fret number line.
func (f FretBoard) Strings() []string {
	if len(f.Lines) == 0 {
		return nil
	}

	return f.Lines[:len(f.Lines)-1]
}

// Numbers returns the fret number line.
func (f FretBoard) Numbers() string {
	if len(f.Lines) == 0 {
		return ""
	}

	return f.Lines[len(f.Lines)-1]
}
