// Package domain contains the scale selection and fretboard layout logic.
package domain

import (
	"strconv"
	"strings"

	m "github.com/mouse-blink/dailyscale/internal/model"
)

// Padding characters for the string lines.
const (
	ThickPad = '='
	ThinPad  = '-'
	numPad   = ' '
)

// numThinStrings is the count of highest pitched strings drawn with ThinPad.
const numThinStrings = 3

// openSlotWidth is the width of the fret 0 column.
const openSlotWidth = 2

// fretLength approximates real fret spacing: columns narrow towards the body.
var fretLength = [m.MaxFret + 1]int{
	0, 10, 10, 9, 9, 9, 8, 8, 8, 8, 7, 7, 7, 7, 7, 6, 6, 6, 6, 6, 6, 5, 5, 5, 5,
}

// FretLength returns the column width of fret, not counting the leading bar.
// Fret 0 has no bar and is openSlotWidth wide.
func FretLength(fret int) int {
	if fret == 0 {
		return openSlotWidth
	}

	return fretLength[fret]
}

// RenderOptions configures how note labels are spelled and decorated.
type RenderOptions struct {
	Flat     bool
	Decorate m.Decorator
}

func (o RenderOptions) decorate(label string, degree int) string {
	if o.Decorate == nil {
		return label
	}

	return o.Decorate(label, degree)
}

// Render lays out a fret window for every string of tuning. Lines are
// ordered highest pitched string first and the fret number line comes last.
// startingFret must be within [0, m.MaxStartingFret].
func Render(tuning m.Tuning, startingFret int, scale m.ResolvedScale, opts RenderOptions) m.FretBoard {
	strs := tuning.Notes()
	lines := make([]string, 0, len(strs)+1)

	for i := len(strs) - 1; i >= 0; i-- {
		lines = append(lines, BuildString(startingFret, scale, strs[i], PadFor(i, len(strs)), opts))
	}

	lines = append(lines, BuildNumberString(startingFret))

	return m.FretBoard{StartingFret: startingFret, Lines: lines}
}

// PadFor returns the padding character of the string at index (lowest
// pitched string is 0) in a tuning with count strings.
func PadFor(index, count int) rune {
	if index < count-numThinStrings {
		return ThickPad
	}

	return ThinPad
}

// BuildString renders a single string line for the window starting at
// startingFret.
func BuildString(startingFret int, scale m.ResolvedScale, open m.Note, pad rune, opts RenderOptions) string {
	var sb strings.Builder

	for fret := startingFret; fret < startingFret+m.FretSpan; fret++ {
		note := open.Transpose(fret)
		sn, inScale := scale.Lookup(note)

		if fret == 0 {
			if inScale {
				sb.WriteString(formatNote(sn, pad, opts))
			} else {
				writeRepeat(&sb, pad, openSlotWidth)
			}

			continue
		}

		sb.WriteByte('|')

		length := fretLength[fret]
		if !inScale {
			writeRepeat(&sb, pad, length)

			continue
		}

		left, right := centre(length)
		writeRepeat(&sb, pad, left)
		sb.WriteString(formatNote(sn, pad, opts))
		writeRepeat(&sb, pad, right)
	}

	sb.WriteByte('|')

	return sb.String()
}

// BuildNumberString renders the fret number line for the window starting
// at startingFret.
func BuildNumberString(startingFret int) string {
	var sb strings.Builder

	for fret := startingFret; fret < startingFret+m.FretSpan; fret++ {
		if fret == 0 {
			writeRepeat(&sb, numPad, openSlotWidth)

			continue
		}

		sb.WriteByte('|')

		left, right := centre(fretLength[fret])
		writeRepeat(&sb, numPad, left)
		sb.WriteString(formatFretNum(fret))
		writeRepeat(&sb, numPad, right)
	}

	sb.WriteByte('|')

	return sb.String()
}

// centre splits the padding around a two character glyph in a column of
// the given length. Odd columns put the extra character on the left.
func centre(length int) (int, int) {
	half := length / 2
	right := half - 1

	if length%2 != 0 {
		return half, right
	}

	return half - 1, right
}

// formatNote returns the two character glyph for a note: the label, plus
// one pad character when the label is a single letter. Only the label is
// passed through the decorator.
func formatNote(sn m.ScaleNote, pad rune, opts RenderOptions) string {
	label := sn.Note.Label(opts.Flat)
	decorated := opts.decorate(label, sn.Degree)

	if len(label) == 1 {
		return decorated + string(pad)
	}

	return decorated
}

func formatFretNum(fret int) string {
	s := strconv.Itoa(fret)
	if len(s) == 1 {
		return s + " "
	}

	return s
}

func writeRepeat(sb *strings.Builder, r rune, n int) {
	for range n {
		sb.WriteRune(r)
	}
}
