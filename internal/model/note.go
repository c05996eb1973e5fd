// Package model defines the musical data structures used by dailyscale.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// NumNotes is the number of pitch classes in the chromatic scale.
const NumNotes = 12

// Note is one of the twelve pitch classes, indexed chromatically from A.
type Note uint8

// Available Note values.
const (
	A Note = iota
	ASharp
	B
	C
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
)

// ErrUnknownNote is returned when a note name can not be parsed.
var ErrUnknownNote = errors.New("unknown note")

var notes = [NumNotes]Note{A, ASharp, B, C, CSharp, D, DSharp, E, F, FSharp, G, GSharp}

var sharpLabels = [NumNotes]string{"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#"}

var flatLabels = [NumNotes]string{"A", "Bb", "B", "C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab"}

// Notes returns all pitch classes in chromatic order starting at A.
func Notes() []Note {
	out := make([]Note, NumNotes)
	copy(out, notes[:])

	return out
}

// NoteAt returns the note with the given chromatic index.
func NoteAt(index int) (Note, error) {
	if index < 0 || index >= NumNotes {
		return A, fmt.Errorf("%w: index %d out of range", ErrUnknownNote, index)
	}

	return notes[index], nil
}

// Index returns the chromatic index of the note.
func (n Note) Index() int {
	return int(n)
}

// Valid reports whether n is one of the twelve declared notes.
func (n Note) Valid() bool {
	return int(n) < NumNotes
}

// Transpose returns the note the given number of semitones above n.
// Negative values transpose downwards.
func (n Note) Transpose(semitones int) Note {
	idx := (int(n) + semitones%NumNotes + NumNotes) % NumNotes

	return notes[idx]
}

// Label returns the display spelling of the note. Accidentals are spelled
// with flats when flat is true and with sharps otherwise.
func (n Note) Label(flat bool) string {
	if !n.Valid() {
		return "?"
	}

	if flat {
		return flatLabels[n]
	}

	return sharpLabels[n]
}

// String implements fmt.Stringer using sharp spelling.
func (n Note) String() string {
	return n.Label(false)
}

// Accidental is a user facing spelling of a note, e.g. "a-flat" or "c-sharp".
type Accidental uint8

// Available Accidental values.
const (
	AccAFlat Accidental = iota
	AccA
	AccASharp
	AccBFlat
	AccB
	AccC
	AccCSharp
	AccDFlat
	AccD
	AccDSharp
	AccEFlat
	AccE
	AccF
	AccFSharp
	AccGFlat
	AccG
	AccGSharp
)

type accidentalInfo struct {
	name string
	note Note
	flat bool
}

var accidentals = []accidentalInfo{
	AccAFlat:  {"a-flat", GSharp, true},
	AccA:      {"a", A, false},
	AccASharp: {"a-sharp", ASharp, false},
	AccBFlat:  {"b-flat", ASharp, true},
	AccB:      {"b", B, false},
	AccC:      {"c", C, false},
	AccCSharp: {"c-sharp", CSharp, false},
	AccDFlat:  {"d-flat", CSharp, true},
	AccD:      {"d", D, false},
	AccDSharp: {"d-sharp", DSharp, false},
	AccEFlat:  {"e-flat", DSharp, true},
	AccE:      {"e", E, false},
	AccF:      {"f", F, false},
	AccFSharp: {"f-sharp", FSharp, false},
	AccGFlat:  {"g-flat", FSharp, true},
	AccG:      {"g", G, false},
	AccGSharp: {"g-sharp", GSharp, false},
}

// Accidentals returns every supported spelling.
func Accidentals() []Accidental {
	out := make([]Accidental, len(accidentals))
	for i := range accidentals {
		out[i] = Accidental(i)
	}

	return out
}

// Valid reports whether a is a supported spelling.
func (a Accidental) Valid() bool {
	return int(a) < len(accidentals)
}

// Note returns the pitch class the accidental spells.
func (a Accidental) Note() Note {
	return accidentals[a].note
}

// Flat reports whether the accidental is spelled with a flat.
func (a Accidental) Flat() bool {
	return accidentals[a].flat
}

// Name returns the command line name of the accidental.
func (a Accidental) Name() string {
	return accidentals[a].name
}

// String returns the spelled label, e.g. "Ab".
func (a Accidental) String() string {
	return a.Note().Label(a.Flat())
}

// ParseAccidental accepts either a command line name ("b-flat") or a note
// glyph ("Bb", "c#").
func ParseAccidental(s string) (Accidental, error) {
	key := strings.ToLower(strings.TrimSpace(s))

	for i, info := range accidentals {
		acc := Accidental(i)
		if key == info.name || key == strings.ToLower(acc.String()) {
			return acc, nil
		}
	}

	return AccA, fmt.Errorf("%w: %q", ErrUnknownNote, s)
}
