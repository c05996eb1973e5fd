package model

import (
	"errors"
	"fmt"
	"strings"
)

// Scale identifies a named interval pattern.
type Scale uint8

// Available Scale values.
const (
	Major Scale = iota
	HarmonicMinor
	MelodicMinor
	NaturalMinor
	PentatonicMajor
	PentatonicMinor
	PentatonicBlues
	PentatonicNeutral
	WholeDiminished
	HalfDiminished
	Ionian
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
)

// ErrUnknownScale is returned when a scale name can not be parsed.
var ErrUnknownScale = errors.New("unknown scale")

type scaleInfo struct {
	name  string
	title string
	steps []int
}

var scales = []scaleInfo{
	Major:             {"major", "Major", []int{0, 2, 4, 5, 7, 9, 11}},
	HarmonicMinor:     {"harmonic-minor", "Harmonic Minor", []int{0, 2, 3, 5, 7, 8, 11}},
	MelodicMinor:      {"melodic-minor", "Melodic Minor", []int{0, 2, 3, 5, 7, 9, 11}},
	NaturalMinor:      {"natural-minor", "Natural Minor", []int{0, 2, 3, 5, 7, 8, 10}},
	PentatonicMajor:   {"pentatonic-major", "Pentatonic Major", []int{0, 2, 4, 7, 9}},
	PentatonicMinor:   {"pentatonic-minor", "Pentatonic Minor", []int{0, 3, 5, 7, 10}},
	PentatonicBlues:   {"pentatonic-blues", "Pentatonic Blues", []int{0, 3, 5, 6, 7, 10}},
	PentatonicNeutral: {"pentatonic-neutral", "Pentatonic Neutral", []int{0, 2, 5, 7, 10}},
	WholeDiminished:   {"whole-diminished", "Whole Diminished", []int{0, 2, 3, 5, 6, 8, 9, 11}},
	HalfDiminished:    {"half-diminished", "Half Diminished", []int{0, 1, 3, 4, 6, 7, 9, 10}},
	Ionian:            {"ionian", "Ionian", []int{0, 2, 4, 5, 7, 9, 11}},
	Dorian:            {"dorian", "Dorian", []int{0, 2, 3, 5, 7, 9, 10}},
	Phrygian:          {"phrygian", "Phrygian", []int{0, 1, 3, 5, 7, 8, 10}},
	Lydian:            {"lydian", "Lydian", []int{0, 2, 4, 6, 7, 9, 11}},
	Mixolydian:        {"mixolydian", "Mixolydian", []int{0, 2, 4, 5, 7, 9, 10}},
	Aeolian:           {"aeolian", "Aeolian", []int{0, 2, 3, 5, 7, 8, 10}},
	Locrian:           {"locrian", "Locrian", []int{0, 1, 3, 5, 6, 8, 10}},
}

// Scales returns the full scale catalog.
func Scales() []Scale {
	out := make([]Scale, len(scales))
	for i := range scales {
		out[i] = Scale(i)
	}

	return out
}

// Steps returns the semitone offsets of the scale relative to its root.
// The returned slice is a copy and may be modified by the caller.
func (s Scale) Steps() []int {
	steps := scales[s].steps
	out := make([]int, len(steps))
	copy(out, steps)

	return out
}

// Valid reports whether s is part of the catalog.
func (s Scale) Valid() bool {
	return int(s) < len(scales)
}

// Name returns the command line name of the scale.
func (s Scale) Name() string {
	return scales[s].name
}

// String returns the human readable scale name.
func (s Scale) String() string {
	return scales[s].title
}

// ParseScale looks a scale up by command line name or title.
func ParseScale(name string) (Scale, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	for i, info := range scales {
		if key == info.name || key == strings.ToLower(info.title) {
			return Scale(i), nil
		}
	}

	return Major, fmt.Errorf("%w: %q", ErrUnknownScale, name)
}

// ScaleNote is a note of a resolved scale together with its degree, the
// semitone offset from the root.
type ScaleNote struct {
	Note   Note
	Degree int
}

// ResolvedScale is the ordered set of notes a scale produces for a root.
type ResolvedScale []ScaleNote

// Lookup returns the scale entry for note if the note belongs to the scale.
func (r ResolvedScale) Lookup(note Note) (ScaleNote, bool) {
	for _, sn := range r {
		if sn.Note == note {
			return sn, true
		}
	}

	return ScaleNote{}, false
}

// Labels returns the display labels of the notes in scale order.
func (r ResolvedScale) Labels(flat bool) []string {
	out := make([]string, 0, len(r))
	for _, sn := range r {
		out = append(out, sn.Note.Label(flat))
	}

	return out
}
