package model

import (
	"errors"
	"fmt"
	"strings"
)

// Tuning identifies a set of open string notes.
type Tuning uint8

// Available Tuning values.
const (
	StandardE6 Tuning = iota
	OpenG6
	OpenE6
	OpenD6
	OpenC6
	OpenA6
	DropD6
	StandardD6
	DropCSharp6
	StandardCSharp6
	DropC6
	StandardC6
	StandardB7
	DropA7
	StandardA7
	AllFourths7
)

// ErrUnknownTuning is returned when a tuning name can not be parsed.
var ErrUnknownTuning = errors.New("unknown tuning")

type tuningInfo struct {
	name  string
	title string
	notes []Note
}

// Strings are listed lowest pitched first.
var tunings = []tuningInfo{
	StandardE6:      {"standard-e6", "Standard E (6 string)", []Note{E, A, D, G, B, E}},
	OpenG6:          {"open-g6", "Open G (6 string)", []Note{D, G, D, G, B, D}},
	OpenE6:          {"open-e6", "Open E (6 string)", []Note{E, B, E, GSharp, B, E}},
	OpenD6:          {"open-d6", "Open D (6 string)", []Note{D, A, D, FSharp, A, D}},
	OpenC6:          {"open-c6", "Open C (6 string)", []Note{C, G, C, G, C, E}},
	OpenA6:          {"open-a6", "Open A (6 string)", []Note{E, A, E, A, CSharp, E}},
	DropD6:          {"drop-d6", "Drop D (6 string)", []Note{D, A, D, G, B, E}},
	StandardD6:      {"standard-d6", "Standard D (6 string)", []Note{D, G, C, F, A, D}},
	DropCSharp6:     {"drop-c-sharp6", "Drop C# (6 string)", []Note{CSharp, GSharp, CSharp, FSharp, ASharp, DSharp}},
	StandardCSharp6: {"standard-c-sharp6", "Standard C# (6 string)", []Note{CSharp, FSharp, CSharp, E, GSharp, CSharp}},
	DropC6:          {"drop-c6", "Drop C (6 string)", []Note{C, G, C, F, A, D}},
	StandardC6:      {"standard-c6", "Standard C (6 string)", []Note{C, F, ASharp, DSharp, G, C}},
	StandardB7:      {"standard-b7", "Standard B (7 string)", []Note{B, E, A, D, G, B, E}},
	DropA7:          {"drop-a7", "Drop A (7 string)", []Note{A, E, A, D, G, B, E}},
	StandardA7:      {"standard-a7", "Standard A (7 string)", []Note{A, D, G, C, F, A, D}},
	AllFourths7:     {"all-fourths7", "All fourths (7 string)", []Note{B, E, A, D, G, C, F}},
}

// Tunings returns the full tuning catalog.
func Tunings() []Tuning {
	out := make([]Tuning, len(tunings))
	for i := range tunings {
		out[i] = Tuning(i)
	}

	return out
}

// Notes returns the open string notes, lowest pitched string first.
func (t Tuning) Notes() []Note {
	src := tunings[t].notes
	out := make([]Note, len(src))
	copy(out, src)

	return out
}

// Valid reports whether t is part of the catalog.
func (t Tuning) Valid() bool {
	return int(t) < len(tunings)
}

// Name returns the command line name of the tuning.
func (t Tuning) Name() string {
	return tunings[t].name
}

// String returns the human readable tuning name.
func (t Tuning) String() string {
	return tunings[t].title
}

// ParseTuning looks a tuning up by its command line name.
func ParseTuning(name string) (Tuning, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	for i, info := range tunings {
		if key == info.name {
			return Tuning(i), nil
		}
	}

	return StandardE6, fmt.Errorf("%w: %q", ErrUnknownTuning, name)
}
