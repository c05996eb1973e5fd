package domain

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/mouse-blink/dailyscale/internal/adapter"
	m "github.com/mouse-blink/dailyscale/internal/model"
	"go.uber.org/zap"
)

// ErrInvalidArgument is returned when a selection request is malformed.
var ErrInvalidArgument = errors.New("invalid argument")

// daysFromCEAtEpoch is the 1-based day count from 0001-01-01 to 1970-01-01.
const daysFromCEAtEpoch = 719163

const secondsPerDay = 24 * 60 * 60

// SelectArgs narrows the candidates the selector may pick from. Empty
// slices allow every value of the catalog.
type SelectArgs struct {
	Tuning         m.Tuning
	RootNotes      []m.Accidental
	Scales         []m.Scale
	StartingFrets  []int
	FullRandomness bool
	Uncolored      bool
}

// Selector picks the scale to practise.
type Selector interface {
	Select(args SelectArgs) (m.Selection, error)
}

type selector struct {
	clock   adapter.Clock
	entropy func() uint64
}

// NewSelector creates a Selector seeded from the calendar day of clock.
func NewSelector(clock adapter.Clock) Selector {
	return &selector{clock: clock, entropy: rand.Uint64}
}

// Select validates args and draws a root note, a scale and a starting fret,
// in that order. The same day and args always produce the same selection
// unless FullRandomness is set.
func (s *selector) Select(args SelectArgs) (m.Selection, error) {
	if err := ValidateSelectArgs(args); err != nil {
		return m.Selection{}, err
	}

	var rng *rand.Rand

	if args.FullRandomness {
		rng = rand.New(rand.NewPCG(s.entropy(), s.entropy()))
	} else {
		seed := DaysFromCE(s.clock.Now())
		zap.L().Debug("seeding from date", zap.Int64("days_from_ce", seed))
		rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	}

	var (
		root m.Note
		flat bool
	)

	if len(args.RootNotes) > 0 {
		acc := choose(rng, args.RootNotes)
		root = acc.Note()
		flat = acc.Flat()
	} else {
		root = choose(rng, m.Notes())
	}

	scales := args.Scales
	if len(scales) == 0 {
		scales = m.Scales()
	}

	scale := choose(rng, scales)

	frets := args.StartingFrets
	if len(frets) == 0 {
		frets = allStartingFrets()
	}

	startingFret := choose(rng, frets)

	sel := m.Selection{
		Tuning:       args.Tuning,
		Root:         root,
		Scale:        scale,
		StartingFret: startingFret,
		Notes:        ResolveScale(root, scale),
		Format:       m.Format{Flat: flat, Colored: !args.Uncolored},
	}

	zap.L().Debug("selected scale",
		zap.String("root", root.Label(flat)),
		zap.String("scale", scale.Name()),
		zap.Int("starting_fret", startingFret),
		zap.String("tuning", args.Tuning.Name()),
	)

	return sel, nil
}

// ValidateSelectArgs checks catalog membership and the starting fret range.
func ValidateSelectArgs(args SelectArgs) error {
	if !args.Tuning.Valid() {
		return fmt.Errorf("%w: tuning %d", ErrInvalidArgument, args.Tuning)
	}

	for _, acc := range args.RootNotes {
		if !acc.Valid() {
			return fmt.Errorf("%w: root note %d", ErrInvalidArgument, acc)
		}
	}

	for _, scale := range args.Scales {
		if !scale.Valid() {
			return fmt.Errorf("%w: scale %d", ErrInvalidArgument, scale)
		}
	}

	for _, fret := range args.StartingFrets {
		if err := ValidateStartingFret(fret); err != nil {
			return err
		}
	}

	return nil
}

// ValidateStartingFret checks that a full window starting at fret fits on the neck.
func ValidateStartingFret(fret int) error {
	if fret < 0 || fret > m.MaxStartingFret {
		return fmt.Errorf("%w: starting fret %d must be between 0 and %d", ErrInvalidArgument, fret, m.MaxStartingFret)
	}

	return nil
}

// DaysFromCE returns the day number of t's UTC date counting 0001-01-01 as day 1.
func DaysFromCE(t time.Time) int64 {
	secs := t.UTC().Unix()

	days := secs / secondsPerDay
	if secs%secondsPerDay < 0 {
		days--
	}

	return days + daysFromCEAtEpoch
}

func allStartingFrets() []int {
	frets := make([]int, 0, m.MaxStartingFret+1)
	for fret := 0; fret <= m.MaxStartingFret; fret++ {
		frets = append(frets, fret)
	}

	return frets
}

func choose[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}
