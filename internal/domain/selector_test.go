package domain

import (
	"errors"
	"testing"
	"time"

	m "github.com/mouse-blink/dailyscale/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock always reports the same instant.
type fixedClock time.Time

func (c fixedClock) Now() time.Time {
	return time.Time(c)
}

func fixedSelector(t time.Time) *selector {
	var n uint64

	return &selector{
		clock: fixedClock(t),
		entropy: func() uint64 {
			n++
			return n
		},
	}
}

func TestDaysFromCE(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want int64
	}{
		{"first day", time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC), 1},
		{"epoch", time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC), 719163},
		{"before epoch", time.Date(1969, time.December, 31, 23, 59, 59, 0, time.UTC), 719162},
		{"new year 2024", time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC), 738886},
		{"end of day", time.Date(2026, time.October, 19, 23, 59, 59, 0, time.UTC), 739908},
		{"other zone uses utc date", time.Date(2026, time.October, 20, 1, 0, 0, 0, time.FixedZone("CEST", 2*60*60)), 739908},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysFromCE(tt.t))
		})
	}
}

func TestSelector_SameDaySameSelection(t *testing.T) {
	morning := fixedSelector(time.Date(2026, time.October, 19, 6, 0, 0, 0, time.UTC))
	evening := fixedSelector(time.Date(2026, time.October, 19, 22, 30, 0, 0, time.UTC))

	args := SelectArgs{Tuning: m.StandardE6}

	a, err := morning.Select(args)
	require.NoError(t, err)

	b, err := evening.Select(args)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestSelector_ResolvesSelectedScale(t *testing.T) {
	s := fixedSelector(time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC))

	sel, err := s.Select(SelectArgs{Tuning: m.DropD6})
	require.NoError(t, err)

	assert.Equal(t, m.DropD6, sel.Tuning)
	assert.Equal(t, ResolveScale(sel.Root, sel.Scale), sel.Notes)
	assert.GreaterOrEqual(t, sel.StartingFret, 0)
	assert.LessOrEqual(t, sel.StartingFret, m.MaxStartingFret)
	assert.False(t, sel.Format.Flat)
	assert.True(t, sel.Format.Colored)
}

func TestSelector_RestrictsToArgs(t *testing.T) {
	args := SelectArgs{
		Tuning:        m.StandardB7,
		RootNotes:     []m.Accidental{m.AccBFlat, m.AccEFlat},
		Scales:        []m.Scale{m.Dorian, m.Lydian},
		StartingFrets: []int{3, 12},
		Uncolored:     true,
	}

	for day := 0; day < 30; day++ {
		s := fixedSelector(time.Date(2026, time.January, 1+day, 0, 0, 0, 0, time.UTC))

		sel, err := s.Select(args)
		require.NoError(t, err)

		assert.Contains(t, []m.Note{m.ASharp, m.DSharp}, sel.Root)
		assert.Contains(t, args.Scales, sel.Scale)
		assert.Contains(t, args.StartingFrets, sel.StartingFret)
		assert.True(t, sel.Format.Flat, "flat spellings select flat display")
		assert.False(t, sel.Format.Colored)
	}
}

func TestSelector_FullRandomnessIgnoresDate(t *testing.T) {
	s := fixedSelector(time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC))

	dated, err := s.Select(SelectArgs{Tuning: m.StandardE6})
	require.NoError(t, err)

	var differs bool

	for i := 0; i < 20 && !differs; i++ {
		random, err := s.Select(SelectArgs{Tuning: m.StandardE6, FullRandomness: true})
		require.NoError(t, err)

		differs = random.Root != dated.Root || random.Scale != dated.Scale || random.StartingFret != dated.StartingFret
	}

	assert.True(t, differs, "random selections never left today's pick")
}

func TestSelector_InvalidArgs(t *testing.T) {
	tests := []struct {
		name string
		args SelectArgs
	}{
		{"starting fret past window", SelectArgs{StartingFrets: []int{m.MaxStartingFret + 1}}},
		{"negative starting fret", SelectArgs{StartingFrets: []int{-1}}},
		{"unknown tuning", SelectArgs{Tuning: m.Tuning(200)}},
		{"unknown scale", SelectArgs{Scales: []m.Scale{m.Scale(99)}}},
		{"unknown root", SelectArgs{RootNotes: []m.Accidental{m.Accidental(99)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fixedSelector(time.Now()).Select(tt.args)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
		})
	}
}

func TestValidateStartingFret(t *testing.T) {
	assert.NoError(t, ValidateStartingFret(0))
	assert.NoError(t, ValidateStartingFret(m.MaxStartingFret))
	assert.ErrorIs(t, ValidateStartingFret(m.MaxStartingFret+1), ErrInvalidArgument)
}
