package cmd

import (
	"fmt"

	"github.com/mouse-blink/dailyscale/internal/adapter"
	"github.com/mouse-blink/dailyscale/internal/domain"
	m "github.com/mouse-blink/dailyscale/internal/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultTuning = "standard-e6"

// selectArgs merges flags over the stored preferences. Flags set on the
// command line always win.
func selectArgs(cmd *cobra.Command) (domain.SelectArgs, adapter.Preferences, error) {
	path := configFlag
	if path == "" {
		path = adapter.DefaultConfigPath()
	}

	prefs, err := configStore.Load(path)
	if err != nil {
		return domain.SelectArgs{}, prefs, err
	}

	zap.L().Debug("loaded preferences", zap.String("path", path), zap.Any("preferences", prefs))

	flags := cmd.Flags()

	tuningName := tuningFlag
	if !flags.Changed("tuning") && prefs.Tuning != "" {
		tuningName = prefs.Tuning
	}

	scaleNames := scalesFlag
	if !flags.Changed("scales") {
		scaleNames = prefs.Scales
	}

	noteNames := rootNotesFlag
	if !flags.Changed("root-notes") {
		noteNames = prefs.RootNotes
	}

	frets := startingFretsFlag
	if !flags.Changed("starting-frets") {
		frets = prefs.StartingFrets
	}

	args := domain.SelectArgs{
		StartingFrets:  frets,
		FullRandomness: fullRandomnessFlag || (!flags.Changed("full-randomness") && prefs.FullRandomness),
		Uncolored:      uncoloredFlag || (!flags.Changed("uncolored") && prefs.Uncolored),
	}

	if args.Tuning, err = m.ParseTuning(tuningName); err != nil {
		return args, prefs, fmt.Errorf("%w: %w", domain.ErrInvalidArgument, err)
	}

	for _, name := range scaleNames {
		scale, err := m.ParseScale(name)
		if err != nil {
			return args, prefs, fmt.Errorf("%w: %w", domain.ErrInvalidArgument, err)
		}

		args.Scales = append(args.Scales, scale)
	}

	for _, name := range noteNames {
		acc, err := m.ParseAccidental(name)
		if err != nil {
			return args, prefs, fmt.Errorf("%w: %w", domain.ErrInvalidArgument, err)
		}

		args.RootNotes = append(args.RootNotes, acc)
	}

	return args, prefs, domain.ValidateSelectArgs(args)
}
