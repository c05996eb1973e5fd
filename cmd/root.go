// Package cmd provides the root command and CLI setup for dailyscale.
package cmd

import (
	"fmt"
	"os"

	"github.com/mouse-blink/dailyscale/internal/adapter"
	"github.com/mouse-blink/dailyscale/internal/controller"
	"github.com/mouse-blink/dailyscale/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var clock adapter.Clock
var configStore adapter.ConfigStore
var selector domain.Selector
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout), os.Getenv(adapter.EnvNoColor) == "")
	clock = adapter.NewSystemClock()
	configStore = adapter.NewConfigStore()
	selector = domain.NewSelector(clock)
	workflow = domain.NewWorkflow(selector, ui)
}

var tuningFlag string
var scalesFlag []string
var rootNotesFlag []string
var startingFretsFlag []int
var fullRandomnessFlag bool
var uncoloredFlag bool
var verboseFlag bool
var configFlag string

var restoreLogger = func() {}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dailyscale",
		Short: "Have you practiced today?",
		Long: `dailyscale picks a scale, a root note and a five fret window for the day
and draws it on the fretboard of your tuning.

The pick is seeded with today's date, so it stays the same all day.
Use --full-randomness for a new pick on every run.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogger,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = zap.L().Sync()
			restoreLogger()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, _, err := selectArgs(cmd)
			if err != nil {
				return err
			}

			return workflow.Today(domain.TodayArgs{SelectArgs: args})
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&tuningFlag, "tuning", "t", defaultTuning, "select the tuning you want to play in")
	flags.StringSliceVarP(&scalesFlag, "scales", "s", nil, "comma separated list of scales")
	flags.StringSliceVarP(&rootNotesFlag, "root-notes", "n", nil, "comma separated list of root notes for the scale")
	flags.IntSliceVarP(&startingFretsFlag, "starting-frets", "f", nil, "comma separated list of starting frets")
	flags.BoolVarP(&fullRandomnessFlag, "full-randomness", "r", false, "use a fully random seed instead of today's date")
	flags.BoolVarP(&uncoloredFlag, "uncolored", "c", false, "plain text output without color")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&configFlag, "config", "", "preferences file (default "+adapter.DefaultConfigPath()+")")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func setupLogger(_ *cobra.Command, _ []string) error {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)

	if verboseFlag {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	restoreLogger = zap.ReplaceGlobals(logger)

	return nil
}
