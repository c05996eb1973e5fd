package cmd

import (
	"github.com/mouse-blink/dailyscale/internal/domain"
	"github.com/spf13/cobra"
)

var positionsParallelFlag int

// positionsCmd represents the positions command.
var positionsCmd = newPositionsCmd()

func newPositionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "positions",
		Short: "Show every fret window of today's scale",
		Long: `Draws today's scale in every five fret window from the nut up to
the body, so the whole neck can be practised in one go.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, prefs, err := selectArgs(cmd)
			if err != nil {
				return err
			}

			threads := positionsParallelFlag
			if !cmd.Flags().Changed("parallel") && prefs.Parallel > 0 {
				threads = prefs.Parallel
			}

			return workflow.Positions(domain.PositionsArgs{
				SelectArgs: args,
				Threads:    threads,
			})
		},
	}
	cmd.Flags().IntVarP(&positionsParallelFlag, "parallel", "p", 1, "number of parallel workers rendering windows")

	return cmd
}

func init() {
	rootCmd.AddCommand(positionsCmd)
}
