package cmd

import (
	"github.com/mouse-blink/dailyscale/internal/domain"
	"github.com/spf13/cobra"
)

// browseCmd represents the browse command.
var browseCmd = newBrowseCmd()

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Move today's window along the neck interactively",
		Long:  "Opens today's scale in an interactive view. Use the arrow keys to move the fret window.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, _, err := selectArgs(cmd)
			if err != nil {
				return err
			}

			return workflow.Browse(domain.TodayArgs{SelectArgs: args})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
