package cmd

import (
	"github.com/mouse-blink/dailyscale/internal/domain"
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "list {scales|tunings|notes}",
		Short:     "List the available scales, tunings or root notes",
		Long:      "List the names accepted by --scales, --tuning and --root-notes.",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(domain.CatalogScales), string(domain.CatalogTunings), string(domain.CatalogNotes)},
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.List(domain.ListArgs{Kind: domain.CatalogKind(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
