package cli

import (
	"github.com/spf13/cobra"

	"leettrack/internal/usecase"
)

func newListCmd(tracker *usecase.Tracker) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all indexed problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tracker.List()
		},
	}
}
