package cli

import (
	"github.com/spf13/cobra"

	"leettrack/internal/usecase"
)

func newSyncCmd(tracker *usecase.Tracker) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Cache the full problemset listing locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tracker.Sync(cmd.Context(), force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "re-sync even when the catalog is populated")

	return cmd
}
