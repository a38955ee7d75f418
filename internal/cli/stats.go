package cli

import (
	"github.com/spf13/cobra"

	"leettrack/internal/usecase"
)

func newStatsCmd(tracker *usecase.Tracker) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show statistics about indexed problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tracker.Stats()
		},
	}
}
