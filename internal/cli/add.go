package cli

import (
	"github.com/spf13/cobra"

	"leettrack/internal/usecase"
)

func newAddCmd(tracker *usecase.Tracker) *cobra.Command {
	return &cobra.Command{
		Use:   "add <id|slug>...",
		Short: "Add one or more problems and generate solution stubs",
		Example: `  leettrack add 1
  leettrack add two-sum
  leettrack add 1 2 15`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return tracker.AddProblems(cmd.Context(), args)
		},
	}
}
