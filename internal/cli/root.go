// Package cli defines the leettrack command tree. Commands receive the
// tracker use case explicitly; no package-level state.
package cli

import (
	"github.com/spf13/cobra"

	"leettrack/internal/usecase"
)

// NewRoot builds the root command with every subcommand attached.
func NewRoot(tracker *usecase.Tracker) *cobra.Command {
	root := &cobra.Command{
		Use:   "leettrack",
		Short: "Track LeetCode problems and generate solution stubs",
		Long: `leettrack fetches LeetCode problem metadata, keeps a local index of
added problems and generates a Go solution stub per problem.

Workflow:
  1. Run 'sync' once to cache the problemset listing locally
  2. Use 'add' to fetch problems and generate solution stubs
  3. Use 'list', 'search' and 'stats' to manage your progress`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newAddCmd(tracker),
		newListCmd(tracker),
		newSearchCmd(tracker),
		newStatsCmd(tracker),
		newSyncCmd(tracker),
	)

	return root
}
