package cli

import (
	"github.com/spf13/cobra"

	"leettrack/internal/usecase"
)

func newSearchCmd(tracker *usecase.Tracker) *cobra.Command {
	var byTag bool

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search indexed problems by title keyword or tag",
		Example: `  leettrack search array
  leettrack search -t "Hash Table"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return tracker.Search(args[0], byTag)
		},
	}

	cmd.Flags().BoolVarP(&byTag, "tag", "t", false, "search by tag instead of title")

	return cmd
}
