// internal/cli/list.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	brewtrack "github.com/arc-language/brew-track"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List manually installed packages",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return brewtrack.ErrUsage
		}
		return nil
	},
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	tracker, err := newTracker(cmd)
	if err != nil {
		return err
	}

	names, err := tracker.Manual()
	if err != nil {
		return err
	}

	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
