// internal/cli/autoremove.go
package cli

import (
	"context"

	"github.com/spf13/cobra"

	brewtrack "github.com/arc-language/brew-track"
)

var autoremoveCmd = &cobra.Command{
	Use:   "autoremove",
	Short: "Remove packages no manually installed package depends on",
	Long: `List every installed package that is neither in the manual list nor a
dependency of something in it, then remove them after confirmation.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return brewtrack.ErrUsage
		}
		return nil
	},
	RunE: runAutoremove,
}

func runAutoremove(cmd *cobra.Command, args []string) error {
	tracker, err := newTracker(cmd)
	if err != nil {
		return err
	}
	return tracker.Autoremove(context.Background())
}
