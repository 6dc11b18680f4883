// internal/cli/install.go
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install <pkgs...> [options...]",
	Short: "Install packages and mark them as manually installed",
	Long: `Install packages with brew and record their full names in the manual list.

Arguments starting with "-" are passed to brew install untouched.

Examples:
  brew-track install wget
  brew-track install jq wget --build-from-source
  brew-track install hashicorp/tap/terraform`,
	DisableFlagParsing: true,
	RunE:               runInstall,
}

func runInstall(cmd *cobra.Command, args []string) error {
	tracker, err := newTracker(cmd)
	if err != nil {
		return err
	}
	return tracker.Install(context.Background(), args)
}
