// internal/cli/root.go
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	brewtrack "github.com/arc-language/brew-track"
	"github.com/arc-language/brew-track/pkg/brew"
	"github.com/arc-language/brew-track/pkg/core"
	"github.com/arc-language/brew-track/pkg/logging"
	"github.com/arc-language/brew-track/pkg/paths"
	"github.com/arc-language/brew-track/pkg/store"
	"github.com/arc-language/brew-track/pkg/ui"
)

// Version is the brew-track release, overridden at link time
var Version = "0.1.0"

const usageText = `Usage: brew-track install <pkgs...>
                  autoremove
`

const helpTemplate = `{{bold "Usage:"}}
  {{.UseLine}}{{if .HasAvailableSubCommands}}

{{bold "Commands:"}}{{range .Commands}}{{if .IsAvailableCommand}}
  {{rpad .Name .NamePadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{bold "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
`

var (
	cfgFile string
	debug   bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "brew-track",
	Short: "Track manually installed Homebrew packages",
	Long: `brew-track - Track manually installed Homebrew packages

Remembers which packages you asked Homebrew for, so that packages only
pulled in as dependencies can be removed once nothing needs them.`,
	Version:       Version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return brewtrack.ErrUsage
	},
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

// newTracker builds the tracker a subcommand runs against
var newTracker = defaultTracker

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

// HandleError reports err on stderr and returns the process exit code.
// Usage errors print the usage; a failed brew invocation passes its exit
// code through.
func HandleError(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, brewtrack.ErrUsage) {
		fmt.Fprint(stderr, usageText)
		return 1
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	if code, ok := brew.ExitCode(err); ok {
		return code
	}
	return 1
}

func init() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold": formatBold,
	})

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <config dir>/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.SetHelpTemplate(helpTemplate)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", brewtrack.ErrUsage, err)
	})

	// Add commands
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(autoremoveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

func formatBold(s string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

func loadConfig(p *paths.Paths) (*core.Config, error) {
	path := cfgFile
	if path == "" {
		path = p.ConfigFile()
	}

	config, err := core.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if debug && config.Verbosity < 2 {
		config.Verbosity = 2
	}
	if config.LogFile == "" {
		config.LogFile = p.LogFile()
	}

	return config, nil
}

func defaultTracker(cmd *cobra.Command) (*brewtrack.Tracker, error) {
	p, err := paths.FromEnvironment()
	if err != nil {
		return nil, err
	}

	config, err := loadConfig(p)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logging.SetupLogger(config.Verbosity, config.LogFile)

	logger := logging.GetLogger("brew")
	adapter, err := brew.NewAdapter(&brew.Config{
		Binary: config.BrewPath,
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Logger: &logger,
	})
	if err != nil {
		return nil, err
	}

	styled := false
	if f, ok := cmd.OutOrStdout().(*os.File); ok && !config.NoColor {
		styled = ui.Styled(f)
	}

	return brewtrack.New(adapter, store.NewManual(p.ManualFile()), &brewtrack.Options{
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Styled: styled,
	}), nil
}
