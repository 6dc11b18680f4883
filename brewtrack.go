// brewtrack.go
package brewtrack

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arc-language/brew-track/pkg/core"
	"github.com/arc-language/brew-track/pkg/graph"
	"github.com/arc-language/brew-track/pkg/logging"
	"github.com/arc-language/brew-track/pkg/pkgset"
	"github.com/arc-language/brew-track/pkg/prompt"
	"github.com/arc-language/brew-track/pkg/resolve"
	"github.com/arc-language/brew-track/pkg/store"
	"github.com/arc-language/brew-track/pkg/ui"
)

// Options configures a Tracker
type Options struct {
	Stdin  io.Reader // Prompt answers (default: os.Stdin)
	Stdout io.Writer // Reports (default: os.Stdout)
	Styled bool      // Bold headers
	Logger *zerolog.Logger
}

// Tracker records which packages were installed on request and removes
// everything nothing on that list still needs.
type Tracker struct {
	pm       core.PackageManager
	manual   *store.Manual
	prompter *prompt.Prompter
	out      io.Writer
	styled   bool
	logger   zerolog.Logger
}

// New creates a tracker over pm, persisting the manual set in manual
func New(pm core.PackageManager, manual *store.Manual, opts *Options) *Tracker {
	if opts == nil {
		opts = &Options{}
	}

	in := opts.Stdin
	if in == nil {
		in = os.Stdin
	}
	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}

	logger := logging.GetLogger("tracker")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Tracker{
		pm:       pm,
		manual:   manual,
		prompter: prompt.NewPrompter(in, out),
		out:      out,
		styled:   opts.Styled,
		logger:   logger,
	}
}

// SplitArgs separates install arguments into pass-through options, which
// start with "-", and package names, deduplicated in order.
func SplitArgs(args []string) ([]string, *pkgset.Set) {
	var opts []string
	names := pkgset.New()
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			opts = append(opts, arg)
			continue
		}
		names.Add(arg)
	}
	return opts, names
}

// Install installs the packages named in args and records their full names
// in the manual set. The set is only written once brew has succeeded.
func (t *Tracker) Install(ctx context.Context, args []string) error {
	opts, names := SplitArgs(args)
	if names.Len() == 0 {
		return ErrNoPackages
	}

	done := logging.LogOperationStart(t.logger, "install")
	defer done()

	if err := resolve.FullNames(ctx, t.pm, names); err != nil {
		return &Error{Op: "install", Err: err}
	}

	if err := t.pm.Install(ctx, names.Items(), &core.InstallOptions{Args: opts}); err != nil {
		return &Error{Op: "install", Err: err}
	}

	manual, err := t.manual.Read()
	if err != nil {
		return &Error{Op: "install", Err: err}
	}

	for _, name := range names.Items() {
		if manual.Add(name) {
			t.logger.Debug().Str("package", name).Msg("Marked as manually installed")
		}
	}

	if err := t.manual.Write(manual); err != nil {
		return &Error{Op: "install", Err: err}
	}

	return nil
}

// Candidates returns the installed packages that nothing in the manual set
// depends on, directly or transitively.
func (t *Tracker) Candidates(ctx context.Context) ([]string, error) {
	manual, err := t.manual.Read()
	if err != nil {
		return nil, err
	}

	report, err := t.pm.Deps(ctx)
	if err != nil {
		return nil, err
	}

	deps, err := graph.Parse(report)
	if err != nil {
		return nil, err
	}

	reachable := graph.Reachable(deps, manual.Items())

	installed, err := t.pm.List(ctx)
	if err != nil {
		return nil, err
	}

	t.logger.Debug().
		Int("manual", manual.Len()).
		Int("reachable", reachable.Len()).
		Int("installed", len(installed)).
		Msg("Computed reachability")

	return graph.Candidates(installed, reachable), nil
}

// Autoremove lists the removal candidates, asks for confirmation and removes
// them. Declining is not an error.
func (t *Tracker) Autoremove(ctx context.Context) error {
	done := logging.LogOperationStart(t.logger, "autoremove")
	defer done()

	candidates, err := t.Candidates(ctx)
	if err != nil {
		return &Error{Op: "autoremove", Err: err}
	}

	if len(candidates) == 0 {
		fmt.Fprintln(t.out, "Nothing to remove.")
		return nil
	}

	fmt.Fprintln(t.out, ui.Bold("Packages to be removed:", t.styled))
	for _, name := range candidates {
		fmt.Fprintf(t.out, " * %s\n", name)
	}

	proceed, err := t.prompter.YesNo("Proceed?", false)
	if err != nil {
		return &Error{Op: "autoremove", Err: err}
	}
	if !proceed {
		fmt.Fprintln(t.out, "Aborted!")
		return nil
	}

	if err := t.pm.Remove(ctx, candidates); err != nil {
		return &Error{Op: "autoremove", Err: err}
	}

	return nil
}

// Manual returns the manual set in the order packages were recorded
func (t *Tracker) Manual() ([]string, error) {
	set, err := t.manual.Read()
	if err != nil {
		return nil, &Error{Op: "list", Err: err}
	}
	return set.Items(), nil
}
