package brewtrack

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/brew-track/pkg/brew"
	"github.com/arc-language/brew-track/pkg/core"
	"github.com/arc-language/brew-track/pkg/store"
)

type MockPackageManager struct {
	mock.Mock
}

func (m *MockPackageManager) Name() string {
	return "mock"
}

func (m *MockPackageManager) Install(ctx context.Context, pkgs []string, opts *core.InstallOptions) error {
	return m.Called(ctx, pkgs, opts).Error(0)
}

func (m *MockPackageManager) Info(ctx context.Context, pkgs []string) ([]core.Package, error) {
	args := m.Called(ctx, pkgs)
	var out []core.Package
	if p := args.Get(0); p != nil {
		out = p.([]core.Package)
	}
	return out, args.Error(1)
}

func (m *MockPackageManager) Deps(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockPackageManager) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	var out []string
	if l := args.Get(0); l != nil {
		out = l.([]string)
	}
	return out, args.Error(1)
}

func (m *MockPackageManager) Remove(ctx context.Context, pkgs []string) error {
	return m.Called(ctx, pkgs).Error(0)
}

type fixture struct {
	pm      *MockPackageManager
	manual  *store.Manual
	out     *bytes.Buffer
	tracker *Tracker
}

func newFixture(t *testing.T, stdin string, manual ...string) *fixture {
	t.Helper()

	path := filepath.Join(t.TempDir(), "brew-track", "manual")
	m := store.NewManual(path)
	if len(manual) > 0 {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(strings.Join(manual, "\n")+"\n"), 0644))
	}

	pm := new(MockPackageManager)
	out := &bytes.Buffer{}
	logger := zerolog.Nop()

	return &fixture{
		pm:     pm,
		manual: m,
		out:    out,
		tracker: New(pm, m, &Options{
			Stdin:  strings.NewReader(stdin),
			Stdout: out,
			Logger: &logger,
		}),
	}
}

func (f *fixture) manualFile(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(f.manual.Path())
	require.NoError(t, err)
	return string(data)
}

func TestSplitArgs(t *testing.T) {
	opts, names := SplitArgs([]string{"wget", "--HEAD", "jq", "wget", "-v"})
	assert.Equal(t, []string{"--HEAD", "-v"}, opts)
	assert.Equal(t, []string{"wget", "jq"}, names.Items())

	opts, names = SplitArgs(nil)
	assert.Empty(t, opts)
	assert.Equal(t, 0, names.Len())
}

func TestInstall(t *testing.T) {
	f := newFixture(t, "", "jq")
	ctx := context.Background()

	f.pm.On("Info", ctx, []string{"wget", "terraform"}).Return([]core.Package{
		{Name: "wget", FullName: "wget"},
		{Name: "terraform", FullName: "hashicorp/tap/terraform"},
	}, nil)
	f.pm.On("Install", ctx, []string{"wget", "hashicorp/tap/terraform"}, &core.InstallOptions{Args: []string{"--HEAD"}}).Return(nil)

	require.NoError(t, f.tracker.Install(ctx, []string{"wget", "--HEAD", "terraform", "wget"}))

	assert.Equal(t, "jq\nwget\nhashicorp/tap/terraform\n", f.manualFile(t))
	f.pm.AssertExpectations(t)
}

func TestInstall_AlreadyTracked(t *testing.T) {
	f := newFixture(t, "", "wget")
	ctx := context.Background()

	f.pm.On("Info", ctx, []string{"wget"}).Return([]core.Package{{Name: "wget", FullName: "wget"}}, nil)
	f.pm.On("Install", ctx, []string{"wget"}, mock.Anything).Return(nil)

	require.NoError(t, f.tracker.Install(ctx, []string{"wget"}))
	assert.Equal(t, "wget\n", f.manualFile(t))
}

func TestInstall_NoPackages(t *testing.T) {
	f := newFixture(t, "")

	err := f.tracker.Install(context.Background(), []string{"--HEAD"})
	require.ErrorIs(t, err, ErrNoPackages)
	require.ErrorIs(t, err, ErrUsage)
	f.pm.AssertNotCalled(t, "Install", mock.Anything, mock.Anything, mock.Anything)
}

func TestInstall_UnknownPackage(t *testing.T) {
	f := newFixture(t, "")
	ctx := context.Background()
	lookupErr := &brew.CommandError{Args: []string{"info"}, ExitCode: 1, Err: errors.New("exit status 1")}

	f.pm.On("Info", ctx, []string{"nope"}).Return(nil, lookupErr)

	err := f.tracker.Install(ctx, []string{"nope"})
	require.Error(t, err)

	code, ok := brew.ExitCode(err)
	assert.True(t, ok)
	assert.Equal(t, 1, code)

	f.pm.AssertNotCalled(t, "Install", mock.Anything, mock.Anything, mock.Anything)
	_, statErr := os.Stat(f.manual.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestInstall_BrewFailureLeavesManualAlone(t *testing.T) {
	f := newFixture(t, "", "jq")
	ctx := context.Background()
	installErr := &brew.CommandError{Args: []string{"install", "wget"}, ExitCode: 2, Err: errors.New("exit status 2")}

	f.pm.On("Info", ctx, []string{"wget"}).Return([]core.Package{{Name: "wget", FullName: "wget"}}, nil)
	f.pm.On("Install", ctx, []string{"wget"}, mock.Anything).Return(installErr)

	err := f.tracker.Install(ctx, []string{"wget"})
	require.ErrorIs(t, err, installErr)

	var opErr *Error
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "install", opErr.Op)

	code, ok := brew.ExitCode(err)
	assert.True(t, ok)
	assert.Equal(t, 2, code)

	assert.Equal(t, "jq\n", f.manualFile(t))
}

const depsReport = `a: b
b: c
c:
d:
`

func TestAutoremove_Confirmed(t *testing.T) {
	f := newFixture(t, "y\n", "a")
	ctx := context.Background()

	f.pm.On("Deps", ctx).Return(depsReport, nil)
	f.pm.On("List", ctx).Return([]string{"a", "b", "c", "d"}, nil)
	f.pm.On("Remove", ctx, []string{"d"}).Return(nil)

	require.NoError(t, f.tracker.Autoremove(ctx))

	assert.Equal(t, "Packages to be removed:\n * d\nProceed? [y/N] ", f.out.String())
	f.pm.AssertExpectations(t)
}

func TestAutoremove_DefaultDeclines(t *testing.T) {
	f := newFixture(t, "\n", "a")
	ctx := context.Background()

	f.pm.On("Deps", ctx).Return(depsReport, nil)
	f.pm.On("List", ctx).Return([]string{"a", "b", "c", "d"}, nil)

	require.NoError(t, f.tracker.Autoremove(ctx))

	assert.True(t, strings.HasSuffix(f.out.String(), "Aborted!\n"))
	f.pm.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestAutoremove_NothingToRemove(t *testing.T) {
	f := newFixture(t, "", "a")
	ctx := context.Background()

	f.pm.On("Deps", ctx).Return(depsReport, nil)
	f.pm.On("List", ctx).Return([]string{"a", "b", "c"}, nil)

	require.NoError(t, f.tracker.Autoremove(ctx))

	assert.Equal(t, "Nothing to remove.\n", f.out.String())
	f.pm.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestAutoremove_EmptyManualRemovesEverything(t *testing.T) {
	f := newFixture(t, "yes\n")
	ctx := context.Background()

	f.pm.On("Deps", ctx).Return(depsReport, nil)
	f.pm.On("List", ctx).Return([]string{"a", "b", "c", "d"}, nil)
	f.pm.On("Remove", ctx, []string{"a", "b", "c", "d"}).Return(nil)

	require.NoError(t, f.tracker.Autoremove(ctx))
	f.pm.AssertExpectations(t)
}

func TestAutoremove_CyclicDeps(t *testing.T) {
	f := newFixture(t, "", "x")
	ctx := context.Background()

	f.pm.On("Deps", ctx).Return("x: y\ny: x\n", nil)
	f.pm.On("List", ctx).Return([]string{"x", "y"}, nil)

	require.NoError(t, f.tracker.Autoremove(ctx))
	assert.Equal(t, "Nothing to remove.\n", f.out.String())
}

func TestAutoremove_DepsFailure(t *testing.T) {
	f := newFixture(t, "", "a")
	ctx := context.Background()
	depsErr := &brew.CommandError{Args: []string{"deps"}, ExitCode: 1, Err: errors.New("exit status 1")}

	f.pm.On("Deps", ctx).Return("", depsErr)

	err := f.tracker.Autoremove(ctx)
	require.ErrorIs(t, err, depsErr)
	f.pm.AssertNotCalled(t, "List", mock.Anything)
}

func TestAutoremove_MalformedReport(t *testing.T) {
	f := newFixture(t, "", "a")
	ctx := context.Background()

	f.pm.On("Deps", ctx).Return("a b c\n", nil)

	err := f.tracker.Autoremove(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "autoremove")
}

func TestAutoremove_RemoveFailure(t *testing.T) {
	f := newFixture(t, "y\n", "a")
	ctx := context.Background()
	rmErr := &brew.CommandError{Args: []string{"rm", "d"}, ExitCode: 1, Err: errors.New("exit status 1")}

	f.pm.On("Deps", ctx).Return(depsReport, nil)
	f.pm.On("List", ctx).Return([]string{"a", "b", "c", "d"}, nil)
	f.pm.On("Remove", ctx, []string{"d"}).Return(rmErr)

	err := f.tracker.Autoremove(ctx)
	require.ErrorIs(t, err, rmErr)
}

func TestManual(t *testing.T) {
	f := newFixture(t, "", "wget", "jq")

	names, err := f.tracker.Manual()
	require.NoError(t, err)
	assert.Equal(t, []string{"wget", "jq"}, names)

	empty := newFixture(t, "")
	names, err = empty.tracker.Manual()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestError(t *testing.T) {
	err := &Error{Op: "install", Package: "wget", Err: errors.New("boom")}
	assert.Equal(t, "install wget: boom", err.Error())

	err = &Error{Op: "autoremove", Err: errors.New("boom")}
	assert.Equal(t, "autoremove: boom", err.Error())
}
