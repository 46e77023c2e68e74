package apt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostprep/hostprep/internal/ports"
	"github.com/hostprep/hostprep/internal/testutil/mocks"
)

func TestUpdateStepCheckFreshIndex(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddDir(aptListsDir)
	fs.SetModTime(aptListsDir, time.Now().Add(-1*time.Hour))

	s := NewUpdateStep(24*time.Hour, mocks.NewCommandRunner(), fs)

	satisfied, err := s.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, satisfied)
}

func TestUpdateStepCheckStaleIndex(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddDir(aptListsDir)
	fs.SetModTime(aptListsDir, time.Now().Add(-48*time.Hour))

	s := NewUpdateStep(24*time.Hour, mocks.NewCommandRunner(), fs)

	satisfied, err := s.Check(context.Background())
	require.NoError(t, err)
	assert.False(t, satisfied)
}

func TestUpdateStepCheckNoListsDir(t *testing.T) {
	s := NewUpdateStep(24*time.Hour, mocks.NewCommandRunner(), mocks.NewFileSystem())

	satisfied, err := s.Check(context.Background())
	require.NoError(t, err)
	assert.False(t, satisfied, "a never-fetched index is not satisfied")
}

func TestUpdateStepApply(t *testing.T) {
	runner := mocks.NewCommandRunner()
	runner.AddResult("apt-get", []string{"update"}, ports.CommandResult{ExitCode: 0})

	s := NewUpdateStep(24*time.Hour, runner, mocks.NewFileSystem())

	require.NoError(t, s.Apply(context.Background()))
	assert.True(t, runner.CalledWith("apt-get", "update"))
}

func TestUpdateStepApplyFailure(t *testing.T) {
	runner := mocks.NewCommandRunner()
	runner.AddResult("apt-get", []string{"update"},
		ports.CommandResult{ExitCode: 100, Stderr: "Could not resolve archive.ubuntu.com"})

	s := NewUpdateStep(24*time.Hour, runner, mocks.NewFileSystem())

	err := s.Apply(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Could not resolve")
}

func TestPackageStepCheckInstalled(t *testing.T) {
	runner := mocks.NewCommandRunner()
	runner.AddResult("dpkg-query", []string{"-W", "-f=${Package}\t${db:Status-Status}\n", "git"},
		ports.CommandResult{ExitCode: 0, Stdout: "git\tinstalled\n"})

	s := NewPackageStep("git", runner)

	satisfied, err := s.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, satisfied)
}

func TestPackageStepCheckNotInstalled(t *testing.T) {
	runner := mocks.NewCommandRunner()
	runner.AddResult("dpkg-query", []string{"-W", "-f=${Package}\t${db:Status-Status}\n", "git"},
		ports.CommandResult{ExitCode: 1, Stderr: "no packages found matching git"})

	s := NewPackageStep("git", runner)

	satisfied, err := s.Check(context.Background())
	require.NoError(t, err)
	assert.False(t, satisfied)
}

func TestPackageStepCheckDeinstalled(t *testing.T) {
	runner := mocks.NewCommandRunner()
	runner.AddResult("dpkg-query", []string{"-W", "-f=${Package}\t${db:Status-Status}\n", "git"},
		ports.CommandResult{ExitCode: 0, Stdout: "git\tconfig-files\n"})

	s := NewPackageStep("git", runner)

	satisfied, err := s.Check(context.Background())
	require.NoError(t, err)
	assert.False(t, satisfied, "removed-but-not-purged packages are not installed")
}

func TestPackageStepApply(t *testing.T) {
	runner := mocks.NewCommandRunner()
	runner.AddResult("apt-get", []string{"install", "-y", "git"}, ports.CommandResult{ExitCode: 0})

	s := NewPackageStep("git", runner)

	require.NoError(t, s.Apply(context.Background()))
	assert.True(t, runner.CalledWith("apt-get", "install", "-y", "git"))
}

func TestPackageStepApplyRejectsInvalidName(t *testing.T) {
	runner := mocks.NewCommandRunner()
	s := NewPackageStep("NotAPackage", runner)

	err := s.Apply(context.Background())
	require.Error(t, err)
	assert.Empty(t, runner.Calls(), "no command may run for an invalid name")
}

func TestPackageStepApplyPropagatesRunnerError(t *testing.T) {
	runner := mocks.NewCommandRunner()
	runner.AddError("apt-get", []string{"install", "-y", "git"}, errors.New("apt-get not found"))

	s := NewPackageStep("git", runner)

	require.Error(t, s.Apply(context.Background()))
}
