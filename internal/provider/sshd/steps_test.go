package sshd

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostprep/hostprep/internal/ports"
	"github.com/hostprep/hostprep/internal/testutil/mocks"
)

const configPath = "/etc/ssh/sshd_config"

func TestDirectiveStepCheckMissingFileFails(t *testing.T) {
	fs := mocks.NewFileSystem()
	s := NewDirectiveStep(configPath, "PasswordAuthentication", "no", fs)

	_, err := s.Check(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestDirectiveStepCheckSatisfied(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile(configPath, "PasswordAuthentication no\n")
	s := NewDirectiveStep(configPath, "PasswordAuthentication", "no", fs)

	satisfied, err := s.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, satisfied)
}

func TestDirectiveStepApplyRewritesCommentedLine(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile(configPath, "Port 22\n#PasswordAuthentication yes\n")
	s := NewDirectiveStep(configPath, "PasswordAuthentication", "no", fs)

	require.NoError(t, s.Apply(context.Background()))

	data, err := fs.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, "Port 22\nPasswordAuthentication no\n", string(data))

	satisfied, err := s.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, satisfied, "apply must establish the checked condition")
}

func TestDirectiveStepApplyMissingFileFails(t *testing.T) {
	fs := mocks.NewFileSystem()
	s := NewDirectiveStep(configPath, "PasswordAuthentication", "no", fs)

	err := s.Apply(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestDirectiveStepApplyRejectsInvalidKeyword(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile(configPath, "Port 22\n")
	s := &DirectiveStep{path: configPath, key: "Bad Keyword", value: "no", fs: fs}

	err := s.Apply(context.Background())
	require.Error(t, err)
}

func TestDirectiveStepApplyReplacesConfigAtomically(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile(configPath, "Port 22\n")
	s := NewDirectiveStep(configPath, "PasswordAuthentication", "no", fs)

	require.NoError(t, s.Apply(context.Background()))

	assert.True(t, fs.Renamed(configPath+".tmp", configPath),
		"rewritten config must land via rename, not truncate-then-write")
	assert.False(t, fs.Exists(configPath+".tmp"))

	data, err := fs.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, "Port 22\nPasswordAuthentication no\n", string(data))
}

func TestDirectiveStepApplyKeepsConfigOnRenameFailure(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile(configPath, "Port 22\n")
	fs.FailRenames(errors.New("device busy"))
	s := NewDirectiveStep(configPath, "PasswordAuthentication", "no", fs)

	err := s.Apply(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device busy")

	data, readErr := fs.ReadFile(configPath)
	require.NoError(t, readErr)
	assert.Equal(t, "Port 22\n", string(data), "original config must survive a failed replace")
	assert.False(t, fs.Exists(configPath+".tmp"), "temp file must be cleaned up")
}

func TestDirectiveStepApplyPreservesFileMode(t *testing.T) {
	fs := mocks.NewFileSystem()
	require.NoError(t, fs.WriteFile(configPath, []byte("Port 22\n"), 0o600))
	s := NewDirectiveStep(configPath, "PasswordAuthentication", "no", fs)

	require.NoError(t, s.Apply(context.Background()))
	assert.Equal(t, "-rw-------", fs.Mode(configPath).String())
}

func TestRestartStepCheckNeverSatisfied(t *testing.T) {
	runner := mocks.NewCommandRunner()
	s := NewRestartStep("ssh", runner)

	satisfied, err := s.Check(context.Background())
	require.NoError(t, err)
	assert.False(t, satisfied, "restart runs on every pass")
}

func TestRestartStepApply(t *testing.T) {
	runner := mocks.NewCommandRunner()
	runner.AddResult("systemctl", []string{"restart", "ssh"}, ports.CommandResult{ExitCode: 0})
	s := NewRestartStep("ssh", runner)

	require.NoError(t, s.Apply(context.Background()))
	assert.True(t, runner.CalledWith("systemctl", "restart", "ssh"))
}

func TestRestartStepApplyReportsFailure(t *testing.T) {
	runner := mocks.NewCommandRunner()
	runner.AddResult("systemctl", []string{"restart", "ssh"},
		ports.CommandResult{ExitCode: 1, Stderr: "Failed to restart ssh.service"})
	s := NewRestartStep("ssh", runner)

	err := s.Apply(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to restart")
}

func TestRestartStepApplyPropagatesRunnerError(t *testing.T) {
	runner := mocks.NewCommandRunner()
	runner.AddError("systemctl", []string{"restart", "ssh"}, errors.New("systemctl not found"))
	s := NewRestartStep("ssh", runner)

	require.Error(t, s.Apply(context.Background()))
}
