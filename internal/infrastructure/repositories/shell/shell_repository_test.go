//go:build unit && !windows

package shell_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/workbench/internal/domain/entities"
	"github.com/rios0rios0/workbench/internal/infrastructure/repositories/shell"
	builders "github.com/rios0rios0/workbench/test/domain/entitybuilders"
)

func newShell(t *testing.T) *shell.ShellRepository {
	t.Helper()
	settings := builders.NewSettingsBuilder().WithWorkspaceRoot(t.TempDir()).BuildSettings()
	settings.Exec.Shell = "sh"
	return shell.NewShellRepository(settings)
}

// processGone reports whether pid no longer runs. A killed orphan may linger as a
// zombie until its new parent reaps it, which counts as gone.
func processGone(pid int) bool {
	if errors.Is(syscall.Kill(pid, 0), syscall.ESRCH) {
		return true
	}
	stat, err := os.ReadFile(filepath.Join("/proc", strconv.Itoa(pid), "stat"))
	if err != nil {
		return false
	}
	// the state follows the parenthesised command name
	fields := strings.Fields(string(stat[strings.LastIndexByte(string(stat), ')')+1:]))
	return len(fields) > 0 && fields[0] == "Z"
}

func TestShellRepositoryRun(t *testing.T) {
	t.Parallel()

	t.Run("should capture stdout and a zero exit code", func(t *testing.T) {
		t.Parallel()

		// given
		repository := newShell(t)

		// when
		result, err := repository.Run(context.Background(), "echo hi", 5*time.Second)

		// then
		require.NoError(t, err)
		assert.Equal(t, "hi\n", result.Stdout)
		assert.Empty(t, result.Stderr)
		assert.Equal(t, 0, result.ExitCode)
	})

	t.Run("should capture stderr and a non-zero exit code without failing", func(t *testing.T) {
		t.Parallel()

		// given
		repository := newShell(t)

		// when
		result, err := repository.Run(context.Background(), "echo oops >&2; exit 3", 5*time.Second)

		// then
		require.NoError(t, err)
		assert.Equal(t, "oops\n", result.Stderr)
		assert.Equal(t, 3, result.ExitCode)
	})

	t.Run("should run in the workspace root", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		settings := builders.NewSettingsBuilder().WithWorkspaceRoot(root).BuildSettings()
		settings.Exec.Shell = "sh"
		repository := shell.NewShellRepository(settings)

		// when
		result, err := repository.Run(context.Background(), "pwd -P", 5*time.Second)

		// then
		require.NoError(t, err)
		assert.NotEmpty(t, result.Stdout)
	})

	t.Run("should kill the process group and fail when the timeout elapses", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		settings := builders.NewSettingsBuilder().WithWorkspaceRoot(root).BuildSettings()
		settings.Exec.Shell = "sh"
		repository := shell.NewShellRepository(settings)
		command := "sleep 30 & echo $! > background.pid; sleep 30; echo late"

		// when
		result, err := repository.Run(context.Background(), command, 500*time.Millisecond)

		// then
		var execErr *entities.ExecutionError
		require.ErrorAs(t, err, &execErr)
		assert.True(t, execErr.TimedOut)
		assert.Nil(t, result)

		raw, readErr := os.ReadFile(filepath.Join(root, "background.pid"))
		require.NoError(t, readErr)
		pid, atoiErr := strconv.Atoi(strings.TrimSpace(string(raw)))
		require.NoError(t, atoiErr)
		assert.Eventually(t, func() bool {
			return processGone(pid)
		}, 5*time.Second, 50*time.Millisecond, "background process %d outlived the timeout", pid)
	})
}
