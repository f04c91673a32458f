package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/workbench/internal/domain/entities"
)

// waitDelay bounds how long Wait keeps reading pipes after the process group was killed.
const waitDelay = 2 * time.Second

// ShellRepository implements repositories.ShellRepository on top of os/exec.
// Each command runs in its own process group inside the workspace root.
type ShellRepository struct {
	shell string
	dir   string
}

// NewShellRepository creates a ShellRepository from the exec and workspace settings.
func NewShellRepository(settings *entities.Settings) *ShellRepository {
	return &ShellRepository{
		shell: settings.Exec.Shell,
		dir:   settings.Workspace.Root,
	}
}

// Run executes command through the shell, waiting up to timeout.
func (it *ShellRepository) Run(
	ctx context.Context,
	command string,
	timeout time.Duration,
) (*entities.CommandResult, error) {
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, it.shell, shellFlag(it.shell), command)
	cmd.Dir = it.dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay
	configureProcessGroup(cmd)

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	if runCtx.Err() != nil {
		logger.Warnf("Command exceeded its %s budget and was killed", timeout)
		return nil, &entities.ExecutionError{Command: command, TimedOut: true, Cause: runCtx.Err()}
	}

	result := &entities.CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: duration,
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, &entities.ExecutionError{Command: command, Cause: err}
		}
		result.ExitCode = exitErr.ExitCode()
	}

	return result, nil
}
