package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/workbench/internal/domain/entities"
	"github.com/rios0rios0/workbench/internal/domain/repositories"
	"github.com/rios0rios0/workbench/internal/infrastructure/metrics"
)

// Exec is the interface for the command executor.
type Exec interface {
	Execute(ctx context.Context, command string) (*entities.CommandResult, error)
}

// ExecCommand runs caller-supplied shell commands under the configured time budget.
// Commands are neither validated nor allow-listed: callers must treat this as privileged.
type ExecCommand struct {
	shell    repositories.ShellRepository
	settings *entities.Settings
}

// NewExecCommand creates a new ExecCommand.
func NewExecCommand(shell repositories.ShellRepository, settings *entities.Settings) *ExecCommand {
	return &ExecCommand{
		shell:    shell,
		settings: settings,
	}
}

// Execute runs command and returns its output and exit code, whatever the exit code is.
func (it *ExecCommand) Execute(ctx context.Context, command string) (*entities.CommandResult, error) {
	if strings.TrimSpace(command) == "" {
		return nil, entities.NewValidationError("command", "must not be empty")
	}

	start := time.Now()
	logger.Debugf("Executing command with a %s budget: %s", it.settings.Exec.Timeout, command)

	result, err := it.shell.Run(context.WithoutCancel(ctx), command, it.settings.Exec.Timeout)
	if err != nil {
		var execErr *entities.ExecutionError
		if !errors.As(err, &execErr) {
			execErr = &entities.ExecutionError{Command: command, Cause: err}
		}

		outcome := metrics.OutcomeFailure
		if execErr.TimedOut {
			outcome = metrics.OutcomeTimeout
		}
		metrics.CommandExecuted(outcome, start)

		logger.Errorf("Command failed: %v", execErr)
		return nil, execErr
	}

	metrics.CommandExecuted(metrics.OutcomeSuccess, start)
	logger.Debugf("Command exited with code %d after %s", result.ExitCode, result.Duration)
	return result, nil
}
