package repositories

import (
	"context"
	"time"

	"github.com/rios0rios0/workbench/internal/domain/entities"
)

// ShellRepository runs a command string through a shell.
type ShellRepository interface {
	// Run waits up to timeout for command to finish. A non-zero exit code is returned
	// inside the result; an *entities.ExecutionError is returned when the process could
	// not be started or was killed because the timeout elapsed.
	Run(ctx context.Context, command string, timeout time.Duration) (*entities.CommandResult, error)
}
