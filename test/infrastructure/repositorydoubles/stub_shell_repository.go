//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"time"

	"github.com/rios0rios0/workbench/internal/domain/entities"
	"github.com/rios0rios0/workbench/internal/domain/repositories"
)

// StubShellRepository is a stub implementation of repositories.ShellRepository.
type StubShellRepository struct {
	Result      *entities.CommandResult
	Err         error
	CallCount   int
	LastCommand string
	LastTimeout time.Duration
}

var _ repositories.ShellRepository = (*StubShellRepository)(nil)

func (s *StubShellRepository) Run(
	_ context.Context,
	command string,
	timeout time.Duration,
) (*entities.CommandResult, error) {
	s.CallCount++
	s.LastCommand = command
	s.LastTimeout = timeout
	return s.Result, s.Err
}
