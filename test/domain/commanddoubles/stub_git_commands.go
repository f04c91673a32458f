//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/workbench/internal/domain/commands"
	"github.com/rios0rios0/workbench/internal/domain/entities"
)

// StubGitHubAuthCommand is a stub implementation of commands.GitHubAuth.
type StubGitHubAuthCommand struct {
	URL         string
	URLErr      error
	Token       string
	ExchangeErr error
	LastCode    string
}

var _ commands.GitHubAuth = (*StubGitHubAuthCommand)(nil)

func (s *StubGitHubAuthCommand) AuthorizeURL() (string, error) {
	return s.URL, s.URLErr
}

func (s *StubGitHubAuthCommand) Exchange(_ context.Context, code string) (string, error) {
	s.LastCode = code
	return s.Token, s.ExchangeErr
}

// StubSetCredentialCommand is a stub implementation of commands.SetCredential.
type StubSetCredentialCommand struct {
	Err       error
	LastToken string
}

var _ commands.SetCredential = (*StubSetCredentialCommand)(nil)

func (s *StubSetCredentialCommand) Execute(token string) error {
	s.LastToken = token
	return s.Err
}

// StubCloneCommand is a stub implementation of commands.Clone.
type StubCloneCommand struct {
	Result   *commands.CloneResult
	Err      error
	LastOpts commands.CloneOptions
}

var _ commands.Clone = (*StubCloneCommand)(nil)

func (s *StubCloneCommand) Execute(_ context.Context, opts commands.CloneOptions) (*commands.CloneResult, error) {
	s.LastOpts = opts
	return s.Result, s.Err
}

// StubSyncCommand is a stub implementation of commands.Sync.
type StubSyncCommand struct {
	Result   *commands.SyncResult
	Err      error
	LastOpts commands.SyncOptions
}

var _ commands.Sync = (*StubSyncCommand)(nil)

func (s *StubSyncCommand) Execute(_ context.Context, opts commands.SyncOptions) (*commands.SyncResult, error) {
	s.LastOpts = opts
	return s.Result, s.Err
}

// StubListRepositoriesCommand is a stub implementation of commands.ListRepositories.
type StubListRepositoriesCommand struct {
	Repositories []entities.HostedRepository
	Err          error
	LastToken    string
}

var _ commands.ListRepositories = (*StubListRepositoriesCommand)(nil)

func (s *StubListRepositoriesCommand) Execute(
	_ context.Context,
	token string,
) ([]entities.HostedRepository, error) {
	s.LastToken = token
	return s.Repositories, s.Err
}
