package commands

import (
	"context"

	"github.com/rios0rios0/workbench/internal/domain/entities"
	"github.com/rios0rios0/workbench/internal/domain/repositories"
)

// ListRepositories is the interface for listing the authenticated user's repositories.
type ListRepositories interface {
	Execute(ctx context.Context, token string) ([]entities.HostedRepository, error)
}

// ListRepositoriesCommand lists repositories with the resolved credential.
type ListRepositoriesCommand struct {
	hosting     repositories.HostingRepository
	credentials *entities.CredentialStore
}

// NewListRepositoriesCommand creates a new ListRepositoriesCommand.
func NewListRepositoriesCommand(
	hosting repositories.HostingRepository,
	credentials *entities.CredentialStore,
) *ListRepositoriesCommand {
	return &ListRepositoriesCommand{
		hosting:     hosting,
		credentials: credentials,
	}
}

func (it *ListRepositoriesCommand) Execute(ctx context.Context, token string) ([]entities.HostedRepository, error) {
	resolved, ok := it.credentials.Resolve(token)
	if !ok {
		return nil, entities.ErrNoCredential
	}
	return it.hosting.ListRepositories(ctx, resolved)
}
