package repositories

import (
	"context"

	"github.com/rios0rios0/workbench/internal/domain/entities"
)

// HostingRepository reads account data from the Git hosting service.
type HostingRepository interface {
	// ListRepositories returns the repositories of the user owning token,
	// most recently updated first.
	ListRepositories(ctx context.Context, token string) ([]entities.HostedRepository, error)
}
