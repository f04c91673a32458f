package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/workbench/internal/domain/entities"
	domainRepos "github.com/rios0rios0/workbench/internal/domain/repositories"
	chatRepo "github.com/rios0rios0/workbench/internal/infrastructure/repositories/chat"
	fsRepo "github.com/rios0rios0/workbench/internal/infrastructure/repositories/filesystem"
	gitRepo "github.com/rios0rios0/workbench/internal/infrastructure/repositories/git"
	ghRepo "github.com/rios0rios0/workbench/internal/infrastructure/repositories/github"
	shellRepo "github.com/rios0rios0/workbench/internal/infrastructure/repositories/shell"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register backend registry with all repository backend factories
	if err := container.Provide(func() *BackendRegistry {
		reg := NewBackendRegistry()
		reg.Register(entities.GitBackendGoGit, func(*entities.Settings) domainRepos.RepositoryBackend {
			return gitRepo.NewGoGitRepository()
		})
		reg.Register(entities.GitBackendCLI, func(settings *entities.Settings) domainRepos.RepositoryBackend {
			return gitRepo.NewCLIRepository(settings)
		})
		return reg
	}); err != nil {
		return err
	}

	providers := []any{
		func(reg *BackendRegistry, settings *entities.Settings) (domainRepos.RepositoryBackend, error) {
			return reg.Get(settings.Git.Backend, settings)
		},
		func(settings *entities.Settings) domainRepos.ShellRepository {
			return shellRepo.NewShellRepository(settings)
		},
		func() domainRepos.FileRepository {
			return fsRepo.NewBillyFileRepository()
		},
		func(settings *entities.Settings) domainRepos.OAuthRepository {
			return ghRepo.NewOAuthRepository(settings)
		},
		func(settings *entities.Settings) (domainRepos.HostingRepository, error) {
			return ghRepo.NewHostingRepository(settings)
		},
		func(settings *entities.Settings) domainRepos.ChatRepository {
			return chatRepo.NewOpenAIChatRepository(settings)
		},
	}
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return err
		}
	}

	return nil
}
