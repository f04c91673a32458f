package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	constructors := []any{
		NewExecCommand,
		NewWriteFilesCommand,
		NewGitHubAuthCommand,
		NewSetCredentialCommand,
		NewCloneCommand,
		NewSyncCommand,
		NewListRepositoriesCommand,
		NewChatCommand,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	bindings := []any{
		func(impl *ExecCommand) Exec { return impl },
		func(impl *WriteFilesCommand) WriteFiles { return impl },
		func(impl *GitHubAuthCommand) GitHubAuth { return impl },
		func(impl *SetCredentialCommand) SetCredential { return impl },
		func(impl *CloneCommand) Clone { return impl },
		func(impl *SyncCommand) Sync { return impl },
		func(impl *ListRepositoriesCommand) ListRepositories { return impl },
		func(impl *ChatCommand) Chat { return impl },
	}
	for _, binding := range bindings {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
