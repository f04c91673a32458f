//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/workbench/internal/domain/commands"
	"github.com/rios0rios0/workbench/internal/domain/entities"
	builders "github.com/rios0rios0/workbench/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/workbench/test/infrastructure/repositorydoubles"
)

func TestListRepositoriesCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should prefer the explicit token over the stored one", func(t *testing.T) {
		t.Parallel()

		// given
		hosting := &doubles.StubHostingRepository{
			Repositories: []entities.HostedRepository{{Name: "octo/app", URL: "https://github.com/octo/app"}},
		}
		store := entities.NewCredentialStore(builders.NewSettingsBuilder().BuildSettings())
		require.NoError(t, store.Set("stored"))
		cmd := commands.NewListRepositoriesCommand(hosting, store)

		// when
		repos, err := cmd.Execute(context.Background(), "explicit")

		// then
		require.NoError(t, err)
		assert.Equal(t, "explicit", hosting.LastToken)
		assert.Equal(t, "octo/app", repos[0].Name)
	})

	t.Run("should fall back to the configured token", func(t *testing.T) {
		t.Parallel()

		// given
		hosting := &doubles.StubHostingRepository{}
		store := entities.NewCredentialStore(builders.NewSettingsBuilder().WithFallbackToken("fallback").BuildSettings())
		cmd := commands.NewListRepositoriesCommand(hosting, store)

		// when
		_, err := cmd.Execute(context.Background(), "")

		// then
		require.NoError(t, err)
		assert.Equal(t, "fallback", hosting.LastToken)
	})

	t.Run("should fail without any credential", func(t *testing.T) {
		t.Parallel()

		// given
		hosting := &doubles.StubHostingRepository{}
		cmd := commands.NewListRepositoriesCommand(hosting, entities.NewCredentialStore(builders.NewSettingsBuilder().BuildSettings()))

		// when
		_, err := cmd.Execute(context.Background(), "")

		// then
		require.ErrorIs(t, err, entities.ErrNoCredential)
		assert.Empty(t, hosting.LastToken)
	})
}
