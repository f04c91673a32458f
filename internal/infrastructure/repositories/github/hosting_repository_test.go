//go:build unit

package github_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/workbench/internal/domain/entities"
	ghRepo "github.com/rios0rios0/workbench/internal/infrastructure/repositories/github"
	builders "github.com/rios0rios0/workbench/test/domain/entitybuilders"
)

func TestHostingRepositoryListRepositories(t *testing.T) {
	t.Parallel()

	t.Run("should list the user's repositories by most recent update", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/user/repos", r.URL.Path)
			assert.Equal(t, "updated", r.URL.Query().Get("sort"))
			assert.Equal(t, "100", r.URL.Query().Get("per_page"))
			assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"full_name":"octo/app","html_url":"https://github.com/octo/app"},
				{"full_name":"octo/lib","html_url":"https://github.com/octo/lib"}
			]`))
		}))
		defer server.Close()
		repository, err := ghRepo.NewHostingRepository(
			builders.NewSettingsBuilder().WithGitHubURLs(server.URL).BuildSettings(),
		)
		require.NoError(t, err)

		// when
		repos, listErr := repository.ListRepositories(context.Background(), "tkn")

		// then
		require.NoError(t, listErr)
		assert.Equal(t, []entities.HostedRepository{
			{Name: "octo/app", URL: "https://github.com/octo/app"},
			{Name: "octo/lib", URL: "https://github.com/octo/lib"},
		}, repos)
	})

	t.Run("should carry the upstream status and message on failure", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
		}))
		defer server.Close()
		repository, err := ghRepo.NewHostingRepository(
			builders.NewSettingsBuilder().WithGitHubURLs(server.URL).BuildSettings(),
		)
		require.NoError(t, err)

		// when
		_, listErr := repository.ListRepositories(context.Background(), "wrong")

		// then
		var authErr *entities.AuthError
		require.ErrorAs(t, listErr, &authErr)
		assert.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
		assert.Equal(t, "Bad credentials", authErr.Error())
	})
}
