package github

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v66/github"

	"github.com/rios0rios0/workbench/internal/domain/entities"
)

const (
	perPage     = 100
	sortUpdated = "updated"
)

// HostingRepository implements repositories.HostingRepository with go-github.
type HostingRepository struct {
	baseURL *url.URL
}

// NewHostingRepository creates a HostingRepository. An empty API base URL selects api.github.com.
func NewHostingRepository(settings *entities.Settings) (*HostingRepository, error) {
	repository := &HostingRepository{}
	if base := strings.TrimSpace(settings.GitHub.APIBaseURL); base != "" {
		parsed, err := url.Parse(strings.TrimRight(base, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid github.api_base_url: %w", err)
		}
		repository.baseURL = parsed
	}
	return repository, nil
}

// ListRepositories returns the first page of the token owner's repositories,
// most recently updated first.
func (it *HostingRepository) ListRepositories(
	ctx context.Context,
	token string,
) ([]entities.HostedRepository, error) {
	client := gh.NewClient(nil).WithAuthToken(token)
	if it.baseURL != nil {
		client.BaseURL = it.baseURL
	}

	repos, _, err := client.Repositories.ListByAuthenticatedUser(ctx, &gh.RepositoryListByAuthenticatedUserOptions{
		Sort:        sortUpdated,
		ListOptions: gh.ListOptions{PerPage: perPage},
	})
	if err != nil {
		return nil, toHostingError(err)
	}

	hosted := make([]entities.HostedRepository, 0, len(repos))
	for _, repo := range repos {
		hosted = append(hosted, entities.HostedRepository{
			Name: repo.GetFullName(),
			URL:  repo.GetHTMLURL(),
		})
	}
	return hosted, nil
}

func toHostingError(err error) error {
	var responseErr *gh.ErrorResponse
	if errors.As(err, &responseErr) {
		authErr := &entities.AuthError{Description: responseErr.Message, Cause: err}
		if responseErr.Response != nil {
			authErr.StatusCode = responseErr.Response.StatusCode
		}
		return authErr
	}
	return fmt.Errorf("failed to list repositories: %w", err)
}
