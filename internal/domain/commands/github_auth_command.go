package commands

import (
	"context"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/workbench/internal/domain/entities"
	"github.com/rios0rios0/workbench/internal/domain/repositories"
)

// GitHubAuth is the interface for the OAuth authorization-code flow.
type GitHubAuth interface {
	AuthorizeURL() (string, error)
	Exchange(ctx context.Context, code string) (string, error)
}

// GitHubAuthCommand drives the OAuth flow and stores the obtained token as the
// active credential.
type GitHubAuthCommand struct {
	oauth       repositories.OAuthRepository
	credentials *entities.CredentialStore
}

// NewGitHubAuthCommand creates a new GitHubAuthCommand.
func NewGitHubAuthCommand(
	oauth repositories.OAuthRepository,
	credentials *entities.CredentialStore,
) *GitHubAuthCommand {
	return &GitHubAuthCommand{
		oauth:       oauth,
		credentials: credentials,
	}
}

// AuthorizeURL returns the URL the user must visit to grant access.
func (it *GitHubAuthCommand) AuthorizeURL() (string, error) {
	return it.oauth.AuthorizeURL()
}

// Exchange trades code for an access token. On success the token becomes the
// stored credential, replacing any previous one.
func (it *GitHubAuthCommand) Exchange(ctx context.Context, code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", entities.NewValidationError("code", "No code provided")
	}

	token, err := it.oauth.Exchange(ctx, code)
	if err != nil {
		logger.Errorf("OAuth code exchange failed: %v", err)
		return "", err
	}

	if setErr := it.credentials.Set(token); setErr != nil {
		return "", &entities.AuthError{Description: "provider returned an empty access token", Cause: setErr}
	}

	logger.Info("GitHub access token obtained via OAuth")
	return token, nil
}
