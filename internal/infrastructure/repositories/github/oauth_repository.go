package github

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/oauth2"
	githubOAuth "golang.org/x/oauth2/github"

	"github.com/rios0rios0/workbench/internal/domain/entities"
)

var scopes = []string{"repo", "user"} //nolint:gochecknoglobals // fixed OAuth scopes

// OAuthRepository implements repositories.OAuthRepository with golang.org/x/oauth2.
// Without a client id and redirect URI every call fails with entities.ErrNotConfigured.
type OAuthRepository struct {
	settings entities.GitHubSettings
	config   *oauth2.Config
}

// NewOAuthRepository creates an OAuthRepository from the GitHub settings.
func NewOAuthRepository(settings *entities.Settings) *OAuthRepository {
	endpoint := githubOAuth.Endpoint
	if base := strings.TrimRight(settings.GitHub.OAuthBaseURL, "/"); base != "" {
		endpoint = oauth2.Endpoint{
			AuthURL:  base + "/login/oauth/authorize",
			TokenURL: base + "/login/oauth/access_token",
		}
	}
	endpoint.AuthStyle = oauth2.AuthStyleInParams

	return &OAuthRepository{
		settings: settings.GitHub,
		config: &oauth2.Config{
			ClientID:     settings.GitHub.ClientID,
			ClientSecret: settings.GitHub.ClientSecret,
			RedirectURL:  settings.GitHub.RedirectURI,
			Endpoint:     endpoint,
			Scopes:       scopes,
		},
	}
}

func (it *OAuthRepository) AuthorizeURL() (string, error) {
	if !it.settings.OAuthConfigured() {
		return "", entities.ErrNotConfigured
	}
	return it.config.AuthCodeURL(""), nil
}

func (it *OAuthRepository) Exchange(ctx context.Context, code string) (string, error) {
	if !it.settings.OAuthConfigured() || it.settings.ClientSecret == "" {
		return "", entities.ErrNotConfigured
	}

	token, err := it.config.Exchange(ctx, code)
	if err != nil {
		return "", toAuthError(err)
	}
	return token.AccessToken, nil
}

func toAuthError(err error) error {
	authErr := &entities.AuthError{Cause: err}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		authErr.Description = retrieveErr.ErrorDescription
		if authErr.Description == "" {
			authErr.Description = retrieveErr.ErrorCode
		}
		if retrieveErr.Response != nil {
			authErr.StatusCode = retrieveErr.Response.StatusCode
		}
	}
	return authErr
}
