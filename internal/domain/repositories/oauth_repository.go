package repositories

import "context"

// OAuthRepository talks to the GitHub OAuth application endpoints.
type OAuthRepository interface {
	// AuthorizeURL builds the URL the browser is sent to, requesting the repo and user scopes.
	AuthorizeURL() (string, error)

	// Exchange trades an authorization code for an access token.
	Exchange(ctx context.Context, code string) (string, error)
}
