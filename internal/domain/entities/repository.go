package entities

import (
	"net/url"
	"path"
	"strings"
)

const (
	githubHost    = "github.com"
	gitSuffix     = ".git"
	redactedToken = "***"
)

// RepositoryReference is a GitHub HTTPS remote and the local directory name derived from it.
// One reference maps to at most one working copy, keyed by Name.
type RepositoryReference struct {
	URL  string
	Name string
}

// HostedRepository is a repository listed from the GitHub API.
type HostedRepository struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// NewRepositoryReference validates rawURL as a GitHub HTTPS URL and derives the
// working-copy name from its last path segment, without ".git" and without any
// embedded credential.
func NewRepositoryReference(rawURL string) (*RepositoryReference, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, NewValidationError("repo_url", "must not be empty")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, NewValidationError("repo_url", "%v", err)
	}
	if parsed.Scheme != "https" {
		return nil, NewValidationError("repo_url", "scheme %q is not supported, expected https", parsed.Scheme)
	}
	host := strings.ToLower(parsed.Hostname())
	if host != githubHost && host != "www."+githubHost {
		return nil, NewValidationError("repo_url", "host %q is not a GitHub host", parsed.Hostname())
	}

	segments := strings.FieldsFunc(parsed.Path, func(r rune) bool { return r == '/' })
	if len(segments) < 2 { //nolint:mnd // owner + repository
		return nil, NewValidationError("repo_url", "expected https://github.com/<owner>/<repository>")
	}

	name := strings.TrimSuffix(path.Base(parsed.Path), gitSuffix)
	if name == "" || name == "." || name == ".." {
		return nil, NewValidationError("repo_url", "cannot derive a directory name from %q", RedactURL(rawURL))
	}

	return &RepositoryReference{URL: rawURL, Name: name}, nil
}

// HasCredential reports whether rawURL carries userinfo (a token or user:password pair).
func HasCredential(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return parsed.User != nil
}

// EmbedCredential rewrites a GitHub HTTPS URL to https://<token>@github.com/...
// The URL is returned unchanged when token is empty, when it already carries a
// credential or when it is not a GitHub HTTPS URL.
func EmbedCredential(rawURL, token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.User != nil || parsed.Scheme != "https" {
		return rawURL
	}
	host := strings.ToLower(parsed.Hostname())
	if host != githubHost && host != "www."+githubHost {
		return rawURL
	}

	parsed.User = url.User(token)
	return parsed.String()
}

// RedactURL masks any credential embedded in rawURL so it can be logged.
func RedactURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.User == nil {
		return rawURL
	}
	parsed.User = nil
	return strings.Replace(parsed.String(), "://", "://"+redactedToken+"@", 1)
}
