package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/workbench/internal/domain/entities"
)

const (
	remoteName     = "origin"
	tokenUsername  = "x-access-token"
	upToDateOutput = "Already up to date."
)

// GoGitRepository implements repositories.RepositoryBackend with the go-git library.
// Credentials embedded in the origin URL are turned into HTTP basic auth.
type GoGitRepository struct{}

// NewGoGitRepository creates a new GoGitRepository.
func NewGoGitRepository() *GoGitRepository {
	return &GoGitRepository{}
}

func (it *GoGitRepository) Name() string { return entities.GitBackendGoGit }

func (it *GoGitRepository) Clone(ctx context.Context, rawURL, dir string) (string, error) {
	var progress bytes.Buffer
	_, err := gogit.PlainCloneContext(ctx, dir, false, &gogit.CloneOptions{
		URL:      rawURL,
		Auth:     authFromURL(rawURL),
		Progress: &progress,
	})
	if err != nil {
		return progress.String(), err
	}
	return progress.String(), nil
}

func (it *GoGitRepository) Pull(ctx context.Context, dir string) (string, error) {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return "", fmt.Errorf("open repo: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("get worktree: %w", err)
	}

	auth, err := remoteAuth(repo)
	if err != nil {
		return "", err
	}

	var progress bytes.Buffer
	err = worktree.PullContext(ctx, &gogit.PullOptions{
		RemoteName: remoteName,
		Auth:       auth,
		Progress:   &progress,
	})
	if errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return upToDateOutput, nil
	}
	if err != nil {
		return progress.String(), err
	}
	return progress.String(), nil
}

func (it *GoGitRepository) Push(ctx context.Context, dir string) (string, error) {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return "", fmt.Errorf("open repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", errors.New("HEAD is detached, nothing to push")
	}

	auth, err := remoteAuth(repo)
	if err != nil {
		return "", err
	}

	var progress bytes.Buffer
	refSpec := config.RefSpec(fmt.Sprintf("%s:%s", head.Name(), head.Name()))
	err = repo.PushContext(ctx, &gogit.PushOptions{
		RemoteName: remoteName,
		RefSpecs:   []config.RefSpec{refSpec},
		Auth:       auth,
		Progress:   &progress,
	})
	if errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		logger.Debugf("Remote of %s is already up to date", dir)
		return "Everything up-to-date", nil
	}
	if err != nil {
		return progress.String(), err
	}
	return progress.String(), nil
}

func (it *GoGitRepository) StageAll(_ context.Context, dir string) error {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return fmt.Errorf("open repo: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("get worktree: %w", err)
	}

	if addErr := worktree.AddWithOptions(&gogit.AddOptions{All: true}); addErr != nil {
		return fmt.Errorf("stage all: %w", addErr)
	}
	return nil
}

func (it *GoGitRepository) Commit(_ context.Context, dir, message string) (string, error) {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return "", fmt.Errorf("open repo: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("get worktree: %w", err)
	}

	cfg, err := repo.Config()
	if err != nil {
		return "", fmt.Errorf("read config: %w", err)
	}

	opts := &gogit.CommitOptions{}
	if cfg.User.Name != "" || cfg.User.Email != "" {
		opts.Author = &object.Signature{
			Name:  cfg.User.Name,
			Email: cfg.User.Email,
			When:  time.Now(),
		}
	}

	hash, err := worktree.Commit(message, opts)
	if errors.Is(err, gogit.ErrEmptyCommit) {
		return "", entities.ErrNothingToCommit
	}
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return fmt.Sprintf("[%s] %s", hash.String()[:7], message), nil
}

func (it *GoGitRepository) ConfigureIdentity(_ context.Context, dir, name, email string) error {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return fmt.Errorf("open repo: %w", err)
	}

	cfg, err := repo.Config()
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	cfg.User.Name = name
	cfg.User.Email = email
	return repo.SetConfig(cfg)
}

func (it *GoGitRepository) RemoteURL(_ context.Context, dir string) (string, error) {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return "", fmt.Errorf("open repo: %w", err)
	}
	return originURL(repo)
}

func (it *GoGitRepository) SetRemoteURL(_ context.Context, dir, rawURL string) error {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return fmt.Errorf("open repo: %w", err)
	}

	cfg, err := repo.Config()
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	remote, ok := cfg.Remotes[remoteName]
	if !ok {
		return fmt.Errorf("remote %q not found", remoteName)
	}
	remote.URLs = []string{rawURL}
	return repo.SetConfig(cfg)
}

func originURL(repo *gogit.Repository) (string, error) {
	remote, err := repo.Remote(remoteName)
	if err != nil {
		return "", fmt.Errorf("get remote %s: %w", remoteName, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %s has no URL", remoteName)
	}
	return urls[0], nil
}

func remoteAuth(repo *gogit.Repository) (transport.AuthMethod, error) {
	rawURL, err := originURL(repo)
	if err != nil {
		return nil, err
	}
	return authFromURL(rawURL), nil
}

// authFromURL maps https://<token>@host/... (or user:password) to basic auth.
// A nil method lets go-git fall back to anonymous access.
func authFromURL(rawURL string) transport.AuthMethod {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.User == nil {
		return nil
	}

	if password, ok := parsed.User.Password(); ok {
		return &http.BasicAuth{Username: parsed.User.Username(), Password: password}
	}
	return &http.BasicAuth{Username: tokenUsername, Password: parsed.User.Username()}
}
