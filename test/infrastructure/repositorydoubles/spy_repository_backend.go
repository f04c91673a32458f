//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"os"

	"github.com/rios0rios0/workbench/internal/domain/repositories"
)

// SpyRepositoryBackend implements repositories.RepositoryBackend as a configurable spy.
// Every call is appended to Calls, in order, by operation name.
type SpyRepositoryBackend struct {
	Calls []string

	// --- Clone ---
	CloneOutput      string
	CloneErr         error
	CreateDirOnClone bool
	OnClone          func(dir string) // runs inside Clone, after the directory is created
	ClonedURLs       []string
	ClonedDirs       []string

	// --- Pull ---
	PullOutput string
	PullErr    error

	// --- Push ---
	PushOutput string
	PushErr    error

	// --- StageAll ---
	StageErr error

	// --- Commit ---
	CommitOutput   string
	CommitErr      error
	CommitMessages []string

	// --- ConfigureIdentity ---
	IdentityErr   error
	IdentityName  string
	IdentityEmail string

	// --- RemoteURL / SetRemoteURL ---
	Remote       string
	RemoteErr    error
	SetRemoteErr error
	SetRemotes   []string
}

var _ repositories.RepositoryBackend = (*SpyRepositoryBackend)(nil)

func (s *SpyRepositoryBackend) Name() string { return "spy" }

func (s *SpyRepositoryBackend) Clone(_ context.Context, url, dir string) (string, error) {
	s.Calls = append(s.Calls, "clone")
	s.ClonedURLs = append(s.ClonedURLs, url)
	s.ClonedDirs = append(s.ClonedDirs, dir)
	if s.CreateDirOnClone {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	if s.OnClone != nil {
		s.OnClone(dir)
	}
	return s.CloneOutput, s.CloneErr
}

func (s *SpyRepositoryBackend) Pull(_ context.Context, _ string) (string, error) {
	s.Calls = append(s.Calls, "pull")
	return s.PullOutput, s.PullErr
}

func (s *SpyRepositoryBackend) Push(_ context.Context, _ string) (string, error) {
	s.Calls = append(s.Calls, "push")
	return s.PushOutput, s.PushErr
}

func (s *SpyRepositoryBackend) StageAll(_ context.Context, _ string) error {
	s.Calls = append(s.Calls, "add")
	return s.StageErr
}

func (s *SpyRepositoryBackend) Commit(_ context.Context, _, message string) (string, error) {
	s.Calls = append(s.Calls, "commit")
	s.CommitMessages = append(s.CommitMessages, message)
	return s.CommitOutput, s.CommitErr
}

func (s *SpyRepositoryBackend) ConfigureIdentity(_ context.Context, _, name, email string) error {
	s.Calls = append(s.Calls, "config")
	s.IdentityName = name
	s.IdentityEmail = email
	return s.IdentityErr
}

func (s *SpyRepositoryBackend) RemoteURL(_ context.Context, _ string) (string, error) {
	s.Calls = append(s.Calls, "get-url")
	return s.Remote, s.RemoteErr
}

func (s *SpyRepositoryBackend) SetRemoteURL(_ context.Context, _, url string) error {
	s.Calls = append(s.Calls, "set-url")
	s.SetRemotes = append(s.SetRemotes, url)
	if s.SetRemoteErr == nil {
		s.Remote = url
	}
	return s.SetRemoteErr
}
