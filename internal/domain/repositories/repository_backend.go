package repositories

import (
	"context"
)

// RepositoryBackend is the git capability the sync engine delegates to. It can be
// implemented by linking a git library or by invoking an external git process.
// Operations returning output hand back whatever the implementation captured
// (progress or error stream) so failures can be relayed verbatim.
type RepositoryBackend interface {
	// Name identifies the implementation (e.g. "gogit", "cli").
	Name() string

	// Clone clones url into dir, which must not exist yet.
	Clone(ctx context.Context, url, dir string) (string, error)

	// Pull fast-forwards the working copy at dir from its "origin" remote.
	Pull(ctx context.Context, dir string) (string, error)

	// Push pushes the current branch to the "origin" remote. An up-to-date remote is a success.
	Push(ctx context.Context, dir string) (string, error)

	// StageAll stages every change of the working copy, including deletions.
	StageAll(ctx context.Context, dir string) error

	// Commit records the staged changes. It returns entities.ErrNothingToCommit when
	// the index holds no change.
	Commit(ctx context.Context, dir, message string) (string, error)

	// ConfigureIdentity sets user.name and user.email on the working copy. Idempotent.
	ConfigureIdentity(ctx context.Context, dir, name, email string) error

	// RemoteURL returns the URL of the "origin" remote.
	RemoteURL(ctx context.Context, dir string) (string, error)

	// SetRemoteURL replaces the URL of the "origin" remote.
	SetRemoteURL(ctx context.Context, dir, url string) error
}
