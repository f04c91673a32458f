package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/workbench/internal/domain/entities"
	"github.com/rios0rios0/workbench/internal/domain/repositories"
	"github.com/rios0rios0/workbench/internal/infrastructure/metrics"
)

// Sync is the interface for pull/push on an existing working copy.
type Sync interface {
	Execute(ctx context.Context, opts SyncOptions) (*SyncResult, error)
}

// SyncOptions holds the inputs of a single synchronization.
type SyncOptions struct {
	Path      string // absolute, or relative to the workspace root
	Operation string
	Message   string // commit message for push, defaults to the configured one
	Token     string // optional, takes precedence over the stored credential
}

// SyncResult describes a successful synchronization.
type SyncResult struct {
	Operation entities.SyncOperation
	Path      string
	Output    string
	Committed bool
}

// SyncCommand pulls into or pushes from a working copy through the repository backend.
type SyncCommand struct {
	backend     repositories.RepositoryBackend
	credentials *entities.CredentialStore
	settings    *entities.Settings
}

// NewSyncCommand creates a new SyncCommand.
func NewSyncCommand(
	backend repositories.RepositoryBackend,
	credentials *entities.CredentialStore,
	settings *entities.Settings,
) *SyncCommand {
	return &SyncCommand{
		backend:     backend,
		credentials: credentials,
		settings:    settings,
	}
}

// Execute validates the working copy and runs the requested operation under the
// configured operation timeout.
func (it *SyncCommand) Execute(ctx context.Context, opts SyncOptions) (*SyncResult, error) {
	dir, err := it.workingCopy(opts.Path)
	if err != nil {
		return nil, err
	}

	operation, err := entities.ParseSyncOperation(opts.Operation)
	if err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), it.settings.Git.OperationTimeout)
	defer cancel()

	start := time.Now()
	result := &SyncResult{Operation: operation, Path: dir}

	switch operation {
	case entities.SyncPull:
		err = it.pull(opCtx, dir, opts, result)
	case entities.SyncPush:
		err = it.push(opCtx, dir, opts, result)
	}

	if err != nil {
		outcome := metrics.OutcomeFailure
		if opCtx.Err() != nil {
			outcome = metrics.OutcomeTimeout
		}
		metrics.GitOperation(string(operation), outcome, start)
		logger.Errorf("Git %s in %s failed: %v", operation, dir, err)
		return nil, err
	}

	metrics.GitOperation(string(operation), metrics.OutcomeSuccess, start)
	logger.Infof("Git %s in %s done", operation, dir)
	return result, nil
}

func (it *SyncCommand) workingCopy(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", entities.NewValidationError("path", "must not be empty")
	}

	dir := path
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(it.settings.Workspace.Root, dir)
	}
	dir = filepath.Clean(dir)

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", entities.NewValidationError("path", "%s does not exist or is not a directory", path)
	}
	return dir, nil
}

// pull fast-forwards the working copy. Origin usually carries the credential embedded by
// clone or push, so its output is masked like the other operations.
func (it *SyncCommand) pull(ctx context.Context, dir string, opts SyncOptions, result *SyncResult) error {
	token, _ := it.credentials.Resolve(opts.Token)

	output, err := it.backend.Pull(ctx, dir)
	if err != nil {
		return &entities.SyncError{
			Operation: string(entities.SyncPull),
			Output:    redact(output, token),
			Cause:     redactError(err, token),
		}
	}
	result.Output = redact(strings.TrimSpace(output), token)
	return nil
}

// push configures the identity, makes sure origin carries a credential, stages and
// commits everything (an empty commit is tolerated) and pushes.
func (it *SyncCommand) push(ctx context.Context, dir string, opts SyncOptions, result *SyncResult) error {
	gitSettings := it.settings.Git
	if err := it.backend.ConfigureIdentity(ctx, dir, gitSettings.AuthorName, gitSettings.AuthorEmail); err != nil {
		return &entities.SyncError{Operation: "config", Cause: err}
	}

	token, err := it.ensureRemoteCredential(ctx, dir, opts.Token)
	if err != nil {
		return err
	}

	if stageErr := it.backend.StageAll(ctx, dir); stageErr != nil {
		return &entities.SyncError{Operation: "add", Cause: redactError(stageErr, token)}
	}

	message := strings.TrimSpace(opts.Message)
	if message == "" {
		message = gitSettings.DefaultMessage
	}

	commitOutput, err := it.backend.Commit(ctx, dir, message)
	switch {
	case errors.Is(err, entities.ErrNothingToCommit):
		logger.Warnf("Nothing to commit in %s, pushing anyway", dir)
	case err != nil:
		return &entities.SyncError{Operation: "commit", Output: redact(commitOutput, token), Cause: redactError(err, token)}
	default:
		result.Committed = true
	}

	pushOutput, err := it.backend.Push(ctx, dir)
	if err != nil {
		return &entities.SyncError{
			Operation: string(entities.SyncPush),
			Output:    redact(pushOutput, token),
			Cause:     redactError(err, token),
		}
	}

	result.Output = redact(joinOutput(commitOutput, pushOutput), token)
	return nil
}

// ensureRemoteCredential embeds the resolved credential into origin when origin
// carries none yet. It returns the token in use so it can be masked in output.
func (it *SyncCommand) ensureRemoteCredential(ctx context.Context, dir, explicit string) (string, error) {
	remote, err := it.backend.RemoteURL(ctx, dir)
	if err != nil {
		return "", &entities.SyncError{Operation: "remote", Cause: err}
	}

	token, ok := it.credentials.Resolve(explicit)
	if !ok || entities.HasCredential(remote) {
		return token, nil
	}

	rewritten := entities.EmbedCredential(remote, token)
	if rewritten == remote {
		return token, nil
	}

	if setErr := it.backend.SetRemoteURL(ctx, dir, rewritten); setErr != nil {
		return token, &entities.SyncError{Operation: "remote", Cause: redactError(setErr, token)}
	}
	logger.Infof("Embedded credential into origin of %s", dir)
	return token, nil
}

func joinOutput(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, "\n")
}
